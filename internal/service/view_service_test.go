package service

import (
	"Inkstone/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeViewRepo 预置分组计数结果并记录调用轮次
type fakeViewRepo struct {
	storyCounts   map[uint64]int64
	chapterCounts map[uint64]int64

	storyGroupCalls   int
	chapterGroupCalls int
}

func (f *fakeViewRepo) CreateStoryView(ctx context.Context, view *model.StoryView) error {
	return nil
}

func (f *fakeViewRepo) CreateChapterView(ctx context.Context, view *model.ChapterView) error {
	return nil
}

func (f *fakeViewRepo) CountStoryViewsByStory(ctx context.Context, storyIDs []uint64, start, end time.Time) (map[uint64]int64, error) {
	f.storyGroupCalls++
	return f.storyCounts, nil
}

func (f *fakeViewRepo) CountChapterViewsByChapter(ctx context.Context, chapterIDs []uint64, start, end time.Time) (map[uint64]int64, error) {
	f.chapterGroupCalls++
	return f.chapterCounts, nil
}

func (f *fakeViewRepo) CountStoryViews(ctx context.Context, storyIDs []uint64, start, end time.Time) (int64, error) {
	var sum int64
	for _, c := range f.storyCounts {
		sum += c
	}
	return sum, nil
}

func (f *fakeViewRepo) CountChapterViews(ctx context.Context, chapterIDs []uint64, start, end time.Time) (int64, error) {
	var sum int64
	for _, c := range f.chapterCounts {
		sum += c
	}
	return sum, nil
}

type fakeChapterRepo struct {
	refs  []*model.ChapterRef
	calls int
}

func (f *fakeChapterRepo) GetChapterRefsByStoryIDs(ctx context.Context, storyIDs []uint64) ([]*model.ChapterRef, error) {
	f.calls++
	return f.refs, nil
}

func TestGetBatchCombinedViewCountsEmptyInput(t *testing.T) {
	viewRepo := &fakeViewRepo{}
	chapterRepo := &fakeChapterRepo{}
	svc := NewViewService(viewRepo, chapterRepo)

	counts, err := svc.GetBatchCombinedViewCounts(context.Background(), nil, TimeRangeAll, nil, nil)

	require.NoError(t, err)
	assert.Empty(t, counts)
	// 空输入不触发任何查询
	assert.Equal(t, 0, viewRepo.storyGroupCalls)
	assert.Equal(t, 0, viewRepo.chapterGroupCalls)
	assert.Equal(t, 0, chapterRepo.calls)
}

func TestGetBatchCombinedViewCountsMergesChapters(t *testing.T) {
	// 作品 A(id=1) 有 3 次作品级阅读、2 次章节级阅读，作品 B(id=2) 毫无记录
	viewRepo := &fakeViewRepo{
		storyCounts:   map[uint64]int64{1: 3},
		chapterCounts: map[uint64]int64{10: 1, 11: 1},
	}
	chapterRepo := &fakeChapterRepo{
		refs: []*model.ChapterRef{
			{ID: 10, StoryID: 1},
			{ID: 11, StoryID: 1},
		},
	}
	svc := NewViewService(viewRepo, chapterRepo)

	counts, err := svc.GetBatchCombinedViewCounts(context.Background(), []uint64{1, 2}, TimeRangeAll, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, map[uint64]int64{1: 5, 2: 0}, counts)

	// 固定三轮查询，与作品数量无关
	assert.Equal(t, 1, viewRepo.storyGroupCalls)
	assert.Equal(t, 1, chapterRepo.calls)
	assert.Equal(t, 1, viewRepo.chapterGroupCalls)
}

func TestGetBatchCombinedViewCountsNoChapters(t *testing.T) {
	viewRepo := &fakeViewRepo{
		storyCounts: map[uint64]int64{1: 2},
	}
	chapterRepo := &fakeChapterRepo{}
	svc := NewViewService(viewRepo, chapterRepo)

	counts, err := svc.GetBatchCombinedViewCounts(context.Background(), []uint64{1}, TimeRange30Days, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, map[uint64]int64{1: 2}, counts)
	// 没有章节时跳过章节阅读查询
	assert.Equal(t, 0, viewRepo.chapterGroupCalls)
}

func TestResolveViewBounds(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	start, end := resolveViewBounds(TimeRange7Days, nil, nil, now)
	assert.Equal(t, now.AddDate(0, 0, -7), start)
	assert.Equal(t, now, end)

	start, end = resolveViewBounds(TimeRangeAll, nil, nil, now)
	assert.Equal(t, allTimeAnchor, start)
	assert.Equal(t, now, end)

	customStart := now.AddDate(0, 0, -3)
	customEnd := now.AddDate(0, 0, -1)
	start, end = resolveViewBounds(TimeRangeCustom, &customStart, &customEnd, now)
	assert.Equal(t, customStart, start)
	assert.Equal(t, customEnd, end)

	// 自定义窗口缺省边界回退到锚点与当前时间
	start, end = resolveViewBounds(TimeRangeCustom, nil, nil, now)
	assert.Equal(t, allTimeAnchor, start)
	assert.Equal(t, now, end)
}
