package service

import (
	"Inkstone/internal/repository"
	"context"
	"time"
)

type ViewService interface {
	// GetBatchCombinedViewCounts 按作品合并作品级与章节级阅读事件。
	// 固定轮次：一次作品阅读分组统计、一次章节映射、一次章节阅读分组统计，
	// 与作品数量无关。返回稠密映射，请求中的每个 ID 都有键，无事件记 0
	GetBatchCombinedViewCounts(ctx context.Context, storyIDs []uint64, rng TimeRange, start, end *time.Time) (map[uint64]int64, error)
}

type viewServiceImpl struct {
	viewRepo    repository.ViewRepo
	chapterRepo repository.ChapterRepo
}

func NewViewService(viewRepo repository.ViewRepo, chapterRepo repository.ChapterRepo) ViewService {
	return &viewServiceImpl{
		viewRepo:    viewRepo,
		chapterRepo: chapterRepo,
	}
}

func (s *viewServiceImpl) GetBatchCombinedViewCounts(ctx context.Context, storyIDs []uint64, rng TimeRange, start, end *time.Time) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(storyIDs))
	if len(storyIDs) == 0 {
		return counts, nil
	}

	windowStart, windowEnd := resolveViewBounds(rng, start, end, time.Now())

	storyCounts, err := s.viewRepo.CountStoryViewsByStory(ctx, storyIDs, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	refs, err := s.chapterRepo.GetChapterRefsByStoryIDs(ctx, storyIDs)
	if err != nil {
		return nil, err
	}

	chapterIDs := make([]uint64, 0, len(refs))
	chapterToStory := make(map[uint64]uint64, len(refs))
	for _, ref := range refs {
		chapterIDs = append(chapterIDs, ref.ID)
		chapterToStory[ref.ID] = ref.StoryID
	}

	chapterCounts := map[uint64]int64{}
	if len(chapterIDs) > 0 {
		chapterCounts, err = s.viewRepo.CountChapterViewsByChapter(ctx, chapterIDs, windowStart, windowEnd)
		if err != nil {
			return nil, err
		}
	}

	for _, id := range storyIDs {
		counts[id] = storyCounts[id]
	}
	for chapterID, c := range chapterCounts {
		counts[chapterToStory[chapterID]] += c
	}

	return counts, nil
}

// resolveViewBounds 把窗口预设或自定义边界解析为具体的 [start, end)
func resolveViewBounds(rng TimeRange, start, end *time.Time, now time.Time) (time.Time, time.Time) {
	windowEnd := now
	if end != nil {
		windowEnd = *end
	}

	if rng == TimeRangeCustom {
		windowStart := allTimeAnchor
		if start != nil {
			windowStart = *start
		}
		return windowStart, windowEnd
	}

	if rng == TimeRangeAll {
		return allTimeAnchor, windowEnd
	}

	return windowEnd.AddDate(0, 0, -rangeDays(rng)), windowEnd
}
