package service

import (
	"Inkstone/internal/model"
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStoryRepo struct {
	stories []*model.Story
}

func (f *fakeStoryRepo) GetStory(ctx context.Context, storyID uint64) (*model.Story, error) {
	for _, s := range f.stories {
		if s.ID == storyID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStoryRepo) GetStoryIDsByUserID(ctx context.Context, userID uint64) ([]uint64, error) {
	ids := make([]uint64, 0, len(f.stories))
	for _, s := range f.stories {
		ids = append(ids, s.ID)
	}
	return ids, nil
}

func (f *fakeStoryRepo) GetStoriesByUserID(ctx context.Context, userID uint64) ([]*model.Story, error) {
	return f.stories, nil
}

// fakeEngagementRepo 按作品预置点赞与评论量，不区分窗口
type fakeEngagementRepo struct {
	likes    map[uint64]int64
	comments map[uint64]int64
}

func (f *fakeEngagementRepo) CountLikes(ctx context.Context, storyIDs []uint64, start, end time.Time) (int64, error) {
	var sum int64
	for _, id := range storyIDs {
		sum += f.likes[id]
	}
	return sum, nil
}

func (f *fakeEngagementRepo) CountComments(ctx context.Context, storyIDs []uint64, start, end time.Time) (int64, error) {
	var sum int64
	for _, id := range storyIDs {
		sum += f.comments[id]
	}
	return sum, nil
}

func (f *fakeEngagementRepo) CountLikesByStory(ctx context.Context, storyIDs []uint64, start, end time.Time) (map[uint64]int64, error) {
	result := make(map[uint64]int64, len(storyIDs))
	for _, id := range storyIDs {
		if c := f.likes[id]; c > 0 {
			result[id] = c
		}
	}
	return result, nil
}

func (f *fakeEngagementRepo) CountCommentsByStory(ctx context.Context, storyIDs []uint64, start, end time.Time) (map[uint64]int64, error) {
	result := make(map[uint64]int64, len(storyIDs))
	for _, id := range storyIDs {
		if c := f.comments[id]; c > 0 {
			result[id] = c
		}
	}
	return result, nil
}

type fakeUserFollowRepo struct {
	followers int64
}

func (f *fakeUserFollowRepo) GetUserFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	return f.followers, nil
}

func (f *fakeUserFollowRepo) CountFollowersInRange(ctx context.Context, userID uint64, start, end time.Time) (int64, error) {
	return f.followers, nil
}

// fakeDonationRepo 按真实记录做状态与时间窗过滤
type fakeDonationRepo struct {
	donations  []*model.Donation
	donorNames map[uint64]string
	stories    map[uint64]*model.Story
}

func (f *fakeDonationRepo) match(d *model.Donation, storyIDs []uint64, start, end time.Time) bool {
	if d.Status != "collected" {
		return false
	}
	if d.CreatedAt.Before(start) || !d.CreatedAt.Before(end) {
		return false
	}
	for _, id := range storyIDs {
		if d.StoryID == id {
			return true
		}
	}
	return false
}

func (f *fakeDonationRepo) SumCollectedCents(ctx context.Context, storyIDs []uint64, start, end time.Time) (int64, error) {
	var sum int64
	for _, d := range f.donations {
		if f.match(d, storyIDs, start, end) {
			sum += d.AmountCents
		}
	}
	return sum, nil
}

func (f *fakeDonationRepo) SumCollectedCentsByStory(ctx context.Context, storyIDs []uint64, start, end time.Time) (map[uint64]int64, error) {
	result := make(map[uint64]int64)
	for _, d := range f.donations {
		if f.match(d, storyIDs, start, end) {
			result[d.StoryID] += d.AmountCents
		}
	}
	return result, nil
}

func (f *fakeDonationRepo) GetCollectedTransactions(ctx context.Context, storyIDs []uint64, start, end time.Time, limit, offset int) ([]*model.DonationTransaction, error) {
	txs := make([]*model.DonationTransaction, 0)
	for _, d := range f.donations {
		if !f.match(d, storyIDs, start, end) {
			continue
		}
		story := f.stories[d.StoryID]
		txs = append(txs, &model.DonationTransaction{
			DonationID:  d.ID,
			DonorID:     d.DonorID,
			DonorName:   f.donorNames[d.DonorID],
			StoryTitle:  story.Title,
			StorySlug:   story.Slug,
			AmountCents: d.AmountCents,
			Message:     d.Message,
			CreatedAt:   d.CreatedAt,
		})
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})
	if offset >= len(txs) {
		return nil, nil
	}
	txs = txs[offset:]
	if len(txs) > limit {
		txs = txs[:limit]
	}
	return txs, nil
}

func (f *fakeDonationRepo) CountCollectedTransactions(ctx context.Context, storyIDs []uint64, start, end time.Time) (int64, error) {
	var count int64
	for _, d := range f.donations {
		if f.match(d, storyIDs, start, end) {
			count++
		}
	}
	return count, nil
}

func (f *fakeDonationRepo) UpdateStatusByPaymentRef(ctx context.Context, paymentRef string, status string) error {
	return nil
}

func newTestDashboardService(
	storyRepo *fakeStoryRepo,
	viewRepo *fakeViewRepo,
	chapterRepo *fakeChapterRepo,
	engagementRepo *fakeEngagementRepo,
	donationRepo *fakeDonationRepo,
	followRepo *fakeUserFollowRepo,
) DashboardService {
	viewSvc := NewViewService(viewRepo, chapterRepo)
	return NewDashboardService(storyRepo, chapterRepo, viewRepo, engagementRepo, donationRepo, followRepo, viewSvc)
}

func emptyDashboardService() DashboardService {
	return newTestDashboardService(
		&fakeStoryRepo{},
		&fakeViewRepo{},
		&fakeChapterRepo{},
		&fakeEngagementRepo{},
		&fakeDonationRepo{},
		&fakeUserFollowRepo{},
	)
}

func TestGetStatsZeroContent(t *testing.T) {
	svc := emptyDashboardService()

	stats, err := svc.GetStats(context.Background(), 42, TimeRange30Days)

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Zero(t, stats.TotalReads)
	assert.Zero(t, stats.TotalLikes)
	assert.Zero(t, stats.TotalComments)
	assert.Zero(t, stats.TotalFollowers)
	assert.Zero(t, stats.TotalEarnings)
	assert.Zero(t, stats.ReadsChange)
	assert.Zero(t, stats.LikesChange)
	assert.Zero(t, stats.CommentsChange)
	assert.Zero(t, stats.FollowersChange)
	assert.Zero(t, stats.EarningsChange)
}

func TestGetStats(t *testing.T) {
	now := time.Now()
	svc := newTestDashboardService(
		&fakeStoryRepo{stories: []*model.Story{{ID: 1, Title: "潮汐", Slug: "tides"}}},
		&fakeViewRepo{
			storyCounts:   map[uint64]int64{1: 3},
			chapterCounts: map[uint64]int64{10: 2},
		},
		&fakeChapterRepo{refs: []*model.ChapterRef{{ID: 10, StoryID: 1}}},
		&fakeEngagementRepo{
			likes:    map[uint64]int64{1: 4},
			comments: map[uint64]int64{1: 2},
		},
		&fakeDonationRepo{
			donations: []*model.Donation{
				{ID: 1, StoryID: 1, AmountCents: 1250, Status: "collected", CreatedAt: now.Add(-time.Hour)},
			},
		},
		&fakeUserFollowRepo{followers: 7},
	)

	stats, err := svc.GetStats(context.Background(), 42, TimeRange30Days)

	require.NoError(t, err)
	// 阅读量为作品级+章节级合并口径
	assert.Equal(t, int64(5), stats.TotalReads)
	assert.Equal(t, int64(4), stats.TotalLikes)
	assert.Equal(t, int64(2), stats.TotalComments)
	assert.Equal(t, int64(7), stats.TotalFollowers)
	assert.Equal(t, 12.50, stats.TotalEarnings)
	// 捐赠落在当前窗口、前置窗口为零
	assert.Equal(t, float64(100), stats.EarningsChange)
}

func TestGetTopStoriesSortsByEarnings(t *testing.T) {
	now := time.Now()
	stories := []*model.Story{
		{ID: 1, Title: "潮汐", Slug: "tides"},
		{ID: 2, Title: "灯塔", Slug: "lighthouse"},
		{ID: 3, Title: "孤岛", Slug: "island"},
		{ID: 4, Title: "远航", Slug: "voyage"},
	}
	svc := newTestDashboardService(
		&fakeStoryRepo{stories: stories},
		&fakeViewRepo{},
		&fakeChapterRepo{},
		&fakeEngagementRepo{},
		&fakeDonationRepo{
			donations: []*model.Donation{
				{ID: 1, StoryID: 1, AmountCents: 500, Status: "collected", CreatedAt: now.Add(-time.Hour)},
				{ID: 2, StoryID: 2, AmountCents: 2000, Status: "collected", CreatedAt: now.Add(-time.Hour)},
				{ID: 3, StoryID: 3, AmountCents: 1000, Status: "collected", CreatedAt: now.Add(-time.Hour)},
				{ID: 4, StoryID: 4, AmountCents: 100, Status: "pending", CreatedAt: now.Add(-time.Hour)},
			},
		},
		&fakeUserFollowRepo{},
	)

	items, err := svc.GetTopStories(context.Background(), 42, 3, SortByEarnings, TimeRange30Days)

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, uint64(2), items[0].StoryID)
	assert.Equal(t, uint64(3), items[1].StoryID)
	assert.Equal(t, uint64(1), items[2].StoryID)
	assert.Equal(t, 20.00, items[0].Earnings)
}

func TestGetTopStoriesFewerThanLimit(t *testing.T) {
	svc := newTestDashboardService(
		&fakeStoryRepo{stories: []*model.Story{{ID: 1, Title: "潮汐", Slug: "tides"}}},
		&fakeViewRepo{storyCounts: map[uint64]int64{1: 9}},
		&fakeChapterRepo{},
		&fakeEngagementRepo{},
		&fakeDonationRepo{},
		&fakeUserFollowRepo{},
	)

	items, err := svc.GetTopStories(context.Background(), 42, 3, SortByReads, TimeRange7Days)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(9), items[0].Reads)
}

func TestChartsAlwaysSevenMonths(t *testing.T) {
	svc := emptyDashboardService()
	ctx := context.Background()

	for _, rng := range []TimeRange{TimeRange7Days, TimeRange30Days, TimeRangeYear, TimeRangeAll} {
		reads, err := svc.GetReadsChartData(ctx, 42, rng)
		require.NoError(t, err)
		require.Len(t, reads, 7)

		engagement, err := svc.GetEngagementChartData(ctx, 42, rng)
		require.NoError(t, err)
		require.Len(t, engagement, 7)

		earnings, err := svc.GetEarningsChartData(ctx, 42, rng)
		require.NoError(t, err)
		require.Len(t, earnings, 7)

		// 月份标签严格递增
		for i := 1; i < len(reads); i++ {
			assert.Less(t, reads[i-1].Month, reads[i].Month)
			assert.Zero(t, reads[i].Value)
		}
	}
}

func TestGetOverviewZeroContent(t *testing.T) {
	svc := emptyDashboardService()

	overview, err := svc.GetOverview(context.Background(), 42, TimeRange30Days)

	require.NoError(t, err)
	require.NotNil(t, overview.Stats)
	assert.Zero(t, overview.Stats.TotalReads)
	assert.Empty(t, overview.TopStories)
	assert.Len(t, overview.ReadsChart, 7)
	assert.Len(t, overview.EngagementChart, 7)
}
