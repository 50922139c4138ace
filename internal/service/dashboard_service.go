package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/repository"
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

// chartMonths 月度图表固定返回尾部 7 个自然月，与请求窗口无关
const chartMonths = 7

type DashboardService interface {
	// GetStats 获取总量指标与环比变化
	GetStats(ctx context.Context, userID uint64, rng TimeRange) (*dto.DashboardStatsDTO, error)
	// GetTopStories 获取窗口内按指定维度排序的作品榜单
	GetTopStories(ctx context.Context, userID uint64, limit int, sortBy SortBy, rng TimeRange) ([]*dto.TopStoryDTO, error)
	// GetReadsChartData 阅读量月度图表，固定 7 个自然月
	GetReadsChartData(ctx context.Context, userID uint64, rng TimeRange) ([]*dto.ChartPointDTO, error)
	// GetEngagementChartData 互动月度图表，固定 7 个自然月
	GetEngagementChartData(ctx context.Context, userID uint64, rng TimeRange) ([]*dto.EngagementPointDTO, error)
	// GetEarningsChartData 收益月度图表，固定 7 个自然月
	GetEarningsChartData(ctx context.Context, userID uint64, rng TimeRange) ([]*dto.EarningsPointDTO, error)
	// GetEarningsData 收益页完整载荷，含分页流水
	GetEarningsData(ctx context.Context, userID uint64, rng TimeRange, page, pageSize int) (*dto.EarningsReportDTO, error)
	// GetOverview 概览页组合载荷
	GetOverview(ctx context.Context, userID uint64, rng TimeRange) (*dto.DashboardOverviewDTO, error)
}

type dashboardServiceImpl struct {
	storyRepo      repository.StoryRepo
	chapterRepo    repository.ChapterRepo
	viewRepo       repository.ViewRepo
	engagementRepo repository.EngagementRepo
	donationRepo   repository.DonationRepo
	userFollowRepo repository.UserFollowRepo
	viewSvc        ViewService
}

func NewDashboardService(
	storyRepo repository.StoryRepo,
	chapterRepo repository.ChapterRepo,
	viewRepo repository.ViewRepo,
	engagementRepo repository.EngagementRepo,
	donationRepo repository.DonationRepo,
	userFollowRepo repository.UserFollowRepo,
	viewSvc ViewService,
) DashboardService {
	return &dashboardServiceImpl{
		storyRepo:      storyRepo,
		chapterRepo:    chapterRepo,
		viewRepo:       viewRepo,
		engagementRepo: engagementRepo,
		donationRepo:   donationRepo,
		userFollowRepo: userFollowRepo,
		viewSvc:        viewSvc,
	}
}

func (s *dashboardServiceImpl) GetStats(ctx context.Context, userID uint64, rng TimeRange) (*dto.DashboardStatsDTO, error) {
	storyIDs, err := s.storyRepo.GetStoryIDsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	w := ResolveWindow(rng, now)
	res := &dto.DashboardStatsDTO{}

	// 五路指标相互独立，并发取数后合并
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// 阅读量全程使用作品+章节合并口径，总量与环比保持同一语义
		totals, err := s.viewSvc.GetBatchCombinedViewCounts(gctx, storyIDs, TimeRangeAll, nil, nil)
		if err != nil {
			return err
		}
		cur, err := s.viewSvc.GetBatchCombinedViewCounts(gctx, storyIDs, TimeRangeCustom, &w.Start, &w.End)
		if err != nil {
			return err
		}
		prev, err := s.viewSvc.GetBatchCombinedViewCounts(gctx, storyIDs, TimeRangeCustom, &w.PrevStart, &w.PrevEnd)
		if err != nil {
			return err
		}
		res.TotalReads = sumCounts(totals)
		res.ReadsChange = PercentageChange(sumCounts(cur), sumCounts(prev))
		return nil
	})

	g.Go(func() error {
		total, err := s.engagementRepo.CountLikes(gctx, storyIDs, allTimeAnchor, now)
		if err != nil {
			return err
		}
		cur, err := s.engagementRepo.CountLikes(gctx, storyIDs, w.Start, w.End)
		if err != nil {
			return err
		}
		prev, err := s.engagementRepo.CountLikes(gctx, storyIDs, w.PrevStart, w.PrevEnd)
		if err != nil {
			return err
		}
		res.TotalLikes = total
		res.LikesChange = PercentageChange(cur, prev)
		return nil
	})

	g.Go(func() error {
		total, err := s.engagementRepo.CountComments(gctx, storyIDs, allTimeAnchor, now)
		if err != nil {
			return err
		}
		cur, err := s.engagementRepo.CountComments(gctx, storyIDs, w.Start, w.End)
		if err != nil {
			return err
		}
		prev, err := s.engagementRepo.CountComments(gctx, storyIDs, w.PrevStart, w.PrevEnd)
		if err != nil {
			return err
		}
		res.TotalComments = total
		res.CommentsChange = PercentageChange(cur, prev)
		return nil
	})

	g.Go(func() error {
		total, err := s.userFollowRepo.GetUserFollowerCount(gctx, userID)
		if err != nil {
			return err
		}
		cur, err := s.userFollowRepo.CountFollowersInRange(gctx, userID, w.Start, w.End)
		if err != nil {
			return err
		}
		prev, err := s.userFollowRepo.CountFollowersInRange(gctx, userID, w.PrevStart, w.PrevEnd)
		if err != nil {
			return err
		}
		res.TotalFollowers = total
		res.FollowersChange = PercentageChange(cur, prev)
		return nil
	})

	g.Go(func() error {
		total, err := s.donationRepo.SumCollectedCents(gctx, storyIDs, allTimeAnchor, now)
		if err != nil {
			return err
		}
		cur, err := s.donationRepo.SumCollectedCents(gctx, storyIDs, w.Start, w.End)
		if err != nil {
			return err
		}
		prev, err := s.donationRepo.SumCollectedCents(gctx, storyIDs, w.PrevStart, w.PrevEnd)
		if err != nil {
			return err
		}
		res.TotalEarnings = centsToCurrency(total)
		res.EarningsChange = PercentageChange(cur, prev)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *dashboardServiceImpl) GetTopStories(ctx context.Context, userID uint64, limit int, sortBy SortBy, rng TimeRange) ([]*dto.TopStoryDTO, error) {
	if limit <= 0 {
		limit = 5
	}

	stories, err := s.storyRepo.GetStoriesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	storyIDs := make([]uint64, 0, len(stories))
	for _, story := range stories {
		storyIDs = append(storyIDs, story.ID)
	}

	w := ResolveWindow(rng, time.Now())

	var (
		reads    map[uint64]int64
		likes    map[uint64]int64
		comments map[uint64]int64
		earnings map[uint64]int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reads, err = s.viewSvc.GetBatchCombinedViewCounts(gctx, storyIDs, TimeRangeCustom, &w.Start, &w.End)
		return err
	})
	g.Go(func() error {
		var err error
		likes, err = s.engagementRepo.CountLikesByStory(gctx, storyIDs, w.Start, w.End)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = s.engagementRepo.CountCommentsByStory(gctx, storyIDs, w.Start, w.End)
		return err
	})
	g.Go(func() error {
		var err error
		earnings, err = s.donationRepo.SumCollectedCentsByStory(gctx, storyIDs, w.Start, w.End)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]*dto.TopStoryDTO, 0, len(stories))
	for _, story := range stories {
		items = append(items, &dto.TopStoryDTO{
			StoryID:  story.ID,
			Title:    story.Title,
			Slug:     story.Slug,
			CoverURL: story.CoverURL,
			Reads:    reads[story.ID],
			Likes:    likes[story.ID],
			Comments: comments[story.ID],
			Earnings: centsToCurrency(earnings[story.ID]),
		})
	}

	// 稳定排序，同分保持底层查询顺序
	sort.SliceStable(items, func(i, j int) bool {
		switch sortBy {
		case SortByLikes:
			return items[i].Likes > items[j].Likes
		case SortByComments:
			return items[i].Comments > items[j].Comments
		case SortByEarnings:
			return items[i].Earnings > items[j].Earnings
		default:
			return items[i].Reads > items[j].Reads
		}
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// GetReadsChartData 的 rng 参数仅为接口对齐保留，图表跨度固定为尾部 7 个自然月
func (s *dashboardServiceImpl) GetReadsChartData(ctx context.Context, userID uint64, rng TimeRange) ([]*dto.ChartPointDTO, error) {
	storyIDs, err := s.storyRepo.GetStoryIDsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	refs, err := s.chapterRepo.GetChapterRefsByStoryIDs(ctx, storyIDs)
	if err != nil {
		return nil, err
	}
	chapterIDs := make([]uint64, 0, len(refs))
	for _, ref := range refs {
		chapterIDs = append(chapterIDs, ref.ID)
	}

	buckets := MonthBuckets(time.Now(), chartMonths)
	points := make([]*dto.ChartPointDTO, len(buckets))

	// 各月份相互独立，并发取数
	g, gctx := errgroup.WithContext(ctx)
	for i, bucket := range buckets {
		g.Go(func() error {
			storyViews, err := s.viewRepo.CountStoryViews(gctx, storyIDs, bucket.Start, bucket.End)
			if err != nil {
				return err
			}
			chapterViews, err := s.viewRepo.CountChapterViews(gctx, chapterIDs, bucket.Start, bucket.End)
			if err != nil {
				return err
			}
			points[i] = &dto.ChartPointDTO{
				Month: bucket.Label,
				Value: storyViews + chapterViews,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

// GetEngagementChartData 的 rng 参数仅为接口对齐保留
func (s *dashboardServiceImpl) GetEngagementChartData(ctx context.Context, userID uint64, rng TimeRange) ([]*dto.EngagementPointDTO, error) {
	storyIDs, err := s.storyRepo.GetStoryIDsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	buckets := MonthBuckets(time.Now(), chartMonths)
	points := make([]*dto.EngagementPointDTO, len(buckets))

	g, gctx := errgroup.WithContext(ctx)
	for i, bucket := range buckets {
		g.Go(func() error {
			likes, err := s.engagementRepo.CountLikes(gctx, storyIDs, bucket.Start, bucket.End)
			if err != nil {
				return err
			}
			comments, err := s.engagementRepo.CountComments(gctx, storyIDs, bucket.Start, bucket.End)
			if err != nil {
				return err
			}
			points[i] = &dto.EngagementPointDTO{
				Month:    bucket.Label,
				Likes:    likes,
				Comments: comments,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

// GetEarningsChartData 的 rng 参数仅为接口对齐保留。金额只在此处换算为元
func (s *dashboardServiceImpl) GetEarningsChartData(ctx context.Context, userID uint64, rng TimeRange) ([]*dto.EarningsPointDTO, error) {
	storyIDs, err := s.storyRepo.GetStoryIDsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	buckets := MonthBuckets(time.Now(), chartMonths)
	points := make([]*dto.EarningsPointDTO, len(buckets))

	g, gctx := errgroup.WithContext(ctx)
	for i, bucket := range buckets {
		g.Go(func() error {
			cents, err := s.donationRepo.SumCollectedCents(gctx, storyIDs, bucket.Start, bucket.End)
			if err != nil {
				return err
			}
			points[i] = &dto.EarningsPointDTO{
				Month:  bucket.Label,
				Amount: centsToCurrency(cents),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

// GetOverview 纯组合，不做额外计算
func (s *dashboardServiceImpl) GetOverview(ctx context.Context, userID uint64, rng TimeRange) (*dto.DashboardOverviewDTO, error) {
	res := &dto.DashboardOverviewDTO{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		res.Stats, err = s.GetStats(gctx, userID, rng)
		return err
	})
	g.Go(func() error {
		var err error
		res.TopStories, err = s.GetTopStories(gctx, userID, 5, SortByReads, rng)
		return err
	})
	g.Go(func() error {
		var err error
		res.ReadsChart, err = s.GetReadsChartData(gctx, userID, rng)
		return err
	})
	g.Go(func() error {
		var err error
		res.EngagementChart, err = s.GetEngagementChartData(gctx, userID, rng)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func sumCounts(counts map[uint64]int64) int64 {
	var sum int64
	for _, c := range counts {
		sum += c
	}
	return sum
}

// centsToCurrency 分转元，聚合全程保持整数，只在输出边界做一次除法
func centsToCurrency(cents int64) float64 {
	return float64(cents) / 100
}
