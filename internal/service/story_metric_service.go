package service

import (
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/util"
	"Inkstone/internal/repository"
	"context"
	"time"
)

type StoryMetricService interface {
	// SyncCreatorDailyMetric 聚合该创作者全部作品的当前总量并写入每日快照
	SyncCreatorDailyMetric(ctx context.Context, userID uint64) error
}

type storyMetricServiceImpl struct {
	storyMetricRepo repository.StoryMetricRepo
	storyRepo       repository.StoryRepo
	engagementRepo  repository.EngagementRepo
	donationRepo    repository.DonationRepo
	userFollowRepo  repository.UserFollowRepo
	viewSvc         ViewService
}

func NewStoryMetricService(
	storyMetricRepo repository.StoryMetricRepo,
	storyRepo repository.StoryRepo,
	engagementRepo repository.EngagementRepo,
	donationRepo repository.DonationRepo,
	userFollowRepo repository.UserFollowRepo,
	viewSvc ViewService,
) StoryMetricService {
	return &storyMetricServiceImpl{
		storyMetricRepo: storyMetricRepo,
		storyRepo:       storyRepo,
		engagementRepo:  engagementRepo,
		donationRepo:    donationRepo,
		userFollowRepo:  userFollowRepo,
		viewSvc:         viewSvc,
	}
}

func (s *storyMetricServiceImpl) SyncCreatorDailyMetric(ctx context.Context, userID uint64) error {
	storyIDs, err := s.storyRepo.GetStoryIDsByUserID(ctx, userID)
	if err != nil {
		return err
	}

	now := time.Now()

	reads, err := s.viewSvc.GetBatchCombinedViewCounts(ctx, storyIDs, TimeRangeAll, nil, nil)
	if err != nil {
		return err
	}
	likes, err := s.engagementRepo.CountLikes(ctx, storyIDs, allTimeAnchor, now)
	if err != nil {
		return err
	}
	comments, err := s.engagementRepo.CountComments(ctx, storyIDs, allTimeAnchor, now)
	if err != nil {
		return err
	}
	followers, err := s.userFollowRepo.GetUserFollowerCount(ctx, userID)
	if err != nil {
		return err
	}
	earnings, err := s.donationRepo.SumCollectedCents(ctx, storyIDs, allTimeAnchor, now)
	if err != nil {
		return err
	}

	metric := &model.StoryMetric{
		UserID:         userID,
		MetricDate:     util.GetMidnight(now),
		TotalReads:     sumCounts(reads),
		TotalLikes:     likes,
		TotalComments:  comments,
		TotalFollowers: followers,
		EarningsCents:  earnings,
	}

	return s.storyMetricRepo.SaveOrUpdateMetric(ctx, metric)
}
