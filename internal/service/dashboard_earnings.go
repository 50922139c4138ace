package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/pkg/util"
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

func (s *dashboardServiceImpl) GetEarningsData(ctx context.Context, userID uint64, rng TimeRange, page, pageSize int) (*dto.EarningsReportDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	stories, err := s.storyRepo.GetStoriesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	storyIDs := make([]uint64, 0, len(stories))
	for _, story := range stories {
		storyIDs = append(storyIDs, story.ID)
	}

	now := time.Now()
	w := ResolveWindow(rng, now)
	monthStart := util.GetMonthStart(now)
	lastMonthStart := monthStart.AddDate(0, -1, 0)

	res := &dto.EarningsReportDTO{}

	var (
		totalCents     int64
		thisMonthCents int64
		lastMonthCents int64
		breakdownSums  map[uint64]int64
		transactions   []*model.DonationTransaction
		totalItems     int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalCents, err = s.donationRepo.SumCollectedCents(gctx, storyIDs, allTimeAnchor, now)
		return err
	})
	g.Go(func() error {
		var err error
		thisMonthCents, err = s.donationRepo.SumCollectedCents(gctx, storyIDs, monthStart, now)
		return err
	})
	g.Go(func() error {
		var err error
		lastMonthCents, err = s.donationRepo.SumCollectedCents(gctx, storyIDs, lastMonthStart, monthStart)
		return err
	})
	g.Go(func() error {
		var err error
		breakdownSums, err = s.donationRepo.SumCollectedCentsByStory(gctx, storyIDs, w.Start, w.End)
		return err
	})
	g.Go(func() error {
		var err error
		res.Chart, err = s.GetEarningsChartData(gctx, userID, rng)
		return err
	})
	g.Go(func() error {
		// 流水列表与各作品分项使用同一窗口，生涯/月度汇总不受影响
		var err error
		transactions, err = s.donationRepo.GetCollectedTransactions(gctx, storyIDs, w.Start, w.End, pageSize, (page-1)*pageSize)
		if err != nil {
			return err
		}
		totalItems, err = s.donationRepo.CountCollectedTransactions(gctx, storyIDs, w.Start, w.End)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.TotalEarnings = centsToCurrency(totalCents)
	res.ThisMonthEarnings = centsToCurrency(thisMonthCents)
	res.LastMonthEarnings = centsToCurrency(lastMonthCents)
	res.MonthlyChange = PercentageChange(thisMonthCents, lastMonthCents)

	res.Breakdown = make([]*dto.StoryEarningsDTO, 0, len(stories))
	for _, story := range stories {
		res.Breakdown = append(res.Breakdown, &dto.StoryEarningsDTO{
			StoryID:  story.ID,
			Title:    story.Title,
			Slug:     story.Slug,
			Earnings: centsToCurrency(breakdownSums[story.ID]),
		})
	}
	sort.SliceStable(res.Breakdown, func(i, j int) bool {
		return res.Breakdown[i].Earnings > res.Breakdown[j].Earnings
	})

	res.Transactions = make([]*dto.TransactionDTO, 0, len(transactions))
	for _, tx := range transactions {
		donorName := tx.DonorName
		if tx.DonorID == 0 || donorName == "" {
			donorName = consts.AnonymousDonorName
		}
		res.Transactions = append(res.Transactions, &dto.TransactionDTO{
			DonorName:  donorName,
			StoryTitle: tx.StoryTitle,
			StorySlug:  tx.StorySlug,
			Amount:     centsToCurrency(tx.AmountCents),
			Message:    tx.Message,
			CreatedAt:  tx.CreatedAt,
		})
	}

	totalPages := int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	res.Pagination = &dto.PaginationDTO{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}

	return res, nil
}
