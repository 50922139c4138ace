package repository

import (
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"context"
	"time"

	"gorm.io/gorm"
)

type DonationRepo interface {
	// SumCollectedCents 求和只覆盖 collected 状态，pending/failed 不计入收益
	SumCollectedCents(ctx context.Context, storyIDs []uint64, start, end time.Time) (int64, error)
	SumCollectedCentsByStory(ctx context.Context, storyIDs []uint64, start, end time.Time) (map[uint64]int64, error)
	GetCollectedTransactions(ctx context.Context, storyIDs []uint64, start, end time.Time, limit, offset int) ([]*model.DonationTransaction, error)
	CountCollectedTransactions(ctx context.Context, storyIDs []uint64, start, end time.Time) (int64, error)
	UpdateStatusByPaymentRef(ctx context.Context, paymentRef string, status string) error
}

type donationRepoImpl struct {
	db *gorm.DB
}

func NewDonationRepo(db *gorm.DB) DonationRepo {
	return &donationRepoImpl{db: db}
}

type idSumRow struct {
	ID  uint64
	Sum int64
}

func (r *donationRepoImpl) SumCollectedCents(ctx context.Context, storyIDs []uint64, start, end time.Time) (int64, error) {
	if len(storyIDs) == 0 {
		return 0, nil
	}
	var sum int64
	err := r.db.WithContext(ctx).Model(&model.Donation{}).
		Select("COALESCE(SUM(amount_cents), 0)").
		Where("story_id IN ? AND status = ?", storyIDs, consts.DonationStatusCollected).
		Where("created_at >= ? AND created_at < ?", start, end).
		Scan(&sum).Error
	return sum, err
}

func (r *donationRepoImpl) SumCollectedCentsByStory(ctx context.Context, storyIDs []uint64, start, end time.Time) (map[uint64]int64, error) {
	if len(storyIDs) == 0 {
		return map[uint64]int64{}, nil
	}
	rows := make([]*idSumRow, 0, len(storyIDs))
	err := r.db.WithContext(ctx).Model(&model.Donation{}).
		Select("story_id AS id, COALESCE(SUM(amount_cents), 0) AS sum").
		Where("story_id IN ? AND status = ?", storyIDs, consts.DonationStatusCollected).
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("story_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make(map[uint64]int64, len(rows))
	for _, row := range rows {
		result[row.ID] = row.Sum
	}
	return result, nil
}

// GetCollectedTransactions 窗口内捐赠流水分页，按时间倒序，联查捐赠人昵称与作品信息
func (r *donationRepoImpl) GetCollectedTransactions(ctx context.Context, storyIDs []uint64, start, end time.Time, limit, offset int) ([]*model.DonationTransaction, error) {
	if len(storyIDs) == 0 {
		return nil, nil
	}
	txs := make([]*model.DonationTransaction, 0, limit)
	err := r.db.WithContext(ctx).Model(&model.Donation{}).
		Select(`donations.id AS donation_id,
			donations.donor_id AS donor_id,
			COALESCE(users.nickname, '') AS donor_name,
			stories.title AS story_title,
			stories.slug AS story_slug,
			donations.amount_cents AS amount_cents,
			donations.message AS message,
			donations.created_at AS created_at`).
		Joins("LEFT JOIN users ON users.id = donations.donor_id").
		Joins("JOIN stories ON stories.id = donations.story_id").
		Where("donations.story_id IN ? AND donations.status = ?", storyIDs, consts.DonationStatusCollected).
		Where("donations.created_at >= ? AND donations.created_at < ?", start, end).
		Order("donations.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&txs).Error
	return txs, err
}

func (r *donationRepoImpl) CountCollectedTransactions(ctx context.Context, storyIDs []uint64, start, end time.Time) (int64, error) {
	if len(storyIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Donation{}).
		Where("story_id IN ? AND status = ?", storyIDs, consts.DonationStatusCollected).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *donationRepoImpl) UpdateStatusByPaymentRef(ctx context.Context, paymentRef string, status string) error {
	return r.db.WithContext(ctx).Model(&model.Donation{}).
		Where("payment_ref = ?", paymentRef).
		Update("status", status).Error
}
