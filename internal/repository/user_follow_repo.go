package repository

import (
	"Inkstone/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type UserFollowRepo interface {
	GetUserFollowerCount(ctx context.Context, userID uint64) (int64, error)
	CountFollowersInRange(ctx context.Context, userID uint64, start, end time.Time) (int64, error)
}

type userFollowRepoImpl struct {
	db *gorm.DB
}

func NewUserFollowRepo(db *gorm.DB) UserFollowRepo {
	return &userFollowRepoImpl{db: db}
}

func (r *userFollowRepoImpl) GetUserFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserFollow{}).
		Where("following_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *userFollowRepoImpl) CountFollowersInRange(ctx context.Context, userID uint64, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserFollow{}).
		Where("following_id = ?", userID).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return count, err
}
