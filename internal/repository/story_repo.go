package repository

import (
	"Inkstone/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type StoryRepo interface {
	GetStory(ctx context.Context, storyID uint64) (*model.Story, error)
	GetStoryIDsByUserID(ctx context.Context, userID uint64) ([]uint64, error)
	GetStoriesByUserID(ctx context.Context, userID uint64) ([]*model.Story, error)
}

type storyRepoImpl struct {
	db *gorm.DB
}

func NewStoryRepo(db *gorm.DB) StoryRepo {
	return &storyRepoImpl{db: db}
}

func (r *storyRepoImpl) GetStory(ctx context.Context, storyID uint64) (*model.Story, error) {
	var story model.Story
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", storyID, false).
		First(&story).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &story, nil
}

// GetStoryIDsByUserID 获取用户全部作品 ID，仪表盘聚合的基础集合
func (r *storyRepoImpl) GetStoryIDsByUserID(ctx context.Context, userID uint64) ([]uint64, error) {
	var storyIDs []uint64
	err := r.db.WithContext(ctx).Model(&model.Story{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Pluck("id", &storyIDs).Error
	return storyIDs, err
}

func (r *storyRepoImpl) GetStoriesByUserID(ctx context.Context, userID uint64) ([]*model.Story, error) {
	stories := make([]*model.Story, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at DESC").
		Find(&stories).Error
	return stories, err
}
