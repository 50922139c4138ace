package repository

import (
	"Inkstone/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// EngagementRepo 点赞与评论的窗口化统计
type EngagementRepo interface {
	CountLikes(ctx context.Context, storyIDs []uint64, start, end time.Time) (int64, error)
	CountComments(ctx context.Context, storyIDs []uint64, start, end time.Time) (int64, error)
	CountLikesByStory(ctx context.Context, storyIDs []uint64, start, end time.Time) (map[uint64]int64, error)
	CountCommentsByStory(ctx context.Context, storyIDs []uint64, start, end time.Time) (map[uint64]int64, error)
}

type engagementRepoImpl struct {
	db *gorm.DB
}

func NewEngagementRepo(db *gorm.DB) EngagementRepo {
	return &engagementRepoImpl{db: db}
}

func (r *engagementRepoImpl) CountLikes(ctx context.Context, storyIDs []uint64, start, end time.Time) (int64, error) {
	if len(storyIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&model.StoryLike{}).
		Where("story_id IN ?", storyIDs).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *engagementRepoImpl) CountComments(ctx context.Context, storyIDs []uint64, start, end time.Time) (int64, error) {
	if len(storyIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&model.StoryComment{}).
		Where("story_id IN ? AND is_deleted = ?", storyIDs, false).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *engagementRepoImpl) CountLikesByStory(ctx context.Context, storyIDs []uint64, start, end time.Time) (map[uint64]int64, error) {
	if len(storyIDs) == 0 {
		return map[uint64]int64{}, nil
	}
	rows := make([]*idCountRow, 0, len(storyIDs))
	err := r.db.WithContext(ctx).Model(&model.StoryLike{}).
		Select("story_id AS id, COUNT(*) AS cnt").
		Where("story_id IN ?", storyIDs).
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("story_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

func (r *engagementRepoImpl) CountCommentsByStory(ctx context.Context, storyIDs []uint64, start, end time.Time) (map[uint64]int64, error) {
	if len(storyIDs) == 0 {
		return map[uint64]int64{}, nil
	}
	rows := make([]*idCountRow, 0, len(storyIDs))
	err := r.db.WithContext(ctx).Model(&model.StoryComment{}).
		Select("story_id AS id, COUNT(*) AS cnt").
		Where("story_id IN ? AND is_deleted = ?", storyIDs, false).
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("story_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}
