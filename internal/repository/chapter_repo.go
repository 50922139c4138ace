package repository

import (
	"Inkstone/internal/model"
	"context"

	"gorm.io/gorm"
)

type ChapterRepo interface {
	// GetChapterRefsByStoryIDs 一次取回 ID 集合下的全部章节映射，禁止逐篇查询
	GetChapterRefsByStoryIDs(ctx context.Context, storyIDs []uint64) ([]*model.ChapterRef, error)
}

type chapterRepoImpl struct {
	db *gorm.DB
}

func NewChapterRepo(db *gorm.DB) ChapterRepo {
	return &chapterRepoImpl{db: db}
}

func (r *chapterRepoImpl) GetChapterRefsByStoryIDs(ctx context.Context, storyIDs []uint64) ([]*model.ChapterRef, error) {
	if len(storyIDs) == 0 {
		return nil, nil
	}
	refs := make([]*model.ChapterRef, 0)
	err := r.db.WithContext(ctx).Model(&model.Chapter{}).
		Select("id, story_id").
		Where("story_id IN ? AND is_deleted = ?", storyIDs, false).
		Scan(&refs).Error
	return refs, err
}
