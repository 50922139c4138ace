package repository

import (
	"Inkstone/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StoryMetricRepo interface {
	SaveOrUpdateMetric(ctx context.Context, metric *model.StoryMetric) error
}

type storyMetricRepoImpl struct {
	db *gorm.DB
}

func NewStoryMetricRepo(db *gorm.DB) StoryMetricRepo {
	return &storyMetricRepoImpl{db: db}
}

// SaveOrUpdateMetric 采用 Upsert 逻辑。如果 user_id + metric_date 已存在，则更新各项数值
func (r *storyMetricRepoImpl) SaveOrUpdateMetric(ctx context.Context, metric *model.StoryMetric) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "metric_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_reads",
			"total_likes",
			"total_comments",
			"total_followers",
			"earnings_cents",
		}),
	}).Create(metric).Error
}
