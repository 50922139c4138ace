package model

import (
	"time"
)

// StoryMetric 创作者每日快照，由定时任务聚合写入
type StoryMetric struct {
	ID             uint64    `gorm:"primaryKey"`
	UserID         uint64    `gorm:"not null;uniqueIndex:idx_user_date" json:"userId"`
	MetricDate     time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_date" json:"metricDate"`
	TotalReads     int64     `gorm:"not null;default:0" json:"totalReads"`
	TotalLikes     int64     `gorm:"not null;default:0" json:"totalLikes"`
	TotalComments  int64     `gorm:"not null;default:0" json:"totalComments"`
	TotalFollowers int64     `gorm:"not null;default:0" json:"totalFollowers"`
	EarningsCents  int64     `gorm:"not null;default:0" json:"earningsCents"`
}

func (StoryMetric) TableName() string {
	return "story_metrics"
}
