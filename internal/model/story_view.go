package model

import (
	"time"
)

type StoryView struct {
	ID       uint64    `gorm:"primaryKey"`
	StoryID  uint64    `gorm:"not null;index:idx_story_id" json:"storyId"`
	UserID   uint64    `gorm:"not null" json:"userId"`
	ViewedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_viewed_at" json:"viewedAt"`
}

func (StoryView) TableName() string {
	return "story_views"
}
