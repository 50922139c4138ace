package model

import (
	"time"
)

type StoryLike struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	StoryID   uint64    `gorm:"primaryKey;index:idx_story_id" json:"storyId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (StoryLike) TableName() string {
	return "story_likes"
}
