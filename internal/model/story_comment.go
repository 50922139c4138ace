package model

import (
	"time"
)

type StoryComment struct {
	ID        uint64    `gorm:"primaryKey"`
	StoryID   uint64    `gorm:"not null;index:idx_story_id" json:"storyId"`
	UserID    uint64    `gorm:"not null" json:"userId"`
	Content   string    `gorm:"type:varchar(1000);not null" json:"content"`
	RootID    uint64    `gorm:"not null;default:0;index:idx_root_id" json:"rootId"` // 0表示这是一级评论
	ParentID  uint64    `gorm:"not null;default:0" json:"parentId"`                 // 0表示直接评论作品
	IsDeleted bool      `gorm:"type:tinyint(1);not null;default:0" json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (StoryComment) TableName() string {
	return "story_comments"
}
