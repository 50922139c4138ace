package model

import (
	"time"
)

type Chapter struct {
	ID         uint64    `gorm:"primaryKey"`
	StoryID    uint64    `gorm:"not null;index:idx_story_id" json:"storyId"`
	Title      string    `gorm:"type:varchar(255)" json:"title"`
	ChapterNum int       `gorm:"not null;default:1" json:"chapterNum"`
	WordCount  int       `gorm:"not null;default:0" json:"wordCount"`
	Status     int8      `gorm:"not null;default:0" json:"status"` // 0:草稿, 1:已发布
	IsDeleted  bool      `gorm:"type:tinyint(1);not null;default:0" json:"isDeleted"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Chapter) TableName() string {
	return "chapters"
}

// ChapterRef 章节到作品的映射，用于合并两路阅读事件
type ChapterRef struct {
	ID      uint64
	StoryID uint64
}
