package model

import (
	"time"
)

type ChapterView struct {
	ID        uint64    `gorm:"primaryKey"`
	ChapterID uint64    `gorm:"not null;index:idx_chapter_id" json:"chapterId"`
	UserID    uint64    `gorm:"not null" json:"userId"`
	ViewedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_viewed_at" json:"viewedAt"`
}

func (ChapterView) TableName() string {
	return "chapter_views"
}
