package model

import (
	"time"
)

type Story struct {
	ID            uint64    `gorm:"primaryKey"`
	UserID        uint64    `gorm:"not null;index:idx_user_id" json:"userId"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	Slug          string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_slug" json:"slug"`
	Description   string    `gorm:"type:text" json:"description"`
	GenreName     string    `gorm:"type:varchar(64)" json:"genreName"`
	CoverURL      string    `gorm:"type:varchar(255)" json:"coverUrl"`
	Status        int8      `gorm:"not null;default:0" json:"status"` // 0:草稿, 1:已发布, 2:下架
	IsDeleted     bool      `gorm:"type:tinyint(1);not null;default:0" json:"isDeleted"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// 关联关系
	User     User      `gorm:"foreignKey:UserID;references:ID"`
	Chapters []Chapter `gorm:"foreignKey:StoryID;references:ID"`
}

func (Story) TableName() string {
	return "stories"
}
