package model

import (
	"time"
)

// Donation 金额以最小货币单位（分）存储，只在输出边界换算为元
type Donation struct {
	ID          uint64    `gorm:"primaryKey"`
	StoryID     uint64    `gorm:"not null;index:idx_story_id" json:"storyId"`
	DonorID     uint64    `gorm:"not null;default:0" json:"donorId"` // 0表示匿名捐赠
	AmountCents int64     `gorm:"not null" json:"amountCents"`
	Status      string    `gorm:"type:varchar(16);not null;default:'pending';index:idx_status" json:"status"`
	Message     string    `gorm:"type:varchar(500)" json:"message"`
	PaymentRef  string    `gorm:"type:varchar(128)" json:"paymentRef"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Donation) TableName() string {
	return "donations"
}

// DonationTransaction 捐赠流水联查结果（含捐赠人与作品信息）
type DonationTransaction struct {
	DonationID  uint64
	DonorID     uint64
	DonorName   string
	StoryTitle  string
	StorySlug   string
	AmountCents int64
	Message     string
	CreatedAt   time.Time
}
