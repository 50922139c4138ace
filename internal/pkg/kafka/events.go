package kafka

import (
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// StoryViewEvent 作品级阅读事件，由前端埋点服务投递
type StoryViewEvent struct {
	StoryID  uint64    `json:"story_id"`
	AuthorID uint64    `json:"author_id"`
	UserID   uint64    `json:"user_id"`
	ViewedAt time.Time `json:"viewed_at"`
}

// ChapterViewEvent 章节级阅读事件
type ChapterViewEvent struct {
	ChapterID uint64    `json:"chapter_id"`
	StoryID   uint64    `json:"story_id"`
	AuthorID  uint64    `json:"author_id"`
	UserID    uint64    `json:"user_id"`
	ViewedAt  time.Time `json:"viewed_at"`
}

// DonationStatusEvent 支付网关回调产生的捐赠状态变更
type DonationStatusEvent struct {
	PaymentRef string `json:"payment_ref"`
	StoryID    uint64 `json:"story_id"`
	AuthorID   uint64 `json:"author_id"`
	Status     string `json:"status"`
}

func decodeEvent(msg *sarama.ConsumerMessage, v interface{}) error {
	return json.Unmarshal(msg.Value, v)
}
