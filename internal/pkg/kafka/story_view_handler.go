package kafka

import (
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/pkg/redis"
	"Inkstone/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
)

type StoryViewsHandler struct {
	viewRepo repository.ViewRepo
}

func NewStoryViewsHandler(viewRepo repository.ViewRepo) *StoryViewsHandler {
	return &StoryViewsHandler{viewRepo: viewRepo}
}

func (s *StoryViewsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("story view consumer setup")
	return nil
}

func (s *StoryViewsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("story view consumer cleanup")
	return nil
}

func (s *StoryViewsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-story-view consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-story-view process batch error", "err", err)
		return err
	}
	return nil
}

func (s *StoryViewsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event StoryViewEvent
	if err := decodeEvent(msg, &event); err != nil {
		return err
	}
	if event.StoryID == 0 {
		return nil
	}

	viewedAt := event.ViewedAt
	if viewedAt.IsZero() {
		viewedAt = time.Now()
	}

	err := s.viewRepo.CreateStoryView(ctx, &model.StoryView{
		StoryID:  event.StoryID,
		UserID:   event.UserID,
		ViewedAt: viewedAt,
	})
	if err != nil {
		return err
	}

	markCreatorDirty(ctx, event.AuthorID)
	return nil
}

// markCreatorDirty 记录有新动态的创作者，供每日快照任务消费
func markCreatorDirty(ctx context.Context, authorID uint64) {
	if authorID == 0 {
		return
	}
	if err := redis.SAdd(ctx, consts.CreatorDirtyKey, authorID); err != nil {
		log.ErrorContext(ctx, "mark creator dirty error", "err", err, "authorID", authorID)
	}
}
