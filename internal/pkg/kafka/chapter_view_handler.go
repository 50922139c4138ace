package kafka

import (
	"Inkstone/internal/model"
	"Inkstone/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
)

type ChapterViewsHandler struct {
	viewRepo repository.ViewRepo
}

func NewChapterViewsHandler(viewRepo repository.ViewRepo) *ChapterViewsHandler {
	return &ChapterViewsHandler{viewRepo: viewRepo}
}

func (s *ChapterViewsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("chapter view consumer setup")
	return nil
}

func (s *ChapterViewsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("chapter view consumer cleanup")
	return nil
}

func (s *ChapterViewsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-chapter-view consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-chapter-view process batch error", "err", err)
		return err
	}
	return nil
}

func (s *ChapterViewsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event ChapterViewEvent
	if err := decodeEvent(msg, &event); err != nil {
		return err
	}
	if event.ChapterID == 0 {
		return nil
	}

	viewedAt := event.ViewedAt
	if viewedAt.IsZero() {
		viewedAt = time.Now()
	}

	err := s.viewRepo.CreateChapterView(ctx, &model.ChapterView{
		ChapterID: event.ChapterID,
		UserID:    event.UserID,
		ViewedAt:  viewedAt,
	})
	if err != nil {
		return err
	}

	markCreatorDirty(ctx, event.AuthorID)
	return nil
}
