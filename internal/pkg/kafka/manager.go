package kafka

import (
	"Inkstone/internal/api/config"
	"Inkstone/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	storyViewConsumer sarama.ConsumerGroup
	storyViewHandler  sarama.ConsumerGroupHandler

	chapterViewConsumer sarama.ConsumerGroup
	chapterViewHandler  sarama.ConsumerGroupHandler

	donationConsumer sarama.ConsumerGroup
	donationHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(
	cfg *config.Config,
	viewRepo repository.ViewRepo,
	donationRepo repository.DonationRepo,
) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	storyViewConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaStoryViewConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	storyViewHandler := NewStoryViewsHandler(viewRepo)

	chapterViewConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaChapterViewConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	chapterViewHandler := NewChapterViewsHandler(viewRepo)

	donationConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaDonationConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	donationHandler := NewDonationsHandler(donationRepo)

	return &ConsumerManager{
		storyViewConsumer:   storyViewConsumer,
		storyViewHandler:    storyViewHandler,
		chapterViewConsumer: chapterViewConsumer,
		chapterViewHandler:  chapterViewHandler,
		donationConsumer:    donationConsumer,
		donationHandler:     donationHandler,
	}, nil
}

// Start 启动所有消费者
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	// 启动 Story View Consumer
	go func() {
		topic := cfg.KafkaStoryViewConsumer.Topic
		log.Info("Story View consumer started", "topic", topic)
		for {
			if err := m.storyViewConsumer.Consume(ctx, []string{topic}, m.storyViewHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	// 启动 Chapter View Consumer
	go func() {
		topic := cfg.KafkaChapterViewConsumer.Topic
		log.Info("Chapter View consumer started", "topic", topic)
		for {
			if err := m.chapterViewConsumer.Consume(ctx, []string{topic}, m.chapterViewHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	// 启动 Donation Consumer
	go func() {
		topic := cfg.KafkaDonationConsumer.Topic
		log.Info("Donation consumer started", "topic", topic)
		for {
			if err := m.donationConsumer.Consume(ctx, []string{topic}, m.donationHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.storyViewConsumer.Close(); err != nil {
		log.Error("Failed to close story view consumer", "err", err)
	}
	if err := m.chapterViewConsumer.Close(); err != nil {
		log.Error("Failed to close chapter view consumer", "err", err)
	}
	if err := m.donationConsumer.Close(); err != nil {
		log.Error("Failed to close donation consumer", "err", err)
	}

	return nil
}
