package kafka

import (
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

type DonationsHandler struct {
	donationRepo repository.DonationRepo
}

func NewDonationsHandler(donationRepo repository.DonationRepo) *DonationsHandler {
	return &DonationsHandler{donationRepo: donationRepo}
}

func (s *DonationsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("donation consumer setup")
	return nil
}

func (s *DonationsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("donation consumer cleanup")
	return nil
}

func (s *DonationsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-donation consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-donation process batch error", "err", err)
		return err
	}
	return nil
}

// logic 将支付网关的终态写回捐赠记录，只认识 collected / failed
func (s *DonationsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event DonationStatusEvent
	if err := decodeEvent(msg, &event); err != nil {
		return err
	}
	if event.PaymentRef == "" {
		return nil
	}

	switch event.Status {
	case consts.DonationStatusCollected, consts.DonationStatusFailed:
	default:
		return nil
	}

	err := s.donationRepo.UpdateStatusByPaymentRef(ctx, event.PaymentRef, event.Status)
	if err != nil {
		return err
	}

	if event.Status == consts.DonationStatusCollected {
		markCreatorDirty(ctx, event.AuthorID)
	}
	return nil
}
