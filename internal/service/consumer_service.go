package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"thinkora-be/internal/dto"
	"thinkora-be/internal/repository/specification"
	"thinkora-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the assistant reply topic and keeps the
// per-user daily usage counters up to date.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.AssistantReplyMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal assistant reply message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: payload.UserId})
	if err != nil {
		log.Printf("[ERROR] Failed to load user %s for usage accounting: %v", payload.UserId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if user == nil {
		log.Printf("[WARN] Usage event for unknown user %s", payload.UserId)
		msg.Ack() // User deleted? Ack.
		return
	}

	now := time.Now()
	lastReset := user.AssistantDailyUsageLastReset
	if lastReset.Year() != now.Year() || lastReset.YearDay() != now.YearDay() {
		if err := uow.UserRepository().ResetAssistantUsage(ctx, user.Id, now); err != nil {
			log.Printf("[ERROR] Failed to reset usage for user %s: %v", user.Id, err)
			msg.Nack()
			return
		}
	}

	if err := uow.UserRepository().IncrementAssistantUsage(ctx, user.Id); err != nil {
		log.Printf("[ERROR] Failed to increment usage for user %s: %v", user.Id, err)
		msg.Nack()
		return
	}

	log.Printf("[INFO] Assistant usage recorded for user %s (intent: %s)", user.Id, payload.Intent)
	msg.Ack()
}
