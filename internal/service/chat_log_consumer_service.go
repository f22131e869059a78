// FILE: internal/service/chat_log_consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	"freedbot-be/internal/dto"
	"freedbot-be/internal/model"
	"freedbot-be/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IChatLogConsumerService interface {
	Consume(ctx context.Context) error
}

// chatLogConsumerService persists handled chat turns off the request path.
type chatLogConsumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	chatLogRepo contract.ChatLogRepository
}

func NewChatLogConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	chatLogRepo contract.ChatLogRepository,
) IChatLogConsumerService {
	return &chatLogConsumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		chatLogRepo: chatLogRepo,
	}
}

func (cs *chatLogConsumerService) Consume(ctx context.Context) error {
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

func (cs *chatLogConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ChatProcessedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal chat log message: %v", err)
		msg.Ack()
		return
	}

	entry := &model.ChatLog{
		CallerId:      payload.CallerId,
		Category:      payload.Category,
		Message:       payload.Message,
		ResponseChars: payload.ResponseChars,
		DurationMs:    payload.DurationMs,
	}
	if err := cs.chatLogRepo.Create(ctx, entry); err != nil {
		log.Printf("[ERROR] Failed to persist chat log for %s: %v", payload.CallerId, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
