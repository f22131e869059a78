// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	"freedbot-be/internal/dto"
	"freedbot-be/internal/repository/contract"
	"freedbot-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the ingest topic and backfills embeddings for newly
// created manual chunks and common issues. Ingestion stays responsive because
// the HTTP handler only persists the row and queues this job.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	manualRepo        contract.ManualRepository
	issueRepo         contract.IssueRepository
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	manualRepo contract.ManualRepository,
	issueRepo contract.IssueRepository,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		manualRepo:        manualRepo,
		issueRepo:         issueRepo,
		embeddingProvider: embeddingProvider,
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
	var payload dto.EmbedDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal embed message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Generating embedding for %s %s", payload.Kind, payload.Id)

	vector, err := cs.embeddingProvider.Generate(ctx, payload.Text, embedding.TaskRetrievalDocument)
	if err != nil {
		log.Printf("[ERROR] Failed to generate embedding for %s %s: %v", payload.Kind, payload.Id, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	switch payload.Kind {
	case dto.EmbedKindManual:
		err = cs.manualRepo.UpdateEmbedding(ctx, payload.Id, vector)
	case dto.EmbedKindIssue:
		err = cs.issueRepo.UpdateEmbedding(ctx, payload.Id, vector)
	default:
		log.Printf("[ERROR] Unknown embed kind %q for %s", payload.Kind, payload.Id)
		msg.Ack()
		return
	}
	if err != nil {
		log.Printf("[ERROR] Failed to store embedding for %s %s: %v", payload.Kind, payload.Id, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Embedding stored for %s %s", payload.Kind, payload.Id)
	msg.Ack()
}
