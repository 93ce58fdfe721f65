package service

import (
	"context"
	"encoding/json"
	"time"

	"microlearn-agent-be/internal/dto"
	"microlearn-agent-be/internal/entity"
	"microlearn-agent-be/internal/pkg/logger"
	"microlearn-agent-be/internal/repository/unitofwork"
	"microlearn-agent-be/pkg/analytics"
	"microlearn-agent-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains interaction events from the in-process bus into the
// interaction log and forwards them to NATS when a publisher is configured.
type consumerService struct {
	subscriber     message.Subscriber
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher events.Publisher
	logger         logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher events.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:     subscriber,
		topicName:      topicName,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	// Every outcome is acked: the gochannel bus redelivers nacks immediately,
	// and a failed log write would spin forever.
	defer msg.Ack()

	var payload dto.InteractionMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("Consumer", "Failed to unmarshal interaction message", map[string]interface{}{
			"message_uuid": msg.UUID,
			"error":        err.Error(),
		})
		return
	}

	logEntry, ok := toInteractionLog(&payload)
	if !ok {
		cs.logger.Warn("Consumer", "Dropping malformed interaction message", map[string]interface{}{
			"message_uuid": msg.UUID,
			"kind":         payload.Kind,
		})
		return
	}

	ctx := msg.Context()
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.InteractionLogRepository().Create(ctx, logEntry); err != nil {
		cs.logger.Error("Consumer", "Failed to store interaction log", map[string]interface{}{
			"kind":            logEntry.Kind,
			"conversation_id": logEntry.ConversationId,
			"error":           err.Error(),
		})
	}

	if cs.eventPublisher == nil {
		return
	}
	if err := cs.eventPublisher.Publish(ctx, toBusEvent(logEntry)); err != nil {
		cs.logger.Warn("Consumer", "Failed to forward interaction event", map[string]interface{}{
			"kind":  logEntry.Kind,
			"error": err.Error(),
		})
	}
}

func toInteractionLog(msg *dto.InteractionMessage) (*entity.InteractionLog, bool) {
	switch {
	case msg.Kind == analytics.KindTopicSelected && msg.Topic != nil:
		evt := msg.Topic
		return &entity.InteractionLog{
			Id:             uuid.New(),
			UserId:         evt.UserID,
			ConversationId: evt.ConversationID,
			Kind:           msg.Kind,
			Topic:          evt.Topic,
			Question:       evt.Question,
			IsPillButton:   evt.IsPillButton,
			CreatedAt:      orNow(evt.OccurredAt),
		}, true

	case msg.Kind == analytics.KindQuestionAnswered && msg.Question != nil:
		evt := msg.Question
		metadata := map[string]interface{}{}
		if evt.Outcome != "" {
			metadata["outcome"] = evt.Outcome
		}
		if evt.EntryID != "" {
			metadata["entry_id"] = evt.EntryID
		}
		return &entity.InteractionLog{
			Id:                uuid.New(),
			UserId:            evt.UserID,
			ConversationId:    evt.ConversationID,
			Kind:              msg.Kind,
			Question:          evt.Question,
			Response:          evt.Response,
			PillButtonContext: evt.PillButtonContext,
			Matched:           evt.Matched,
			Metadata:          metadata,
			CreatedAt:         orNow(evt.OccurredAt),
		}, true
	}
	return nil, false
}

func toBusEvent(l *entity.InteractionLog) events.BaseEvent {
	data := map[string]interface{}{
		"kind":            l.Kind,
		"user_id":         l.UserId.String(),
		"conversation_id": l.ConversationId.String(),
		"occurred_at":     l.CreatedAt.Format(time.RFC3339Nano),
	}
	if l.Topic != "" {
		data["topic"] = l.Topic
		data["is_pill_button"] = l.IsPillButton
	}
	if l.Question != "" {
		data["question"] = l.Question
	}
	if l.Kind == analytics.KindQuestionAnswered {
		data["matched"] = l.Matched
		if l.PillButtonContext != "" {
			data["pill_button_context"] = l.PillButtonContext
		}
		for k, v := range l.Metadata {
			data[k] = v
		}
	}
	return events.BaseEvent{
		Type:       l.Kind,
		Data:       data,
		OccurredAt: l.CreatedAt,
	}
}

func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
