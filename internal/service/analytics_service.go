package service

import (
	"context"
	"encoding/json"
	"fmt"

	"microlearn-agent-be/internal/dto"
	"microlearn-agent-be/internal/pkg/logger"
	"microlearn-agent-be/pkg/analytics"
)

// busSink hands analytics events to the in-process bus so the request path
// never waits on the database.
type busSink struct {
	publisher IPublisherService
}

func NewBusEventSink(publisher IPublisherService) analytics.EventSink {
	return &busSink{publisher: publisher}
}

func (s *busSink) TopicSelected(ctx context.Context, evt analytics.TopicEvent) error {
	return s.publish(ctx, &dto.InteractionMessage{
		Kind:  analytics.KindTopicSelected,
		Topic: &evt,
	})
}

func (s *busSink) QuestionAnswered(ctx context.Context, evt analytics.QuestionEvent) error {
	return s.publish(ctx, &dto.InteractionMessage{
		Kind:     analytics.KindQuestionAnswered,
		Question: &evt,
	})
}

func (s *busSink) publish(ctx context.Context, msg *dto.InteractionMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", msg.Kind, err)
	}
	return s.publisher.Publish(ctx, payload)
}

// logSink writes a structured line per analytics event. Question text stays
// out of the log file.
type logSink struct {
	logger logger.ILogger
}

func NewLogEventSink(log logger.ILogger) analytics.EventSink {
	return &logSink{logger: log}
}

func (s *logSink) TopicSelected(ctx context.Context, evt analytics.TopicEvent) error {
	s.logger.Info("Analytics", analytics.KindTopicSelected, map[string]interface{}{
		"conversation_id": evt.ConversationID,
		"topic":           evt.Topic,
		"is_pill_button":  evt.IsPillButton,
	})
	return nil
}

func (s *logSink) QuestionAnswered(ctx context.Context, evt analytics.QuestionEvent) error {
	details := map[string]interface{}{
		"conversation_id": evt.ConversationID,
		"matched":         evt.Matched,
		"outcome":         evt.Outcome,
	}
	if evt.EntryID != "" {
		details["entry_id"] = evt.EntryID
	}
	if evt.PillButtonContext != "" {
		details["pill_button_context"] = evt.PillButtonContext
	}
	s.logger.Info("Analytics", analytics.KindQuestionAnswered, details)
	return nil
}
