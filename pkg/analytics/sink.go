package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Event kinds as stored in the interaction log and used as bus event types.
const (
	KindTopicSelected    = "AGENT_TOPIC_SELECTED"
	KindQuestionAnswered = "AGENT_QUESTION_ANSWERED"
)

// TopicEvent records a topic selection (a pill button press, or a question
// asked with a topic as context).
type TopicEvent struct {
	UserID         uuid.UUID `json:"user_id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	Topic          string    `json:"topic"`
	Question       string    `json:"question"`
	IsPillButton   bool      `json:"is_pill_button"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// QuestionEvent records a question and the reply it produced.
type QuestionEvent struct {
	UserID            uuid.UUID `json:"user_id"`
	ConversationID    uuid.UUID `json:"conversation_id"`
	Question          string    `json:"question"`
	Response          string    `json:"response"`
	PillButtonContext string    `json:"pill_button_context,omitempty"`
	Matched           bool      `json:"matched"`
	Outcome           string    `json:"outcome,omitempty"`
	EntryID           string    `json:"entry_id,omitempty"`
	OccurredAt        time.Time `json:"occurred_at"`
}

// EventSink receives interaction events. Implementations decide where they go.
type EventSink interface {
	TopicSelected(ctx context.Context, evt TopicEvent) error
	QuestionAnswered(ctx context.Context, evt QuestionEvent) error
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) TopicSelected(context.Context, TopicEvent) error       { return nil }
func (NopSink) QuestionAnswered(context.Context, QuestionEvent) error { return nil }

// MultiSink fans an event out to several sinks and joins their errors.
type MultiSink []EventSink

func (m MultiSink) TopicSelected(ctx context.Context, evt TopicEvent) error {
	var errs []error
	for _, s := range m {
		if err := s.TopicSelected(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m MultiSink) QuestionAnswered(ctx context.Context, evt QuestionEvent) error {
	var errs []error
	for _, s := range m {
		if err := s.QuestionAnswered(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
