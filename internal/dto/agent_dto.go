package dto

import (
	"time"

	"microlearn-agent-be/pkg/agent/markdown"
	"microlearn-agent-be/pkg/analytics"

	"github.com/google/uuid"
)

type TopicResponse struct {
	Label        string `json:"label"`
	HasFollowUps bool   `json:"has_follow_ups"`
}

type AgentMessageResponse struct {
	Id             uuid.UUID       `json:"id"`
	ConversationId uuid.UUID       `json:"conversation_id"`
	Role           string          `json:"role"`
	Content        string          `json:"content"`
	Links          []markdown.Link `json:"links,omitempty"`
	Trigger        string          `json:"trigger,omitempty"`
	IsFollowUp     bool            `json:"is_follow_up"`
	Feedback       *string         `json:"feedback"`
	Timestamp      time.Time       `json:"timestamp"`
}

type ConversationResponse struct {
	Id        uuid.UUID               `json:"id"`
	CreatedAt time.Time               `json:"created_at"`
	Messages  []*AgentMessageResponse `json:"messages"`
}

type SelectTopicRequest struct {
	ConversationId uuid.UUID `json:"-"`
	Label          string    `json:"label" validate:"required,max=100"`
}

type SelectTopicResponse struct {
	Sent              *AgentMessageResponse `json:"sent"`
	Reply             *AgentMessageResponse `json:"reply"`
	ScheduledFollowUp int                   `json:"scheduled_follow_ups"`
}

type AskRequest struct {
	ConversationId    uuid.UUID `json:"-"`
	Chat              string    `json:"chat" validate:"required,max=2000"`
	PillButtonContext string    `json:"pill_button_context,omitempty" validate:"max=100"`
}

type AskResponse struct {
	Sent    *AgentMessageResponse `json:"sent"`
	Reply   *AgentMessageResponse `json:"reply"`
	Matched bool                  `json:"matched"`
}

type FeedbackRequest struct {
	ConversationId uuid.UUID `json:"-"`
	MessageId      uuid.UUID `json:"-"`
	Feedback       string    `json:"feedback" validate:"omitempty,oneof=up down"`
}

// AgentSocketEvent is pushed to websocket clients when a follow-up arrives.
type AgentSocketEvent struct {
	Type string                `json:"type"`
	Data *AgentMessageResponse `json:"data"`
}

const AgentSocketEventMessage = "agent_message"

// InteractionMessage is the in-process bus payload for one analytics event.
// Exactly one of Topic and Question is set, matching Kind.
type InteractionMessage struct {
	Kind     string                   `json:"kind"`
	Topic    *analytics.TopicEvent    `json:"topic,omitempty"`
	Question *analytics.QuestionEvent `json:"question,omitempty"`
}

type InteractionResponse struct {
	Id                uuid.UUID              `json:"id"`
	ConversationId    uuid.UUID              `json:"conversation_id"`
	Kind              string                 `json:"kind"`
	Topic             string                 `json:"topic,omitempty"`
	Question          string                 `json:"question,omitempty"`
	Response          string                 `json:"response,omitempty"`
	IsPillButton      bool                   `json:"is_pill_button"`
	PillButtonContext string                 `json:"pill_button_context,omitempty"`
	Matched           bool                   `json:"matched"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
}

type ListInteractionsRequest struct {
	Kind   string `json:"kind" query:"kind" validate:"omitempty,oneof=AGENT_TOPIC_SELECTED AGENT_QUESTION_ANSWERED"`
	Limit  int    `json:"limit" query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int    `json:"offset" query:"offset" validate:"omitempty,min=0"`
}

type InteractionPageResponse struct {
	Items  []*InteractionResponse `json:"items"`
	Total  int64                  `json:"total"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

// InteractionSummaryResponse counts a learner's interactions. TopicSelections
// counts pill button presses only.
type InteractionSummaryResponse struct {
	TopicSelections    int64 `json:"topic_selections"`
	QuestionsAnswered  int64 `json:"questions_answered"`
	UnmatchedQuestions int64 `json:"unmatched_questions"`
}
