package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	AgentRoleUser      = "user"
	AgentRoleAssistant = "assistant"

	FeedbackUp   = "up"
	FeedbackDown = "down"
)

// AgentMessage is one turn of a learner conversation with the course agent.
// Trigger holds the topic label or query that produced an assistant message;
// it is empty for the greeting.
type AgentMessage struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	UserId         uuid.UUID
	Role           string
	Content        string
	Trigger        string
	IsFollowUp     bool
	Feedback       string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
