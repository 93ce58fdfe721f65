package entity

import (
	"time"

	"github.com/google/uuid"
)

type InteractionLog struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	ConversationId    uuid.UUID
	Kind              string
	Topic             string
	Question          string
	Response          string
	IsPillButton      bool
	PillButtonContext string
	Matched           bool
	Metadata          map[string]interface{}
	CreatedAt         time.Time
}
