package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InteractionLog struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID      `gorm:"type:uuid;not null;index"`
	ConversationId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Kind              string         `gorm:"type:varchar(50);not null;index"`
	Topic             string         `gorm:"type:varchar(100)"`
	Question          string         `gorm:"type:text"`
	Response          string         `gorm:"type:text"`
	IsPillButton      bool           `gorm:"not null;default:false"`
	PillButtonContext string         `gorm:"type:varchar(100)"`
	Matched           bool           `gorm:"not null;default:false"`
	Metadata          datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
}

func (InteractionLog) TableName() string {
	return "agent_interaction_logs"
}
