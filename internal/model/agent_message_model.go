package model

import (
	"time"

	"github.com/google/uuid"
)

type AgentMessage struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Role           string    `gorm:"type:varchar(20);not null"`
	Content        string    `gorm:"type:text;not null"`
	Trigger        string    `gorm:"type:text"`
	IsFollowUp     bool      `gorm:"not null;default:false"`
	Feedback       string    `gorm:"type:varchar(10)"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (AgentMessage) TableName() string {
	return "agent_messages"
}
