package mapper

import (
	"encoding/json"
	"time"

	"microlearn-agent-be/internal/entity"
	"microlearn-agent-be/internal/model"

	"gorm.io/datatypes"
)

type AgentMapper struct{}

func NewAgentMapper() *AgentMapper {
	return &AgentMapper{}
}

// Message Mappers

func (m *AgentMapper) AgentMessageToEntity(msg *model.AgentMessage) *entity.AgentMessage {
	if msg == nil {
		return nil
	}

	var updatedAt *time.Time
	if !msg.UpdatedAt.IsZero() {
		t := msg.UpdatedAt
		updatedAt = &t
	}

	return &entity.AgentMessage{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		UserId:         msg.UserId,
		Role:           msg.Role,
		Content:        msg.Content,
		Trigger:        msg.Trigger,
		IsFollowUp:     msg.IsFollowUp,
		Feedback:       msg.Feedback,
		CreatedAt:      msg.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *AgentMapper) AgentMessageToModel(msg *entity.AgentMessage) *model.AgentMessage {
	if msg == nil {
		return nil
	}

	var updatedAt time.Time
	if msg.UpdatedAt != nil {
		updatedAt = *msg.UpdatedAt
	}

	return &model.AgentMessage{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		UserId:         msg.UserId,
		Role:           msg.Role,
		Content:        msg.Content,
		Trigger:        msg.Trigger,
		IsFollowUp:     msg.IsFollowUp,
		Feedback:       msg.Feedback,
		CreatedAt:      msg.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

// Interaction Log Mappers

func (m *AgentMapper) InteractionLogToEntity(l *model.InteractionLog) *entity.InteractionLog {
	if l == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(l.Metadata) > 0 {
		// Stored by InteractionLogToModel, so it is always an object
		_ = json.Unmarshal(l.Metadata, &metadata)
	}

	return &entity.InteractionLog{
		Id:                l.Id,
		UserId:            l.UserId,
		ConversationId:    l.ConversationId,
		Kind:              l.Kind,
		Topic:             l.Topic,
		Question:          l.Question,
		Response:          l.Response,
		IsPillButton:      l.IsPillButton,
		PillButtonContext: l.PillButtonContext,
		Matched:           l.Matched,
		Metadata:          metadata,
		CreatedAt:         l.CreatedAt,
	}
}

func (m *AgentMapper) InteractionLogToModel(l *entity.InteractionLog) (*model.InteractionLog, error) {
	if l == nil {
		return nil, nil
	}

	var metadata datatypes.JSON
	if l.Metadata != nil {
		raw, err := json.Marshal(l.Metadata)
		if err != nil {
			return nil, err
		}
		metadata = datatypes.JSON(raw)
	}

	return &model.InteractionLog{
		Id:                l.Id,
		UserId:            l.UserId,
		ConversationId:    l.ConversationId,
		Kind:              l.Kind,
		Topic:             l.Topic,
		Question:          l.Question,
		Response:          l.Response,
		IsPillButton:      l.IsPillButton,
		PillButtonContext: l.PillButtonContext,
		Matched:           l.Matched,
		Metadata:          metadata,
		CreatedAt:         l.CreatedAt,
	}, nil
}
