package contract

import (
	"context"

	"microlearn-agent-be/internal/entity"
	"microlearn-agent-be/internal/repository/specification"
)

type AgentMessageRepository interface {
	Create(ctx context.Context, message *entity.AgentMessage) error
	UpdateFeedback(ctx context.Context, message *entity.AgentMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentMessage, error)
}
