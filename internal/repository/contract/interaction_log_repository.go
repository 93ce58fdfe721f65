package contract

import (
	"context"

	"microlearn-agent-be/internal/entity"
	"microlearn-agent-be/internal/repository/specification"
)

type InteractionLogRepository interface {
	Create(ctx context.Context, log *entity.InteractionLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InteractionLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
