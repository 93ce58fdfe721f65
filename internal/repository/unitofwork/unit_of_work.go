package unitofwork

import (
	"context"

	"microlearn-agent-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AgentMessageRepository() contract.AgentMessageRepository
	InteractionLogRepository() contract.InteractionLogRepository
}
