package service

import (
	"context"

	"microlearn-agent-be/internal/entity"
	"microlearn-agent-be/internal/pkg/logger"
	"microlearn-agent-be/internal/repository/specification"
	"microlearn-agent-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// IMessageMirror keeps a best-effort copy of conversation messages in the
// database. Failures are logged and never reach the learner.
type IMessageMirror interface {
	// Save writes the messages of one exchange in a single transaction.
	Save(ctx context.Context, messages ...*entity.AgentMessage)
	UpdateFeedback(ctx context.Context, message *entity.AgentMessage)
	// History reads back a conversation that is no longer live, oldest first.
	History(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) ([]entity.AgentMessage, error)
}

type messageMirror struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewMessageMirror(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IMessageMirror {
	return &messageMirror{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (m *messageMirror) Save(ctx context.Context, messages ...*entity.AgentMessage) {
	if len(messages) == 0 {
		return
	}

	uow := m.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		m.logger.Warn("MessageMirror", "Failed to start mirror transaction", map[string]interface{}{
			"conversation_id": messages[0].ConversationId,
			"error":           err.Error(),
		})
		return
	}

	repo := uow.AgentMessageRepository()
	for _, message := range messages {
		if err := repo.Create(ctx, message); err != nil {
			_ = uow.Rollback()
			m.logger.Warn("MessageMirror", "Failed to mirror agent messages", map[string]interface{}{
				"message_id":      message.Id,
				"conversation_id": message.ConversationId,
				"error":           err.Error(),
			})
			return
		}
	}

	if err := uow.Commit(); err != nil {
		m.logger.Warn("MessageMirror", "Failed to commit mirrored messages", map[string]interface{}{
			"conversation_id": messages[0].ConversationId,
			"error":           err.Error(),
		})
	}
}

func (m *messageMirror) UpdateFeedback(ctx context.Context, message *entity.AgentMessage) {
	uow := m.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AgentMessageRepository().UpdateFeedback(ctx, message); err != nil {
		m.logger.Warn("MessageMirror", "Failed to mirror feedback", map[string]interface{}{
			"message_id": message.Id,
			"error":      err.Error(),
		})
	}
}

func (m *messageMirror) History(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) ([]entity.AgentMessage, error) {
	uow := m.uowFactory.NewUnitOfWork(ctx)
	found, err := uow.AgentMessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversationId},
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]entity.AgentMessage, 0, len(found))
	for _, msg := range found {
		res = append(res, *msg)
	}
	return res, nil
}

// NopMessageMirror keeps nothing. Closed conversations have no archived history.
type NopMessageMirror struct{}

func (NopMessageMirror) Save(context.Context, ...*entity.AgentMessage)        {}
func (NopMessageMirror) UpdateFeedback(context.Context, *entity.AgentMessage) {}
func (NopMessageMirror) History(context.Context, uuid.UUID, uuid.UUID) ([]entity.AgentMessage, error) {
	return nil, nil
}
