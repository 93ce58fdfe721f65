package implementation

import (
	"context"

	"microlearn-agent-be/internal/entity"
	"microlearn-agent-be/internal/mapper"
	"microlearn-agent-be/internal/model"
	"microlearn-agent-be/internal/repository/contract"
	"microlearn-agent-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AgentMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AgentMapper
}

func NewAgentMessageRepository(db *gorm.DB) contract.AgentMessageRepository {
	return &AgentMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewAgentMapper(),
	}
}

func (r *AgentMessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AgentMessageRepositoryImpl) Create(ctx context.Context, message *entity.AgentMessage) error {
	m := r.mapper.AgentMessageToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.AgentMessageToEntity(m)
	return nil
}

func (r *AgentMessageRepositoryImpl) UpdateFeedback(ctx context.Context, message *entity.AgentMessage) error {
	return r.db.WithContext(ctx).
		Model(&model.AgentMessage{}).
		Where("id = ?", message.Id).
		Update("feedback", message.Feedback).Error
}

func (r *AgentMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentMessage, error) {
	var models []*model.AgentMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.AgentMessage, len(models))
	for i, m := range models {
		entities[i] = r.mapper.AgentMessageToEntity(m)
	}
	return entities, nil
}
