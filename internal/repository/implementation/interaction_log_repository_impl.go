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

type InteractionLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AgentMapper
}

func NewInteractionLogRepository(db *gorm.DB) contract.InteractionLogRepository {
	return &InteractionLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewAgentMapper(),
	}
}

func (r *InteractionLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InteractionLogRepositoryImpl) Create(ctx context.Context, log *entity.InteractionLog) error {
	m, err := r.mapper.InteractionLogToModel(log)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.InteractionLogToEntity(m)
	return nil
}

func (r *InteractionLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InteractionLog, error) {
	var models []*model.InteractionLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.InteractionLog, len(models))
	for i, m := range models {
		entities[i] = r.mapper.InteractionLogToEntity(m)
	}
	return entities, nil
}

func (r *InteractionLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.InteractionLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
