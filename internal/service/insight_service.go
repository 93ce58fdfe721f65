package service

import (
	"context"

	"microlearn-agent-be/internal/dto"
	"microlearn-agent-be/internal/entity"
	"microlearn-agent-be/internal/repository/specification"
	"microlearn-agent-be/internal/repository/unitofwork"
	"microlearn-agent-be/pkg/analytics"

	"github.com/google/uuid"
)

const defaultInteractionPageSize = 20

// IInsightService reads a learner's own interaction log back.
type IInsightService interface {
	ListInteractions(ctx context.Context, userId uuid.UUID, request *dto.ListInteractionsRequest) (*dto.InteractionPageResponse, error)
	Summary(ctx context.Context, userId uuid.UUID) (*dto.InteractionSummaryResponse, error)
}

type insightService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewInsightService(uowFactory unitofwork.RepositoryFactory) IInsightService {
	return &insightService{
		uowFactory: uowFactory,
	}
}

func (s *insightService) ListInteractions(ctx context.Context, userId uuid.UUID, request *dto.ListInteractionsRequest) (*dto.InteractionPageResponse, error) {
	limit := request.Limit
	if limit == 0 {
		limit = defaultInteractionPageSize
	}

	filters := []specification.Specification{specification.ByUserID{UserID: userId}}
	if request.Kind != "" {
		filters = append(filters, specification.ByKind{Kind: request.Kind})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.InteractionLogRepository()

	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	logs, err := repo.FindAll(ctx, append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: request.Offset},
	)...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.InteractionResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, toInteractionResponse(l))
	}

	return &dto.InteractionPageResponse{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: request.Offset,
	}, nil
}

func (s *insightService) Summary(ctx context.Context, userId uuid.UUID) (*dto.InteractionSummaryResponse, error) {
	repo := s.uowFactory.NewUnitOfWork(ctx).InteractionLogRepository()
	byUser := specification.ByUserID{UserID: userId}

	// Questions typed with a topic as context are logged as topic events too;
	// only button presses count as selections.
	topics, err := repo.Count(ctx, byUser,
		specification.ByKind{Kind: analytics.KindTopicSelected},
		specification.Filter("is_pill_button", true),
	)
	if err != nil {
		return nil, err
	}
	questions, err := repo.Count(ctx, byUser, specification.ByKind{Kind: analytics.KindQuestionAnswered})
	if err != nil {
		return nil, err
	}
	unmatched, err := repo.Count(ctx, byUser,
		specification.ByKind{Kind: analytics.KindQuestionAnswered},
		specification.Filter("matched", false),
	)
	if err != nil {
		return nil, err
	}

	return &dto.InteractionSummaryResponse{
		TopicSelections:    topics,
		QuestionsAnswered:  questions,
		UnmatchedQuestions: unmatched,
	}, nil
}

func toInteractionResponse(l *entity.InteractionLog) *dto.InteractionResponse {
	return &dto.InteractionResponse{
		Id:                l.Id,
		ConversationId:    l.ConversationId,
		Kind:              l.Kind,
		Topic:             l.Topic,
		Question:          l.Question,
		Response:          l.Response,
		IsPillButton:      l.IsPillButton,
		PillButtonContext: l.PillButtonContext,
		Matched:           l.Matched,
		Metadata:          l.Metadata,
		CreatedAt:         l.CreatedAt,
	}
}
