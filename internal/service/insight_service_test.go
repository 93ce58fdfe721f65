package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"microlearn-agent-be/internal/dto"
	"microlearn-agent-be/internal/entity"
	"microlearn-agent-be/pkg/analytics"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLogs(userID uuid.UUID) *store {
	base := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	convID := uuid.New()
	st := &store{}
	st.logs = []*entity.InteractionLog{
		{Id: uuid.New(), UserId: userID, ConversationId: convID, Kind: analytics.KindTopicSelected, Topic: "ROI", Question: "how is roi measured", IsPillButton: false, CreatedAt: base.Add(-time.Minute)},
		{Id: uuid.New(), UserId: userID, ConversationId: convID, Kind: analytics.KindTopicSelected, Topic: "ROI", IsPillButton: true, CreatedAt: base},
		{Id: uuid.New(), UserId: userID, ConversationId: convID, Kind: analytics.KindQuestionAnswered, Question: "what is agile", Matched: true, CreatedAt: base.Add(time.Minute)},
		{Id: uuid.New(), UserId: userID, ConversationId: convID, Kind: analytics.KindQuestionAnswered, Question: "weather?", Matched: false, CreatedAt: base.Add(2 * time.Minute)},
		{Id: uuid.New(), UserId: uuid.New(), ConversationId: uuid.New(), Kind: analytics.KindQuestionAnswered, Question: "not mine", CreatedAt: base.Add(3 * time.Minute)},
	}
	return st
}

func TestListInteractions(t *testing.T) {
	userID := uuid.New()
	svc := NewInsightService(seedLogs(userID))
	ctx := context.Background()

	page, err := svc.ListInteractions(ctx, userID, &dto.ListInteractionsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Total)
	assert.Equal(t, defaultInteractionPageSize, page.Limit)

	var questions []string
	for _, item := range page.Items {
		questions = append(questions, item.Question)
	}
	// Newest first.
	if diff := cmp.Diff([]string{"weather?", "what is agile", "", "how is roi measured"}, questions); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}

	page, err = svc.ListInteractions(ctx, userID, &dto.ListInteractionsRequest{
		Kind:   analytics.KindQuestionAnswered,
		Limit:  1,
		Offset: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "what is agile", page.Items[0].Question)
	assert.True(t, page.Items[0].Matched)

	page, err = svc.ListInteractions(ctx, userID, &dto.ListInteractionsRequest{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(4), page.Total)
}

func TestInteractionSummary(t *testing.T) {
	userID := uuid.New()
	svc := NewInsightService(seedLogs(userID))

	summary, err := svc.Summary(context.Background(), userID)
	require.NoError(t, err)
	// The typed question with a topic context is not a selection.
	assert.Equal(t, &dto.InteractionSummaryResponse{
		TopicSelections:    1,
		QuestionsAnswered:  2,
		UnmatchedQuestions: 1,
	}, summary)

	summary, err = svc.Summary(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, summary.QuestionsAnswered)
}

func TestInsightRepositoryFailure(t *testing.T) {
	st := &store{err: errors.New("db down")}
	svc := NewInsightService(st)

	_, err := svc.ListInteractions(context.Background(), uuid.New(), &dto.ListInteractionsRequest{})
	assert.EqualError(t, err, "db down")

	_, err = svc.Summary(context.Background(), uuid.New())
	assert.EqualError(t, err, "db down")
}
