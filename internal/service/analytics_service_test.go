package service

import (
	"context"
	"errors"
	"testing"

	"microlearn-agent-be/internal/pkg/logger"
	"microlearn-agent-be/pkg/analytics"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogEventSink(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	sink := NewLogEventSink(logger.NewFromZap(zap.New(core)))
	convID := uuid.New()
	ctx := context.Background()

	require.NoError(t, sink.TopicSelected(ctx, analytics.TopicEvent{
		ConversationID: convID,
		Topic:          "ROI",
		IsPillButton:   true,
	}))
	require.NoError(t, sink.QuestionAnswered(ctx, analytics.QuestionEvent{
		ConversationID: convID,
		Question:       "my private question",
		Matched:        true,
		Outcome:        "keyword",
		EntryID:        "roi-measurement",
	}))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, analytics.KindTopicSelected, entries[0].Message)
	assert.Equal(t, analytics.KindQuestionAnswered, entries[1].Message)

	details, ok := entries[1].ContextMap()["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "roi-measurement", details["entry_id"])
	assert.NotContains(t, details, "question")
}

func TestBusAndLogSinksCompose(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	failing := &recordingSink{err: errors.New("bus down")}
	sink := analytics.MultiSink{failing, NewLogEventSink(logger.NewFromZap(zap.New(core)))}

	err := sink.QuestionAnswered(context.Background(), analytics.QuestionEvent{ConversationID: uuid.New()})
	assert.EqualError(t, err, "bus down")
	assert.Len(t, failing.questions, 1)
	assert.Equal(t, 1, logs.Len(), "a failing sink must not starve the others")
}
