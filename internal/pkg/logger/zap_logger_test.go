package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Info("Agent", "topic dispatched", map[string]interface{}{"topic": "Training"})
	l.Warn("Agent", "no details", nil)
	l.Error("Agent", "sink failed", map[string]interface{}{"error": "bus down"})

	entries := logs.All()
	assert.Len(t, entries, 3)

	first := entries[0].ContextMap()
	assert.Equal(t, "Agent", first["module"])
	assert.Equal(t, map[string]interface{}{"topic": "Training"}, first["details"])

	assert.Equal(t, map[string]interface{}{}, entries[1].ContextMap()["details"])
	assert.Equal(t, "bus down", entries[2].ContextMap()["error_ref"])
}
