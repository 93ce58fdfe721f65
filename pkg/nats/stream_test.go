package nats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjects(t *testing.T) {
	assert.Equal(t, "agent.events.AGENT_TOPIC_SELECTED", SubjectFor("AGENT_TOPIC_SELECTED"))
	assert.Equal(t, "AGENT_TOPIC_SELECTED", EventTypeFromSubject(SubjectFor("AGENT_TOPIC_SELECTED")))
	assert.Equal(t, "events.OTHER", EventTypeFromSubject("events.OTHER"))
	assert.Equal(t, "agent.events.>", AllSubjects)
}
