package nats

import (
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	// StreamName is the JetStream stream holding agent interaction events.
	StreamName = "AGENT_EVENTS"

	subjectPrefix = "agent.events."

	// AllSubjects matches every agent event subject.
	AllSubjects = subjectPrefix + ">"

	streamMaxAge = 7 * 24 * time.Hour
)

// SubjectFor returns the subject an event type is published on.
func SubjectFor(eventType string) string {
	return subjectPrefix + eventType
}

// EventTypeFromSubject is the inverse of SubjectFor. Subjects outside the
// agent prefix are returned unchanged.
func EventTypeFromSubject(subject string) string {
	return strings.TrimPrefix(subject, subjectPrefix)
}

func connect(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return nc, nil
}
