// Package kafka publishes plan mutation events to Kafka for downstream
// consumers (audit trails, notification senders).
package kafka

import (
	"encoding/json"
	"time"
)

// DefaultTopic is the topic plan mutation events are written to unless
// configuration overrides it.
const DefaultTopic = "estate.plan.mutations"

// EventEnvelope standardizes event messages on the wire.
type EventEnvelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	SchemaVersion string          `json:"schema_version"`
	Payload       json.RawMessage `json:"payload"`
}

const (
	envelopeSource        = "estateplan"
	envelopeSchemaVersion = "1.0"
)
