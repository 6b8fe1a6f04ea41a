// Package plan defines the mutation-event contract that replaces the
// original window-level broadcasts: services publish an explicit event after
// every roster or ledger mutation, and interested components subscribe
// instead of listening for ambient global signals.
package plan

import (
	"context"
	"sync"
	"time"
)

// EventKind names a plan mutation.
type EventKind string

const (
	EventBeneficiaryAdded   EventKind = "beneficiary_added"
	EventBeneficiaryRemoved EventKind = "beneficiary_removed"
	EventAllocationsSaved   EventKind = "allocations_saved"
	EventResidueSaved       EventKind = "residue_saved"
	EventAssetDebtUpdated   EventKind = "asset_debt_updated"
	EventProfileUpdated     EventKind = "profile_updated"
	EventFlagsUpdated       EventKind = "flags_updated"
)

// Event describes one mutation of a profile's plan.
type Event struct {
	ProfileID string    `json:"profile_id"`
	Kind      EventKind `json:"kind"`
	// EntityID is the mutated beneficiary or asset id, when applicable.
	EntityID   string    `json:"entity_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent stamps an event with the current UTC time.
func NewEvent(profileID string, kind EventKind, entityID string) Event {
	return Event{ProfileID: profileID, Kind: kind, EntityID: entityID, OccurredAt: time.Now().UTC()}
}

// Publisher is implemented by transports that deliver plan mutation events.
// Publishing failures must not abort the mutation that triggered them; the
// store write is the source of truth, the event a best-effort signal.
type Publisher interface {
	PlanMutated(ctx context.Context, event Event) error
}

// Subscriber receives events from a Broadcaster.
type Subscriber func(Event)

// Broadcaster is the in-process Publisher: it fans every event out to the
// registered subscribers synchronously, in registration order. It also
// forwards to an optional downstream Publisher (e.g. the kafka producer) so
// one wiring serves both in-process reactions and external consumers.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers []Subscriber
	downstream  Publisher
}

// NewBroadcaster constructs a Broadcaster. downstream may be nil.
func NewBroadcaster(downstream Publisher) *Broadcaster {
	return &Broadcaster{downstream: downstream}
}

// Subscribe registers fn for all future events.
func (b *Broadcaster) Subscribe(fn Subscriber) {
	b.mu.Lock()
	b.subscribers = append(b.subscribers, fn)
	b.mu.Unlock()
}

// PlanMutated delivers the event to every subscriber and then to the
// downstream publisher. The downstream error, if any, is returned after all
// in-process subscribers have run.
func (b *Broadcaster) PlanMutated(ctx context.Context, event Event) error {
	b.mu.RLock()
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.RUnlock()

	for _, fn := range subs {
		fn(event)
	}
	if b.downstream != nil {
		return b.downstream.PlanMutated(ctx, event)
	}
	return nil
}
