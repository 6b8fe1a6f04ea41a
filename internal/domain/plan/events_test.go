package plan

import (
	"context"
	"testing"

	apperrors "github.com/zainulabideendev/estateplan/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingPublisher struct {
	events []Event
	err    error
}

func (p *capturingPublisher) PlanMutated(_ context.Context, e Event) error {
	p.events = append(p.events, e)
	return p.err
}

func TestBroadcasterFansOutInOrder(t *testing.T) {
	b := NewBroadcaster(nil)

	var order []string
	b.Subscribe(func(e Event) { order = append(order, "first:"+string(e.Kind)) })
	b.Subscribe(func(e Event) { order = append(order, "second:"+string(e.Kind)) })

	err := b.PlanMutated(context.Background(), NewEvent("p-1", EventAllocationsSaved, "a-1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"first:allocations_saved", "second:allocations_saved"}, order)
}

func TestBroadcasterForwardsDownstream(t *testing.T) {
	down := &capturingPublisher{}
	b := NewBroadcaster(down)

	event := NewEvent("p-1", EventBeneficiaryAdded, "b-1")
	require.NoError(t, b.PlanMutated(context.Background(), event))

	require.Len(t, down.events, 1)
	assert.Equal(t, "p-1", down.events[0].ProfileID)
	assert.Equal(t, EventBeneficiaryAdded, down.events[0].Kind)
	assert.Equal(t, "b-1", down.events[0].EntityID)
	assert.False(t, down.events[0].OccurredAt.IsZero())
}

func TestBroadcasterDownstreamErrorAfterSubscribers(t *testing.T) {
	down := &capturingPublisher{err: apperrors.New(apperrors.ErrCodeServiceUnavailable, "broker down")}
	b := NewBroadcaster(down)

	called := false
	b.Subscribe(func(Event) { called = true })

	err := b.PlanMutated(context.Background(), NewEvent("p-1", EventResidueSaved, ""))
	assert.True(t, called, "subscribers run even when downstream fails")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeServiceUnavailable))
}

func TestBroadcasterNoSubscribersNoDownstream(t *testing.T) {
	b := NewBroadcaster(nil)
	assert.NoError(t, b.PlanMutated(context.Background(), NewEvent("p-1", EventAssetDebtUpdated, "a-9")))
}
