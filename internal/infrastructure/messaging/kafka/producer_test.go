package kafka

import (
	"context"
	"encoding/json"
	"testing"

	segkafka "github.com/segmentio/kafka-go"

	"github.com/zainulabideendev/estateplan/internal/domain/plan"
	"github.com/zainulabideendev/estateplan/internal/testutil"
	"github.com/zainulabideendev/estateplan/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []segkafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...segkafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPlanMutated_WritesEnvelope(t *testing.T) {
	w := &fakeWriter{}
	p := newProducerWithWriter(w, DefaultTopic, testutil.NewMockLogger())

	event := plan.NewEvent("p-1", plan.EventAllocationsSaved, "a-1")
	require.NoError(t, p.PlanMutated(context.Background(), event))

	require.Len(t, w.messages, 1)
	assert.Equal(t, []byte("p-1"), w.messages[0].Key, "keyed by profile id")

	var envelope EventEnvelope
	require.NoError(t, json.Unmarshal(w.messages[0].Value, &envelope))
	assert.Equal(t, "allocations_saved", envelope.EventType)
	assert.Equal(t, envelopeSource, envelope.Source)
	assert.NotEmpty(t, envelope.EventID)

	var decoded plan.Event
	require.NoError(t, json.Unmarshal(envelope.Payload, &decoded))
	assert.Equal(t, event.ProfileID, decoded.ProfileID)
	assert.Equal(t, event.Kind, decoded.Kind)
	assert.Equal(t, event.EntityID, decoded.EntityID)

	assert.Equal(t, int64(1), p.Sent())
	assert.Equal(t, int64(0), p.Failed())
}

func TestPlanMutated_WriteFailure(t *testing.T) {
	w := &fakeWriter{err: errors.New(errors.ErrCodeInternal, "broker unreachable")}
	p := newProducerWithWriter(w, DefaultTopic, testutil.NewMockLogger())

	err := p.PlanMutated(context.Background(), plan.NewEvent("p-1", plan.EventResidueSaved, ""))
	assert.True(t, errors.IsCode(err, errors.ErrCodeServiceUnavailable))
	assert.Equal(t, int64(1), p.Failed())
}

func TestPlanMutated_AfterClose(t *testing.T) {
	w := &fakeWriter{}
	p := newProducerWithWriter(w, DefaultTopic, testutil.NewMockLogger())

	require.NoError(t, p.Close())
	assert.True(t, w.closed)

	err := p.PlanMutated(context.Background(), plan.NewEvent("p-1", plan.EventBeneficiaryAdded, "b-1"))
	assert.True(t, errors.IsCode(err, errors.ErrCodeServiceUnavailable))

	assert.NoError(t, p.Close(), "double close is a no-op")
}
