package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	audit "oba/pkg/platform/audit"
)

type recordingProducer struct {
	records []*kgo.Record
	err     error
}

func (p *recordingProducer) ProduceSync(_ context.Context, rs ...*kgo.Record) kgo.ProduceResults {
	var results kgo.ProduceResults
	for _, r := range rs {
		p.records = append(p.records, r)
		results = append(results, kgo.ProduceResult{Record: r, Err: p.err})
	}
	return results
}

func TestStore_Append(t *testing.T) {
	producer := &recordingProducer{}
	store := New(producer, "oba.sca.audit")

	event := audit.NewEvent(audit.EventPaymentAuthorised)
	event.Resource = "ENC_123"
	event.Subject = "anton.brueckner"

	require.NoError(t, store.Append(context.Background(), event))
	require.Len(t, producer.records, 1)

	rec := producer.records[0]
	assert.Equal(t, "oba.sca.audit", rec.Topic)
	assert.Equal(t, "ENC_123", string(rec.Key))

	var got audit.Event
	require.NoError(t, json.Unmarshal(rec.Value, &got))
	assert.Equal(t, audit.CategoryCompliance, got.Category)
	assert.Equal(t, "payment_authorised", got.Action)
}

func TestStore_AppendProduceError(t *testing.T) {
	store := New(&recordingProducer{err: errors.New("broker gone")}, "t")
	err := store.Append(context.Background(), audit.NewEvent(audit.EventLoginFailed))
	assert.ErrorContains(t, err, "broker gone")
}
