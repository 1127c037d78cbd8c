package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stockMessage(t *testing.T, eventType string, event StockChangedEvent) *sarama.ConsumerMessage {
	t.Helper()
	value, err := json.Marshal(event)
	require.NoError(t, err)
	return &sarama.ConsumerMessage{
		Topic: TopicStockChanged,
		Value: value,
		Headers: []*sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(eventType)},
		},
	}
}

func TestHandleMessageDispatchesStockChanged(t *testing.T) {
	var got []StockChangedEvent
	h := &groupHandler{handler: func(_ context.Context, e StockChangedEvent) error {
		got = append(got, e)
		return nil
	}}

	err := h.handleMessage(context.Background(), stockMessage(t, EventTypeStockChanged, StockChangedEvent{
		EventID: "e-1", ProductID: 3, OldStock: 1, NewStock: 2, ChangedBy: "admin",
	}))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "e-1", got[0].EventID)
	assert.Equal(t, uint(3), got[0].ProductID)
}

func TestHandleMessageSkipsOtherTypes(t *testing.T) {
	called := false
	h := &groupHandler{handler: func(context.Context, StockChangedEvent) error {
		called = true
		return nil
	}}

	require.NoError(t, h.handleMessage(context.Background(), stockMessage(t, "product.purchased", StockChangedEvent{})))
	assert.False(t, called)
}

func TestHandleMessageErrors(t *testing.T) {
	boom := errors.New("boom")
	h := &groupHandler{handler: func(context.Context, StockChangedEvent) error { return boom }}

	err := h.handleMessage(context.Background(), stockMessage(t, EventTypeStockChanged, StockChangedEvent{EventID: "x"}))
	assert.ErrorIs(t, err, boom)

	bad := &sarama.ConsumerMessage{
		Value:   []byte("{not json"),
		Headers: []*sarama.RecordHeader{{Key: []byte("event_type"), Value: []byte(EventTypeStockChanged)}},
	}
	assert.Error(t, h.handleMessage(context.Background(), bad))
}
