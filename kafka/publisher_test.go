package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-tracker/internal/product/domain"
)

func TestPublishStockChanged(t *testing.T) {
	config := mocks.NewTestConfig()
	config.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, config)

	at := time.Date(2024, 4, 2, 15, 0, 0, 0, time.UTC)
	var got StockChangedEvent
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		return json.Unmarshal(val, &got)
	})

	publisher := NewPublisherWithProducer(producer)
	err := publisher.PublishStockChanged(context.Background(), domain.StockChange{
		ProductID: 12,
		OldStock:  4,
		NewStock:  9,
		ChangedBy: "alice",
		ChangedAt: at,
	})
	require.NoError(t, err)
	require.NoError(t, publisher.Close())

	assert.NotEmpty(t, got.EventID)
	assert.Equal(t, EventTypeStockChanged, got.EventType)
	assert.Equal(t, uint(12), got.ProductID)
	assert.Equal(t, 4, got.OldStock)
	assert.Equal(t, 9, got.NewStock)
	assert.Equal(t, "alice", got.ChangedBy)
	assert.True(t, got.Timestamp.Equal(at))
}

func TestPublishStockChangedFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := NewPublisherWithProducer(producer)
	err := publisher.PublishStockChanged(context.Background(), domain.StockChange{ProductID: 1, NewStock: 1})

	require.Error(t, err)
	assert.True(t, errors.Is(err, sarama.ErrOutOfBrokers))
	require.NoError(t, publisher.Close())
}

func TestNopPublisher(t *testing.T) {
	var p domain.StockEventPublisher = NopPublisher{}
	assert.NoError(t, p.PublishStockChanged(context.Background(), domain.StockChange{ProductID: 1}))
}
