package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestInitTracerAndShutdown(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	// The collector is only contacted on export; no spans are recorded here
	tp, err := InitTracer("inventory-test", "test", "http://127.0.0.1:1/api/traces")
	require.NoError(t, err)
	assert.Same(t, tp, otel.GetTracerProvider())

	require.NoError(t, Shutdown(context.Background(), tp))
}

func TestShutdownIgnoresForeignProvider(t *testing.T) {
	assert.NoError(t, Shutdown(context.Background(), noop.NewTracerProvider()))
}
