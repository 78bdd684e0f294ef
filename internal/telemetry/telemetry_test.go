package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
)

func TestSetup_WithoutEndpoint(t *testing.T) {
	tp, shutdown, err := Setup(context.Background(), domain.TelemetrySettings{}, "test")
	require.NoError(t, err)
	require.NotNil(t, tp)
	defer func() { assert.NoError(t, shutdown(context.Background())) }()

	assert.Same(t, tp, otel.GetTracerProvider())

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid())
	span.End()
}

func TestSetup_WithEndpoint(t *testing.T) {
	// The exporter connects lazily, so an unreachable collector is fine here.
	tp, shutdown, err := Setup(context.Background(), domain.TelemetrySettings{
		Endpoint: "127.0.0.1:4318",
		Insecure: true,
	}, "test")
	require.NoError(t, err)
	require.NotNil(t, tp)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}
