package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	shutdown, err := Setup(context.Background())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestResource_ServiceName(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "")
	v, ok := Resource().Set().Value(semconv.ServiceNameKey)
	require.True(t, ok)
	assert.Equal(t, DefaultServiceName, v.AsString())

	t.Setenv("OTEL_SERVICE_NAME", "kiosk-hallway")
	v, _ = Resource().Set().Value(semconv.ServiceNameKey)
	assert.Equal(t, "kiosk-hallway", v.AsString())
}

func TestNewProvider_RecordsSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := NewProvider(sdktrace.WithSpanProcessor(rec))
	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "op", spans[0].Name())
	v, ok := spans[0].Resource().Set().Value(semconv.ServiceNameKey)
	require.True(t, ok)
	assert.NotEmpty(t, v.AsString())
	require.NoError(t, tp.Shutdown(context.Background()))
}
