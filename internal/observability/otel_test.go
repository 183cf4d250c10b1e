package observability

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"agency-backoffice/internal/config/configs"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInitTracingDisabled(t *testing.T) {
	before := otel.GetTracerProvider()

	shutdown := InitTracing(context.Background(), discard(), "test", configs.Otel{Enabled: false})

	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
	assert.Equal(t, before, otel.GetTracerProvider())
}

func TestInitTracingStdout(t *testing.T) {
	before := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(before) })

	shutdown := InitTracing(context.Background(), discard(), "test", configs.Otel{
		Enabled:     true,
		Exporter:    "stdout",
		SampleRatio: 0,
		ServiceName: "agency-backoffice-test",
	})

	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok)
	assert.NoError(t, shutdown(context.Background()))
}
