package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSampleRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: defaultSampleRate},
		{in: -1, want: defaultSampleRate},
		{in: 1.5, want: defaultSampleRate},
		{in: 0.25, want: 0.25},
		{in: 1, want: 1},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, sampleRate(tt.in), 1e-9)
	}
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, TraceID(context.Background()))

	provider := sdktrace.NewTracerProvider(sdktrace.WithSampler(sdktrace.AlwaysSample()))
	ctx, span := provider.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	assert.Len(t, TraceID(ctx), 32)
}
