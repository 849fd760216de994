package tracing

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestGetTracer_NoopWithoutProvider(t *testing.T) {
	_, span := GetTracer("test").Start(context.Background(), "op")
	defer span.End()
	assert.False(t, span.SpanContext().IsValid())
}

func TestInitFromEnv_WithoutEndpoint(t *testing.T) {
	t.Cleanup(viper.Reset)
	require.NoError(t, InitFromEnv(context.Background()))
	assert.NoError(t, Shutdown(context.Background()))
}

func TestInit_Validates(t *testing.T) {
	assert.Error(t, Init(context.Background(), Options{}))
	assert.Error(t, Init(context.Background(), Options{CollectorEndpoint: "localhost:4317", SampleRatio: 2}))
}

func TestGetTracer_UsesInstalledProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	install(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { _ = Shutdown(context.Background()) })

	err := Init(context.Background(), Options{CollectorEndpoint: "localhost:4317", SampleRatio: 1})
	assert.Error(t, err)

	_, span := GetTracer("test").Start(context.Background(), "predict")
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "predict", ended[0].Name())
}
