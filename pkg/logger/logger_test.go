package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{AppName: "test_app", Level: "INFO", Out: &buf}))
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	log.Info().Msg("hello")
	assert.Contains(t, buf.String(), "- [INFO ] -")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "logger_test.go::")
}

func TestInit_DefaultLevel(t *testing.T) {
	require.NoError(t, Init(Options{AppName: "test_app", Out: &bytes.Buffer{}}))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestInit_Invalid(t *testing.T) {
	assert.Error(t, Init(Options{Level: "INFO"}))
	assert.Error(t, Init(Options{AppName: "test_app", Level: "VERBOSE"}))
}

func TestInitFromEnv(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("APP_NAME", "test_app")
	viper.Set("APP_LOG_LEVEL", "DEBUG")
	assert.NotPanics(t, InitFromEnv)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	viper.Set("APP_NAME", "")
	assert.Panics(t, InitFromEnv)
}

func TestInit_RingBuffer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{AppName: "test_app", Level: "info", Out: &buf, RingBufferSize: 1000}))
	log.Info().Msg("buffered")
	require.NoError(t, Close())
	assert.Contains(t, buf.String(), "buffered")
	assert.NoError(t, Close())
}

func TestTraceHook(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	var buf bytes.Buffer
	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))

	l := zerolog.New(&buf).Hook(TraceHook{})
	l.Info().Ctx(ctx).Msg("hello")
	assert.Contains(t, buf.String(), "(0102030405060708090a0b0c0d0e0f10,0102030405060708)")

	buf.Reset()
	l.Info().Msg("no trace")
	assert.Contains(t, buf.String(), `"traceInfo":"(,)"`)
}
