package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/metric"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/trace"
)

const (
	traceInfoField       = "traceInfo"
	defaultLevel         = zerolog.WarnLevel
	defaultDrainInterval = 5 * time.Millisecond
	droppedLogsMetric    = "log_rb_dropped"
)

// Options configures the global logger.
type Options struct {
	AppName string
	// Level is one of debug, info, warn, error, fatal, panic or disabled.
	// Empty means warn.
	Level string
	// Out defaults to os.Stdout.
	Out io.Writer
	// RingBufferSize > 0 puts a non blocking diode writer in front of Out.
	// Lines are dropped, and counted, when the buffer is full.
	RingBufferSize int
	DrainInterval  time.Duration
}

var (
	mu     sync.Mutex
	closer io.Closer
)

// Init replaces the global zerolog logger. Calling it again reconfigures the
// logger and flushes the previous ring buffer.
func Init(opts Options) error {
	if opts.AppName == "" {
		return errors.New("app name is not set")
	}
	level, err := parseLevel(opts.Level)
	if err != nil {
		return err
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	if opts.RingBufferSize > 0 {
		out = newRingBuffer(out, opts.RingBufferSize, opts.DrainInterval)
		closer = out.(io.Closer)
	}

	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		return fmt.Sprintf("[%s::%d]", filepath.Base(file), line)
	}
	log.Logger = zerolog.New(consoleWriter(out)).
		With().Timestamp().Str("app", opts.AppName).Caller().Logger().
		Hook(TraceHook{})
	log.Debug().Str("level", level.String()).Msg("logger initialized")
	return nil
}

// InitFromEnv calls Init with APP_NAME, APP_LOG_LEVEL, LOG_RB_SIZE and
// LOG_RB_DRAINING_INTERVAL read from viper. It panics when they are invalid.
func InitFromEnv() {
	opts := Options{
		AppName:        viper.GetString("APP_NAME"),
		Level:          viper.GetString("APP_LOG_LEVEL"),
		RingBufferSize: viper.GetInt("LOG_RB_SIZE"),
		DrainInterval:  viper.GetDuration("LOG_RB_DRAINING_INTERVAL"),
	}
	if err := Init(opts); err != nil {
		panic(fmt.Errorf("failed to init logger: %w", err))
	}
}

// Close flushes the ring buffer, if one is configured.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

func parseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return defaultLevel, nil
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || l == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", level)
	}
	return l, nil
}

func newRingBuffer(out io.Writer, size int, interval time.Duration) diode.Writer {
	if interval <= 0 {
		interval = defaultDrainInterval
	}
	var warnOnce sync.Once
	return diode.NewWriter(out, size, interval, func(missed int) {
		metric.Count(droppedLogsMetric, int64(missed), nil)
		warnOnce.Do(func() {
			fmt.Fprintln(os.Stderr, "logger: ring buffer full, dropping lines")
		})
	})
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: "2006-01-02 15:04:05.000",
		FormatLevel: func(i any) string {
			return strings.ToUpper(fmt.Sprintf("- [%-5s] -", i))
		},
		FieldsExclude: []string{traceInfoField},
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.CallerFieldName,
			traceInfoField,
			zerolog.MessageFieldName,
		},
	}
}

// TraceHook adds "(trace id,span id)" of the event's context. Attach the
// context with Ctx(ctx) on the event.
type TraceHook struct{}

func (TraceHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	sc := trace.SpanFromContext(e.GetCtx()).SpanContext()
	var traceID, spanID string
	if sc.HasTraceID() {
		traceID = sc.TraceID().String()
	}
	if sc.HasSpanID() {
		spanID = sc.SpanID().String()
	}
	e.Str(traceInfoField, "("+traceID+","+spanID+")")
}
