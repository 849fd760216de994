package tracing

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const defaultSampleRatio = 0.1

// Options configures the OTLP exporter.
type Options struct {
	// CollectorEndpoint is host:port of an OTLP/gRPC collector.
	CollectorEndpoint string
	ServiceName       string
	SampleRatio       float64
	Insecure          bool
}

var (
	mu       sync.RWMutex
	provider *sdktrace.TracerProvider
)

// Init installs a global tracer provider. It fails if one is already
// installed; call Shutdown first to replace it.
func Init(ctx context.Context, opts Options) error {
	if opts.CollectorEndpoint == "" {
		return errors.New("collector endpoint is not set")
	}
	if opts.SampleRatio < 0 || opts.SampleRatio > 1 {
		return errors.New("sample ratio must be in [0, 1]")
	}
	mu.RLock()
	installed := provider != nil
	mu.RUnlock()
	if installed {
		return errors.New("tracer provider already installed")
	}

	clientOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(opts.CollectorEndpoint)}
	if opts.Insecure {
		clientOpts = append(clientOpts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(clientOpts...))
	if err != nil {
		return err
	}
	res, err := resource.New(ctx, resource.WithAttributes(
		attribute.String("service.name", opts.ServiceName),
		attribute.String("telemetry.sdk.language", "go"),
	))
	if err != nil {
		return err
	}
	install(sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opts.SampleRatio))),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	))
	log.Info().Str("collector", opts.CollectorEndpoint).Float64("sample_ratio", opts.SampleRatio).
		Msg("tracer provider installed")
	return nil
}

// InitFromEnv reads OTEL_EXPORTER_OTLP_ENDPOINT, OTEL_TRACES_SAMPLER_ARG and
// APP_NAME from viper. Without an endpoint tracing stays a no-op and no
// error is returned.
func InitFromEnv(ctx context.Context) error {
	endpoint := viper.GetString("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		log.Debug().Msg("no OTLP endpoint, tracing disabled")
		return nil
	}
	ratio := defaultSampleRatio
	if viper.IsSet("OTEL_TRACES_SAMPLER_ARG") {
		ratio = viper.GetFloat64("OTEL_TRACES_SAMPLER_ARG")
	}
	return Init(ctx, Options{
		CollectorEndpoint: endpoint,
		ServiceName:       viper.GetString("APP_NAME"),
		SampleRatio:       ratio,
		Insecure:          true,
	})
}

func install(p *sdktrace.TracerProvider) {
	mu.Lock()
	provider = p
	mu.Unlock()
	otel.SetTracerProvider(p)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
}

// GetTracer returns a noop tracer until a provider is installed.
func GetTracer(name string) trace.Tracer {
	mu.RLock()
	defer mu.RUnlock()
	if provider == nil {
		return noop.NewTracerProvider().Tracer(name)
	}
	return provider.Tracer(name)
}

// Shutdown flushes and removes the installed provider.
func Shutdown(ctx context.Context) error {
	mu.Lock()
	p := provider
	provider = nil
	mu.Unlock()
	if p == nil {
		return nil
	}
	return p.Shutdown(ctx)
}
