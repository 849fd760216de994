package metric

import (
	"errors"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	ExternalApiRequestCount   = "external_api_request_count"
	ExternalApiRequestLatency = "external_api_request_latency"
	ModelServerClientCount    = "modelserver_client_request_count"
	ModelServerClientLatency  = "modelserver_client_request_latency"
	AsyncInFlight             = "modelserver_client_async_in_flight"
	CircuitBreakerStateChange = "modelserver_client_cb_state_changed"
	BundleUploadLatency       = "modelserver_bundle_upload_latency"

	defaultStatsdAddress = "localhost:8125"
)

// Options configures the statsd sink.
type Options struct {
	Address      string
	SamplingRate float64
	Env          string
	Service      string
}

type sink struct {
	client  statsd.ClientInterface
	rate    float64
	service string
}

var (
	mu      sync.RWMutex
	current = sink{client: &statsd.NoOpClient{}, rate: 1}
)

// Init points the package at a statsd agent. Until it is called every
// metric is discarded.
func Init(opts Options) error {
	if opts.Address == "" {
		opts.Address = defaultStatsdAddress
	}
	if opts.SamplingRate <= 0 || opts.SamplingRate > 1 {
		return errors.New("sampling rate must be in (0, 1]")
	}
	client, err := statsd.New(opts.Address, statsd.WithTags(globalTags(opts)))
	if err != nil {
		return err
	}
	SetClient(client, opts.SamplingRate, opts.Service)
	log.Info().Str("address", opts.Address).Float64("sampling_rate", opts.SamplingRate).
		Msg("metrics client initialized")
	return nil
}

// globalTags are attached by the statsd client. The service tag is added
// per metric in emit so a client installed with SetClient carries it too.
func globalTags(opts Options) []string {
	return []string{TagAsString(TagEnv, opts.Env)}
}

// InitFromEnv calls Init with STATSD_ADDRESS, APP_METRIC_SAMPLING_RATE,
// APP_ENV and APP_NAME read from viper.
func InitFromEnv() error {
	opts := Options{
		Address:      viper.GetString("STATSD_ADDRESS"),
		SamplingRate: 1,
		Env:          viper.GetString("APP_ENV"),
		Service:      viper.GetString("APP_NAME"),
	}
	if viper.IsSet("APP_METRIC_SAMPLING_RATE") {
		opts.SamplingRate = viper.GetFloat64("APP_METRIC_SAMPLING_RATE")
	}
	return Init(opts)
}

// SetClient swaps the sink. The previous client is closed.
func SetClient(client statsd.ClientInterface, samplingRate float64, service string) {
	mu.Lock()
	prev := current.client
	current = sink{client: client, rate: samplingRate, service: service}
	mu.Unlock()
	if prev != nil && prev != client {
		_ = prev.Close()
	}
}

func emit(kind string, tags []string, send func(statsd.ClientInterface, []string, float64) error) {
	mu.RLock()
	s := current
	mu.RUnlock()
	if s.client == nil {
		return
	}
	if s.service != "" {
		tags = append(tags, TagAsString(TagService, s.service))
	}
	if err := send(s.client, tags, s.rate); err != nil {
		log.Debug().Err(err).Str("kind", kind).Msg("statsd write failed")
	}
}

func Timing(name string, value time.Duration, tags []string) {
	emit("timing", tags, func(c statsd.ClientInterface, t []string, rate float64) error {
		return c.Timing(name, value, t, rate)
	})
}

func Count(name string, value int64, tags []string) {
	emit("count", tags, func(c statsd.ClientInterface, t []string, rate float64) error {
		return c.Count(name, value, t, rate)
	})
}

func Incr(name string, tags []string) {
	Count(name, 1, tags)
}

func Gauge(name string, value float64, tags []string) {
	emit("gauge", tags, func(c statsd.ClientInterface, t []string, rate float64) error {
		return c.Gauge(name, value, t, rate)
	})
}
