package httpclient

import (
	"errors"
	"net"
	"net/http"
	"os"
	"regexp"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/circuitbreaker"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/metric"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultDialTimeout         = 30000 // in milliseconds
	defaultKeepAliveTimeout    = 30000 // in milliseconds
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 16
	defaultIdleConnTimeout     = 90000 // in milliseconds
	defaultScheme              = "http"
)

// ErrClosed is returned by Do after Close.
var ErrClosed = errors.New("http client is closed")

type Config struct {
	Scheme      string
	Host        string
	Port        string
	TimeoutInMs int
	CBConfig    *circuitbreaker.Config
	Transport   *TransportConfig
}

type TransportConfig struct {
	DialTimeoutInMs      int
	MaxIdleConns         int
	MaxIdleConnsPerHost  int
	IdleConnTimeoutInMs  int
	KeepAliveTimeoutInMs int
}

type HTTPClient struct {
	CoreClient     *http.Client
	Endpoint       string
	service        string
	circuitBreaker circuitbreaker.CircuitBreaker[*http.Request, *http.Response]

	closeOnce sync.Once
	closed    atomic.Bool
}

type pathPattern struct {
	regex       *regexp.Regexp
	replacement string
}

var patterns = []pathPattern{
	{
		regex:       regexp.MustCompile(`/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`),
		replacement: "/{uuid}",
	},
	{
		regex:       regexp.MustCompile(`/\d+`),
		replacement: "/{id}",
	},
}

// NewConn builds a pooled client. No connection is opened until the first
// request. service names the remote side in metrics.
func NewConn(config *Config, service string) (*HTTPClient, error) {
	if config.Host == "" {
		return nil, errors.New("host is not set")
	}
	if config.Port == "" {
		return nil, errors.New("port is not set")
	}
	if config.TimeoutInMs <= 0 {
		return nil, errors.New("timeout is not set or is negative")
	}
	if config.Scheme == "" {
		config.Scheme = defaultScheme
	}
	return &HTTPClient{
		CoreClient:     getHTTPClient(config),
		Endpoint:       getEndPoint(config),
		service:        service,
		circuitBreaker: circuitbreaker.GetCircuitBreaker[*http.Request, *http.Response](config.CBConfig),
	}, nil
}

func getEndPoint(config *Config) string {
	return config.Scheme + "://" + net.JoinHostPort(config.Host, config.Port)
}

func getHTTPClient(config *Config) *http.Client {
	var tc TransportConfig
	if config.Transport != nil {
		tc = *config.Transport
	}
	return &http.Client{
		Transport: otelhttp.NewTransport(tc.withDefaults().build()),
		Timeout:   time.Duration(config.TimeoutInMs) * time.Millisecond,
	}
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func (t TransportConfig) withDefaults() TransportConfig {
	return TransportConfig{
		DialTimeoutInMs:      orDefault(t.DialTimeoutInMs, defaultDialTimeout),
		MaxIdleConns:         orDefault(t.MaxIdleConns, defaultMaxIdleConns),
		MaxIdleConnsPerHost:  orDefault(t.MaxIdleConnsPerHost, defaultMaxIdleConnsPerHost),
		IdleConnTimeoutInMs:  orDefault(t.IdleConnTimeoutInMs, defaultIdleConnTimeout),
		KeepAliveTimeoutInMs: orDefault(t.KeepAliveTimeoutInMs, defaultKeepAliveTimeout),
	}
}

func (t TransportConfig) build() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   ms(t.DialTimeoutInMs),
		KeepAlive: ms(t.KeepAliveTimeoutInMs),
	}
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.DialContext = dialer.DialContext
	tr.MaxIdleConns = t.MaxIdleConns
	tr.MaxIdleConnsPerHost = t.MaxIdleConnsPerHost
	tr.IdleConnTimeout = ms(t.IdleConnTimeoutInMs)
	log.Debug().Interface("transport", t).Msg("http transport configured")
	return tr
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Do sends req through the circuit breaker, when one is configured, and
// reports latency and count tagged with the normalised path. Only transport
// failures count against the breaker; any HTTP response is a success for it.
// Requests that time out without a response are tagged 504, other transport
// failures 0.
func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	if h.closed.Load() {
		return nil, ErrClosed
	}
	start := time.Now()
	send := h.CoreClient.Do
	if h.circuitBreaker != nil {
		send = func(r *http.Request) (*http.Response, error) {
			return h.circuitBreaker.Execute(r, h.CoreClient.Do)
		}
	}
	resp, err := send(req)

	status := 0
	switch {
	case resp != nil:
		status = resp.StatusCode
	case os.IsTimeout(err):
		status = http.StatusGatewayTimeout
	}
	h.emitMetrics(req, start, status)
	return resp, err
}

// Close drops idle connections. Only the first call has an effect.
func (h *HTTPClient) Close() error {
	h.closeOnce.Do(func() {
		h.closed.Store(true)
		h.CoreClient.CloseIdleConnections()
	})
	return nil
}

func (h *HTTPClient) IsClosed() bool {
	return h.closed.Load()
}

func (h *HTTPClient) emitMetrics(req *http.Request, startTime time.Time, statusCode int) {
	tags := metric.BuildExternalHTTPServiceTags(h.service, getNormalizedPath(req.URL.Path), req.Method, statusCode)
	metric.Timing(metric.ExternalApiRequestLatency, time.Since(startTime), tags)
	metric.Incr(metric.ExternalApiRequestCount, tags)
}

func getNormalizedPath(path string) string {
	normalizedPath := path
	for _, pattern := range patterns {
		normalizedPath = pattern.regex.ReplaceAllString(normalizedPath, pattern.replacement)
	}
	return normalizedPath
}
