package grpcclient

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/circuitbreaker"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/metric"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const (
	resolverScheme             = "dns:///"
	defaultLoadBalancingPolicy = "round_robin"
)

// ErrClosed is returned by Invoke and NewStream after Close.
var ErrClosed = errors.New("grpc client is closed")

type Config struct {
	Host                string
	Port                string
	DeadLine            int
	LoadBalancingPolicy string
	PlainText           bool
	CBConfig            *circuitbreaker.Config
}

// GRPCClient wraps a grpc.ClientConn with metrics and an optional circuit
// breaker. It implements grpc.ClientConnInterface so generated stubs can be
// built on top of it.
type GRPCClient struct {
	Conn     *grpc.ClientConn
	DeadLine int64
	service  string
	breaker  circuitbreaker.ManualCircuitBreaker

	closeOnce sync.Once
	closed    atomic.Bool
}

var _ grpc.ClientConnInterface = (*GRPCClient)(nil)

// NewConn creates a lazily connected client; no network I/O happens until
// the first call. service names the remote side in metrics.
func NewConn(config *Config, service string) (*GRPCClient, error) {
	if config.Host == "" {
		return nil, errors.New("host is not set")
	}
	if config.Port == "" {
		return nil, errors.New("port is not set")
	}
	if config.DeadLine <= 0 {
		return nil, errors.New("deadline is not set or is negative")
	}
	if config.LoadBalancingPolicy == "" {
		log.Debug().Msgf("Load balancing policy is not set for %s. Setting it to round robin", config.Host)
		config.LoadBalancingPolicy = defaultLoadBalancingPolicy
	}

	var creds credentials.TransportCredentials
	if config.PlainText {
		creds = insecure.NewCredentials()
	} else {
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}
	conn, err := grpc.NewClient(resolverScheme+net.JoinHostPort(config.Host, config.Port),
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultServiceConfig(`{"loadBalancingPolicy":"`+config.LoadBalancingPolicy+`"}`),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, err
	}
	return &GRPCClient{
		Conn:     conn,
		DeadLine: int64(config.DeadLine),
		service:  service,
		breaker:  circuitbreaker.GetManualCircuitBreaker(config.CBConfig),
	}, nil
}

// Invoke is a wrapper around grpc.ClientConn.Invoke that emits latency and
// count metrics per method and status code.
func (c *GRPCClient) Invoke(ctx context.Context, method string, args any, reply any, opts ...grpc.CallOption) error {
	if c.closed.Load() {
		return ErrClosed
	}
	if !c.breaker.IsAllowed() {
		metric.Incr(metric.ExternalApiRequestCount, metric.BuildExternalGRPCServiceTags(c.service, method, int(codes.Unavailable)))
		return status.Error(codes.Unavailable, "circuit breaker is open")
	}
	startTime := time.Now()
	err := c.Conn.Invoke(ctx, method, args, reply, opts...)
	code := status.Code(err)
	if isInfraFailure(code) {
		c.breaker.RecordFailure()
	} else {
		c.breaker.RecordSuccess()
	}
	tags := metric.BuildExternalGRPCServiceTags(c.service, method, int(code))
	metric.Timing(metric.ExternalApiRequestLatency, time.Since(startTime), tags)
	metric.Incr(metric.ExternalApiRequestCount, tags)
	return err
}

func (c *GRPCClient) NewStream(ctx context.Context, desc *grpc.StreamDesc, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	return c.Conn.NewStream(ctx, desc, method, opts...)
}

// Close releases the connection. Only the first call closes it; later calls
// return nil.
func (c *GRPCClient) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		err = c.Conn.Close()
	})
	return err
}

func (c *GRPCClient) IsClosed() bool {
	return c.closed.Load()
}

// isInfraFailure reports whether a code means the server could not serve the
// call at all. Application errors do not count against the breaker.
func isInfraFailure(code codes.Code) bool {
	switch code {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return true
	}
	return false
}
