package modelserver

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/circuitbreaker"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/config"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/enums"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/httpclient"
	"github.com/spf13/viper"
)

const (
	// DefaultEnvPrefix prefixes every env key read by LoadConfig.
	DefaultEnvPrefix = "MODELSERVER_CLIENT_V1_"

	DefaultDeadlineMS          = 5000
	DefaultLoadBalancingPolicy = "round_robin"

	hostKey                = "HOST"
	portKey                = "PORT"
	schemeKey              = "SCHEME"
	transportKey           = "TRANSPORT"
	deadlineKey            = "DEADLINE_MS"
	plainTextKey           = "PLAINTEXT"
	loadBalancingPolicyKey = "LOAD_BALANCING_POLICY"
	callerIDKey            = "CALLER_ID"
	authTokenKey           = "AUTH_TOKEN"
	maxIdleConnsKey        = "MAX_IDLE_CONNS"
	maxIdleConnsPerHostKey = "MAX_IDLE_CONNS_PER_HOST"
	idleConnTimeoutKey     = "IDLE_CONN_TIMEOUT_IN_MS"
	dialTimeoutKey         = "DIAL_TIMEOUT_IN_MS"
)

type Config struct {
	Transport enums.Transport
	Endpoint  Endpoint
	// DeadlineMS bounds every call, 5000 when unset.
	DeadlineMS int
	// PlainText disables TLS on the gRPC channel. HTTP uses Endpoint.Scheme.
	PlainText           bool
	LoadBalancingPolicy string
	// CallerID and AuthToken are sent on every call when set.
	CallerID       string
	AuthToken      string
	HTTPTransport  *httpclient.TransportConfig
	CircuitBreaker *circuitbreaker.Config
}

// NewConfig returns a config with defaults for the given transport and
// endpoint, e.g. NewConfig(enums.TransportGRPC, "localhost:4000").
func NewConfig(transport enums.Transport, endpoint string) (*Config, error) {
	ep, err := ParseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	conf := &Config{
		Transport:           transport,
		Endpoint:            ep,
		DeadlineMS:          DefaultDeadlineMS,
		PlainText:           true,
		LoadBalancingPolicy: DefaultLoadBalancingPolicy,
	}
	if _, err := validConfigs(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// LoadConfig reads the config from viper keys under prefix, e.g.
// MODELSERVER_CLIENT_V1_HOST. HOST and PORT are required.
func LoadConfig(prefix string) (*Config, error) {
	if !viper.IsSet(prefix + hostKey) {
		return nil, fmt.Errorf("%s%s not set", prefix, hostKey)
	}
	if !viper.IsSet(prefix + portKey) {
		return nil, fmt.Errorf("%s%s not set", prefix, portKey)
	}
	viper.SetDefault(prefix+schemeKey, schemeHTTP)
	viper.SetDefault(prefix+transportKey, enums.TransportHTTP.String())
	viper.SetDefault(prefix+deadlineKey, DefaultDeadlineMS)
	viper.SetDefault(prefix+plainTextKey, true)
	viper.SetDefault(prefix+loadBalancingPolicyKey, DefaultLoadBalancingPolicy)

	transport, err := enums.ParseTransport(viper.GetString(prefix + transportKey))
	if err != nil {
		return nil, err
	}
	port, err := strconv.Atoi(viper.GetString(prefix + portKey))
	if err != nil {
		return nil, fmt.Errorf("%s%s is not a number: %w", prefix, portKey, err)
	}
	cbConfig, err := circuitbreaker.BuildConfig(prefix)
	if err != nil {
		return nil, err
	}
	conf := &Config{
		Transport: transport,
		Endpoint: Endpoint{
			Scheme: viper.GetString(prefix + schemeKey),
			Host:   viper.GetString(prefix + hostKey),
			Port:   port,
		},
		DeadlineMS:          viper.GetInt(prefix + deadlineKey),
		PlainText:           viper.GetBool(prefix + plainTextKey),
		LoadBalancingPolicy: viper.GetString(prefix + loadBalancingPolicyKey),
		CallerID:            viper.GetString(prefix + callerIDKey),
		AuthToken:           viper.GetString(prefix + authTokenKey),
		HTTPTransport: &httpclient.TransportConfig{
			MaxIdleConns:        viper.GetInt(prefix + maxIdleConnsKey),
			MaxIdleConnsPerHost: viper.GetInt(prefix + maxIdleConnsPerHostKey),
			IdleConnTimeoutInMs: viper.GetInt(prefix + idleConnTimeoutKey),
			DialTimeoutInMs:     viper.GetInt(prefix + dialTimeoutKey),
		},
		CircuitBreaker: cbConfig,
	}
	if _, err := validConfigs(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

type fileConfig struct {
	Transport           enums.Transport `yaml:"transport"`
	Endpoint            string          `yaml:"endpoint"`
	DeadlineMS          int             `yaml:"deadline_ms"`
	PlainText           *bool           `yaml:"plain_text"`
	LoadBalancingPolicy string          `yaml:"load_balancing_policy"`
	CallerID            string          `yaml:"caller_id"`
	AuthToken           string          `yaml:"auth_token"`
}

// LoadConfigFromYAML reads a YAML document such as
//
//	transport: grpc
//	endpoint: localhost:4000
//	deadline_ms: 2000
//	auth_token: ${MODELSERVER_TOKEN}
//
// ${VAR} placeholders are resolved from the environment.
func LoadConfigFromYAML(r io.Reader) (*Config, error) {
	var fc fileConfig
	if err := config.Load(&fc, r); err != nil {
		return nil, err
	}
	if fc.Transport == enums.TransportUnknown {
		fc.Transport = enums.TransportHTTP
	}
	conf, err := NewConfig(fc.Transport, fc.Endpoint)
	if err != nil {
		return nil, err
	}
	if fc.DeadlineMS != 0 {
		conf.DeadlineMS = fc.DeadlineMS
	}
	if fc.PlainText != nil {
		conf.PlainText = *fc.PlainText
	}
	if fc.LoadBalancingPolicy != "" {
		conf.LoadBalancingPolicy = fc.LoadBalancingPolicy
	}
	conf.CallerID = fc.CallerID
	conf.AuthToken = fc.AuthToken
	if _, err := validConfigs(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

func validConfigs(conf *Config) (bool, error) {
	if conf == nil {
		return false, fmt.Errorf("config is nil")
	}
	if conf.Transport != enums.TransportHTTP && conf.Transport != enums.TransportGRPC {
		return false, fmt.Errorf("invalid transport %q", conf.Transport)
	}
	if conf.Endpoint.Host == "" {
		return false, fmt.Errorf("host is empty")
	}
	if conf.Endpoint.Port <= 0 || conf.Endpoint.Port > 65535 {
		return false, fmt.Errorf("invalid port %d", conf.Endpoint.Port)
	}
	if conf.Endpoint.Scheme != schemeHTTP && conf.Endpoint.Scheme != schemeHTTPS {
		return false, fmt.Errorf("invalid scheme %q", conf.Endpoint.Scheme)
	}
	if conf.DeadlineMS <= 0 {
		return false, fmt.Errorf("deadline must be positive, got %d", conf.DeadlineMS)
	}
	if conf.CircuitBreaker != nil {
		if err := conf.CircuitBreaker.Validate(); err != nil {
			return false, err
		}
	}
	return true, nil
}
