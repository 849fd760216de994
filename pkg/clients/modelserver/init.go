package modelserver

import (
	"fmt"
	"sync"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/config"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/enums"
	"github.com/rs/zerolog/log"
)

var (
	mu       sync.Mutex
	registry = make(map[enums.Transport]Client)
)

// NewClient returns the binding selected by conf.Transport.
func NewClient(conf *Config) (Client, error) {
	if _, err := validConfigs(conf); err != nil {
		return nil, err
	}
	switch conf.Transport {
	case enums.TransportHTTP:
		return NewHTTPClient(conf)
	case enums.TransportGRPC:
		return NewGRPCClient(conf)
	}
	return nil, fmt.Errorf("unsupported transport %s", conf.Transport)
}

// InitClient creates the process wide client for transport.
// It panics if the client is already initialised or conf is invalid.
func InitClient(transport enums.Transport, conf *Config) Client {
	mu.Lock()
	defer mu.Unlock()
	if registry[transport] != nil {
		log.Panic().Msgf("model server client for transport %s already initialised", transport)
	}
	if conf == nil {
		log.Panic().Msg("model server client config is nil")
	}
	own := *conf
	own.Transport = transport
	client, err := NewClient(&own)
	if err != nil {
		log.Panic().Err(err).Msgf("failed to create model server client for transport %s", transport)
	}
	registry[transport] = client
	return client
}

// InitClientFromEnv is InitClient with the config read from
// MODELSERVER_CLIENT_V1_* keys. The transport argument wins over
// MODELSERVER_CLIENT_V1_TRANSPORT.
func InitClientFromEnv(transport enums.Transport) Client {
	config.InitEnv("")
	conf, err := LoadConfig(DefaultEnvPrefix)
	if err != nil {
		log.Panic().Err(err).Msg("failed to load model server client config")
	}
	return InitClient(transport, conf)
}

func GetInstance(transport enums.Transport) Client {
	mu.Lock()
	defer mu.Unlock()
	client := registry[transport]
	if client == nil {
		log.Panic().Msgf("model server client for transport %s not initialised", transport)
	}
	return client
}
