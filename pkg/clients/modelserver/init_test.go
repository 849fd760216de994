package modelserver

import (
	"testing"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/enums"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetRegistry(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		mu.Lock()
		defer mu.Unlock()
		for transport, client := range registry {
			_ = client.Close()
			delete(registry, transport)
		}
	})
}

func TestInitClient(t *testing.T) {
	resetRegistry(t)
	conf, err := NewConfig(enums.TransportHTTP, "localhost:5000")
	require.NoError(t, err)

	client := InitClient(enums.TransportGRPC, conf)
	assert.IsType(t, &GRPCClient{}, client)
	assert.Same(t, client, GetInstance(enums.TransportGRPC))

	assert.Panics(t, func() { InitClient(enums.TransportGRPC, conf) })
	assert.Panics(t, func() { GetInstance(enums.TransportHTTP) })
}

func TestInitClient_InvalidConfig(t *testing.T) {
	resetRegistry(t)
	assert.Panics(t, func() { InitClient(enums.TransportHTTP, nil) })
	assert.Panics(t, func() { InitClient(enums.TransportHTTP, &Config{}) })
}

func TestInitClientFromEnv(t *testing.T) {
	resetRegistry(t)
	t.Cleanup(viper.Reset)
	viper.Set(DefaultEnvPrefix+"HOST", "localhost")
	viper.Set(DefaultEnvPrefix+"PORT", 5000)
	viper.Set(DefaultEnvPrefix+"TRANSPORT", "grpc")

	client := InitClientFromEnv(enums.TransportHTTP)
	assert.IsType(t, &HTTPClient{}, client)
	assert.Same(t, client, GetInstance(enums.TransportHTTP))
}

func TestInitClient_LeavesCallerConfigAlone(t *testing.T) {
	resetRegistry(t)
	conf, err := NewConfig(enums.TransportHTTP, "localhost:5000")
	require.NoError(t, err)

	assert.IsType(t, &GRPCClient{}, InitClient(enums.TransportGRPC, conf))
	assert.Equal(t, enums.TransportHTTP, conf.Transport)

	assert.IsType(t, &HTTPClient{}, InitClient(enums.TransportHTTP, conf))
	assert.Equal(t, enums.TransportHTTP, conf.Transport)
}
