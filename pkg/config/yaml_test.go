package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	Protocol string `yaml:"protocol" mapstructure:"protocol"`
}

func TestLoad_ResolvesPlaceholders(t *testing.T) {
	t.Setenv("MS_TEST_HOST", "jams.internal")

	var out sample
	err := Load(&out, strings.NewReader("host: ${MS_TEST_HOST}\nport: 4000\nprotocol: grpc\n"))

	require.NoError(t, err)
	assert.Equal(t, sample{Host: "jams.internal", Port: 4000, Protocol: "grpc"}, out)
}

func TestLoad_MissingEnv(t *testing.T) {
	var out sample
	err := Load(&out, strings.NewReader("host: ${MS_TEST_SURELY_UNSET}\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "MS_TEST_SURELY_UNSET")
}

func TestLoad_UnknownField(t *testing.T) {
	var out sample
	err := Load(&out, strings.NewReader("hostname: x\n"))
	assert.Error(t, err)
}

func TestLoad_Empty(t *testing.T) {
	var out sample
	assert.NoError(t, Load(&out, strings.NewReader("")))
	assert.Equal(t, sample{}, out)
}

func TestInit_Viper(t *testing.T) {
	viper.Reset()
	t.Setenv("MS_TEST_PORT", "3000")

	var out sample
	Init(&out, strings.NewReader("host: localhost\nport: ${MS_TEST_PORT}\nprotocol: http\n"))

	assert.Equal(t, sample{Host: "localhost", Port: 3000, Protocol: "http"}, out)
	assert.Equal(t, "localhost", viper.GetString("host"))
}

func TestInit_PanicsOnMissingEnv(t *testing.T) {
	viper.Reset()
	var out sample
	assert.Panics(t, func() {
		Init(&out, strings.NewReader("host: ${MS_TEST_SURELY_UNSET}\n"))
	})
}

func TestInitEnv(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("MS_STORE_BUCKET", "models")

	InitEnv("MS_")
	InitEnv("MS_")

	assert.Equal(t, "models", viper.GetString("store.bucket"))
}
