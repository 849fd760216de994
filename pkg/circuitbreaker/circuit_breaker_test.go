package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prefix = "MODELSERVER_TEST_"

func enabledConfig() *Config {
	return &Config{
		Enabled:                  true,
		Name:                     "test",
		FailureRateThreshold:     50,
		FailureRateMinimumWindow: 4,
		FailureRateWindowInMs:    10_000,
		SuccessCountThreshold:    1,
		SuccessCountWindow:       1,
		WithDelayInMS:            3_600_000,
	}
}

func TestBuildConfig_DisabledByDefault(t *testing.T) {
	viper.Reset()
	cfg, err := BuildConfig(prefix)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
}

func TestBuildConfig_Enabled(t *testing.T) {
	viper.Reset()
	viper.Set(prefix+CBEnabled, true)
	viper.Set(prefix+CBFailureRateThreshold, 50)
	viper.Set(prefix+CBFailureRateMinimumWindow, 10)
	viper.Set(prefix+CBFailureRateWindowInMs, 1000)
	viper.Set(prefix+CBSuccessCountThreshold, 3)
	viper.Set(prefix+CBSuccessCountWindow, 5)
	viper.Set(prefix+CBWithDelayInMS, 200)

	cfg, err := BuildConfig(prefix)

	require.NoError(t, err)
	assert.Equal(t, &Config{
		Enabled:                  true,
		Name:                     prefix + "cb",
		FailureRateThreshold:     50,
		FailureRateMinimumWindow: 10,
		FailureRateWindowInMs:    1000,
		SuccessCountThreshold:    3,
		SuccessCountWindow:       5,
		WithDelayInMS:            200,
	}, cfg)
}

func TestBuildConfig_MissingKey(t *testing.T) {
	viper.Reset()
	viper.Set(prefix+CBEnabled, true)
	viper.Set(prefix+CBFailureRateThreshold, 50)

	_, err := BuildConfig(prefix)
	assert.ErrorContains(t, err, CBFailureRateMinimumWindow)
}

func TestConfig_Validate(t *testing.T) {
	cfg := enabledConfig()
	assert.NoError(t, cfg.Validate())

	cfg.FailureRateThreshold = 120
	assert.Error(t, cfg.Validate())

	cfg = enabledConfig()
	cfg.SuccessCountThreshold = 5
	assert.Error(t, cfg.Validate())

	assert.NoError(t, (&Config{}).Validate())
}

func TestGetCircuitBreaker_Disabled(t *testing.T) {
	assert.Nil(t, GetCircuitBreaker[int, int](nil))
	assert.Nil(t, GetCircuitBreaker[int, int](&Config{}))
	assert.True(t, GetManualCircuitBreaker(nil).IsAllowed())
}

func TestGetCircuitBreaker_OpensAfterFailures(t *testing.T) {
	cb := GetCircuitBreaker[int, int](enabledConfig())
	require.NotNil(t, cb)

	boom := errors.New("boom")
	for i := 0; i < 4; i++ {
		_, err := cb.Execute(i, func(int) (int, error) { return 0, boom })
		assert.ErrorIs(t, err, boom)
	}

	called := false
	_, err := cb.Execute(5, func(int) (int, error) {
		called = true
		return 1, nil
	})
	assert.ErrorIs(t, err, ErrOpen)
	assert.False(t, called)
}

func TestGetManualCircuitBreaker_OpensAfterFailures(t *testing.T) {
	cb := GetManualCircuitBreaker(enabledConfig())
	assert.True(t, cb.IsAllowed())
	for i := 0; i < 4; i++ {
		cb.RecordFailure()
	}
	assert.False(t, cb.IsAllowed())
}

func TestGetManualCircuitBreaker_HalfOpenAfterDelay(t *testing.T) {
	cfg := enabledConfig()
	cfg.WithDelayInMS = 50
	cb := GetManualCircuitBreaker(cfg)
	for i := 0; i < 4; i++ {
		cb.RecordFailure()
	}
	assert.False(t, cb.IsAllowed())

	assert.Eventually(t, cb.IsAllowed, time.Second, 10*time.Millisecond)
	cb.RecordSuccess()
	assert.True(t, cb.IsAllowed())
}

func TestAlwaysClosed(t *testing.T) {
	cb := GetManualCircuitBreaker(&Config{Enabled: false})
	for i := 0; i < 10; i++ {
		cb.RecordFailure()
	}
	assert.True(t, cb.IsAllowed())
	assert.NotPanics(t, cb.RecordSuccess)
}

func TestGetCircuitBreaker_PassesResult(t *testing.T) {
	cb := GetCircuitBreaker[string, int](enabledConfig())
	got, err := cb.Execute("abc", func(s string) (int, error) { return len(s), nil })
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}
