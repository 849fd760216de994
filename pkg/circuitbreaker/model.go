package circuitbreaker

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the failsafe-go circuit breaker settings. The breaker is
// time based: it opens when FailureRateThreshold percent of at least
// FailureRateMinimumWindow executions fail within FailureRateWindowInMs.
type Config struct {
	// Enabled turns the breaker on. A disabled breaker lets every call through.
	Enabled bool

	// Name identifies the breaker in logs and metrics.
	Name string

	// FailureRateThreshold is a percentage between 1 and 100.
	FailureRateThreshold int

	// FailureRateMinimumWindow is the number of executions needed before the
	// failure rate is evaluated.
	FailureRateMinimumWindow int

	FailureRateWindowInMs int

	// SuccessCountThreshold out of SuccessCountWindow trial executions must
	// succeed in the half-open state for the breaker to close again.
	SuccessCountThreshold int
	SuccessCountWindow    int

	// WithDelayInMS is how long the breaker stays open before going half-open.
	WithDelayInMS int
}

// BuildConfig reads <prefix>CB_* keys from viper. It returns a disabled
// config when <prefix>CB_ENABLED is unset or false.
func BuildConfig(prefix string) (*Config, error) {
	cbConfig := &Config{Enabled: false}
	if !viper.GetBool(prefix + CBEnabled) {
		return cbConfig, nil
	}
	for _, key := range []string{CBFailureRateThreshold, CBFailureRateMinimumWindow, CBFailureRateWindowInMs,
		CBSuccessCountThreshold, CBSuccessCountWindow, CBWithDelayInMS} {
		if !viper.IsSet(prefix + key) {
			return nil, fmt.Errorf("%s%s not set", prefix, key)
		}
	}
	cbConfig.Enabled = true
	cbConfig.Name = viper.GetString(prefix + CBName)
	if cbConfig.Name == "" {
		cbConfig.Name = prefix + "cb"
	}
	cbConfig.FailureRateThreshold = viper.GetInt(prefix + CBFailureRateThreshold)
	cbConfig.FailureRateMinimumWindow = viper.GetInt(prefix + CBFailureRateMinimumWindow)
	cbConfig.FailureRateWindowInMs = viper.GetInt(prefix + CBFailureRateWindowInMs)
	cbConfig.SuccessCountThreshold = viper.GetInt(prefix + CBSuccessCountThreshold)
	cbConfig.SuccessCountWindow = viper.GetInt(prefix + CBSuccessCountWindow)
	cbConfig.WithDelayInMS = viper.GetInt(prefix + CBWithDelayInMS)
	if err := cbConfig.Validate(); err != nil {
		return nil, err
	}
	return cbConfig, nil
}

func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.FailureRateThreshold <= 0 || c.FailureRateThreshold > 100 {
		return fmt.Errorf("circuit breaker %s: failure rate threshold must be in (0, 100], got %d", c.Name, c.FailureRateThreshold)
	}
	if c.FailureRateMinimumWindow <= 0 || c.FailureRateWindowInMs <= 0 {
		return fmt.Errorf("circuit breaker %s: failure rate window is not fully defined", c.Name)
	}
	if c.SuccessCountThreshold <= 0 || c.SuccessCountWindow <= 0 || c.SuccessCountThreshold > c.SuccessCountWindow {
		return fmt.Errorf("circuit breaker %s: invalid success threshold %d/%d", c.Name, c.SuccessCountThreshold, c.SuccessCountWindow)
	}
	if c.WithDelayInMS < 0 {
		return fmt.Errorf("circuit breaker %s: negative delay", c.Name)
	}
	return nil
}
