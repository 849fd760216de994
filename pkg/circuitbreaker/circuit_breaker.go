package circuitbreaker

import (
	fscb "github.com/failsafe-go/failsafe-go/circuitbreaker"
)

// ErrOpen is returned by Execute while the breaker rejects calls.
var ErrOpen = fscb.ErrOpen

// CircuitBreaker guards a call that can be passed in as a closure.
type CircuitBreaker[Request any, Response any] interface {
	Execute(request Request, task func(Request) (Response, error)) (Response, error)
}

// ManualCircuitBreaker is the permit API for calls that cannot be wrapped in
// a closure, e.g. inside a grpc.ClientConnInterface. The caller asks
// IsAllowed first and reports the outcome with RecordSuccess or
// RecordFailure.
type ManualCircuitBreaker interface {
	IsAllowed() bool
	RecordSuccess()
	RecordFailure()
}

// GetCircuitBreaker returns nil for a nil or disabled config.
func GetCircuitBreaker[Request, Response any](config *Config) CircuitBreaker[Request, Response] {
	if config == nil || !config.Enabled {
		return nil
	}
	return &executor[Request, Response]{breaker: newFailsafeBreaker[Response](config)}
}

// GetManualCircuitBreaker never returns nil. A disabled config yields a
// breaker that is always closed.
func GetManualCircuitBreaker(config *Config) ManualCircuitBreaker {
	if config == nil || !config.Enabled {
		return alwaysClosed{}
	}
	return &permitBreaker{breaker: newFailsafeBreaker[any](config)}
}
