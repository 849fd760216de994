package circuitbreaker

import (
	"time"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/metric"
	"github.com/failsafe-go/failsafe-go"
	fscb "github.com/failsafe-go/failsafe-go/circuitbreaker"
	"github.com/rs/zerolog/log"
)

const (
	tagBreaker   = "breaker"
	tagFromState = "from_state"
	tagToState   = "to_state"
)

func newFailsafeBreaker[R any](config *Config) fscb.CircuitBreaker[R] {
	name := config.Name
	return fscb.Builder[R]().
		WithFailureRateThreshold(
			uint(config.FailureRateThreshold),
			uint(config.FailureRateMinimumWindow),
			time.Duration(config.FailureRateWindowInMs)*time.Millisecond).
		WithSuccessThresholdRatio(uint(config.SuccessCountThreshold), uint(config.SuccessCountWindow)).
		WithDelay(time.Duration(config.WithDelayInMS) * time.Millisecond).
		OnStateChanged(func(event fscb.StateChangedEvent) {
			log.Warn().
				Str(tagBreaker, name).
				Stringer(tagFromState, event.OldState).
				Stringer(tagToState, event.NewState).
				Msg("circuit breaker changed state")
			metric.Incr(metric.CircuitBreakerStateChange, metric.BuildTag(
				metric.NewTag(tagBreaker, name),
				metric.NewTag(tagFromState, event.OldState.String()),
				metric.NewTag(tagToState, event.NewState.String()),
			))
		}).
		Build()
}

type executor[Request, Response any] struct {
	breaker fscb.CircuitBreaker[Response]
}

// Execute runs task unless the breaker is open, in which case ErrOpen is
// returned and task is skipped. Any error from task counts as a failure.
func (e *executor[Request, Response]) Execute(request Request, task func(Request) (Response, error)) (Response, error) {
	return failsafe.Get(func() (Response, error) {
		return task(request)
	}, e.breaker)
}

type permitBreaker struct {
	breaker fscb.CircuitBreaker[any]
}

func (p *permitBreaker) IsAllowed() bool {
	return p.breaker.TryAcquirePermit()
}

func (p *permitBreaker) RecordSuccess() {
	p.breaker.RecordSuccess()
}

func (p *permitBreaker) RecordFailure() {
	p.breaker.RecordFailure()
}

// alwaysClosed is the breaker of a disabled config.
type alwaysClosed struct{}

func (alwaysClosed) IsAllowed() bool { return true }
func (alwaysClosed) RecordSuccess()  {}
func (alwaysClosed) RecordFailure()  {}
