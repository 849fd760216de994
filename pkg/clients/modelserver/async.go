package modelserver

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/api"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/metric"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
)

// DefaultMaxInFlight bounds an AsyncClient built with a non positive limit.
const DefaultMaxInFlight = 64

// Future holds the result of a call started by AsyncClient.
type Future[T any] struct {
	op   string
	done chan struct{}
	val  T
	err  error
}

func newFuture[T any](op string) *Future[T] {
	return &Future[T]{op: op, done: make(chan struct{})}
}

func (f *Future[T]) complete(val T, err error) {
	f.val, f.err = val, err
	close(f.done)
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the call finishes or ctx is done. Giving up on ctx does
// not cancel the call; it still runs to completion under its own deadline.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	default:
	}
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, api.FromTransportError(f.op, ctx.Err())
	}
}

// AsyncClient runs the calls of a blocking Client on goroutines. Many
// futures may share one AsyncClient; at most maxInFlight calls run at once
// and the rest wait for a slot.
type AsyncClient struct {
	client   Client
	sem      *semaphore.Weighted
	inFlight atomic.Int64
}

func NewAsyncClient(client Client, maxInFlight int64) *AsyncClient {
	if maxInFlight <= 0 {
		maxInFlight = DefaultMaxInFlight
	}
	return &AsyncClient{client: client, sem: semaphore.NewWeighted(maxInFlight)}
}

// Client returns the wrapped blocking client.
func (a *AsyncClient) Client() Client {
	return a.client
}

func (a *AsyncClient) HealthCheck(ctx context.Context) *Future[struct{}] {
	return submit(a, ctx, opHealthCheck, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, a.client.HealthCheck(ctx)
	})
}

func (a *AsyncClient) Predict(ctx context.Context, modelName string, input PredictionInput) *Future[Prediction] {
	return submit(a, ctx, opPredict, func(ctx context.Context) (Prediction, error) {
		return a.client.Predict(ctx, modelName, input)
	})
}

func (a *AsyncClient) AddModel(ctx context.Context, modelName string) *Future[struct{}] {
	return submit(a, ctx, opAddModel, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, a.client.AddModel(ctx, modelName)
	})
}

func (a *AsyncClient) UpdateModel(ctx context.Context, modelName string) *Future[struct{}] {
	return submit(a, ctx, opUpdateModel, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, a.client.UpdateModel(ctx, modelName)
	})
}

func (a *AsyncClient) DeleteModel(ctx context.Context, modelName string) *Future[struct{}] {
	return submit(a, ctx, opDeleteModel, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, a.client.DeleteModel(ctx, modelName)
	})
}

func (a *AsyncClient) GetModels(ctx context.Context) *Future[*ModelCatalog] {
	return submit(a, ctx, opGetModels, func(ctx context.Context) (*ModelCatalog, error) {
		return a.client.GetModels(ctx)
	})
}

// Close closes the wrapped client. Calls already running finish with a
// connection failure or their result, whichever comes first.
func (a *AsyncClient) Close() error {
	return a.client.Close()
}

func submit[T any](a *AsyncClient, ctx context.Context, op string, fn func(ctx context.Context) (T, error)) *Future[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	f := newFuture[T](op)
	go func() {
		var zero T
		if err := a.sem.Acquire(ctx, 1); err != nil {
			f.complete(zero, api.FromTransportError(op, err))
			return
		}
		metric.Gauge(metric.AsyncInFlight, float64(a.inFlight.Add(1)), nil)
		defer func() {
			metric.Gauge(metric.AsyncInFlight, float64(a.inFlight.Add(-1)), nil)
			a.sem.Release(1)
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("op", op).Msg("panic in async model server call")
				f.complete(zero, &api.Error{Kind: api.KindUnknown, Op: op, Message: fmt.Sprintf("panic: %v", r)})
			}
		}()
		val, err := fn(ctx)
		f.complete(val, err)
	}()
	return f
}
