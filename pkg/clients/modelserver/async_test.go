package modelserver_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/api"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/clients/modelserver"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/clients/modelserver/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAsyncClient_BoundsInFlight(t *testing.T) {
	var running, peak atomic.Int64
	client := &mocks.Client{}
	client.On("HealthCheck", mock.Anything).Run(func(mock.Arguments) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		running.Add(-1)
	}).Return(nil)

	async := modelserver.NewAsyncClient(client, 3)
	futures := make([]*modelserver.Future[struct{}], 12)
	for i := range futures {
		futures[i] = async.HealthCheck(context.Background())
	}
	for _, f := range futures {
		_, err := f.Await(context.Background())
		require.NoError(t, err)
	}
	assert.LessOrEqual(t, peak.Load(), int64(3))
	client.AssertNumberOfCalls(t, "HealthCheck", 12)
}

func TestAsyncClient_PassesResults(t *testing.T) {
	catalog := &modelserver.ModelCatalog{Total: 1, Models: []modelserver.ModelMetadata{{Name: "penguins"}}}
	notFound := api.NewNotFoundError("delete_model", "model penguins is not loaded")
	client := &mocks.Client{}
	client.On("GetModels", mock.Anything).Return(catalog, nil)
	client.On("DeleteModel", mock.Anything, "penguins").Return(notFound)
	client.On("AddModel", mock.Anything, "catboost-penguins").Return(nil)
	client.On("UpdateModel", mock.Anything, "catboost-penguins").Return(nil)
	client.On("Predict", mock.Anything, "penguins", modelserver.PredictionInput(`{"a":[1]}`)).
		Return(modelserver.NewPrediction([][]float64{{0.2, 0.8}}), nil)
	client.On("Close").Return(nil)

	async := modelserver.NewAsyncClient(client, 0)
	ctx := context.Background()

	got, err := async.GetModels(ctx).Await(ctx)
	require.NoError(t, err)
	assert.Same(t, catalog, got)

	_, err = async.DeleteModel(ctx, "penguins").Await(ctx)
	assert.True(t, errors.Is(err, api.ErrNotFound))

	_, err = async.AddModel(ctx, "catboost-penguins").Await(ctx)
	assert.NoError(t, err)
	_, err = async.UpdateModel(ctx, "catboost-penguins").Await(ctx)
	assert.NoError(t, err)

	p, err := async.Predict(ctx, "penguins", `{"a":[1]}`).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, p.ArgMax())

	assert.Same(t, client, async.Client())
	assert.NoError(t, async.Close())
	client.AssertExpectations(t)
}

func TestAsyncClient_RecoversPanic(t *testing.T) {
	client := &mocks.Client{}
	client.On("HealthCheck", mock.Anything).Panic("boom")

	async := modelserver.NewAsyncClient(client, 1)
	_, err := async.HealthCheck(context.Background()).Await(context.Background())
	require.Error(t, err)
	assert.Equal(t, api.KindUnknown, api.KindOf(err))

	client.ExpectedCalls = nil
	client.On("HealthCheck", mock.Anything).Return(nil)
	_, err = async.HealthCheck(context.Background()).Await(context.Background())
	assert.NoError(t, err)
}

func TestAsyncClient_CanceledBeforeSlot(t *testing.T) {
	started := make(chan struct{})
	block := make(chan struct{})
	client := &mocks.Client{}
	client.On("HealthCheck", mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-block
	}).Return(nil).Once()

	async := modelserver.NewAsyncClient(client, 1)
	first := async.HealthCheck(context.Background())
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	second := async.HealthCheck(ctx)
	cancel()
	_, err := second.Await(context.Background())
	assert.True(t, errors.Is(err, api.ErrCanceled), "got %v", err)

	close(block)
	_, err = first.Await(context.Background())
	assert.NoError(t, err)
}
