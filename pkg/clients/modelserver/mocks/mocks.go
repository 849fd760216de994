package mocks

import (
	"context"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/clients/modelserver"
	"github.com/stretchr/testify/mock"
)

// Client is a testify mock of modelserver.Client.
type Client struct {
	mock.Mock
}

var _ modelserver.Client = (*Client)(nil)

func (m *Client) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Client) Predict(ctx context.Context, modelName string, input modelserver.PredictionInput) (modelserver.Prediction, error) {
	args := m.Called(ctx, modelName, input)
	if args.Get(0) == nil {
		return modelserver.Prediction{}, args.Error(1)
	}
	return args.Get(0).(modelserver.Prediction), args.Error(1)
}

func (m *Client) AddModel(ctx context.Context, modelName string) error {
	args := m.Called(ctx, modelName)
	return args.Error(0)
}

func (m *Client) UpdateModel(ctx context.Context, modelName string) error {
	args := m.Called(ctx, modelName)
	return args.Error(0)
}

func (m *Client) DeleteModel(ctx context.Context, modelName string) error {
	args := m.Called(ctx, modelName)
	return args.Error(0)
}

func (m *Client) GetModels(ctx context.Context) (*modelserver.ModelCatalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*modelserver.ModelCatalog), args.Error(1)
}

func (m *Client) Close() error {
	args := m.Called()
	return args.Error(0)
}
