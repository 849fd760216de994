package modelserver

import "context"

// Client is the transport independent API of a model server. HTTPClient and
// GRPCClient implement it; pick one with NewClient.
//
// Every call is bounded by the configured deadline unless ctx expires first.
// Calls are never retried. Failures are always *api.Error values.
type Client interface {
	HealthCheck(ctx context.Context) error
	Predict(ctx context.Context, modelName string, input PredictionInput) (Prediction, error)
	// AddModel loads a model from the server's model store. The name is
	// prefixed with its framework, e.g. "tensorflow-my_model".
	AddModel(ctx context.Context, modelName string) error
	UpdateModel(ctx context.Context, modelName string) error
	// DeleteModel unloads a model. The name is not prefixed.
	DeleteModel(ctx context.Context, modelName string) error
	GetModels(ctx context.Context) (*ModelCatalog, error)
	// Close releases the connection. It is safe to call more than once.
	Close() error
}
