package modelserver_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/Meesho/BharatMLStack/modelserver-client/internal/fakeserver"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/api"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/clients/modelserver"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var transports = []enums.Transport{enums.TransportHTTP, enums.TransportGRPC}

func startServer(t *testing.T) *fakeserver.Server {
	t.Helper()
	server, err := fakeserver.Start()
	require.NoError(t, err)
	t.Cleanup(server.Close)
	return server
}

func newClient(t *testing.T, transport enums.Transport, addr string, deadlineMS int) modelserver.Client {
	t.Helper()
	conf, err := modelserver.NewConfig(transport, addr)
	require.NoError(t, err)
	conf.DeadlineMS = deadlineMS
	conf.CallerID = "client-test"
	client, err := modelserver.NewClient(conf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// unusedAddr returns a local address nothing is listening on.
func unusedAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func penguinInput(t *testing.T, records int) modelserver.PredictionInput {
	t.Helper()
	lengths := make([]any, records)
	islands := make([]any, records)
	for i := range lengths {
		lengths[i] = 39.1 + float64(i)
		islands[i] = "Biscoe"
	}
	input, err := modelserver.NewPredictionInput(map[string][]any{"bill_length_mm": lengths, "island": islands})
	require.NoError(t, err)
	return input
}

func TestNewClient_SelectsBinding(t *testing.T) {
	conf, err := modelserver.NewConfig(enums.TransportHTTP, "localhost:5000")
	require.NoError(t, err)
	client, err := modelserver.NewClient(conf)
	require.NoError(t, err)
	assert.IsType(t, &modelserver.HTTPClient{}, client)

	conf.Transport = enums.TransportGRPC
	client, err = modelserver.NewClient(conf)
	require.NoError(t, err)
	assert.IsType(t, &modelserver.GRPCClient{}, client)

	conf.Transport = enums.TransportUnknown
	_, err = modelserver.NewClient(conf)
	assert.Error(t, err)
}

func TestClient_ModelLifecycle(t *testing.T) {
	for _, transport := range transports {
		t.Run(transport.String(), func(t *testing.T) {
			server := startServer(t)
			client := newClient(t, transport, server.Addr(), 2000)
			ctx := context.Background()

			require.NoError(t, client.HealthCheck(ctx))
			assert.Equal(t, "client-test", server.LastCallerID())

			catalog, err := client.GetModels(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, catalog.Total)
			assert.Empty(t, catalog.Models)

			require.NoError(t, client.AddModel(ctx, "catboost-penguins"))
			require.NoError(t, client.AddModel(ctx, "tensorflow-mnist"))

			err = client.AddModel(ctx, "catboost-penguins")
			assert.True(t, errors.Is(err, api.ErrAlreadyExists), "got %v", err)
			assert.True(t, errors.Is(err, api.ErrApplication))

			catalog, err = client.GetModels(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2, catalog.Total)
			assert.Equal(t, []string{"mnist", "penguins"}, catalog.Names())
			assert.Equal(t, "catboost", catalog.Models[1].Framework)
			assert.Equal(t, "/models/catboost-penguins", catalog.Models[1].Path)
			_, err = catalog.Models[1].LastUpdatedTime()
			assert.NoError(t, err)

			require.NoError(t, client.UpdateModel(ctx, "catboost-penguins"))
			err = client.UpdateModel(ctx, "xgboost-missing")
			assert.True(t, errors.Is(err, api.ErrNotFound), "got %v", err)

			require.NoError(t, client.DeleteModel(ctx, "penguins"))
			err = client.DeleteModel(ctx, "penguins")
			assert.True(t, errors.Is(err, api.ErrNotFound), "got %v", err)
			assert.Equal(t, []string{"mnist"}, server.ModelNames())
		})
	}
}

func TestClient_Predict(t *testing.T) {
	for _, transport := range transports {
		t.Run(transport.String(), func(t *testing.T) {
			server := startServer(t)
			client := newClient(t, transport, server.Addr(), 2000)
			ctx := context.Background()
			require.NoError(t, client.AddModel(ctx, "lightgbm-penguins"))

			prediction, err := client.Predict(ctx, "penguins", penguinInput(t, 3))
			require.NoError(t, err)
			assert.Equal(t, "predictions", prediction.OutputKey())
			assert.Equal(t, 3, prediction.Rows())
			assert.Equal(t, 2, prediction.Cols())
			assert.Equal(t, []int{0, 1, 1}, prediction.ArgMax())

			_, err = client.Predict(ctx, "unknown", penguinInput(t, 1))
			assert.True(t, errors.Is(err, api.ErrNotFound), "got %v", err)

			_, err = client.Predict(ctx, "penguins", "not json")
			assert.True(t, errors.Is(err, api.ErrInvalidInput), "got %v", err)
		})
	}
}

func TestClient_InvalidModelName(t *testing.T) {
	for _, transport := range transports {
		t.Run(transport.String(), func(t *testing.T) {
			server := startServer(t)
			client := newClient(t, transport, server.Addr(), 2000)
			ctx := context.Background()

			_, err := client.Predict(ctx, " ", penguinInput(t, 1))
			assert.Equal(t, api.KindInvalidInput, api.KindOf(err))
			assert.Equal(t, api.KindInvalidInput, api.KindOf(client.AddModel(ctx, "")))
			assert.Equal(t, api.KindInvalidInput, api.KindOf(client.UpdateModel(ctx, "")))
			assert.Equal(t, api.KindInvalidInput, api.KindOf(client.DeleteModel(ctx, "")))

			_, err = client.Predict(ctx, "penguins", modelserver.PredictionInput("{\"island\":[\"\xff\xfe\"]}"))
			assert.Equal(t, api.KindInvalidInput, api.KindOf(err))
			_, err = client.Predict(ctx, "pen\xffguins", penguinInput(t, 1))
			assert.Equal(t, api.KindInvalidInput, api.KindOf(err))
			assert.Equal(t, 0, server.Calls())

			err = client.AddModel(ctx, "sklearn-model")
			assert.True(t, errors.Is(err, api.ErrInvalidInput), "got %v", err)
		})
	}
}

func staticServer(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestHTTPClient_GetModelsIncompleteBody(t *testing.T) {
	bodies := []string{`null`, `{}`, `{"total": 2}`, `{"models": []}`, `{"total": 2, "models": []}`, `{"total": 0, "models": null}`}
	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			client := newClient(t, enums.TransportHTTP, staticServer(t, http.StatusOK, body), 2000)

			catalog, err := client.GetModels(context.Background())

			assert.Nil(t, catalog)
			assert.Equal(t, api.KindDecode, api.KindOf(err))
		})
	}
}

func TestHTTPClient_GetModelsEmptyCatalog(t *testing.T) {
	client := newClient(t, enums.TransportHTTP, staticServer(t, http.StatusOK, `{"total": 0, "models": []}`), 2000)

	catalog, err := client.GetModels(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, catalog.Total)
	assert.Empty(t, catalog.Models)
}

func TestHTTPClient_HealthCheckExpects200(t *testing.T) {
	client := newClient(t, enums.TransportHTTP, staticServer(t, http.StatusNoContent, ""), 2000)

	err := client.HealthCheck(context.Background())

	var e *api.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, api.KindApplication, e.Kind)
	assert.Equal(t, http.StatusNoContent, e.StatusCode)
}

func TestClient_PredictDecodeError(t *testing.T) {
	for _, transport := range transports {
		t.Run(transport.String(), func(t *testing.T) {
			server := startServer(t)
			client := newClient(t, transport, server.Addr(), 2000)
			ctx := context.Background()
			require.NoError(t, client.AddModel(ctx, "xgboost-penguins"))

			for _, raw := range []string{`[[0.1, 0.9]]`, `{"a": [[1]], "b": [[2]]}`, `{"predictions": [[1, 2], [3]]}`, `oops`} {
				server.SetRawOutput(raw)
				_, err := client.Predict(ctx, "penguins", penguinInput(t, 1))
				assert.True(t, errors.Is(err, api.ErrDecode), "raw %s: got %v", raw, err)
			}
		})
	}
}

func TestClient_ServerErrors(t *testing.T) {
	for _, transport := range transports {
		t.Run(transport.String(), func(t *testing.T) {
			server := startServer(t)
			client := newClient(t, transport, server.Addr(), 2000)
			ctx := context.Background()

			server.FailWith(&api.Error{Kind: api.KindApplication, StatusCode: http.StatusInternalServerError, Message: "model crashed"})
			err := client.HealthCheck(ctx)
			var apiErr *api.Error
			require.True(t, errors.As(err, &apiErr), "got %v", err)
			assert.Equal(t, api.KindApplication, apiErr.Kind)
			assert.Equal(t, "model crashed", apiErr.Message)
			assert.Equal(t, "health_check", apiErr.Op)

			server.FailWith(&api.Error{Kind: api.KindConnectionFailure, Message: "warming up"})
			_, err = client.GetModels(ctx)
			assert.True(t, errors.Is(err, api.ErrConnectionFailure), "got %v", err)
			assert.True(t, errors.Is(err, api.ErrServiceUnavailable))

			server.FailWith(nil)
			assert.NoError(t, client.HealthCheck(ctx))
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	addr := unusedAddr(t)
	for _, transport := range transports {
		t.Run(transport.String(), func(t *testing.T) {
			client := newClient(t, transport, addr, 1000)
			err := client.HealthCheck(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, api.ErrServiceUnavailable), "got %v", err)
		})
	}
}

func TestClient_TimeoutLeavesClientUsable(t *testing.T) {
	for _, transport := range transports {
		t.Run(transport.String(), func(t *testing.T) {
			server := startServer(t)
			client := newClient(t, transport, server.Addr(), 200)
			ctx := context.Background()

			server.SetLatency(time.Second)
			start := time.Now()
			err := client.HealthCheck(ctx)
			assert.True(t, errors.Is(err, api.ErrTimeout), "got %v", err)
			assert.Less(t, time.Since(start), 900*time.Millisecond)

			server.SetLatency(0)
			assert.NoError(t, client.HealthCheck(ctx))
		})
	}
}

func TestClient_CallerDeadlineWins(t *testing.T) {
	for _, transport := range transports {
		t.Run(transport.String(), func(t *testing.T) {
			server := startServer(t)
			client := newClient(t, transport, server.Addr(), 5000)
			server.SetLatency(time.Second)

			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()
			err := client.HealthCheck(ctx)
			assert.True(t, errors.Is(err, api.ErrTimeout), "got %v", err)

			ctx, cancel = context.WithCancel(context.Background())
			cancel()
			err = client.HealthCheck(ctx)
			assert.True(t, errors.Is(err, api.ErrCanceled), "got %v", err)
		})
	}
}

func TestClient_Close(t *testing.T) {
	for _, transport := range transports {
		t.Run(transport.String(), func(t *testing.T) {
			server := startServer(t)
			client := newClient(t, transport, server.Addr(), 2000)
			ctx := context.Background()
			require.NoError(t, client.HealthCheck(ctx))

			require.NoError(t, client.Close())
			require.NoError(t, client.Close())

			err := client.HealthCheck(ctx)
			assert.True(t, errors.Is(err, api.ErrConnectionFailure), "got %v", err)
			assert.True(t, errors.Is(err, api.ErrClientClosed))
			_, err = client.Predict(ctx, "penguins", penguinInput(t, 1))
			assert.True(t, errors.Is(err, api.ErrClientClosed), "got %v", err)
			_, err = client.GetModels(ctx)
			assert.True(t, errors.Is(err, api.ErrClientClosed), "got %v", err)
		})
	}
}

func TestAsyncClient_ConcurrentPredicts(t *testing.T) {
	for _, transport := range transports {
		t.Run(transport.String(), func(t *testing.T) {
			server := startServer(t)
			client := newClient(t, transport, server.Addr(), 2000)
			ctx := context.Background()
			require.NoError(t, client.AddModel(ctx, "pytorch-penguins"))
			server.SetLatency(20 * time.Millisecond)

			async := modelserver.NewAsyncClient(client, 4)
			futures := make([]*modelserver.Future[modelserver.Prediction], 20)
			for i := range futures {
				futures[i] = async.Predict(ctx, "penguins", penguinInput(t, i+1))
			}

			g, gctx := errgroup.WithContext(ctx)
			for i, f := range futures {
				g.Go(func() error {
					p, err := f.Await(gctx)
					if err != nil {
						return err
					}
					if p.Rows() != i+1 {
						return errors.New("future " + strconv.Itoa(i) + " got " + strconv.Itoa(p.Rows()) + " rows")
					}
					return nil
				})
			}
			require.NoError(t, g.Wait())
			for _, f := range futures {
				select {
				case <-f.Done():
				default:
					t.Fatal("future not done after Await")
				}
			}
		})
	}
}

func TestAsyncClient_AwaitGivesUp(t *testing.T) {
	server := startServer(t)
	client := newClient(t, enums.TransportHTTP, server.Addr(), 2000)
	server.SetLatency(300 * time.Millisecond)

	async := modelserver.NewAsyncClient(client, 1)
	f := async.HealthCheck(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := f.Await(ctx)
	assert.True(t, errors.Is(err, api.ErrTimeout), "got %v", err)

	_, err = f.Await(context.Background())
	assert.NoError(t, err)
}
