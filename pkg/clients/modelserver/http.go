package modelserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/api"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/httpclient"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/metric"
)

const (
	httpServiceName = "modelserver_http"

	pathHealthCheck = "/healthcheck"
	pathPredict     = "/api/predict"
	pathModels      = "/api/models"
	queryModelName  = "model_name"

	maxResponseBytes = 64 << 20
)

type modelRequest struct {
	ModelName string `json:"model_name"`
}

type predictRequest struct {
	ModelName string `json:"model_name"`
	Input     string `json:"input"`
}

type predictResponse struct {
	Output *string `json:"output"`
}

type modelsResponse struct {
	Total  *int             `json:"total"`
	Models *[]ModelMetadata `json:"models"`
}

// HTTPClient talks to the model server's JSON API.
type HTTPClient struct {
	conn      *httpclient.HTTPClient
	inv       invoker
	callerID  string
	authToken string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds the HTTP binding. No connection is opened until the
// first call.
func NewHTTPClient(conf *Config) (*HTTPClient, error) {
	if _, err := validConfigs(conf); err != nil {
		return nil, err
	}
	conn, err := httpclient.NewConn(&httpclient.Config{
		Scheme:      conf.Endpoint.Scheme,
		Host:        conf.Endpoint.Host,
		Port:        strconv.Itoa(conf.Endpoint.Port),
		TimeoutInMs: conf.DeadlineMS,
		CBConfig:    conf.CircuitBreaker,
		Transport:   conf.HTTPTransport,
	}, httpServiceName)
	if err != nil {
		return nil, err
	}
	return &HTTPClient{
		conn:      conn,
		inv:       newInvoker(metric.TagValueCommunicationProtocolHttp, conf.DeadlineMS),
		callerID:  conf.CallerID,
		authToken: conf.AuthToken,
	}, nil
}

func (c *HTTPClient) HealthCheck(ctx context.Context) error {
	return invokeNoResult(ctx, c.inv, opHealthCheck, func(ctx context.Context) error {
		_, err := c.doExpect(ctx, opHealthCheck, c.newRequest(ctx, http.MethodGet, pathHealthCheck), isOK)
		return err
	})
}

func (c *HTTPClient) Predict(ctx context.Context, modelName string, input PredictionInput) (Prediction, error) {
	if err := validatePredict(modelName, input); err != nil {
		return Prediction{}, err
	}
	return invoke(ctx, c.inv, opPredict, func(ctx context.Context) (Prediction, error) {
		body, err := c.do(ctx, opPredict, c.newRequest(ctx, http.MethodPost, pathPredict).
			WithBody(predictRequest{ModelName: modelName, Input: string(input)}))
		if err != nil {
			return Prediction{}, err
		}
		var resp predictResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return Prediction{}, api.NewDecodeError(opPredict, "malformed predict response", err)
		}
		if resp.Output == nil {
			return Prediction{}, api.NewDecodeError(opPredict, "predict response has no output", nil)
		}
		return DecodePrediction([]byte(*resp.Output))
	})
}

func (c *HTTPClient) AddModel(ctx context.Context, modelName string) error {
	return c.sendModel(ctx, opAddModel, http.MethodPost, modelName)
}

func (c *HTTPClient) UpdateModel(ctx context.Context, modelName string) error {
	return c.sendModel(ctx, opUpdateModel, http.MethodPut, modelName)
}

func (c *HTTPClient) DeleteModel(ctx context.Context, modelName string) error {
	if err := validateModelName(opDeleteModel, modelName); err != nil {
		return err
	}
	return invokeNoResult(ctx, c.inv, opDeleteModel, func(ctx context.Context) error {
		_, err := c.do(ctx, opDeleteModel, c.newRequest(ctx, http.MethodDelete, pathModels).
			WithQuery(queryModelName, modelName))
		return err
	})
}

func (c *HTTPClient) GetModels(ctx context.Context) (*ModelCatalog, error) {
	return invoke(ctx, c.inv, opGetModels, func(ctx context.Context) (*ModelCatalog, error) {
		body, err := c.do(ctx, opGetModels, c.newRequest(ctx, http.MethodGet, pathModels))
		if err != nil {
			return nil, err
		}
		var resp modelsResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, api.NewDecodeError(opGetModels, "malformed models response", err)
		}
		if resp.Total == nil || resp.Models == nil {
			return nil, api.NewDecodeError(opGetModels, "models response needs total and models", nil)
		}
		return newModelCatalog(*resp.Total, *resp.Models)
	})
}

// Close drops pooled connections. Later calls fail with a connection failure.
func (c *HTTPClient) Close() error {
	return c.conn.Close()
}

func (c *HTTPClient) sendModel(ctx context.Context, op, method, modelName string) error {
	if err := validateModelName(op, modelName); err != nil {
		return err
	}
	return invokeNoResult(ctx, c.inv, op, func(ctx context.Context) error {
		_, err := c.do(ctx, op, c.newRequest(ctx, method, pathModels).
			WithBody(modelRequest{ModelName: modelName}))
		return err
	})
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string) *httpclient.RequestBuilder {
	return httpclient.NewHttpRequestBuilder().
		WithContext(ctx).
		WithEndpoint(c.conn.Endpoint).
		WithPath(path).
		WithMethod(method).
		WithHeader(headerCallerID, c.callerID).
		WithHeader(headerAuthToken, c.authToken)
}

// do sends the request and returns the body of a 2xx response. Every other
// outcome is an *api.Error.
func (c *HTTPClient) do(ctx context.Context, op string, builder *httpclient.RequestBuilder) ([]byte, error) {
	return c.doExpect(ctx, op, builder, is2xx)
}

func is2xx(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

// /healthcheck answers exactly 200 when the server is up.
func isOK(code int) bool {
	return code == http.StatusOK
}

func (c *HTTPClient) doExpect(ctx context.Context, op string, builder *httpclient.RequestBuilder, accept func(int) bool) ([]byte, error) {
	if c.conn.IsClosed() {
		return nil, closedError(op)
	}
	req, err := builder.BuildContentTypeJson()
	if err != nil {
		return nil, api.NewInvalidInput(op, err.Error())
	}
	resp, err := c.conn.Do(req)
	if err != nil {
		if isClosedErr(err, httpclient.ErrClosed) {
			return nil, closedError(op)
		}
		return nil, api.FromTransportError(op, contextCause(ctx, err))
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, api.FromTransportError(op, contextCause(ctx, err))
	}
	if !accept(resp.StatusCode) {
		if is2xx(resp.StatusCode) {
			return nil, api.NewApplicationError(op, resp.StatusCode, "unexpected status "+resp.Status)
		}
		return nil, api.FromHTTPStatus(op, resp.StatusCode, string(body))
	}
	return body, nil
}

// contextCause prefers the context error so a deadline or cancellation is
// classified as such even when the transport reports it differently.
func contextCause(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %w", ctxErr, err)
	}
	return err
}
