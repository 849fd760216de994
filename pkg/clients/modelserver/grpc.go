package modelserver

import (
	"context"
	"strconv"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/api"
	jams "github.com/Meesho/BharatMLStack/modelserver-client/pkg/clients/modelserver/client/grpc"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/grpcclient"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/metric"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
)

const grpcServiceName = "modelserver_grpc"

// GRPCClient talks to the jams_v1.ModelServer service.
type GRPCClient struct {
	adapter    Adapter
	conn       *grpcclient.GRPCClient
	grpcClient jams.ModelServerClient
	inv        invoker
	md         metadata.MD
}

var _ Client = (*GRPCClient)(nil)

// NewGRPCClient builds the gRPC binding. The channel connects lazily on the
// first call.
func NewGRPCClient(conf *Config) (*GRPCClient, error) {
	if _, err := validConfigs(conf); err != nil {
		return nil, err
	}
	conn, err := grpcclient.NewConn(&grpcclient.Config{
		Host:                conf.Endpoint.Host,
		Port:                strconv.Itoa(conf.Endpoint.Port),
		DeadLine:            conf.DeadlineMS,
		LoadBalancingPolicy: conf.LoadBalancingPolicy,
		PlainText:           conf.PlainText,
		CBConfig:            conf.CircuitBreaker,
	}, grpcServiceName)
	if err != nil {
		return nil, err
	}
	return &GRPCClient{
		adapter:    Adapter{},
		conn:       conn,
		grpcClient: jams.NewModelServerClient(conn),
		inv:        newInvoker(metric.TagValueCommunicationProtocolGrpc, conf.DeadlineMS),
		md:         getMetadata(conf.CallerID, conf.AuthToken),
	}, nil
}

func getMetadata(callerID, authToken string) metadata.MD {
	md := metadata.MD{}
	if callerID != "" {
		md.Set(headerCallerID, callerID)
	}
	if authToken != "" {
		md.Set(headerAuthToken, authToken)
	}
	return md
}

func (c *GRPCClient) HealthCheck(ctx context.Context) error {
	return invokeNoResult(ctx, c.inv, opHealthCheck, func(ctx context.Context) error {
		_, err := c.grpcClient.HealthCheck(c.outgoing(ctx), &emptypb.Empty{})
		return c.classify(opHealthCheck, err)
	})
}

func (c *GRPCClient) Predict(ctx context.Context, modelName string, input PredictionInput) (Prediction, error) {
	if err := validatePredict(modelName, input); err != nil {
		return Prediction{}, err
	}
	return invoke(ctx, c.inv, opPredict, func(ctx context.Context) (Prediction, error) {
		resp, err := c.grpcClient.Predict(c.outgoing(ctx), c.adapter.MapPredictRequestToProto(modelName, input))
		if err != nil {
			return Prediction{}, c.classify(opPredict, err)
		}
		return c.adapter.MapProtoToPrediction(resp)
	})
}

func (c *GRPCClient) AddModel(ctx context.Context, modelName string) error {
	if err := validateModelName(opAddModel, modelName); err != nil {
		return err
	}
	return invokeNoResult(ctx, c.inv, opAddModel, func(ctx context.Context) error {
		_, err := c.grpcClient.AddModel(c.outgoing(ctx), &jams.AddModelRequest{ModelName: modelName})
		return c.classify(opAddModel, err)
	})
}

func (c *GRPCClient) UpdateModel(ctx context.Context, modelName string) error {
	if err := validateModelName(opUpdateModel, modelName); err != nil {
		return err
	}
	return invokeNoResult(ctx, c.inv, opUpdateModel, func(ctx context.Context) error {
		_, err := c.grpcClient.UpdateModel(c.outgoing(ctx), &jams.UpdateModelRequest{ModelName: modelName})
		return c.classify(opUpdateModel, err)
	})
}

func (c *GRPCClient) DeleteModel(ctx context.Context, modelName string) error {
	if err := validateModelName(opDeleteModel, modelName); err != nil {
		return err
	}
	return invokeNoResult(ctx, c.inv, opDeleteModel, func(ctx context.Context) error {
		_, err := c.grpcClient.DeleteModel(c.outgoing(ctx), &jams.DeleteModelRequest{ModelName: modelName})
		return c.classify(opDeleteModel, err)
	})
}

func (c *GRPCClient) GetModels(ctx context.Context) (*ModelCatalog, error) {
	return invoke(ctx, c.inv, opGetModels, func(ctx context.Context) (*ModelCatalog, error) {
		resp, err := c.grpcClient.GetModels(c.outgoing(ctx), &emptypb.Empty{})
		if err != nil {
			return nil, c.classify(opGetModels, err)
		}
		return c.adapter.MapProtoToModelCatalog(resp)
	})
}

// Close shuts the channel down. Later calls fail with a connection failure.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) outgoing(ctx context.Context) context.Context {
	if len(c.md) == 0 {
		return ctx
	}
	return metadata.NewOutgoingContext(ctx, c.md)
}

func (c *GRPCClient) classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if isClosedErr(err, grpcclient.ErrClosed) {
		return closedError(op)
	}
	return api.FromGRPCError(op, err)
}
