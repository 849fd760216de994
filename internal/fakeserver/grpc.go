package fakeserver

import (
	"context"
	"strings"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/api"
	jams "github.com/Meesho/BharatMLStack/modelserver-client/pkg/clients/modelserver/client/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
)

type grpcHandler struct {
	jams.UnimplementedModelServerServer
	store *store
}

func callerID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(strings.ToLower(headerCallerID))
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (h *grpcHandler) HealthCheck(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if e := h.store.begin(ctx, "health_check", callerID(ctx)); e != nil {
		return nil, api.ToGRPCStatus(e)
	}
	return &emptypb.Empty{}, nil
}

func (h *grpcHandler) Predict(ctx context.Context, req *jams.PredictRequest) (*jams.PredictResponse, error) {
	if e := h.store.begin(ctx, "predict", callerID(ctx)); e != nil {
		return nil, api.ToGRPCStatus(e)
	}
	output, e := h.store.predict(req.GetModelName(), req.GetInput())
	if e != nil {
		return nil, api.ToGRPCStatus(e)
	}
	return &jams.PredictResponse{Output: output}, nil
}

func (h *grpcHandler) GetModels(ctx context.Context, _ *emptypb.Empty) (*jams.GetModelsResponse, error) {
	if e := h.store.begin(ctx, "get_models", callerID(ctx)); e != nil {
		return nil, api.ToGRPCStatus(e)
	}
	models := h.store.list()
	resp := &jams.GetModelsResponse{Total: int32(len(models))}
	for _, m := range models {
		resp.Models = append(resp.Models, &jams.GetModelsResponse_Model{
			Name:        m.name,
			Framework:   m.framework.String(),
			Path:        m.path,
			LastUpdated: m.lastUpdated.Format(rfc2822),
		})
	}
	return resp, nil
}

func (h *grpcHandler) AddModel(ctx context.Context, req *jams.AddModelRequest) (*emptypb.Empty, error) {
	return h.apply(ctx, "add_model", req.GetModelName(), h.store.addModel)
}

func (h *grpcHandler) UpdateModel(ctx context.Context, req *jams.UpdateModelRequest) (*emptypb.Empty, error) {
	return h.apply(ctx, "update_model", req.GetModelName(), h.store.updateModel)
}

func (h *grpcHandler) DeleteModel(ctx context.Context, req *jams.DeleteModelRequest) (*emptypb.Empty, error) {
	return h.apply(ctx, "delete_model", req.GetModelName(), h.store.deleteModel)
}

func (h *grpcHandler) apply(ctx context.Context, op, name string, fn func(string) *api.Error) (*emptypb.Empty, error) {
	if e := h.store.begin(ctx, op, callerID(ctx)); e != nil {
		return nil, api.ToGRPCStatus(e)
	}
	if e := fn(name); e != nil {
		return nil, api.ToGRPCStatus(e)
	}
	return &emptypb.Empty{}, nil
}
