package modelserver

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/api"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/metric"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/tracing"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	opHealthCheck = "health_check"
	opPredict     = "predict"
	opAddModel    = "add_model"
	opUpdateModel = "update_model"
	opDeleteModel = "delete_model"
	opGetModels   = "get_models"

	tracerName = "modelserver-client"

	headerCallerID  = "MODELSERVER-CALLER-ID"
	headerAuthToken = "MODELSERVER-AUTH-TOKEN"
)

// invoker applies the per call deadline, span, metrics and error logging
// shared by both bindings.
type invoker struct {
	protocol string
	deadline time.Duration
	tracer   trace.Tracer
}

func newInvoker(protocol string, deadlineMS int) invoker {
	return invoker{
		protocol: protocol,
		deadline: time.Duration(deadlineMS) * time.Millisecond,
		tracer:   tracing.GetTracer(tracerName),
	}
}

func invoke[T any](ctx context.Context, inv invoker, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, inv.deadline)
	defer cancel()
	ctx, span := inv.tracer.Start(ctx, "modelserver."+op, trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("rpc.system", inv.protocol)))
	defer span.End()

	startTime := time.Now()
	resp, err := fn(ctx)
	kind := ""
	if err != nil {
		kind = api.KindOf(err).String()
		span.RecordError(err)
		span.SetStatus(codes.Error, kind)
		log.Warn().Ctx(ctx).Err(err).Str("op", op).Str("protocol", inv.protocol).Msg("model server call failed")
	}
	tags := metric.BuildClientOperationTags(inv.protocol, op, kind)
	metric.Timing(metric.ModelServerClientLatency, time.Since(startTime), tags)
	metric.Incr(metric.ModelServerClientCount, tags)
	return resp, err
}

func invokeNoResult(ctx context.Context, inv invoker, op string, fn func(ctx context.Context) error) error {
	_, err := invoke(ctx, inv, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

func validateModelName(op, name string) error {
	if strings.TrimSpace(name) == "" {
		return api.NewInvalidInput(op, "model name is empty")
	}
	if !utf8.ValidString(name) {
		return api.NewInvalidInput(op, "model name is not valid UTF-8")
	}
	return nil
}

// validatePredict rejects what one transport would mangle and the other
// refuse to encode.
func validatePredict(name string, input PredictionInput) error {
	if err := validateModelName(opPredict, name); err != nil {
		return err
	}
	if !utf8.ValidString(string(input)) {
		return api.NewInvalidInput(opPredict, "input is not valid UTF-8")
	}
	return nil
}

func closedError(op string) error {
	return api.NewConnectionFailure(op, api.ErrClientClosed)
}

// isClosedErr reports whether err came from a wrapper that was closed while
// the call was being set up.
func isClosedErr(err error, closedErrs ...error) bool {
	for _, target := range closedErrs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
