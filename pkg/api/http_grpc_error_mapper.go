package api

import (
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// HTTPStatus maps a kind to the status a model server answers with.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAlreadyExists:
		return http.StatusConflict
	case KindTimeout:
		return http.StatusGatewayTimeout
	case KindConnectionFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GRPCCode maps a kind to the gRPC code a model server answers with.
func (k Kind) GRPCCode() codes.Code {
	switch k {
	case KindInvalidInput:
		return codes.InvalidArgument
	case KindNotFound:
		return codes.NotFound
	case KindAlreadyExists:
		return codes.AlreadyExists
	case KindTimeout:
		return codes.DeadlineExceeded
	case KindConnectionFailure:
		return codes.Unavailable
	case KindCanceled:
		return codes.Canceled
	default:
		return codes.Internal
	}
}

// ToGRPCStatus converts e into a gRPC status error carrying the same kind.
func ToGRPCStatus(e *Error) error {
	return status.New(e.Kind.GRPCCode(), e.Message).Err()
}
