package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FromTransportError classifies a failure that happened before any response
// was read.
func FromTransportError(op string, err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded), os.IsTimeout(err):
		return NewTimeout(op, err)
	case errors.Is(err, context.Canceled):
		return &Error{Kind: KindCanceled, Op: op, Err: err}
	default:
		return NewConnectionFailure(op, err)
	}
}

// FromHTTPStatus classifies a non 2xx response. body is the raw response body
// and ends up as the error message.
func FromHTTPStatus(op string, statusCode int, body string) *Error {
	msg := strings.TrimSpace(body)
	switch statusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &Error{Kind: KindInvalidInput, Op: op, StatusCode: statusCode, Message: msg}
	case http.StatusNotFound:
		return &Error{Kind: KindNotFound, Op: op, StatusCode: statusCode, Message: msg}
	case http.StatusConflict:
		return &Error{Kind: KindAlreadyExists, Op: op, StatusCode: statusCode, Message: msg}
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return &Error{Kind: KindTimeout, Op: op, StatusCode: statusCode, Message: msg}
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return &Error{Kind: KindConnectionFailure, Op: op, StatusCode: statusCode, Message: msg}
	default:
		return NewApplicationError(op, statusCode, msg)
	}
}

// FromGRPCError classifies an error returned by a unary gRPC call.
func FromGRPCError(op string, err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	st, ok := status.FromError(err)
	if !ok {
		return FromTransportError(op, err)
	}
	code := int(st.Code())
	msg := st.Message()
	switch st.Code() {
	case codes.Unavailable:
		return &Error{Kind: KindConnectionFailure, Op: op, StatusCode: code, Message: msg, Err: err}
	case codes.DeadlineExceeded:
		return &Error{Kind: KindTimeout, Op: op, StatusCode: code, Message: msg, Err: err}
	case codes.Canceled:
		return &Error{Kind: KindCanceled, Op: op, StatusCode: code, Message: msg, Err: err}
	case codes.NotFound:
		return &Error{Kind: KindNotFound, Op: op, StatusCode: code, Message: msg}
	case codes.AlreadyExists:
		return &Error{Kind: KindAlreadyExists, Op: op, StatusCode: code, Message: msg}
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return &Error{Kind: KindInvalidInput, Op: op, StatusCode: code, Message: msg}
	default:
		return NewApplicationError(op, code, msg)
	}
}
