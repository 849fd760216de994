package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewNotFoundError("delete_model", "model missing"))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrApplication)
	assert.NotErrorIs(t, err, ErrAlreadyExists)
	assert.NotErrorIs(t, err, ErrServiceUnavailable)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestError_ServiceUnavailableGroup(t *testing.T) {
	assert.ErrorIs(t, NewTimeout("predict", context.DeadlineExceeded), ErrServiceUnavailable)
	assert.ErrorIs(t, NewConnectionFailure("predict", errors.New("refused")), ErrServiceUnavailable)
	assert.NotErrorIs(t, NewDecodeError("predict", "bad", nil), ErrServiceUnavailable)
	assert.NotErrorIs(t, NewDecodeError("predict", "bad", nil), ErrApplication)
}

func TestError_UnwrapAndMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewConnectionFailure("health_check", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "health_check: connection failure: connection refused", err.Error())

	app := NewApplicationError("predict", 500, "boom")
	assert.Equal(t, "predict: application error (500): boom", app.Error())
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "kind(99)", Kind(99).String())
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

var _ net.Error = timeoutErr{}

func TestFromTransportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"deadline", fmt.Errorf("post: %w", context.DeadlineExceeded), KindTimeout},
		{"net timeout", timeoutErr{}, KindTimeout},
		{"canceled", context.Canceled, KindCanceled},
		{"refused", errors.New("dial tcp: connection refused"), KindConnectionFailure},
		{"already typed", NewDecodeError("predict", "bad", nil), KindDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromTransportError("op", tt.err).Kind)
		})
	}
}

func TestFromHTTPStatus(t *testing.T) {
	tests := []struct {
		status int
		want   Kind
	}{
		{http.StatusBadRequest, KindInvalidInput},
		{http.StatusUnprocessableEntity, KindInvalidInput},
		{http.StatusNotFound, KindNotFound},
		{http.StatusConflict, KindAlreadyExists},
		{http.StatusRequestTimeout, KindTimeout},
		{http.StatusGatewayTimeout, KindTimeout},
		{http.StatusBadGateway, KindConnectionFailure},
		{http.StatusServiceUnavailable, KindConnectionFailure},
		{http.StatusInternalServerError, KindApplication},
		{http.StatusTeapot, KindApplication},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := FromHTTPStatus("op", tt.status, " body \n")
			assert.Equal(t, tt.want, err.Kind)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.Equal(t, "body", err.Message)
		})
	}
}

func TestFromGRPCError(t *testing.T) {
	tests := []struct {
		code codes.Code
		want Kind
	}{
		{codes.Unavailable, KindConnectionFailure},
		{codes.DeadlineExceeded, KindTimeout},
		{codes.Canceled, KindCanceled},
		{codes.NotFound, KindNotFound},
		{codes.AlreadyExists, KindAlreadyExists},
		{codes.InvalidArgument, KindInvalidInput},
		{codes.FailedPrecondition, KindInvalidInput},
		{codes.OutOfRange, KindInvalidInput},
		{codes.Internal, KindApplication},
		{codes.Unknown, KindApplication},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := FromGRPCError("op", status.Error(tt.code, "msg"))
			assert.Equal(t, tt.want, err.Kind)
			assert.Equal(t, int(tt.code), err.StatusCode)
			assert.Equal(t, "msg", err.Message)
		})
	}

	assert.Equal(t, KindTimeout, FromGRPCError("op", context.DeadlineExceeded).Kind)
}

func TestToGRPCStatus_RoundTrip(t *testing.T) {
	for _, kind := range []Kind{KindInvalidInput, KindNotFound, KindAlreadyExists, KindTimeout, KindConnectionFailure} {
		err := ToGRPCStatus(&Error{Kind: kind, Message: "x"})
		assert.Equal(t, kind, FromGRPCError("op", err).Kind, kind.String())
		assert.Equal(t, kind, FromHTTPStatus("op", kind.HTTPStatus(), "x").Kind, kind.String())
	}
	assert.Equal(t, codes.Internal, KindApplication.GRPCCode())
	assert.Equal(t, http.StatusInternalServerError, KindDecode.HTTPStatus())
}
