package api

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a client failure. Callers branch on the kind, never on the
// message text.
type Kind int

const (
	KindUnknown Kind = iota
	// KindConnectionFailure means the server could not be reached or the
	// connection dropped before a response was read.
	KindConnectionFailure
	// KindTimeout means the per-call deadline elapsed.
	KindTimeout
	// KindCanceled means the caller cancelled the context.
	KindCanceled
	// KindApplication means the server answered with a failure status.
	KindApplication
	KindNotFound
	KindAlreadyExists
	KindInvalidInput
	// KindDecode means the server answered but the payload did not have the
	// expected shape.
	KindDecode

	// kindServiceUnavailable is only used for matching, see ErrServiceUnavailable.
	kindServiceUnavailable
)

var kindNames = map[Kind]string{
	KindUnknown:            "unknown",
	KindConnectionFailure:  "connection failure",
	KindTimeout:            "timeout",
	KindCanceled:           "canceled",
	KindApplication:        "application error",
	KindNotFound:           "not found",
	KindAlreadyExists:      "already exists",
	KindInvalidInput:       "invalid input",
	KindDecode:             "decode error",
	kindServiceUnavailable: "service unavailable",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsApplication reports whether the server itself rejected the request.
func (k Kind) IsApplication() bool {
	switch k {
	case KindApplication, KindNotFound, KindAlreadyExists, KindInvalidInput:
		return true
	}
	return false
}

// Error is the single error type returned by the model server clients.
type Error struct {
	Kind Kind
	// Op is the client operation that failed, e.g. "predict".
	Op string
	// StatusCode holds the HTTP status or the gRPC code returned by the server.
	// It is 0 when no response was received.
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.Op != "" {
		sb.WriteString(e.Op)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Kind.String())
	if e.StatusCode != 0 {
		fmt.Fprintf(&sb, " (%d)", e.StatusCode)
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on kind so that errors.Is(err, api.ErrNotFound) works for any
// not-found failure. ErrApplication also matches its sub kinds and
// ErrServiceUnavailable matches connection failures and timeouts.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	switch t.Kind {
	case KindApplication:
		return e.Kind.IsApplication()
	case kindServiceUnavailable:
		return e.Kind == KindConnectionFailure || e.Kind == KindTimeout
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is.
var (
	ErrConnectionFailure  = &Error{Kind: KindConnectionFailure}
	ErrTimeout            = &Error{Kind: KindTimeout}
	ErrCanceled           = &Error{Kind: KindCanceled}
	ErrApplication        = &Error{Kind: KindApplication}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrAlreadyExists      = &Error{Kind: KindAlreadyExists}
	ErrInvalidInput       = &Error{Kind: KindInvalidInput}
	ErrDecode             = &Error{Kind: KindDecode}
	ErrServiceUnavailable = &Error{Kind: kindServiceUnavailable}

	// ErrClientClosed is wrapped by every call made after Close.
	ErrClientClosed = errors.New("client is closed")
)

// KindOf returns the kind of err, or KindUnknown when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func NewConnectionFailure(op string, err error) *Error {
	return &Error{Kind: KindConnectionFailure, Op: op, Err: err}
}

func NewTimeout(op string, err error) *Error {
	return &Error{Kind: KindTimeout, Op: op, Err: err}
}

func NewInvalidInput(op, message string) *Error {
	return &Error{Kind: KindInvalidInput, Op: op, Message: message}
}

func NewDecodeError(op, message string, err error) *Error {
	return &Error{Kind: KindDecode, Op: op, Message: message, Err: err}
}

func NewApplicationError(op string, statusCode int, message string) *Error {
	return &Error{Kind: KindApplication, Op: op, StatusCode: statusCode, Message: message}
}

func NewNotFoundError(op, message string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Message: message}
}

func NewAlreadyExistsError(op, message string) *Error {
	return &Error{Kind: KindAlreadyExists, Op: op, Message: message}
}
