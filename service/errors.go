package service

import (
	"errors"
	"fmt"
)

const (
	ErrInternalServerError   = "internal_server_error"
	ErrMalformedInput        = "malformed_input"
	ErrPoolExhausted         = "pool_exhausted"
	ErrDownstreamUnavailable = "downstream_unavailable"
	ErrMalformedResponse     = "malformed_response"
	ErrRequestTimeout        = "request_timeout"
	ErrEntityNotFound        = "entity_not_found"
)

// MeshError is the coded error carried across every service boundary. Code is machine
// readable, Message is safe to show to callers, Inner is never sent over the wire.
type MeshError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Inner   error  `json:"-"`
}

func (e MeshError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e MeshError) Unwrap() error { return e.Inner }

// ToMeshError returns the outermost MeshError in err's chain.
func ToMeshError(err error) (MeshError, bool) {
	var e MeshError
	if errors.As(err, &e) {
		return e, true
	}
	return MeshError{}, false
}

// ErrorCode returns the code of err, or "" when err is not a MeshError.
func ErrorCode(err error) string {
	e, _ := ToMeshError(err)
	return e.Code
}

func isCode(err error, code string) bool {
	e, ok := ToMeshError(err)
	return ok && e.Code == code
}

func NewInternalServerError(message string, inner error) MeshError {
	return MeshError{Code: ErrInternalServerError, Message: message, Inner: inner}
}

func IsInternalServerError(err error) bool { return isCode(err, ErrInternalServerError) }

func NewMalformedInputError(message string, inner error) MeshError {
	return MeshError{Code: ErrMalformedInput, Message: message, Inner: inner}
}

func IsMalformedInput(err error) bool { return isCode(err, ErrMalformedInput) }

func NewPoolExhaustedError(message string, inner error) MeshError {
	return MeshError{Code: ErrPoolExhausted, Message: message, Inner: inner}
}

func IsPoolExhausted(err error) bool { return isCode(err, ErrPoolExhausted) }

func NewDownstreamUnavailableError(message string, inner error) MeshError {
	return MeshError{Code: ErrDownstreamUnavailable, Message: message, Inner: inner}
}

func IsDownstreamUnavailable(err error) bool { return isCode(err, ErrDownstreamUnavailable) }

func NewMalformedResponseError(message string, inner error) MeshError {
	return MeshError{Code: ErrMalformedResponse, Message: message, Inner: inner}
}

func IsMalformedResponse(err error) bool { return isCode(err, ErrMalformedResponse) }

func NewRequestTimeoutError(message string, inner error) MeshError {
	return MeshError{Code: ErrRequestTimeout, Message: message, Inner: inner}
}

func IsRequestTimeout(err error) bool { return isCode(err, ErrRequestTimeout) }

func NewEntityNotFoundError(message string, inner error) MeshError {
	return MeshError{Code: ErrEntityNotFound, Message: message, Inner: inner}
}

func IsEntityNotFound(err error) bool { return isCode(err, ErrEntityNotFound) }

// IsRetryable reports whether a failed composite operation may be attempted again. Only
// capacity and availability failures qualify; malformed input, malformed responses and
// timeouts do not.
func IsRetryable(err error) bool {
	return IsPoolExhausted(err) || IsDownstreamUnavailable(err)
}
