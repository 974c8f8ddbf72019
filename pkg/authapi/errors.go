package authapi

import (
	"errors"
	"fmt"
)

// Fallback messages when a failed response carries no usable body.
const (
	msgRequestFailed = "API 호출에 실패했습니다"
	msgNetworkError  = "네트워크 오류가 발생했습니다"
)

// Machine-readable codes for transport failures the client itself raises.
const (
	CodeNetworkError  = "network_error"
	CodeInvalidBody   = "invalid_response_body"
	CodeRequestFailed = "request_failed"
)

// Error is a transport-level failure: a non-2xx response, an unreachable
// host or an unparsable body. Status mirrors the HTTP status code; Code is a
// machine-readable string from the response body when present, otherwise one
// of the Code* constants. Message is safe to show to the user.
type Error struct {
	Status  int
	Code    string
	Message string

	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("authapi: %s (status=%d, code=%s)", e.Message, e.Status, e.Code)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// AsError unwraps an *Error from err.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func networkError(cause error) *Error {
	return &Error{Status: 500, Code: CodeNetworkError, Message: msgNetworkError, cause: cause}
}
