package client

import "errors"

var (
	// ErrUnavailable marks transport-level failures: the round trip did not
	// complete as an ordinary response.
	ErrUnavailable = errors.New("network error")
	// ErrUnauthorized marks failures that invalidated the session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRequestFailed marks application-level failures carried in the envelope.
	ErrRequestFailed = errors.New("request failed")
)

// Envelope codes meaning the credential is missing, invalid or expired.
const (
	CodeUnauthorized = 40100
	CodeTokenInvalid = 40101
	CodeTokenExpired = 40102
)

// IsSessionInvalidation reports whether an envelope code requires discarding
// the current credential.
func IsSessionInvalidation(code int) bool {
	switch code {
	case CodeUnauthorized, CodeTokenInvalid, CodeTokenExpired:
		return true
	}
	return false
}

// APIError is an application-level failure: the server answered with an
// envelope whose code is not the success code.
//
// errors.Is(err, ErrRequestFailed) always holds; errors.Is(err, ErrUnauthorized)
// holds when Code is a session-invalidation code.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return ErrRequestFailed.Error()
	}
	return e.Message
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrRequestFailed:
		return true
	case ErrUnauthorized:
		return IsSessionInvalidation(e.Code)
	}
	return false
}
