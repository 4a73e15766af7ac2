package extraction

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
)

// ErrorType classifies an extraction failure for the caller.
type ErrorType string

// Extraction error taxonomy. AUTH_ERROR is never retried; RATE_LIMIT and
// API_ERROR are transient; PARSING_ERROR and INVALID_RESPONSE are terminal
// on the final attempt.
const (
	ErrAuth            ErrorType = "AUTH_ERROR"
	ErrRateLimit       ErrorType = "RATE_LIMIT"
	ErrParsing         ErrorType = "PARSING_ERROR"
	ErrInvalidResponse ErrorType = "INVALID_RESPONSE"
	ErrAPI             ErrorType = "API_ERROR"
)

// Error is the discriminated failure value returned by the orchestrator.
// The message never exposes raw service internals.
type Error struct {
	Type       ErrorType
	Message    string
	RetryAfter time.Duration
	Violations []string
	Cause      error
}

func (e *Error) Error() string {
	if len(e.Violations) > 0 {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Message, strings.Join(e.Violations, "; "))
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// transient reports whether the error may succeed on a later attempt.
func (e *Error) transient() bool {
	switch e.Type {
	case ErrRateLimit, ErrAPI:
		return true
	case ErrParsing, ErrInvalidResponse:
		// Truncated responses produce malformed or incomplete JSON; a
		// fresh attempt can succeed.
		return true
	default:
		return false
	}
}

// classifyServiceError maps a raw model-service error onto the taxonomy.
func classifyServiceError(err error) *Error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case 401, 403:
			return &Error{Type: ErrAuth, Message: "extraction service rejected the API credential", Cause: err}
		case 429:
			return &Error{
				Type:       ErrRateLimit,
				Message:    "extraction service rate limit exceeded",
				RetryAfter: retryAfterFromHeader(gerr.Header.Get("Retry-After")),
				Cause:      err,
			}
		}
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "api key") || strings.Contains(lower, "unauthenticated") || strings.Contains(lower, "permission"):
		return &Error{Type: ErrAuth, Message: "extraction service rejected the API credential", Cause: err}
	case strings.Contains(lower, "rate limit") || strings.Contains(lower, "quota") || strings.Contains(lower, "resource exhausted"):
		return &Error{Type: ErrRateLimit, Message: "extraction service rate limit exceeded", Cause: err}
	default:
		return &Error{Type: ErrAPI, Message: "extraction service call failed", Cause: err}
	}
}

// retryAfterFromHeader parses a Retry-After header value in seconds.
// Returns zero for empty or non-integer values.
func retryAfterFromHeader(val string) time.Duration {
	if val == "" {
		return 0
	}
	secs, err := strconv.Atoi(val)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
