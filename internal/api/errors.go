package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Common errors
var (
	ErrNotAuthenticated = errors.New("not authenticated - set jira_username and jira_password")
	ErrNotFound         = errors.New("resource not found")
	ErrRateLimited      = errors.New("API rate limit exceeded")
)

// APIError wraps Jira API errors with additional context
type APIError struct {
	Operation string
	Resource  string
	Err       error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Operation, e.Resource, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// HTTPError is a non-2xx response from the Jira REST API
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
	RetryAfter string
}

func (e *HTTPError) Error() string {
	msg := strings.TrimSpace(e.Body)
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("jira API returned %d for %s %s: %s", e.StatusCode, e.Method, e.Path, msg)
}

// HTTPStatusCode returns the response status code
func (e *HTTPError) HTTPStatusCode() int {
	return e.StatusCode
}

// RetryAfterSeconds returns the raw Retry-After header value
func (e *HTTPError) RetryAfterSeconds() string {
	return e.RetryAfter
}

// httpStatusCoder is implemented by errors that carry an HTTP status code.
type httpStatusCoder interface {
	HTTPStatusCode() int
}

// retryAfterProvider is implemented by errors that carry a Retry-After value.
type retryAfterProvider interface {
	RetryAfterSeconds() string
}

func statusCode(err error) int {
	var sc httpStatusCoder
	if errors.As(err, &sc) {
		return sc.HTTPStatusCode()
	}
	return 0
}

// IsNotFound checks if an error indicates a resource was not found
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	if err == nil {
		return false
	}
	return statusCode(err) == http.StatusNotFound
}

// IsRateLimited checks if an error indicates rate limiting.
// Detects rate limits via:
//   - Sentinel ErrRateLimited
//   - HTTP 429 status code
//   - HTTP 503 with rate-limit messaging (Jira Cloud throttling)
//   - Error message containing "rate limit"
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	if err == nil {
		return false
	}

	switch statusCode(err) {
	case http.StatusTooManyRequests:
		return true
	case http.StatusServiceUnavailable:
		return strings.Contains(strings.ToLower(err.Error()), "rate limit")
	}

	return strings.Contains(strings.ToLower(err.Error()), "rate limit")
}

// GetRetryAfter extracts a Retry-After duration from an error, if available.
// Returns 0 if no Retry-After information is present.
func GetRetryAfter(err error) time.Duration {
	var rap retryAfterProvider
	if errors.As(err, &rap) {
		if s := rap.RetryAfterSeconds(); s != "" {
			if seconds, parseErr := strconv.Atoi(s); parseErr == nil && seconds > 0 {
				return time.Duration(seconds) * time.Second
			}
		}
	}
	return 0
}

// IsAuthError checks if an error indicates authentication issues
func IsAuthError(err error) bool {
	if errors.Is(err, ErrNotAuthenticated) {
		return true
	}
	if err == nil {
		return false
	}
	code := statusCode(err)
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

// WrapError wraps an API error with operation context
func WrapError(operation, resource string, err error) error {
	if err == nil {
		return nil
	}

	if IsRateLimited(err) && !errors.Is(err, ErrRateLimited) {
		err = fmt.Errorf("%w: %v", ErrRateLimited, err)
	} else if IsNotFound(err) && !errors.Is(err, ErrNotFound) {
		err = fmt.Errorf("%w: %v", ErrNotFound, err)
	} else if IsAuthError(err) && !errors.Is(err, ErrNotAuthenticated) {
		err = fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}

	return &APIError{
		Operation: operation,
		Resource:  resource,
		Err:       err,
	}
}
