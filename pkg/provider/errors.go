package provider

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// AuthError indicates an invalid or expired credential (401/403). It is never
// retried and aborts the sync run that hit it.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("provider authentication failed: status %d: %s", e.StatusCode, e.Body)
}

// APIError is a non-auth error response from the provider API
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider API error: status %d: %s", e.StatusCode, e.Body)
}

// IsAuthError reports whether err is a credential failure
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsNotFound reports whether err is a 404 from the provider. Missing
// summaries and thumbnails are a no-op, not a sync error.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// isRetryableStatus reports whether a response status is worth another attempt
func isRetryableStatus(status int) bool {
	return status == 429 || status >= 500
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"deadline exceeded",
		"dial tcp",
		"eof",
	}

	for _, indicator := range connectionIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}
