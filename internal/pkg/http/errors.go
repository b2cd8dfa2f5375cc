package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
)

// APIError is a non-2xx response. Message is the server-provided message when
// the body carried one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, nethttp.StatusText(e.StatusCode))
}

// IsUnauthorized reports whether err is a 401 APIError
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == nethttp.StatusUnauthorized
}

// ServerMessage returns the server-provided message carried by err, if any
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

const maxErrorBody = 64 << 10

func newAPIError(resp *nethttp.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return apiErr
	}

	var body map[string]interface{}
	if json.Unmarshal(data, &body) != nil {
		return apiErr
	}
	for _, key := range []string{"message", "error"} {
		if msg, ok := body[key].(string); ok && msg != "" {
			apiErr.Message = msg
			break
		}
	}
	return apiErr
}
