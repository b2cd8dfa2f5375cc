package http

import (
	nethttp "net/http"

	"github.com/piresc/tiffinhub/internal/pkg/logger"
)

// TokenSource yields the current bearer token, empty when signed out
type TokenSource interface {
	Token() string
}

// SessionClearer drops the process-wide session
type SessionClearer interface {
	ClearSession()
}

// SessionStore is what the authenticated client needs from the session
type SessionStore interface {
	TokenSource
	SessionClearer
}

// BearerAuth attaches the current token, if any, as a bearer credential
func BearerAuth(tokens TokenSource) RequestInterceptor {
	return func(req *nethttp.Request) error {
		if token := tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return nil
	}
}

// ClearSessionOnUnauthorized logs the user out on any 401, whatever endpoint
// produced it. The response is still handed to the caller.
func ClearSessionOnUnauthorized(session SessionClearer) ResponseInterceptor {
	return func(resp *nethttp.Response) {
		if resp.StatusCode != nethttp.StatusUnauthorized {
			return
		}
		path := ""
		if resp.Request != nil {
			path = resp.Request.URL.Path
		}
		logger.Warn("Unauthorized response, clearing session", logger.String("path", path))
		session.ClearSession()
	}
}

// NewAuthenticatedClient builds the shared client with the auth policy installed
func NewAuthenticatedClient(config Config, session SessionStore, opts ...Option) *Client {
	opts = append([]Option{
		WithRequestInterceptor(BearerAuth(session)),
		WithResponseInterceptor(ClearSessionOnUnauthorized(session)),
	}, opts...)
	return NewClient(config, opts...)
}
