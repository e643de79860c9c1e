package server

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-cookie-session/sessions"
	"github.com/rs/zerolog/log"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyRequestID stores the request id assigned by RequestIDMiddleware
	ContextKeyRequestID ContextKey = "request_id"
	// ContextKeySession stores the *sessions.Request built by RequireSession
	ContextKeySession ContextKey = "session"
)

// SessionFromContext returns the session attached by RequireSession.
func SessionFromContext(ctx context.Context) (*sessions.Request, bool) {
	req, ok := ctx.Value(ContextKeySession).(*sessions.Request)
	return req, ok && req != nil
}

// RequestIDFromContext returns the id attached by RequestIDMiddleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyRequestID).(string)
	return id
}

// RequireSession is middleware that extracts the session from the request
// cookies. Missing and malformed cookies both end the request with 401.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			jar := NewCookieJar(w, r, s.cookies)
			req, err := sessions.FromJar(jar)
			if err != nil {
				log.Warn().
					Str("request_id", RequestIDFromContext(r.Context())).
					Str("path", r.URL.Path).
					Stringer("kind", sessions.KindOf(err)).
					Msg("Rejected request without a valid session")
				writeJSONError(w, "unauthorized", err.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, req)
			next(w, r.WithContext(ctx))
		}
	}
}
