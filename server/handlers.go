package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jrsteele09/go-cookie-session/internal/utils"
	"github.com/jrsteele09/go-cookie-session/sessions"
	"github.com/rs/zerolog/log"
)

const contentTypeJSON = "application/json; charset=utf-8"

// SessionResponse is the JSON view of a session returned by the session routes
type SessionResponse struct {
	sessions.Session
	ServerTimeMs uint64 `json:"server_time_ms"`
}

// HealthHandler reports liveness and the server clock
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "ok",
			"time_ms": utils.NowMillis(),
		})
	}
}

// SessionHandler returns the session extracted from the request cookies
func (s *Server) SessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := SessionFromContext(r.Context())
		if !ok {
			writeJSONError(w, "unauthorized", "no session", http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, SessionResponse{Session: req.Session, ServerTimeMs: utils.NowMillis()})
	}
}

// TouchSessionHandler rewrites the time_stamp cookie to the current time and
// returns the session as it will be read on the next request.
func (s *Server) TouchSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := SessionFromContext(r.Context())
		if !ok {
			writeJSONError(w, "unauthorized", "no session", http.StatusUnauthorized)
			return
		}

		req.Cookies.Set(sessions.CookieTimeStamp, strconv.FormatUint(uint64(utils.NowSeconds()), 10))
		touched, err := sessions.Extract(req.Cookies)
		if err != nil {
			log.Err(err).Str("request_id", RequestIDFromContext(r.Context())).Msg("Touched session no longer extracts")
			writeJSONError(w, "server_error", "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, SessionResponse{Session: touched, ServerTimeMs: utils.NowMillis()})
	}
}

// LogoutHandler clears every session cookie
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := SessionFromContext(r.Context())
		if !ok {
			writeJSONError(w, "unauthorized", "no session", http.StatusUnauthorized)
			return
		}
		for _, name := range sessions.CookieNames() {
			req.Cookies.Remove(name)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Err(err).Msg("Failed to encode response")
	}
}

// writeJSONError writes an error response in the OAuth2 error shape
func writeJSONError(w http.ResponseWriter, errorCode, description string, statusCode int) {
	writeJSON(w, statusCode, map[string]string{
		"error":             errorCode,
		"error_description": description,
	})
}
