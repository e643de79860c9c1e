package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/go-cookie-session/internal/config"
	"github.com/jrsteele09/go-cookie-session/server"
	"github.com/jrsteele09/go-cookie-session/sessions"
)

func setupServer(t *testing.T) *server.Server {
	t.Helper()
	t.Setenv("ENV", "TEST")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("COOKIE_SAMESITE", "strict")
	t.Setenv("COOKIE_PATH", "/")
	return server.New(config.New())
}

func validCookies() map[string]string {
	return map[string]string{
		sessions.CookieID:        "42",
		sessions.CookieEmail:     "a@b.com",
		sessions.CookieAuthKey:   "xk9",
		sessions.CookieTimeStamp: "1000",
	}
}

func newRequest(method, target string, cookies map[string]string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	for name, value := range cookies {
		r.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	return r
}

func serve(t *testing.T, s http.Handler, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.ServeHTTP(w, r)
	return w
}

func responseCookies(w *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := make(map[string]*http.Cookie)
	for _, c := range w.Result().Cookies() {
		out[c.Name] = c
	}
	return out
}
