package config_test

import (
	"net/http"
	"testing"

	"github.com/jrsteele09/go-cookie-session/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestEnvVars(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("ENV", "")
		t.Setenv("LOG_LEVEL", "")
		c := config.New()
		assert.Equal(t, ":8080", c.GetPort())
		assert.Equal(t, "DEV", c.GetEnv())
		assert.Equal(t, "info", c.GetLogLevel())
	})

	t.Run("port with and without colon", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		assert.Equal(t, ":9000", config.New().GetPort())
		t.Setenv("PORT", ":9001")
		assert.Equal(t, ":9001", config.New().GetPort())
	})
}

func TestCookies(t *testing.T) {
	t.Run("secure follows env when unset", func(t *testing.T) {
		t.Setenv("COOKIE_SECURE", "")
		t.Setenv("ENV", "DEV")
		assert.False(t, config.New().GetCookieSecure())
		t.Setenv("ENV", "PROD")
		assert.True(t, config.New().GetCookieSecure())
	})

	t.Run("secure explicit", func(t *testing.T) {
		t.Setenv("ENV", "PROD")
		t.Setenv("COOKIE_SECURE", "false")
		assert.False(t, config.New().GetCookieSecure())
	})

	t.Run("same site", func(t *testing.T) {
		t.Setenv("COOKIE_SAMESITE", "")
		assert.Equal(t, http.SameSiteLaxMode, config.New().GetCookieSameSite())
		t.Setenv("COOKIE_SAMESITE", "Strict")
		assert.Equal(t, http.SameSiteStrictMode, config.New().GetCookieSameSite())
		t.Setenv("COOKIE_SAMESITE", "none")
		assert.Equal(t, http.SameSiteNoneMode, config.New().GetCookieSameSite())
	})

	t.Run("path", func(t *testing.T) {
		t.Setenv("COOKIE_PATH", "")
		assert.Equal(t, "/", config.New().GetCookiePath())
	})
}
