package config

import (
	"net/http"
	"strconv"
	"strings"
)

// CookieConfig controls the attributes of cookies the server writes back.
type CookieConfig interface {
	GetCookiePath() string
	GetCookieSecure() bool
	GetCookieSameSite() http.SameSite
}

type Cookies struct{}

var _ CookieConfig = Cookies{}

func (Cookies) GetCookiePath() string {
	return GetEnv("COOKIE_PATH", "/")
}

// GetCookieSecure defaults to true everywhere except DEV, where the server is
// usually reached over plain http.
func (Cookies) GetCookieSecure() bool {
	secure, err := strconv.ParseBool(GetEnv("COOKIE_SECURE", ""))
	if err != nil {
		return EnvVars{}.GetEnv() != "DEV"
	}
	return secure
}

func (Cookies) GetCookieSameSite() http.SameSite {
	switch strings.ToLower(GetEnv("COOKIE_SAMESITE", "lax")) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
