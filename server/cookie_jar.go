package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/jrsteele09/go-cookie-session/sessions"
)

// CookieOptions defines the attributes of cookies written by a CookieJar.
type CookieOptions struct {
	Path     string
	Secure   bool
	SameSite http.SameSite
}

// CookieJar is a sessions.MutableJar over a single request and its response.
// Reads come from the request cookies; Set and Remove emit Set-Cookie headers
// and are visible to later reads through the same jar. A CookieJar belongs to
// one request and is not safe for concurrent use.
//
// Values are percent-encoded on the wire so any string survives a round trip
// through the client.
type CookieJar struct {
	w       http.ResponseWriter
	opts    CookieOptions
	read    map[string]string
	written map[string]*string // nil value marks a removed cookie
}

var _ sessions.MutableJar = (*CookieJar)(nil)

func NewCookieJar(w http.ResponseWriter, r *http.Request, opts CookieOptions) *CookieJar {
	if opts.Path == "" {
		opts.Path = "/"
	}
	return &CookieJar{
		w:       w,
		opts:    opts,
		read:    readCookies(r),
		written: make(map[string]*string),
	}
}

func (j *CookieJar) Get(name string) (string, bool) {
	if v, ok := j.written[name]; ok {
		if v == nil {
			return "", false
		}
		return *v, true
	}
	v, ok := j.read[name]
	return v, ok
}

func (j *CookieJar) Set(name, value string) {
	http.SetCookie(j.w, j.cookie(name, url.PathEscape(value)))
	j.written[name] = &value
}

func (j *CookieJar) Remove(name string) {
	c := j.cookie(name, "")
	c.MaxAge = -1
	http.SetCookie(j.w, c)
	j.written[name] = nil
}

func (j *CookieJar) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     j.opts.Path,
		HttpOnly: true,
		Secure:   j.opts.Secure,
		SameSite: j.opts.SameSite,
	}
}

// readCookies parses the Cookie headers without the octet validation
// http.Request.Cookie applies, which drops non-ASCII and quoted values.
// The first occurrence of a name wins. Values that are not valid percent
// encoding are kept as sent.
func readCookies(r *http.Request) map[string]string {
	cookies := make(map[string]string)
	for _, line := range r.Header.Values("Cookie") {
		for _, part := range strings.Split(line, ";") {
			name, value, ok := strings.Cut(strings.TrimSpace(part), "=")
			name = strings.TrimSpace(name)
			if !ok || name == "" {
				continue
			}
			if _, seen := cookies[name]; seen {
				continue
			}
			if len(value) > 1 && value[0] == '"' && value[len(value)-1] == '"' {
				value = value[1 : len(value)-1]
			}
			if decoded, err := url.PathUnescape(value); err == nil {
				value = decoded
			}
			cookies[name] = value
		}
	}
	return cookies
}
