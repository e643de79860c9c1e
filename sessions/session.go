package sessions

// Cookie names the extractor reads.
const (
	CookieID        = "id"
	CookieEmail     = "email"
	CookieAuthKey   = "auth_key"
	CookieTimeStamp = "time_stamp"
)

var cookieNames = [...]string{CookieID, CookieEmail, CookieAuthKey, CookieTimeStamp}

// CookieNames returns every cookie a Session is built from. The slice is a
// copy; changing it does not affect extraction.
func CookieNames() []string {
	names := cookieNames
	return names[:]
}

// Session is the validated identity carried by a request's cookies.
// A Session only exists fully populated; Extract never returns a partial one.
type Session struct {
	ID        uint64 `json:"id"`         // Session/user identifier
	Email     string `json:"email"`      // Account email, stored verbatim
	AuthKey   string `json:"auth_key"`   // Opaque authentication token
	TimeStamp uint32 `json:"time_stamp"` // Issuance/last-seen time in epoch seconds
}

// Request is the per-request context produced by a successful extraction.
// Session is an owned copy of the validated identity; Cookies is the jar it was
// read from, kept so later handlers can rotate or clear cookies. Cookies is
// owned by the request and must not be shared across requests.
type Request struct {
	Session Session
	Cookies MutableJar
}

// FromJar extracts a Session from jar and pairs it with the jar handle.
func FromJar(jar MutableJar) (*Request, error) {
	session, err := Extract(jar)
	if err != nil {
		return nil, err
	}
	return &Request{Session: session, Cookies: jar}, nil
}
