package sessions

import (
	"strconv"
	"strings"
)

// Extract validates the four session cookies in jar and builds a Session.
//
// Validation runs in two phases. Every cookie must be present before any is
// parsed, so a jar that lacks a cookie reports MissingFields even when another
// value is malformed. Once all are present, id must parse as a uint64 and
// time_stamp as a uint32; email and auth_key are taken verbatim. Any parse
// failure reports MalformedFields.
func Extract(jar Jar) (Session, error) {
	var raw [len(cookieNames)]string
	for i, name := range cookieNames {
		v, ok := jar.Get(name)
		if !ok {
			return Session{}, newExtractionError(ErrMissingFields)
		}
		raw[i] = v
	}

	id, err := parseUnsigned(raw[0], 64)
	if err != nil {
		return Session{}, newExtractionError(ErrMalformedFields)
	}
	timeStamp, err := parseUnsigned(raw[3], 32)
	if err != nil {
		return Session{}, newExtractionError(ErrMalformedFields)
	}

	return Session{
		ID:        id,
		Email:     raw[1],
		AuthKey:   raw[2],
		TimeStamp: uint32(timeStamp),
	}, nil
}

// parseUnsigned parses a base-10 unsigned integer. A single leading '+' is
// accepted; signs, spaces and out-of-range values are rejected.
func parseUnsigned(s string, bitSize int) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, bitSize)
}

func newExtractionError(template *ExtractionError) *ExtractionError {
	return &ExtractionError{Kind: template.Kind, Message: template.Message}
}
