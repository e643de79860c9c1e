package sessions

import "errors"

// ErrorKind tags why an extraction failed.
type ErrorKind int

const (
	// MissingFields means at least one required cookie was absent.
	MissingFields ErrorKind = iota + 1
	// MalformedFields means every cookie was present but one did not parse.
	MalformedFields
)

func (k ErrorKind) String() string {
	switch k {
	case MissingFields:
		return "missing_fields"
	case MalformedFields:
		return "malformed_fields"
	default:
		return "unknown"
	}
}

// ExtractionError is returned by Extract. It carries a kind and a
// human-readable message only; the offending cookie is never identified.
type ExtractionError struct {
	Kind    ErrorKind
	Message string
}

func (e *ExtractionError) Error() string {
	return e.Message
}

// Is matches any ExtractionError of the same kind, so callers can test
// against ErrMissingFields and ErrMalformedFields.
func (e *ExtractionError) Is(target error) bool {
	var t *ExtractionError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrMissingFields = &ExtractionError{
		Kind:    MissingFields,
		Message: "request cookies did not have the required fields",
	}
	ErrMalformedFields = &ExtractionError{
		Kind:    MalformedFields,
		Message: "request cookie fields could not be parsed to their proper types",
	}
)

// KindOf returns the ErrorKind of err, or 0 if err is not an ExtractionError.
func KindOf(err error) ErrorKind {
	var e *ExtractionError
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
