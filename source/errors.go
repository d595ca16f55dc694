package source

import "errors"

// Kind tags a resolver failure for logging.
type Kind string

const (
	KindNone          Kind = ""
	KindTransport     Kind = "transport"
	KindShapeMismatch Kind = "shape_mismatch"
	KindDataAbsent    Kind = "data_absent"
	KindUnknown       Kind = "unknown"
)

var (
	// ErrTransport covers network errors, timeouts and non-2xx responses.
	ErrTransport = errors.New("transport failure")

	// ErrShapeMismatch means an expected element or field is missing from fetched content.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrDataAbsent means the response was well formed but carried nothing usable.
	ErrDataAbsent = errors.New("data absent")
)

// KindOf returns the taxonomy tag of err.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrTransport):
		return KindTransport
	case errors.Is(err, ErrShapeMismatch):
		return KindShapeMismatch
	case errors.Is(err, ErrDataAbsent):
		return KindDataAbsent
	default:
		return KindUnknown
	}
}
