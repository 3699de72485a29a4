package weather

import (
	"errors"
	"fmt"
)

// Kind classifies a lookup failure. Every recoverable failure in the
// fetch/normalize pipeline is reported as an *Error carrying one of these
// kinds, so callers have a single shape to check.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNotFound means the provider does not know the requested city.
	KindNotFound
	// KindTransport covers connection errors, timeouts and non-2xx
	// responses.
	KindTransport
	// KindParse means the provider answered but the payload was missing
	// a required field.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindTransport:
		return "transport"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Error is the uniform failure result of the weather pipeline. It passes
// through all layers unchanged: the client constructs it, the normalizer
// and HTTP/CLI surfaces only inspect its Kind.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFoundError reports an unknown city, matching the provider's 404.
func NotFoundError(city string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("City '%s' not found", city)}
}

// TransportErrorf reports a connection, timeout or HTTP status failure.
func TransportErrorf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindTransport, Message: fmt.Sprintf(format, args...)}
}

// ParseErrorf reports a successful response whose payload was missing a
// required field.
func ParseErrorf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindParse, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the failure kind from an error returned by the pipeline.
// Errors that did not originate here report KindUnknown.
func KindOf(err error) Kind {
	var werr *Error
	if errors.As(err, &werr) {
		return werr.Kind
	}
	return KindUnknown
}
