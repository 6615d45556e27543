package pocket

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a query failure. Callers match on the kind for
// diagnostics; none of these are fatal to the dashboard.
type ErrorKind int

const (
	// ErrInvocation means the pocketd process itself failed (non-zero exit,
	// binary not found, context cancelled).
	ErrInvocation ErrorKind = iota
	// ErrParse means pocketd exited cleanly but its output was not valid
	// JSON of the expected shape.
	ErrParse
	// ErrMissingField means the output parsed but a required field was
	// absent or malformed.
	ErrMissingField
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvocation:
		return "invocation failed"
	case ErrParse:
		return "parse failed"
	case ErrMissingField:
		return "missing field"
	default:
		return "unknown"
	}
}

// QueryError is the discriminated failure type returned by Client queries.
type QueryError struct {
	Kind    ErrorKind
	Address string
	Detail  string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query for %s: %s: %s", e.Address, e.Kind, e.Detail)
}

// KindOf extracts the ErrorKind from err. The second return is false when
// err is not a QueryError.
func KindOf(err error) (ErrorKind, bool) {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Kind, true
	}
	return 0, false
}
