package scheduling

import (
	"errors"
	"fmt"
)

// Error codes surfaced by the scheduling engine.
const (
	CodeInvalidArgument     = "invalidArgument"
	CodeInvalidTimeFormat   = "invalidTimeFormat"
	CodeInvalidRange        = "invalidRange"
	CodeInvalidParty        = "invalidParty"
	CodeConflict            = "conflict"
	CodeUpstreamUnavailable = "upstreamUnavailable"
)

type SchedulingError struct {
	Code    string
	Message string
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...interface{}) *SchedulingError {
	return &SchedulingError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode returns the scheduling error code carried by err, or an empty
// string for foreign errors.
func ErrorCode(err error) string {
	var se *SchedulingError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsConflict reports whether err is a booking admission conflict.
func IsConflict(err error) bool {
	return ErrorCode(err) == CodeConflict
}
