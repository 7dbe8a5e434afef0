package domain

import "errors"

// Domain errors.
var (
	// ErrChannelNotFound is returned when an identifier cannot be resolved
	// or the platform has no profile for the resolved ID.
	ErrChannelNotFound = errors.New("channel not found")

	// ErrEmptyInput is returned when the raw channel reference is blank.
	ErrEmptyInput = errors.New("channel reference is empty")

	// ErrUpstreamFailure is returned when a platform API call fails.
	ErrUpstreamFailure = errors.New("upstream API call failed")
)

// Analysis pipeline operations recorded on ChannelError.
const (
	OpResolve  = "resolve"
	OpProfile  = "profile"
	OpUploads  = "uploads"
	OpMetadata = "metadata"
)

// ChannelError wraps an error with the raw input that triggered it and the
// pipeline operation that failed, so batch responses can pair each failure
// with the reference the caller submitted.
type ChannelError struct {
	Input string
	Op    string
	Err   error
}

func (e *ChannelError) Error() string {
	if e.Input != "" {
		return e.Op + " [" + e.Input + "]: " + e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}

// NewChannelError creates a new ChannelError.
func NewChannelError(input, op string, err error) *ChannelError {
	return &ChannelError{Input: input, Op: op, Err: err}
}
