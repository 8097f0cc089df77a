package llm

import "errors"

var (
	// ErrUnavailable indicates the generator server is unreachable.
	ErrUnavailable = errors.New("generator server unavailable")

	// ErrTimeout indicates the generation request exceeded the configured timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrInvalidOutput indicates the generator response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid generator output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("generator retry attempts exhausted")
)
