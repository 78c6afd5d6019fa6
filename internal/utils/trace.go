package utils

import "github.com/google/uuid"

// TraceIDHeader carries the identifier correlating a resolver request with
// the authority's logs.
const TraceIDHeader = "X-Trace-ID"

// NewTraceID returns a time-ordered UUIDv7, falling back to a random UUIDv4.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
