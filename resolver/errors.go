package resolver

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyAppName is returned when GetConfig is called with a blank
	// application name.
	ErrEmptyAppName = errors.New("app name must not be empty")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("config not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	// ErrUnexpectedStatus covers every other non-200 status, 2xx and 3xx
	// included.
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrMissingKeys is wrapped by a [DecodeError] when a 200 body lacks
	// some of the record keys.
	ErrMissingKeys = errors.New("missing config keys")
)

// ConfigParseError reports that the local environment could not be decoded
// into a [models.Conf]: a variable is missing or malformed.
type ConfigParseError struct {
	// Vars lists the offending environment variables (or field names for
	// values that failed to convert), when known.
	Vars []string
	Err  error
}

func (e *ConfigParseError) Error() string {
	if len(e.Vars) == 0 {
		return fmt.Sprintf("cannot parse config: %v", e.Err)
	}
	return fmt.Sprintf("cannot parse config [%s]: %v", strings.Join(e.Vars, ", "), e.Err)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}

// TransportError reports a failed exchange with the configuration authority:
// connection failure, timeout, cancellation, or a status other than 200.
type TransportError struct {
	// URL is the authority endpoint.
	URL string
	// StatusCode is zero when no response was received.
	StatusCode int
	// Body is the trimmed response body of a non-200 response.
	Body string
	Err  error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("fetch config from %s: %v", e.URL, e.Err)
	}
	if e.Body == "" {
		return fmt.Sprintf("fetch config from %s: http %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch config from %s: http %d: %v: %s", e.URL, e.StatusCode, e.Err, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports that the authority answered 200 with a body that does
// not match the [models.Conf] schema.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode config response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
