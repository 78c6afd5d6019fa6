// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// Source selects where a service configuration is resolved from.
// It implements encoding.TextUnmarshaler (env decoding) and kingpin.Value
// (flag parsing).
type Source string

const (
	// SourceLocal reads the configuration from prefixed environment
	// variables, optionally overlaid by a local .env file.
	SourceLocal Source = "local"
	// SourceRemote fetches the configuration from the configuration
	// authority over HTTP.
	SourceRemote Source = "remote"
)

// ParseSource converts s to a [Source]. Matching is case-insensitive and
// accepts "env" as an alias of "local".
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local", "env":
		return SourceLocal, nil
	case "remote":
		return SourceRemote, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSource, s)
	}
}

// String returns the canonical name of the source.
func (s Source) String() string {
	return string(s)
}

// Set parses v into s.
func (s *Source) Set(v string) error {
	parsed, err := ParseSource(v)
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}

// UnmarshalText parses text into s.
func (s *Source) UnmarshalText(text []byte) error {
	return s.Set(string(text))
}
