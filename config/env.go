// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates s from CONF_-prefixed environment variables using the
// caarlos0/env library.
//
// Returns a wrapped error if a value cannot be converted to the target type
// (e.g. an unknown source or a malformed duration).
func parseEnv(s *Settings) error {
	err := env.ParseWithOptions(s, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env settings: %w", err)
	}

	return nil
}
