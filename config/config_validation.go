// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the merged [Settings] can drive a resolution.
// Authority settings are only checked when the remote source is selected.
func (s *Settings) validate() error {
	if _, err := ParseSource(s.Source.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSourceConfigs, err)
	}

	if s.Source != SourceRemote {
		return nil
	}

	if strings.TrimSpace(s.Authority.Address) == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidAuthorityConfigs)
	}
	if !strings.HasPrefix(s.Authority.Path, "/") {
		return fmt.Errorf("%w: path %q must start with /", ErrInvalidAuthorityConfigs, s.Authority.Path)
	}
	if s.Authority.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAuthorityConfigs)
	}

	return nil
}
