package config

import "errors"

var (
	// ErrUnknownSource is returned when a source name is neither local nor
	// remote.
	ErrUnknownSource = errors.New("unknown configuration source")
	// ErrInvalidAuthorityConfigs indicates missing or malformed authority
	// settings (for example, an empty address or a path without a leading
	// slash).
	ErrInvalidAuthorityConfigs = errors.New("invalid authority configuration")
	// ErrInvalidSourceConfigs indicates that no valid source is selected.
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
)
