// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable read into [Settings].
const EnvPrefix = "CONF_"

// Default values applied before environment variables and flags.
const (
	DefaultAuthorityAddress = "127.0.0.1:20200"
	DefaultAuthorityPath    = "/conf"
	DefaultEnvFile          = ".env"
)

// Settings is the top-level container for the resolver settings.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Settings struct {
	// Source selects the configuration source.
	// Env: CONF_SOURCE
	Source Source `env:"SOURCE"`

	// Authority holds the settings of the remote configuration authority.
	Authority Authority `envPrefix:"AUTHORITY_"`

	// Local holds the settings of the local environment source.
	Local Local `envPrefix:"LOCAL_"`
}

// Authority holds the address of the configuration authority and the
// transport settings used to reach it.
type Authority struct {
	// Address is the authority address, either "host:port" or a full URL
	// (e.g. "127.0.0.1:20200", "https://conf.internal").
	// Env: CONF_AUTHORITY_ADDRESS
	Address string `env:"ADDRESS"`

	// Path is the endpoint path the configuration request is POSTed to.
	// Env: CONF_AUTHORITY_PATH
	Path string `env:"PATH"`

	// RequestTimeout bounds a single fetch. Zero keeps the transport
	// default.
	// Env: CONF_AUTHORITY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Local holds the settings of the local environment source.
type Local struct {
	// EnvFile is the optional .env overlay read before the process
	// environment. A missing file is not an error.
	// Env: CONF_LOCAL_ENV_FILE
	EnvFile string `env:"ENV_FILE"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		Source: SourceRemote,
		Authority: Authority{
			Address: DefaultAuthorityAddress,
			Path:    DefaultAuthorityPath,
		},
		Local: Local{
			EnvFile: DefaultEnvFile,
		},
	}
}

// Load builds, merges, and validates the resolver settings from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. flags, when non-nil (see [BindFlags])
func Load(flags *Settings) (*Settings, error) {
	return newSettingsBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		build()
}
