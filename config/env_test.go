// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONF_SOURCE":                    "local",
		"CONF_AUTHORITY_ADDRESS":         "conf.internal:3030",
		"CONF_AUTHORITY_PATH":            "/mystruct",
		"CONF_AUTHORITY_REQUEST_TIMEOUT": "5s",
		"CONF_LOCAL_ENV_FILE":            "/etc/app/.env",
	})

	// Act
	s := &Settings{}
	err := parseEnv(s)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, s.Source)
	assert.Equal(t, "conf.internal:3030", s.Authority.Address)
	assert.Equal(t, "/mystruct", s.Authority.Path)
	assert.Equal(t, 5*time.Second, s.Authority.RequestTimeout)
	assert.Equal(t, "/etc/app/.env", s.Local.EnvFile)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	s := &Settings{}
	err := parseEnv(s)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Settings{}, *s)
}

func TestParseEnv_SourceAlias(t *testing.T) {
	setEnvVars(t, map[string]string{"CONF_SOURCE": "ENV"})

	s := &Settings{}
	require.NoError(t, parseEnv(s))
	assert.Equal(t, SourceLocal, s.Source)
}

func TestParseEnv_UnknownSource(t *testing.T) {
	setEnvVars(t, map[string]string{"CONF_SOURCE": "debug"})

	err := parseEnv(&Settings{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrUnknownSource.Error())
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"CONF_AUTHORITY_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&Settings{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_IgnoresUnprefixedVars(t *testing.T) {
	setEnvVars(t, map[string]string{"SOURCE": "local", "AUTHORITY_ADDRESS": "x:1"})

	s := &Settings{}
	require.NoError(t, parseEnv(s))
	assert.Empty(t, s.Source)
	assert.Empty(t, s.Authority.Address)
}

// Helpers

var settingsEnvKeys = []string{
	"CONF_SOURCE",
	"CONF_AUTHORITY_ADDRESS",
	"CONF_AUTHORITY_PATH",
	"CONF_AUTHORITY_REQUEST_TIMEOUT",
	"CONF_LOCAL_ENV_FILE",
	"SOURCE",
	"AUTHORITY_ADDRESS",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range settingsEnvKeys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
		require.NoError(t, os.Unsetenv(k))
	}
}
