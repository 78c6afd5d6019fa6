// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-conf-resolver/config"
	"github.com/MKhiriev/go-conf-resolver/logger"
	"github.com/MKhiriev/go-conf-resolver/models"
)

// Resolver produces a [models.Conf] for an application from the source
// selected at construction. It keeps no state between calls.
type Resolver struct {
	source config.Source
	local  LocalLoader
	remote RemoteFetcher

	logger *logger.Logger
}

// New constructs a [Resolver] for settings. Only the strategy of the selected
// source is created. A nil log discards resolver logs.
//
// Returns an error if the source is unknown or the authority address is
// invalid.
func New(settings config.Settings, log *logger.Logger) (*Resolver, error) {
	if log == nil {
		log = logger.Nop()
	}

	source, err := config.ParseSource(settings.Source.String())
	if err != nil {
		return nil, fmt.Errorf("error creating resolver: %w", err)
	}

	r := &Resolver{source: source, logger: log}
	switch source {
	case config.SourceLocal:
		r.local = NewLocalEnvStrategy(settings.Local, log)
	case config.SourceRemote:
		if r.remote, err = NewRemoteFetchStrategy(settings.Authority, log); err != nil {
			return nil, fmt.Errorf("error creating resolver: %w", err)
		}
	}

	return r, nil
}

// Source returns the source the resolver consults.
func (r *Resolver) Source() config.Source {
	return r.source
}

// EnvPrefix returns the environment variable prefix of appName: the
// upper-cased name followed by "_".
func EnvPrefix(appName string) string {
	return strings.ToUpper(appName) + "_"
}

// GetConfig resolves the configuration of appName. Exactly one strategy is
// invoked: the local source reads <APPNAME>_<FIELD> variables, the remote
// source POSTs the raw appName to the authority.
//
// On failure the returned record is always the zero value and the error is
// one of [ErrEmptyAppName], [*ConfigParseError], [*TransportError] or
// [*DecodeError].
func (r *Resolver) GetConfig(ctx context.Context, appName string) (models.Conf, error) {
	if strings.TrimSpace(appName) == "" {
		return models.Conf{}, ErrEmptyAppName
	}

	r.logger.Debug().Str("app_name", appName).Stringer("source", r.source).Msg("resolving config")

	var (
		conf models.Conf
		err  error
	)
	switch r.source {
	case config.SourceLocal:
		conf, err = r.local.Load(EnvPrefix(appName))
	case config.SourceRemote:
		conf, err = r.remote.Fetch(ctx, appName)
	default:
		err = fmt.Errorf("%w: %q", config.ErrUnknownSource, r.source)
	}
	if err != nil {
		return models.Conf{}, err
	}

	return conf, nil
}

// GetConfig resolves appName with settings loaded from defaults and CONF_*
// environment variables.
func GetConfig(ctx context.Context, appName string) (models.Conf, error) {
	settings, err := config.Load(nil)
	if err != nil {
		return models.Conf{}, fmt.Errorf("error loading resolver settings: %w", err)
	}

	r, err := New(*settings, nil)
	if err != nil {
		return models.Conf{}, err
	}

	return r.GetConfig(ctx, appName)
}

// MustGetConfig is like [GetConfig] but terminates the process through
// log.Fatal when the configuration cannot be resolved. A nil log reports the
// failure on stderr.
func MustGetConfig(ctx context.Context, appName string, log *logger.Logger) models.Conf {
	if log == nil {
		log = logger.NewCLILogger("resolver")
	}

	conf, err := GetConfig(ctx, appName)
	if err != nil {
		log.Fatal().Err(err).Str("app_name", appName).Msg("cannot resolve config")
	}

	return conf
}
