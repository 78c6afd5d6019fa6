// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver resolves a service's runtime configuration from one of two
// sources selected by [config.Source]:
//
//   - [config.SourceLocal]: prefixed environment variables, optionally
//     overlaid by a .env file ([LocalEnvStrategy]);
//   - [config.SourceRemote]: a single HTTP POST to the configuration
//     authority ([RemoteFetchStrategy]).
//
// Both produce the same [models.Conf]. Failures are returned as typed errors
// ([ConfigParseError], [TransportError], [DecodeError]) so that the
// application bootstrap decides whether to terminate; [MustGetConfig] is
// provided for callers that want the process to exit on failure.
package resolver
