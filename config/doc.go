// Package config provides loading, merging, and validation of the settings
// that drive configuration resolution: which source is consulted and how the
// configuration authority and the local environment overlay are reached.
//
// Settings are assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables prefixed with CONF_
//  3. Command-line flags bound with [BindFlags]
//
// The main entry point is [Load].
package config
