package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"
)

// NetAddress holds structured network address data for host and port.
// It implements the kingpin.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// BindFlags registers the resolver settings flags on app and returns the
// [Settings] they populate once app has parsed its arguments. Unset flags
// leave zero values, so the result can be passed straight to [Load].
//
// Flags:
//
//	-s/--source          configuration source: local or remote
//	-a/--authority       authority address in format host:port
//	--authority-path     authority endpoint path
//	--timeout            authority request timeout (e.g. "5s")
//	--env-file           .env overlay used by the local source
func BindFlags(app *kingpin.Application) *Settings {
	settings := &Settings{}
	var authority NetAddress

	app.Flag("source", "Configuration source: local or remote").
		Short('s').
		SetValue(&settings.Source)
	app.Flag("authority", "Configuration authority address host:port").
		Short('a').
		Action(func(*kingpin.ParseContext) error {
			settings.Authority.Address = authority.String()
			return nil
		}).
		SetValue(&authority)
	app.Flag("authority-path", "Configuration authority endpoint path").
		StringVar(&settings.Authority.Path)
	app.Flag("timeout", "Configuration authority request timeout (e.g. 5s)").
		DurationVar(&settings.Authority.RequestTimeout)
	app.Flag("env-file", "Local .env overlay file").
		StringVar(&settings.Local.EnvFile)

	return settings
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It requires a non-empty host and a port in range 1..65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	if host == "" {
		return errors.New("host must not be empty")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	a.Host = host
	a.Port = port
	return nil
}
