// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const redacted = "******"

// maxPort is the largest valid TCP port number.
const maxPort = 65535

// Conf is the resolved runtime configuration of a service.
//
// The same record is produced by both configuration sources: environment
// variables (via the `env` tags, relative to the per-application prefix)
// and the configuration authority (via the `json` tags). A consumer never
// needs to know which source produced it.
//
// Every field must be present in either source, but an empty value is kept
// as is (a passwordless development database, port 0 for "any").
//
// Conf is comparable with == and its zero value is a valid empty record.
type Conf struct {
	// Port is the TCP port the application listens on.
	// Env: <APP>_PORT
	Port int `env:"PORT,required" json:"port" yaml:"port"`

	// Host is the interface or hostname the application binds to.
	// Env: <APP>_HOST
	Host string `env:"HOST,required" json:"host" yaml:"host"`

	// PgDBConnectionPort is the PostgreSQL server port.
	// Env: <APP>_PG_DB_CONNECTION_PORT
	PgDBConnectionPort int `env:"PG_DB_CONNECTION_PORT,required" json:"pg_db_connection_port" yaml:"pg_db_connection_port"`

	// PgDBHost is the PostgreSQL server host.
	// Env: <APP>_PG_DB_HOST
	PgDBHost string `env:"PG_DB_HOST,required" json:"pg_db_host" yaml:"pg_db_host"`

	// PgDBName is the database name.
	// Env: <APP>_PG_DB_NAME
	PgDBName string `env:"PG_DB_NAME,required" json:"pg_db_name" yaml:"pg_db_name"`

	// PgDBUsername is the database role used to connect.
	// Env: <APP>_PG_DB_USERNAME
	PgDBUsername string `env:"PG_DB_USERNAME,required" json:"pg_db_username" yaml:"pg_db_username"`

	// PgDBPassword is the password of PgDBUsername.
	// It is never printed by String or written to logs.
	// Env: <APP>_PG_DB_PASSWORD
	PgDBPassword string `env:"PG_DB_PASSWORD,required" json:"pg_db_password" yaml:"pg_db_password"`
}

// Validation errors returned by [Conf.Validate].
var (
	ErrInvalidPort  = errors.New("port must be in range 1..65535")
	ErrMissingField = errors.New("required field is empty")
)

// Validate checks that the record is usable for serving: both ports in
// range and every string field set. Resolution does not call it; callers
// that need a complete record opt in.
func (c Conf) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > maxPort {
		errs = append(errs, fmt.Errorf("port %d: %w", c.Port, ErrInvalidPort))
	}
	if c.PgDBConnectionPort < 1 || c.PgDBConnectionPort > maxPort {
		errs = append(errs, fmt.Errorf("pg_db_connection_port %d: %w", c.PgDBConnectionPort, ErrInvalidPort))
	}

	for _, f := range []struct{ name, value string }{
		{"host", c.Host},
		{"pg_db_host", c.PgDBHost},
		{"pg_db_name", c.PgDBName},
		{"pg_db_username", c.PgDBUsername},
		{"pg_db_password", c.PgDBPassword},
	} {
		if f.value == "" {
			errs = append(errs, fmt.Errorf("%s: %w", f.name, ErrMissingField))
		}
	}

	return errors.Join(errs...)
}

// RequiredJSONKeys returns the object keys a JSON document must carry to
// decode into a complete Conf, in field order.
func RequiredJSONKeys() []string {
	t := reflect.TypeFor[Conf]()
	keys := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		keys = append(keys, name)
	}
	return keys
}

// Addr returns the application listen address in host:port form.
func (c Conf) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// DSN builds a PostgreSQL connection URL from the PgDB* fields.
func (c Conf) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.PgDBUsername, c.PgDBPassword),
		Host:   net.JoinHostPort(c.PgDBHost, strconv.Itoa(c.PgDBConnectionPort)),
		Path:   "/" + c.PgDBName,
	}
	return u.String()
}

// PgConnConfig parses [Conf.DSN] into a pgx connection config ready to be
// passed to pgx.ConnectConfig.
func (c Conf) PgConnConfig() (*pgx.ConnConfig, error) {
	cfg, err := pgx.ParseConfig(c.DSN())
	if err != nil {
		return nil, fmt.Errorf("error parsing postgres dsn: %w", err)
	}

	return cfg, nil
}

// String implements fmt.Stringer with the password redacted.
func (c Conf) String() string {
	return fmt.Sprintf(
		"Conf{Port:%d Host:%q PgDBConnectionPort:%d PgDBHost:%q PgDBName:%q PgDBUsername:%q PgDBPassword:%s}",
		c.Port, c.Host, c.PgDBConnectionPort, c.PgDBHost, c.PgDBName, c.PgDBUsername, c.redactedPassword(),
	)
}

// Redacted returns a copy of c with the password masked. Used for output
// that leaves the process (CLI, logs).
func (c Conf) Redacted() Conf {
	c.PgDBPassword = c.redactedPassword()
	return c
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (c Conf) MarshalZerologObject(e *zerolog.Event) {
	e.Int("port", c.Port).
		Str("host", c.Host).
		Int("pg_db_connection_port", c.PgDBConnectionPort).
		Str("pg_db_host", c.PgDBHost).
		Str("pg_db_name", c.PgDBName).
		Str("pg_db_username", c.PgDBUsername).
		Str("pg_db_password", c.redactedPassword())
}

func (c Conf) redactedPassword() string {
	if c.PgDBPassword == "" {
		return ""
	}
	return redacted
}
