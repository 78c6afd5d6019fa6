package resolver

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/subosito/gotenv"

	"github.com/MKhiriev/go-conf-resolver/config"
	"github.com/MKhiriev/go-conf-resolver/logger"
	"github.com/MKhiriev/go-conf-resolver/models"
)

// LocalEnvStrategy resolves a [models.Conf] from the process environment,
// overlaid on an optional .env file. The process environment wins over the
// file, and the process environment itself is never modified.
type LocalEnvStrategy struct {
	envFile string
	environ func() []string

	logger *logger.Logger
}

// NewLocalEnvStrategy constructs a [LocalEnvStrategy] reading the overlay
// from cfg.EnvFile. An empty EnvFile disables the overlay.
func NewLocalEnvStrategy(cfg config.Local, log *logger.Logger) *LocalEnvStrategy {
	if log == nil {
		log = logger.Nop()
	}

	return &LocalEnvStrategy{
		envFile: cfg.EnvFile,
		environ: os.Environ,
		logger:  log,
	}
}

// Load implements [LocalLoader]. Variable names are matched to prefix and to
// the record fields case-insensitively. Every field must be set, possibly to
// an empty value; an empty integer decodes as 0.
func (s *LocalEnvStrategy) Load(prefix string) (models.Conf, error) {
	prefix = strings.ToUpper(prefix)

	var conf models.Conf
	err := env.ParseWithOptions(&conf, env.Options{
		Prefix:      prefix,
		Environment: s.environment(prefix),
	})
	if err != nil {
		return models.Conf{}, newConfigParseError(err)
	}

	s.logger.Debug().Str("prefix", prefix).Object("conf", conf).Msg("config loaded from environment")
	return conf, nil
}

// environment collects the variables starting with prefix, keyed by their
// upper-cased names.
func (s *LocalEnvStrategy) environment(prefix string) map[string]string {
	vars := make(map[string]string)

	add := func(key, value string) {
		key = strings.ToUpper(key)
		if strings.HasPrefix(key, prefix) {
			vars[key] = value
		}
	}

	for key, value := range s.overlay() {
		add(key, value)
	}
	for _, kv := range s.environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		add(key, value)
	}

	return vars
}

// overlay reads the .env file. Its absence is expected; any other failure is
// logged and the overlay skipped.
func (s *LocalEnvStrategy) overlay() gotenv.Env {
	if s.envFile == "" {
		return nil
	}

	vars, err := gotenv.Read(s.envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn().Err(err).Str("file", s.envFile).Msg("skipping unreadable env file")
		}
		return nil
	}

	return vars
}

func newConfigParseError(err error) *ConfigParseError {
	parseErr := &ConfigParseError{Err: err}

	var aggregate env.AggregateError
	if !errors.As(err, &aggregate) {
		return parseErr
	}

	for _, e := range aggregate.Errors {
		switch e := e.(type) {
		case env.EnvVarIsNotSetError:
			parseErr.Vars = append(parseErr.Vars, e.Key)
		case *env.EnvVarIsNotSetError:
			parseErr.Vars = append(parseErr.Vars, e.Key)
		case env.ParseError:
			parseErr.Vars = append(parseErr.Vars, e.Name)
		case *env.ParseError:
			parseErr.Vars = append(parseErr.Vars, e.Name)
		}
	}

	return parseErr
}
