package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-conf-resolver/config"
	"github.com/MKhiriev/go-conf-resolver/logger"
	"github.com/MKhiriev/go-conf-resolver/models"
	"github.com/MKhiriev/go-conf-resolver/resolver"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewCLILogger("confetch")

	app := kingpin.New("confetch", "Resolve a service configuration from the local environment or the configuration authority")
	app.Version(buildInfo())
	appName := app.Arg("app", "Application name").Required().String()
	format := app.Flag("format", "Output format: json or yaml").Short('o').Default("json").Enum("json", "yaml")
	reveal := app.Flag("reveal", "Print secrets instead of masking them").Bool()
	flags := config.BindFlags(app)

	kingpin.MustParse(app.Parse(os.Args[1:]))

	settings, err := config.Load(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading settings")
	}

	r, err := resolver.New(*settings, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating resolver")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf, err := r.GetConfig(ctx, *appName)
	if err != nil {
		log.Fatal().Err(err).Str("app_name", *appName).Stringer("source", r.Source()).Msg("cannot resolve config")
	}

	if !*reveal {
		conf = conf.Redacted()
	}

	if err = printConf(os.Stdout, conf, *format); err != nil {
		log.Fatal().Err(err).Msg("error printing config")
	}
}

func printConf(w io.Writer, conf models.Conf, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(conf); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(conf); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

func buildInfo() string {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", buildVersion, buildDate, buildCommit)
}
