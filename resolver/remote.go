package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-conf-resolver/config"
	"github.com/MKhiriev/go-conf-resolver/internal/utils"
	"github.com/MKhiriev/go-conf-resolver/logger"
	"github.com/MKhiriev/go-conf-resolver/models"
)

// RemoteFetchStrategy resolves a [models.Conf] from the configuration
// authority with a single HTTP POST per call. A fresh client is created per
// fetch, so the strategy holds no connection state and is safe for
// concurrent use.
type RemoteFetchStrategy struct {
	baseURL string
	path    string
	timeout time.Duration

	logger *logger.Logger
}

// NewRemoteFetchStrategy constructs a [RemoteFetchStrategy] for the authority
// described by cfg. Empty address and path fall back to
// [config.DefaultAuthorityAddress] and [config.DefaultAuthorityPath].
//
// Returns an error if the address cannot be parsed as a URL.
func NewRemoteFetchStrategy(cfg config.Authority, log *logger.Logger) (*RemoteFetchStrategy, error) {
	if log == nil {
		log = logger.Nop()
	}

	address := cfg.Address
	if strings.TrimSpace(address) == "" {
		address = config.DefaultAuthorityAddress
	}

	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid authority address: %w", err)
	}

	path := cfg.Path
	if path == "" {
		path = config.DefaultAuthorityPath
	}

	return &RemoteFetchStrategy{
		baseURL: baseURL,
		path:    path,
		timeout: cfg.RequestTimeout,
		logger:  log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// URL returns the authority endpoint the strategy POSTs to.
func (s *RemoteFetchStrategy) URL() string {
	return s.baseURL + s.path
}

// Fetch implements [RemoteFetcher]. It POSTs {"app_name": appName} as JSON
// and decodes a 200 response into a [models.Conf]. No retry is attempted,
// redirects are not followed, and ctx bounds the request.
func (s *RemoteFetchStrategy) Fetch(ctx context.Context, appName string) (models.Conf, error) {
	client := utils.NewHTTPClient(s.baseURL, s.timeout)
	defer client.GetClient().CloseIdleConnections()

	traceID := utils.NewTraceID()
	log := s.logger.With().Str("trace_id", traceID).Str("app_name", appName).Logger()

	start := time.Now()
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(models.SchemaVersionHeader, models.SchemaVersion).
		SetHeader(utils.TraceIDHeader, traceID).
		SetBody(models.ConfRequest{AppName: appName}).
		Post(s.path)
	if err != nil {
		log.Error().Err(err).Str("url", s.URL()).Msg("config request failed")
		return models.Conf{}, &TransportError{URL: s.URL(), Err: err}
	}

	log.Debug().
		Str("url", s.URL()).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("config response received")

	if err = mapHTTPError(resp, s.URL()); err != nil {
		return models.Conf{}, err
	}

	return decodeConf(resp.Body())
}

// decodeConf decodes a 200 body. Every record key must be present; empty
// values are accepted.
func decodeConf(body []byte) (models.Conf, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return models.Conf{}, &DecodeError{Err: err}
	}

	var missing []string
	for _, key := range models.RequiredJSONKeys() {
		if _, ok := fields[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return models.Conf{}, &DecodeError{Err: fmt.Errorf("%w: %s", ErrMissingKeys, strings.Join(missing, ", "))}
	}

	var conf models.Conf
	if err := json.Unmarshal(body, &conf); err != nil {
		return models.Conf{}, &DecodeError{Err: err}
	}

	return conf, nil
}
