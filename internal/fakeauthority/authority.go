// Package fakeauthority provides an in-process configuration authority for
// tests. It serves the same contract as the real authority (POST of
// {"app_name": ...} answered with a Conf JSON body), records every request it
// receives, and can be told to fail.
package fakeauthority

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-conf-resolver/config"
	"github.com/MKhiriev/go-conf-resolver/internal/utils"
	"github.com/MKhiriev/go-conf-resolver/logger"
	"github.com/MKhiriev/go-conf-resolver/models"
)

// Request is a recorded inbound request.
type Request struct {
	Method        string
	Path          string
	ContentType   string
	SchemaVersion string
	TraceID       string
	Body          []byte
}

type failure struct {
	status int
	body   string
}

// Authority is a fake configuration authority.
type Authority struct {
	path string

	mu       sync.Mutex
	confs    map[string]models.Conf
	requests []Request
	failure  *failure

	logger *logger.Logger
}

// New creates an authority serving on [config.DefaultAuthorityPath].
func New(log *logger.Logger) *Authority {
	if log == nil {
		log = logger.Nop()
	}

	return &Authority{
		path:   config.DefaultAuthorityPath,
		confs:  make(map[string]models.Conf),
		logger: log,
	}
}

// WithPath changes the endpoint path. It must be called before Router.
func (a *Authority) WithPath(path string) *Authority {
	a.path = path
	return a
}

// SetConf registers the configuration returned for appName.
func (a *Authority) SetConf(appName string, conf models.Conf) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.confs[appName] = conf
}

// Fail makes every following request answer with status and a raw body,
// regardless of the app name. A 200 status with a malformed body simulates a
// schema mismatch.
func (a *Authority) Fail(status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failure = &failure{status: status, body: body}
}

// Requests returns a copy of the requests received so far.
func (a *Authority) Requests() []Request {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Request(nil), a.requests...)
}

// Router returns the HTTP handler of the authority.
func (a *Authority) Router() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(a.withTraceID)
	router.Use(a.withLogging)

	router.Post(a.path, a.conf)

	return router
}

// Serve starts the authority on an httptest server closed at the end of the
// test and returns its base URL.
func Serve(t testing.TB, a *Authority) string {
	t.Helper()
	srv := httptest.NewServer(a.Router())
	t.Cleanup(srv.Close)
	return srv.URL
}

func (a *Authority) conf(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "cannot read body", http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	a.requests = append(a.requests, Request{
		Method:        r.Method,
		Path:          r.URL.Path,
		ContentType:   r.Header.Get("Content-Type"),
		SchemaVersion: r.Header.Get(models.SchemaVersionHeader),
		TraceID:       r.Header.Get(utils.TraceIDHeader),
		Body:          body,
	})
	fail := a.failure
	a.mu.Unlock()

	if fail != nil {
		w.WriteHeader(fail.status)
		_, _ = w.Write([]byte(fail.body))
		return
	}

	if v := r.Header.Get(models.SchemaVersionHeader); v != "" && v != models.SchemaVersion {
		http.Error(w, "unsupported schema version", http.StatusBadRequest)
		return
	}

	var req models.ConfRequest
	if err = json.Unmarshal(body, &req); err != nil || req.AppName == "" {
		http.Error(w, "invalid config request", http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	conf, ok := a.confs[req.AppName]
	a.mu.Unlock()
	if !ok {
		log.Warn().Str("app_name", req.AppName).Msg("unknown application")
		http.Error(w, "unknown application", http.StatusNotFound)
		return
	}

	if _, err = utils.WriteJSON(w, conf, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("error writing config")
	}
}
