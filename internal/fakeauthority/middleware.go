package fakeauthority

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-conf-resolver/internal/utils"
	"github.com/MKhiriev/go-conf-resolver/logger"
)

func (a *Authority) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(utils.TraceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		l := a.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(utils.TraceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (a *Authority) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		logger.FromRequest(r).Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", sw.status).
			Dur("duration", time.Since(start)).
			Send()
	})
}
