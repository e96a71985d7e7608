package adapthttp

import (
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs method, path, status and duration of every request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Infof("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(begin).Round(time.Microsecond))
	})
}

// metricsMiddleware records request counts and durations by route pattern.
func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	if s.metrics == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.metrics.GaugeRequests.Inc()
		defer s.metrics.GaugeRequests.Dec()

		begin := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		status := strconv.Itoa(rec.status)
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		s.metrics.CounterRequests.WithLabelValues(r.Method, status).Inc()
		s.metrics.HistogramRequestDuration.WithLabelValues(route, r.Method, status).Observe(time.Since(begin).Seconds())
	})
}

// recoveryMiddleware turns a handler panic into a 500.
func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				log.Errorf("http: panic serving %s: %v\n%s", r.URL.Path, p, debug.Stack())
				if s.metrics != nil {
					s.metrics.CounterHandleRequestPanic.Inc()
				}
				w.WriteHeader(http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
