package adapthttp

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"bodyprogress/internal/domain"
	"bodyprogress/internal/telemetry/metrics"
)

func TestLoggingMiddleware(t *testing.T) {
	s := &Server{}
	// Create a dummy handler
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("OK"))
	})

	// Wrap it
	handler := s.loggingMiddleware(nextHandler)

	hook := test.NewGlobal()
	defer hook.Reset()

	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	// Check response
	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status %d, got %d", http.StatusTeapot, w.Code)
	}

	// Check log
	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected a log entry")
	}
	if entry.Level != logrus.InfoLevel {
		t.Errorf("expected info level, got %s", entry.Level)
	}
	msg := entry.Message
	if !strings.Contains(msg, "GET") || !strings.Contains(msg, "/test-path") || !strings.Contains(msg, "418") {
		t.Errorf("Log output missing expected fields. Got: %s", msg)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	m := metrics.NewTestManager()
	s := &Server{metrics: m}
	hook := test.NewGlobal()
	defer hook.Reset()

	handler := s.recoveryMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if got := testutil.ToFloat64(m.CounterHandleRequestPanic); got != 1 {
		t.Errorf("expected 1 panic counted, got %v", got)
	}
	if entry := hook.LastEntry(); entry == nil || entry.Level != logrus.ErrorLevel {
		t.Errorf("expected error log, got %v", entry)
	}
}

func TestStatusFor(t *testing.T) {
	for _, tt := range []struct {
		err  error
		want int
	}{
		{fmt.Errorf("entry 2: %w", domain.ErrInvalidInput), http.StatusBadRequest},
		{domain.ErrPhotoDecode, http.StatusBadRequest},
		{domain.ErrEntryDeleteDisabled, http.StatusForbidden},
		{domain.ErrIndexOutOfRange, http.StatusNotFound},
		{domain.ErrNoData, http.StatusNotFound},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	} {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
