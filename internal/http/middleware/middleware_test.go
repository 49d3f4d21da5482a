package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"

	"fyyur/internal/logging"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := log.Logger
	t.Cleanup(func() { log.Logger = previous })
	logging.SetGlobal(logging.New(logging.Config{Level: "debug", Output: &buf}))
	return &buf
}

func TestRequestLoggingAssignsRequestID(t *testing.T) {
	logs := captureLogs(t)

	var seen string
	handler := RequestLogging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.RequestID(r.Context())
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/venues/999", nil))

	id := rec.Header().Get(RequestIDHeader)
	if id == "" || id != seen {
		t.Fatalf("expected request ID %q in context and header, got %q", seen, id)
	}
	if !strings.Contains(logs.String(), `"status_code":404`) {
		t.Fatalf("expected completion log with status, got %s", logs.String())
	}
	if !strings.Contains(logs.String(), `"level":"warn"`) {
		t.Fatalf("expected 404 to log at warn, got %s", logs.String())
	}
}

func TestRequestLoggingKeepsIncomingID(t *testing.T) {
	captureLogs(t)

	handler := RequestLogging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected incoming request ID to be echoed, got %q", got)
	}
}

func TestRecovery(t *testing.T) {
	logs := captureLogs(t)

	handler := Recovery(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("500 page"))
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shows", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if rec.Body.String() != "500 page" {
		t.Fatalf("expected custom error page, got %q", rec.Body.String())
	}
	if !strings.Contains(logs.String(), "Recovered from panic") {
		t.Fatalf("expected panic to be logged, got %s", logs.String())
	}
}

func TestRecoveryAfterResponseStarted(t *testing.T) {
	logs := captureLogs(t)

	pageCalls := 0
	handler := RequestLogging()(Recovery(func(w http.ResponseWriter, r *http.Request) {
		pageCalls++
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("500 page"))
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("partial"))
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/venues", nil))

	if pageCalls != 0 {
		t.Fatalf("expected error page to be skipped, rendered %d times", pageCalls)
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "partial" {
		t.Fatalf("expected untouched partial response, got %d %q", rec.Code, rec.Body.String())
	}
	if !strings.Contains(logs.String(), `"response_started":true`) {
		t.Fatalf("expected panic log to note the started response, got %s", logs.String())
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		allowed    string
		origin     string
		method     string
		wantOrigin string
		wantStatus int
	}{
		{"disabled", "", "http://localhost:3000", http.MethodGet, "", http.StatusOK},
		{"matching origin", "http://localhost:3000", "http://localhost:3000", http.MethodGet, "http://localhost:3000", http.StatusOK},
		{"other origin", "http://localhost:3000", "http://evil.example", http.MethodGet, "", http.StatusOK},
		{"wildcard", "*", "http://anywhere.example", http.MethodGet, "*", http.StatusOK},
		{"preflight", "*", "http://anywhere.example", http.MethodOptions, "*", http.StatusNoContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/venues", nil)
			req.Header.Set("Origin", tc.origin)
			rec := httptest.NewRecorder()

			CORS(tc.allowed)(next).ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tc.wantOrigin {
				t.Fatalf("expected allow origin %q, got %q", tc.wantOrigin, got)
			}
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
		})
	}
}
