package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimitRejectsWithStructuredBody(t *testing.T) {
	handler := RateLimit(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/user", nil)
	req.RemoteAddr = "203.0.113.7:51000"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("first request: got status %d, want %d", rec.Code, http.StatusNoContent)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: got status %d, want %d", rec.Code, http.StatusTooManyRequests)
	}

	var body struct {
		Status    int    `json:"status"`
		Error     string `json:"error"`
		Message   string `json:"message"`
		Path      string `json:"path"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding rejection body: %v", err)
	}
	if body.Status != http.StatusTooManyRequests {
		t.Errorf("body status = %d, want %d", body.Status, http.StatusTooManyRequests)
	}
	if body.Path != "/user" {
		t.Errorf("body path = %q, want %q", body.Path, "/user")
	}
	if body.Message == "" || body.Timestamp == "" {
		t.Errorf("body message/timestamp not populated: %+v", body)
	}
}

func TestRateLimitTracksClientsIndependently(t *testing.T) {
	handler := RateLimit(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	first := httptest.NewRequest(http.MethodPost, "/user", nil)
	first.RemoteAddr = "198.51.100.1:40000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("exhausted client: got status %d, want %d", rec.Code, http.StatusTooManyRequests)
	}

	other := httptest.NewRequest(http.MethodPost, "/user", nil)
	other.RemoteAddr = "198.51.100.2:40000"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("fresh client: got status %d, want %d", rec.Code, http.StatusNoContent)
	}
}
