package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"soberania-mesh/phiguard/pkg/config"
	"soberania-mesh/phiguard/pkg/guard"
	"soberania-mesh/phiguard/pkg/telemetry/metrics"
)

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	g := guard.New(guard.Config{NodeID: "test-node"})
	cfg := config.Default()
	s := New(&cfg.Server, g, nil)
	return s, s.routes()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestProcessMessageEndpoint(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/messages", map[string]any{
		"text":      "Es urgente! Debes actuar ahora mismo antes de que sea tarde!",
		"direction": "inbound",
		"metadata":  map[string]any{"relay": "sector-3"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var result guard.Result
	decodeBody(t, rec, &result)
	if result.Direction != guard.DirectionInbound {
		t.Errorf("direction = %q", result.Direction)
	}
	if result.Language != "es" {
		t.Errorf("detected language = %q, want es", result.Language)
	}
	if len(result.Signals) == 0 {
		t.Error("expected signals for an urgency message")
	}
	if result.Metadata["relay"] != "sector-3" {
		t.Errorf("metadata lost: %v", result.Metadata)
	}
}

func TestProcessMessageValidation(t *testing.T) {
	_, h := newTestServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{
			name: "missing text",
			body: map[string]any{"direction": "inbound"},
		},
		{
			name: "bad direction",
			body: map[string]any{"text": "hola", "direction": "sideways"},
		},
		{
			name: "bad language",
			body: map[string]any{"text": "hola", "direction": "inbound", "language": "fr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/v1/messages", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			var er errorResponse
			decodeBody(t, rec, &er)
			if er.Error == "" {
				t.Error("expected an error message in the body")
			}
		})
	}
}

func TestProcessMessageInvalidJSON(t *testing.T) {
	_, h := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/messages", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestStatusEndpoint(t *testing.T) {
	_, h := newTestServer(t)

	doJSON(t, h, http.MethodPost, "/v1/messages", map[string]any{
		"text": "hola", "direction": "inbound",
	})

	rec := doJSON(t, h, http.MethodGet, "/v1/status", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var st guard.Status
	decodeBody(t, rec, &st)
	if st.NodeID != "test-node" {
		t.Errorf("node id = %q", st.NodeID)
	}
	if st.TotalMessages != 1 {
		t.Errorf("total messages = %d, want 1", st.TotalMessages)
	}
	if st.Bilateral.Level != guard.LevelLow {
		t.Errorf("level = %q, want LOW", st.Bilateral.Level)
	}
}

func TestLockdownEndpoints(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/lockdown", map[string]any{"reason": "compromised relay"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var receipt guard.LockdownReceipt
	decodeBody(t, rec, &receipt)
	if receipt.Status != "LOCKDOWN_ACTIVE" || receipt.Reason != "compromised relay" {
		t.Errorf("receipt = %+v", receipt)
	}

	// Empty body defaults the reason.
	doJSON(t, h, http.MethodDelete, "/v1/lockdown", nil)
	rec = doJSON(t, h, http.MethodPost, "/v1/lockdown", nil)
	decodeBody(t, rec, &receipt)
	if receipt.Reason != "manual" {
		t.Errorf("default reason = %q", receipt.Reason)
	}

	rec = doJSON(t, h, http.MethodDelete, "/v1/lockdown", nil)
	decodeBody(t, rec, &receipt)
	if receipt.Status != "LOCKDOWN_RELEASED" {
		t.Errorf("release status = %q", receipt.Status)
	}

	rec = doJSON(t, h, http.MethodDelete, "/v1/lockdown", nil)
	decodeBody(t, rec, &receipt)
	if receipt.Status != "NO_LOCKDOWN" {
		t.Errorf("repeat release status = %q", receipt.Status)
	}
}

func TestResetEndpoint(t *testing.T) {
	_, h := newTestServer(t)

	doJSON(t, h, http.MethodPost, "/v1/messages", map[string]any{
		"text": "urgente urgente urgente", "direction": "inbound",
	})

	rec := doJSON(t, h, http.MethodPost, "/v1/reset", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/status", nil)
	var st guard.Status
	decodeBody(t, rec, &st)
	if st.TotalMessages != 0 {
		t.Errorf("total messages after reset = %d, want 0", st.TotalMessages)
	}
}

func TestCounterSpeechEndpoint(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/v1/counter-speech?lang=en", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["message"] == "" {
		t.Error("expected a counter-speech message")
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/counter-speech?lang=fr", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status for bad lang = %d, want 400", rec.Code)
	}
}

func TestHealthzEndpoint(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["status"] != "ok" {
		t.Errorf("health status = %q", body["status"])
	}
}

func TestMetricsEndpointRegistration(t *testing.T) {
	g := guard.New(guard.Config{NodeID: "test-node"})
	cfg := config.Default()

	// Without a collector the endpoint does not exist.
	s := New(&cfg.Server, g, nil)
	rec := doJSON(t, s.routes(), http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status without collector = %d, want 404", rec.Code)
	}

	collector := metrics.NewCollector(&metrics.Config{Enabled: true, Namespace: "phiguard"}, nil)
	s = New(&cfg.Server, g, collector)
	rec = doJSON(t, s.routes(), http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status with collector = %d, want 200", rec.Code)
	}
}
