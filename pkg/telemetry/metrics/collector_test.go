package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorRecords(t *testing.T) {
	c := NewCollector(&Config{Enabled: true, Namespace: "phiguard"}, nil)

	c.RecordMessage("inbound", "es", "LOW", 2*time.Millisecond)
	c.RecordMessage("inbound", "es", "LOW", time.Millisecond)
	c.RecordMessage("outbound", "en", "CRITICAL", time.Millisecond)
	c.SetChannel("inbound", 0.42, 0.81)
	c.RecordHandoff()
	c.SetLockdown(true)
	c.RecordSaveFailure()

	if got := testutil.ToFloat64(c.messagesTotal.WithLabelValues("inbound", "es", "LOW")); got != 2 {
		t.Errorf("messages_total{inbound,es,LOW} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.messagesTotal.WithLabelValues("outbound", "en", "CRITICAL")); got != 1 {
		t.Errorf("messages_total{outbound,en,CRITICAL} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.channelRisk.WithLabelValues("inbound")); got != 0.42 {
		t.Errorf("channel_risk{inbound} = %v, want 0.42", got)
	}
	if got := testutil.ToFloat64(c.channelSafety.WithLabelValues("inbound")); got != 0.81 {
		t.Errorf("channel_safety{inbound} = %v, want 0.81", got)
	}
	if got := testutil.ToFloat64(c.handoffsTotal); got != 1 {
		t.Errorf("handoffs_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.lockdownActive); got != 1 {
		t.Errorf("lockdown_active = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.saveFailuresTotal); got != 1 {
		t.Errorf("state_save_failures_total = %v, want 1", got)
	}

	c.SetLockdown(false)
	if got := testutil.ToFloat64(c.lockdownActive); got != 0 {
		t.Errorf("lockdown_active after release = %v, want 0", got)
	}
}

func TestCollectorDisabledIsNoop(t *testing.T) {
	c := NewCollector(&Config{Enabled: false}, nil)

	c.RecordMessage("inbound", "es", "LOW", time.Millisecond)
	c.RecordHandoff()
	c.SetLockdown(true)
	c.RecordSaveFailure()

	if got := testutil.ToFloat64(c.handoffsTotal); got != 0 {
		t.Errorf("disabled collector recorded a handoff: %v", got)
	}
	if got := testutil.ToFloat64(c.lockdownActive); got != 0 {
		t.Errorf("disabled collector set lockdown: %v", got)
	}
}

func TestCollectorHandler(t *testing.T) {
	c := NewCollector(&Config{Enabled: true, Namespace: "phiguard"}, nil)
	c.RecordMessage("inbound", "es", "LOW", time.Millisecond)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "phiguard_messages_total") {
		t.Error("exposition should contain phiguard_messages_total")
	}
	if !strings.Contains(body, "phiguard_analysis_duration_seconds") {
		t.Error("exposition should contain the analysis duration histogram")
	}
}

func TestCollectorCustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(&Config{Enabled: true}, reg)

	if c.Registry() != reg {
		t.Error("collector should use the supplied registry")
	}

	// A second collector on its own registry must not panic with duplicate
	// registration.
	NewCollector(&Config{Enabled: true}, nil)
}
