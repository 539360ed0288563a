package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordCountsByRouteAndStatus(t *testing.T) {
	c := New()
	c.Record(http.MethodGet, "/api/v1/engineers", http.StatusOK, 12*time.Millisecond)
	c.Record(http.MethodGet, "/api/v1/engineers", http.StatusOK, 3*time.Millisecond)
	c.Record(http.MethodPost, "/api/v1/evaluations", http.StatusTooManyRequests, time.Millisecond)

	if got := testutil.ToFloat64(c.httpRequests.WithLabelValues("GET", "/api/v1/engineers", "200")); got != 2 {
		t.Fatalf("expected 2 engineer list requests, got %v", got)
	}
	if got := testutil.ToFloat64(c.rateLimited); got != 1 {
		t.Fatalf("expected 1 rate limited request, got %v", got)
	}
}

func TestDomainCounters(t *testing.T) {
	c := New()
	c.EvaluationSubmitted()
	c.CalibrationRecorded()
	c.CalibrationRecorded()
	c.ExportRendered("ok")
	c.NarrativeFailed("quota")

	if got := testutil.ToFloat64(c.evaluationsSubmitted); got != 1 {
		t.Fatalf("expected 1 evaluation, got %v", got)
	}
	if got := testutil.ToFloat64(c.calibrationsRecorded); got != 2 {
		t.Fatalf("expected 2 calibrations, got %v", got)
	}
	if got := testutil.ToFloat64(c.narrativeFailures.WithLabelValues("quota")); got != 1 {
		t.Fatalf("expected 1 quota failure, got %v", got)
	}
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector
	c.Record(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	c.EvaluationSubmitted()
	c.NarrativeFailed("other")
}

func TestHandlerExposesMetrics(t *testing.T) {
	c := New()
	c.ExportRendered("ok")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "enginuity_calibration_exports_total") {
		t.Fatalf("expected export counter in output, got %s", body)
	}
}
