package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAuth(t *testing.T) {
	m := New()

	m.RecordAuth("login", OutcomeSuccess)
	m.RecordAuth("login", OutcomeSuccess)
	m.RecordAuth("login", OutcomeFailure)

	if got := testutil.ToFloat64(m.AuthEvents.WithLabelValues("login", OutcomeSuccess)); got != 2 {
		t.Errorf("login success = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.AuthEvents.WithLabelValues("login", OutcomeFailure)); got != 1 {
		t.Errorf("login failure = %v, want 1", got)
	}
}

func TestRecordAuth_NilReceiver(t *testing.T) {
	var m *Metrics
	m.RecordAuth("login", OutcomeSuccess)
}

func TestHandler(t *testing.T) {
	m := New()
	m.RecordAuth("register", OutcomeSuccess)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `rental_auth_events_total{operation="register",outcome="success"} 1`) {
		t.Errorf("metrics output missing auth counter:\n%s", body)
	}
}
