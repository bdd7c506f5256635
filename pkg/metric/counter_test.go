package metric

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounterIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCounter(reg, "portfolio_test_events_total", "test events", "action")

	c.Increment("open")
	c.Increment("open")
	c.Increment("close")

	if got := testutil.ToFloat64(c.vec.WithLabelValues("open")); got != 2 {
		t.Fatalf("expected 2 opens, got %v", got)
	}
	if got := testutil.ToFloat64(c.vec.WithLabelValues("close")); got != 1 {
		t.Fatalf("expected 1 close, got %v", got)
	}
}

func TestHandlerExposesCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCounter(reg, "portfolio_test_views_total", "test views", "page").Increment("/about")

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if !strings.Contains(rec.Body.String(), `portfolio_test_views_total{page="/about"} 1`) {
		t.Fatalf("counter missing from output:\n%s", rec.Body.String())
	}
}
