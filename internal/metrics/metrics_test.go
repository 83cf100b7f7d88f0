package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func TestMetricsExposure(t *testing.T) {
	IncCommandRun("search")
	IncCommandError("search")
	IncMutation("influencer_added")
	SearchRuns.Inc()
	SearchErrors.Inc()
	IncAICall("summarize", errors.New("boom"))
	ObserveSearchDuration(time.Now().Add(-500 * time.Millisecond))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, m := range []string{
		"collabhub_command_runs_total",
		"collabhub_command_errors_total",
		`collabhub_store_mutations_total{kind="influencer_added"}`,
		"collabhub_search_runs_total",
		"collabhub_search_errors_total",
		"collabhub_search_duration_seconds",
		`collabhub_ai_errors_total{op="summarize"}`,
	} {
		if !strings.Contains(body, m) {
			t.Fatalf("expected metric %s in body", m)
		}
	}
}
