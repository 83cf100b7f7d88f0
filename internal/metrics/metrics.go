package metrics

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CommandRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "collabhub_command_runs_total",
		Help: "Total CLI command runs",
	}, []string{"command"})
	CommandErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "collabhub_command_errors_total",
		Help: "Total CLI command failures",
	}, []string{"command"})
	StoreMutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "collabhub_store_mutations_total",
		Help: "Committed store mutations by kind",
	}, []string{"kind"})
	SearchRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "collabhub_search_runs_total",
		Help: "Total influencer searches",
	})
	SearchErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "collabhub_search_errors_total",
		Help: "Searches abandoned before completion",
	})
	SearchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "collabhub_search_duration_seconds",
		Help:    "Search duration seconds, including simulated latency",
		Buckets: prometheus.DefBuckets,
	})
	AICalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "collabhub_ai_calls_total",
		Help: "Total AI collaborator calls",
	}, []string{"op"})
	AIErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "collabhub_ai_errors_total",
		Help: "Failed AI collaborator calls",
	}, []string{"op"})
)

func init() {
	prometheus.MustRegister(CommandRuns, CommandErrors, StoreMutations, SearchRuns, SearchErrors, SearchDuration, AICalls, AIErrors)
}

// StartServer starts a metrics HTTP server on addr (e.g., ":9090").
func StartServer(addr string) {
	if addr == "" {
		addr = os.Getenv("METRICS_ADDR")
	}
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	go func() { _ = http.ListenAndServe(addr, mux) }()
}

// ObserveSearchDuration records a search duration.
func ObserveSearchDuration(start time.Time) { SearchDuration.Observe(time.Since(start).Seconds()) }

func IncCommandRun(cmd string)   { CommandRuns.WithLabelValues(cmd).Inc() }
func IncCommandError(cmd string) { CommandErrors.WithLabelValues(cmd).Inc() }

// IncMutation counts a committed store change.
func IncMutation(kind string) { StoreMutations.WithLabelValues(kind).Inc() }

// IncAICall counts an AI call and, when err is non-nil, its failure.
func IncAICall(op string, err error) {
	AICalls.WithLabelValues(op).Inc()
	if err != nil {
		AIErrors.WithLabelValues(op).Inc()
	}
}
