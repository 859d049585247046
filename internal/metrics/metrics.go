package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "video_to_recipe"

// Pipeline outcomes.
const (
	OutcomeSuccess       = "success"
	OutcomeNoRecipe      = "no_recipe"
	OutcomeUpstreamError = "upstream_error"
	OutcomeParseError    = "parse_error"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests processed.",
	}, []string{"method", "path_pattern", "status_code"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path_pattern"})
)

var (
	PipelineRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pipeline_runs_total",
		Help:      "Recipe extraction runs by outcome.",
	}, []string{"outcome"})

	// Downloads and model calls take seconds to minutes.
	PipelineStageDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "pipeline_stage_duration_seconds",
		Help:      "Duration of each pipeline stage in seconds.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 160, 320},
	}, []string{"stage"})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		PipelineRunsTotal,
		PipelineStageDuration,
	)
}

// ObserveStage records the time elapsed since start for a pipeline stage.
func ObserveStage(stage string, start time.Time) {
	PipelineStageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// InstrumentHandler is mux middleware that records request counts and
// durations labelled by route template.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		pattern := "unknown"
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				pattern = tpl
			}
		}

		HTTPRequestsTotal.WithLabelValues(r.Method, pattern, strconv.Itoa(sw.status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, pattern).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
