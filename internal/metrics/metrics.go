// Package metrics declares the service's prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis pipeline metrics
var (
	// AnalysisRequestsTotal tracks analysis requests by platform, model, and outcome
	AnalysisRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_requests_total",
			Help: "Total analysis requests by platform, model, and status",
		},
		[]string{"platform", "model", "status"},
	)

	// AnalysisDuration tracks end-to-end pipeline latency in seconds
	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analysis_duration_seconds",
			Help:    "Analysis pipeline duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"platform", "model"},
	)

	// ItemsFetchedTotal tracks items returned by source connectors
	ItemsFetchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "items_fetched_total",
			Help: "Total items returned by source connectors",
		},
		[]string{"platform"},
	)

	// SourceFailuresTotal tracks absorbed connector failures
	SourceFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_failures_total",
			Help: "Total absorbed source connector failures",
		},
		[]string{"platform"},
	)

	// ScoringFallbacksTotal tracks per-item fallback substitutions
	ScoringFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_fallbacks_total",
			Help: "Total per-item scoring failures substituted by the fallback strategy",
		},
		[]string{"model"},
	)
)

// HTTP metrics
var (
	// HTTPErrorsTotal tracks HTTP errors by error type
	HTTPErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_errors_total",
			Help: "Total HTTP errors by error type",
		},
		[]string{"type"},
	)
)
