// Package metrics exposes the service's prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	AnalysesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "channelscope_analyses_total",
		Help: "Channel analyses by outcome",
	}, []string{"outcome"})

	AnalysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "channelscope_analysis_duration_seconds",
		Help:    "Wall time of a single channel analysis",
		Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60, 120},
	})

	UpstreamRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "channelscope_upstream_request_duration_seconds",
		Help:    "Duration of YouTube Data API calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "status"})

	UpstreamRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "channelscope_upstream_requests_total",
		Help: "Count of YouTube Data API calls",
	}, []string{"operation", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "channelscope_http_request_duration_seconds",
		Help:    "Duration of handled HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "code"})
)

// MustRegister registers all collectors with the given registerer.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		AnalysesTotal,
		AnalysisDuration,
		UpstreamRequestDuration,
		UpstreamRequestsTotal,
		HTTPRequestDuration,
	)
}

// ObserveUpstreamRequest records the duration and status of one API call.
func ObserveUpstreamRequest(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	elapsed := time.Since(start).Seconds()
	UpstreamRequestDuration.WithLabelValues(operation, status).Observe(elapsed)
	UpstreamRequestsTotal.WithLabelValues(operation, status).Inc()
}

// ObserveAnalysis records one channel analysis.
func ObserveAnalysis(start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	AnalysesTotal.WithLabelValues(outcome).Inc()
	AnalysisDuration.Observe(time.Since(start).Seconds())
}

// ObserveHTTPRequest records one handled HTTP request.
func ObserveHTTPRequest(method, path string, code int, start time.Time) {
	HTTPRequestDuration.WithLabelValues(method, path, strconv.Itoa(code)).Observe(time.Since(start).Seconds())
}
