// Persona - Personalization Decision Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/persona

// Package metrics provides Prometheus instrumentation for the API and
// the decision engine. Metrics are exposed at /metrics in Prometheus
// text format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Decision engine metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendations produced, by final action",
		},
		[]string{"action"},
	)

	RecommendationFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_fallbacks_total",
			Help: "Recommendations where low confidence forced the fallback action",
		},
	)

	EngagementScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "engagement_score",
			Help:    "Distribution of predicted engagement scores",
			Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
		},
	)

	InvalidRecords = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "invalid_records_total",
			Help: "Recommendation requests that failed record validation",
		},
	)

	UsersNotFound = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_not_found_total",
			Help: "Recommendation requests for user IDs absent from the dataset",
		},
	)

	// Dataset metrics
	DatasetUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_users",
			Help: "Number of user records loaded into the dataset store",
		},
	)
)

// RecordAPIRequest records one completed HTTP request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(active bool) {
	if active {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one produced recommendation.
func RecordRecommendation(action string, score float64, fallback bool) {
	RecommendationsTotal.WithLabelValues(action).Inc()
	EngagementScores.Observe(score)
	if fallback {
		RecommendationFallbacks.Inc()
	}
}

// RecordInvalidRecord counts a validation failure.
func RecordInvalidRecord() {
	InvalidRecords.Inc()
}

// RecordUserNotFound counts a dataset miss.
func RecordUserNotFound() {
	UsersNotFound.Inc()
}

// SetDatasetUsers records the loaded dataset size.
func SetDatasetUsers(n int) {
	DatasetUsers.Set(float64(n))
}
