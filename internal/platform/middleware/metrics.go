// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics times every request into a Prometheus histogram labelled by the
// matched route pattern, so /api/authors/1 and /api/authors/2 share a series.
type Metrics struct {
	duration *prometheus.HistogramVec
}

// NewMetrics registers the request histogram on registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latency of HTTP requests by route, method and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method", "status"})

	registerer.MustRegister(duration)
	return &Metrics{duration: duration}
}

// Handler is the middleware that records one observation per request.
func (metrics *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		startTime := time.Now()
		recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

		next.ServeHTTP(recorder, request)

		route := "unmatched"
		if routeContext := chi.RouteContext(request.Context()); routeContext != nil {
			if pattern := routeContext.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		metrics.duration.
			WithLabelValues(route, request.Method, strconv.Itoa(recorder.status)).
			Observe(time.Since(startTime).Seconds())
	})
}
