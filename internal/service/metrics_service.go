package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP layer
// and the scheduling engine.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec

	assignmentsTotal  prometheus.Counter
	rejectionsTotal   prometheus.Counter
	autoAssignedTotal prometheus.Counter
	conflictsDetected prometheus.Gauge
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	assignmentsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "schedule_assignments_total",
		Help: "Total accepted schedule cell writes",
	})

	rejectionsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "schedule_rejections_total",
		Help: "Total schedule writes rejected by validation",
	})

	autoAssignedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "schedule_auto_assigned_total",
		Help: "Total cells filled by the auto-assignment heuristic",
	})

	conflictsDetected := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "schedule_conflicts_detected",
		Help: "Double-bookings found by the most recent conflict audit",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, assignmentsTotal, rejectionsTotal, autoAssignedTotal, conflictsDetected, goroutines)

	return &MetricsService{
		registry:          registry,
		handler:           promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:   requestDuration,
		requestTotal:      requestTotal,
		assignmentsTotal:  assignmentsTotal,
		rejectionsTotal:   rejectionsTotal,
		autoAssignedTotal: autoAssignedTotal,
		conflictsDetected: conflictsDetected,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordAssignment counts one accepted cell write.
func (m *MetricsService) RecordAssignment() {
	if m == nil {
		return
	}
	m.assignmentsTotal.Inc()
}

// RecordRejection counts one write rejected by validation.
func (m *MetricsService) RecordRejection() {
	if m == nil {
		return
	}
	m.rejectionsTotal.Inc()
}

// AddAutoAssigned counts cells filled by an auto-assignment pass.
func (m *MetricsService) AddAutoAssigned(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.autoAssignedTotal.Add(float64(n))
}

// SetConflicts records the size of the latest conflict audit.
func (m *MetricsService) SetConflicts(n int) {
	if m == nil {
		return
	}
	m.conflictsDetected.Set(float64(n))
}
