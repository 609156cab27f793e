package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	sessionsTotal    *prometheus.CounterVec
	activeSessions   prometheus.Gauge
	transfersTotal   *prometheus.CounterVec
	transferDuration prometheus.Histogram
	transferAmount   prometheus.Histogram
	loansTotal       *prometheus.CounterVec
	loanAmount       prometheus.Histogram
	apiErrorsTotal   *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		sessionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sessions_total",
				Help: "Total number of session events",
			},
			[]string{"event"},
		),
		activeSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_sessions",
				Help: "Current number of active sessions",
			},
		),
		transfersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfers_total",
				Help: "Total number of transfers processed",
			},
			[]string{"status"},
		),
		transferDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_duration_milliseconds",
				Help:    "Transfer processing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 4, 10),
			},
		),
		transferAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_amount",
				Help:    "Transfer amount in account currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		loansTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loans_total",
				Help: "Total number of loan events",
			},
			[]string{"status"},
		),
		loanAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "loan_amount",
				Help:    "Granted loan amount in account currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		apiErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API error responses",
			},
			[]string{"code", "status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "sessions_total":
		if event := tags["event"]; event != "" {
			m.sessionsTotal.WithLabelValues(event).Inc()
		}
	case "transfers_total":
		if status != "" {
			m.transfersTotal.WithLabelValues(status).Inc()
		}
	case "loans_total":
		if status != "" {
			m.loansTotal.WithLabelValues(status).Inc()
		}
	case "api_errors_total":
		m.apiErrorsTotal.WithLabelValues(tags["code"], status).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transfer_duration":
		m.transferDuration.Observe(float64(duration.Microseconds()) / 1000)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "transfer_amount":
		m.transferAmount.Observe(value)
	case "loan_amount":
		m.loanAmount.Observe(value)
	case "active_sessions":
		m.activeSessions.Set(value)
	}
}
