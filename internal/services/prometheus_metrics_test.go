package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		byName[f.GetName()] = f
	}
	return byName
}

func counterValue(family *dto.MetricFamily, label, value string) float64 {
	for _, m := range family.GetMetric() {
		for _, l := range m.GetLabel() {
			if l.GetName() == label && l.GetValue() == value {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	metrics.IncrementCounter("sessions_total", map[string]string{"event": "login"})
	metrics.IncrementCounter("sessions_total", map[string]string{"event": "login"})
	metrics.IncrementCounter("transfers_total", map[string]string{"status": "completed"})
	metrics.IncrementCounter("loans_total", map[string]string{"status": "granted"})
	metrics.IncrementCounter("api_errors_total", map[string]string{"code": "AUTH_001", "status": "401"})
	metrics.IncrementCounter("unknown_total", map[string]string{"status": "x"})
	metrics.IncrementCounter("transfers_total", nil)

	families := gather(t, reg)

	assert.Equal(t, 2.0, counterValue(families["sessions_total"], "event", "login"))
	assert.Equal(t, 1.0, counterValue(families["transfers_total"], "status", "completed"))
	assert.Len(t, families["transfers_total"].GetMetric(), 1)
	assert.Equal(t, 1.0, counterValue(families["loans_total"], "status", "granted"))
	assert.Equal(t, 1.0, counterValue(families["api_errors_total"], "code", "AUTH_001"))
	assert.NotContains(t, families, "unknown_total")
}

func TestPrometheusMetrics_GaugesAndHistograms(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	metrics.RecordGauge("active_sessions", 1, nil)
	metrics.RecordGauge("transfer_amount", 200, nil)
	metrics.RecordGauge("loan_amount", 1000, nil)
	metrics.RecordProcessingTime("transfer_duration", 1500*time.Microsecond)

	families := gather(t, reg)

	assert.Equal(t, 1.0, families["active_sessions"].GetMetric()[0].GetGauge().GetValue())
	assert.Equal(t, uint64(1), families["transfer_amount"].GetMetric()[0].GetHistogram().GetSampleCount())
	assert.Equal(t, 1000.0, families["loan_amount"].GetMetric()[0].GetHistogram().GetSampleSum())
	assert.InDelta(t, 1.5, families["transfer_duration_milliseconds"].GetMetric()[0].GetHistogram().GetSampleSum(), 0.0001)
}

func TestPrometheusMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusMetrics(reg)

	assert.Panics(t, func() { NewPrometheusMetrics(reg) })
}
