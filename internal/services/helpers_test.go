package services

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"bankist/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fastPins hashes at the minimum bcrypt cost
func fastPins() PinServiceInterface {
	return NewPinService(PinCost)
}

type recordingMetrics struct {
	mu       sync.Mutex
	counters map[string]int
	gauges   map[string]float64
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		counters: make(map[string]int),
		gauges:   make(map[string]float64),
	}
}

func (m *recordingMetrics) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := name
	for _, label := range []string{"status", "event"} {
		if v, ok := tags[label]; ok {
			key += "." + v
		}
	}
	m.counters[key]++
}

func (m *recordingMetrics) RecordProcessingTime(string, time.Duration) {}

func (m *recordingMetrics) RecordGauge(name string, value float64, _ map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[name] = value
}

func (m *recordingMetrics) count(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[key]
}

func (m *recordingMetrics) gauge(name string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gauges[name]
}

type recordingObserver struct {
	mu        sync.Mutex
	refreshes []models.AccountSnapshot
	ticks     []int
	logouts   []string
}

func (o *recordingObserver) OnRefresh(snapshot models.AccountSnapshot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.refreshes = append(o.refreshes, snapshot)
}

func (o *recordingObserver) OnTick(remaining int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ticks = append(o.ticks, remaining)
}

func (o *recordingObserver) OnLogout(reason string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.logouts = append(o.logouts, reason)
}

func (o *recordingObserver) lastRefresh() models.AccountSnapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.refreshes[len(o.refreshes)-1]
}

func (o *recordingObserver) logoutReasons() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.logouts...)
}

func (o *recordingObserver) tickValues() []int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]int(nil), o.ticks...)
}
