package tracker

import (
	"sync"
	"sync/atomic"
	"time"
)

// maxLatencySamples bounds the resolution latency ring.
const maxLatencySamples = 256

// Metrics tracks touch processing counters and resolution latency.
type Metrics struct {
	touchesTotal  atomic.Uint64
	commitsTotal  atomic.Uint64
	noHitsTotal   atomic.Uint64
	localeChanges atomic.Uint64
	cancels       atomic.Uint64

	mu        sync.Mutex
	latencies [maxLatencySamples]time.Duration
	latencyN  int
	latencyI  int

	startTime time.Time
}

// NewMetrics creates a metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordTouch counts one pointer-down.
func (m *Metrics) RecordTouch() {
	m.touchesTotal.Add(1)
}

// RecordCommit counts one key commit with its resolution latency.
func (m *Metrics) RecordCommit(latency time.Duration) {
	m.commitsTotal.Add(1)
	m.mu.Lock()
	m.latencies[m.latencyI] = latency
	m.latencyI = (m.latencyI + 1) % maxLatencySamples
	if m.latencyN < maxLatencySamples {
		m.latencyN++
	}
	m.mu.Unlock()
}

// RecordNoHit counts a touch that resolved to no key.
func (m *Metrics) RecordNoHit() {
	m.noHitsTotal.Add(1)
}

// RecordLocaleChange counts one drag-driven locale cycle.
func (m *Metrics) RecordLocaleChange() {
	m.localeChanges.Add(1)
}

// RecordCancel counts one cancelled touch.
func (m *Metrics) RecordCancel() {
	m.cancels.Add(1)
}

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	Touches        uint64
	Commits        uint64
	NoHits         uint64
	LocaleChanges  uint64
	Cancels        uint64
	AverageLatency time.Duration
	Uptime         time.Duration
}

// GetSnapshot returns the current counter values.
func (m *Metrics) GetSnapshot() Snapshot {
	s := Snapshot{
		Touches:       m.touchesTotal.Load(),
		Commits:       m.commitsTotal.Load(),
		NoHits:        m.noHitsTotal.Load(),
		LocaleChanges: m.localeChanges.Load(),
		Cancels:       m.cancels.Load(),
		Uptime:        time.Since(m.startTime),
	}
	m.mu.Lock()
	if m.latencyN > 0 {
		var total time.Duration
		for i := 0; i < m.latencyN; i++ {
			total += m.latencies[i]
		}
		s.AverageLatency = total / time.Duration(m.latencyN)
	}
	m.mu.Unlock()
	return s
}
