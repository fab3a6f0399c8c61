package appcore

import "sync/atomic"

// MetricID defines a public type used by appcore APIs.
//
// MetricID instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricID uint16

const (
	// MetricSessionRestored is an exported constant or variable used by the flow engine.
	MetricSessionRestored MetricID = iota
	// MetricLoginSuccess is an exported constant or variable used by the flow engine.
	MetricLoginSuccess
	// MetricLoginFailure is an exported constant or variable used by the flow engine.
	MetricLoginFailure
	// MetricLoginValidationFailure is an exported constant or variable used by the flow engine.
	MetricLoginValidationFailure
	// MetricOTPIssued is an exported constant or variable used by the flow engine.
	MetricOTPIssued
	// MetricOTPIssueFailure is an exported constant or variable used by the flow engine.
	MetricOTPIssueFailure
	// MetricOTPVerified is an exported constant or variable used by the flow engine.
	MetricOTPVerified
	// MetricOTPMismatch is an exported constant or variable used by the flow engine.
	MetricOTPMismatch
	// MetricOTPIncomplete is an exported constant or variable used by the flow engine.
	MetricOTPIncomplete
	// MetricRegistrationStarted is an exported constant or variable used by the flow engine.
	MetricRegistrationStarted
	// MetricRegistrationSuccess is an exported constant or variable used by the flow engine.
	MetricRegistrationSuccess
	// MetricRegistrationFailure is an exported constant or variable used by the flow engine.
	MetricRegistrationFailure
	// MetricRegistrationValidationFailure is an exported constant or variable used by the flow engine.
	MetricRegistrationValidationFailure
	// MetricOAuthSuccess is an exported constant or variable used by the flow engine.
	MetricOAuthSuccess
	// MetricOAuthFailure is an exported constant or variable used by the flow engine.
	MetricOAuthFailure
	// MetricLogout is an exported constant or variable used by the flow engine.
	MetricLogout
	metricIDCount
)

const cacheLineSize = 64

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics defines a public type used by appcore APIs.
//
// Metrics instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]paddedCounter
}

// MetricsSnapshot defines a public type used by appcore APIs.
//
// MetricsSnapshot instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// NewMetrics describes the newmetrics operation and its observable behavior.
//
// NewMetrics does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Enabled describes the enabled operation and its observable behavior.
//
// Enabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Inc describes the inc operation and its observable behavior.
//
// Inc does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Value describes the value operation and its observable behavior.
//
// Value does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot describes the snapshot operation and its observable behavior.
//
// Snapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}

	s := MetricsSnapshot{Counters: make(map[MetricID]uint64, int(metricIDCount))}
	for id := MetricID(0); id < metricIDCount; id++ {
		s.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	return s
}
