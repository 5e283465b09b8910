package services

import "sync/atomic"

// Metrics holds process-local pipeline counters. Nothing persists across
// restarts; the digest worker logs a snapshot on a schedule.
type Metrics struct {
	received         atomic.Uint64
	validationFailed atomic.Uint64
	verifyRejected   atomic.Uint64
	deliveredLive    atomic.Uint64
	deliveredDryRun  atomic.Uint64
	failed           atomic.Uint64
}

// NewMetrics creates zeroed pipeline counters
func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) SubmissionReceived()   { m.received.Add(1) }
func (m *Metrics) ValidationFailed()     { m.validationFailed.Add(1) }
func (m *Metrics) VerificationRejected() { m.verifyRejected.Add(1) }
func (m *Metrics) DeliveredLive()        { m.deliveredLive.Add(1) }
func (m *Metrics) DeliveredDryRun()      { m.deliveredDryRun.Add(1) }
func (m *Metrics) Failed()               { m.failed.Add(1) }

// Snapshot returns the current counter values
func (m *Metrics) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"received":          m.received.Load(),
		"validation_failed": m.validationFailed.Load(),
		"verify_rejected":   m.verifyRejected.Load(),
		"delivered_live":    m.deliveredLive.Load(),
		"delivered_dry_run": m.deliveredDryRun.Load(),
		"failed":            m.failed.Load(),
	}
}
