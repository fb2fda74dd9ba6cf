package observability

import (
	"sync/atomic"
	"time"
)

// SessionMetrics tallies the operations of one console session so a
// summary can be logged at logout.
type SessionMetrics struct {
	succeeded atomic.Uint64
	failed    atomic.Uint64
	denied    atomic.Uint64

	// duration stats (nanoseconds)
	durationCount atomic.Uint64
	durationTotal atomic.Int64
	durationMax   atomic.Int64
}

func NewSessionMetrics() *SessionMetrics {
	return &SessionMetrics{}
}

// Observe counts an operation by its result class ("ok", "forbidden" or
// any failure class).
func (m *SessionMetrics) Observe(result string, d time.Duration) {
	switch result {
	case "ok":
		m.succeeded.Add(1)
	case "forbidden":
		m.denied.Add(1)
	default:
		m.failed.Add(1)
	}
	m.observeDuration(d)
}

func (m *SessionMetrics) observeDuration(d time.Duration) {
	ns := d.Nanoseconds()
	m.durationCount.Add(1)
	m.durationTotal.Add(ns)

	for {
		curr := m.durationMax.Load()

		if ns <= curr {
			return
		}

		if m.durationMax.CompareAndSwap(curr, ns) {
			return
		}
	}
}

type SessionSnapshot struct {
	Succeeded       uint64
	Failed          uint64
	Denied          uint64
	Operations      uint64
	AverageDuration time.Duration
	MaxDuration     time.Duration
}

func (m *SessionMetrics) Snapshot() SessionSnapshot {
	count := m.durationCount.Load()
	total := m.durationTotal.Load()

	var avg time.Duration

	if count > 0 {
		avg = time.Duration(total / int64(count))
	}

	return SessionSnapshot{
		Succeeded:       m.succeeded.Load(),
		Failed:          m.failed.Load(),
		Denied:          m.denied.Load(),
		Operations:      count,
		AverageDuration: avg,
		MaxDuration:     time.Duration(m.durationMax.Load()),
	}
}
