package monitoring

import (
	"sync"
	"time"
)

// Monitor keeps a snapshot of session-level runtime state for the stats
// endpoint: last known order status, poll timings, failure messages.
type Monitor struct {
	stats      map[string]interface{}
	statsMutex sync.RWMutex
	startTime  time.Time
}

// NewMonitor creates a new monitoring instance.
func NewMonitor() *Monitor {
	return &Monitor{
		stats:     make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// Stats returns all current stats plus session uptime.
func (m *Monitor) Stats() map[string]interface{} {
	m.statsMutex.RLock()
	defer m.statsMutex.RUnlock()

	// Copy to avoid concurrent map access
	stats := make(map[string]interface{}, len(m.stats)+1)
	for k, v := range m.stats {
		stats[k] = v
	}
	stats["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return stats
}

// RecordPoll records the outcome of a status fetch.
func (m *Monitor) RecordPoll(status string, err error) {
	m.statsMutex.Lock()
	defer m.statsMutex.Unlock()

	m.stats["last_poll_at"] = time.Now().Format(time.RFC3339)
	if err != nil {
		m.stats["last_poll_error"] = err.Error()
		return
	}
	m.stats["last_status"] = status
	delete(m.stats, "last_poll_error")
}

// RecordSubmission records the outcome of an order submission.
func (m *Monitor) RecordSubmission(orderID string, err error) {
	m.statsMutex.Lock()
	defer m.statsMutex.Unlock()

	m.stats["last_submission_at"] = time.Now().Format(time.RFC3339)
	if err != nil {
		m.stats["last_submission_error"] = err.Error()
		return
	}
	m.stats["last_order_id"] = orderID
	delete(m.stats, "last_submission_error")
}

// RecordCancellation records a successful cancellation.
func (m *Monitor) RecordCancellation(orderID string) {
	m.statsMutex.Lock()
	defer m.statsMutex.Unlock()
	m.stats["last_cancelled_order_id"] = orderID
}
