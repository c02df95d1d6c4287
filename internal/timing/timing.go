// Package timing provides latency measurement for completion requests.
package timing

import (
	"fmt"
	"time"
)

// Timer tracks execution time of the stages of one request.
type Timer struct {
	start time.Time
	marks map[string]time.Duration
	order []string
}

// NewTimer starts a new timer.
func NewTimer() *Timer {
	return &Timer{
		start: time.Now(),
		marks: make(map[string]time.Duration),
	}
}

// Mark records a checkpoint with a label and returns the elapsed time.
func (t *Timer) Mark(label string) time.Duration {
	elapsed := time.Since(t.start)
	t.marks[label] = elapsed
	t.order = append(t.order, label)
	return elapsed
}

// Elapsed returns the total time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Get returns the duration recorded for a label.
func (t *Timer) Get(label string) (time.Duration, bool) {
	d, ok := t.marks[label]
	return d, ok
}

// Summary formats all recorded marks in order.
func (t *Timer) Summary() string {
	total := t.Elapsed()
	summary := fmt.Sprintf("total: %.3fms", float64(total.Microseconds())/1000.0)

	for _, label := range t.order {
		dur := t.marks[label]
		summary += fmt.Sprintf(", %s: %.3fms", label, float64(dur.Microseconds())/1000.0)
	}

	return summary
}
