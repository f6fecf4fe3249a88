// Package debounce provides a cancellable timer for Bubble Tea programs.
//
// Each Trigger cancels the previous pending timer; only the message of the
// newest Trigger is reported as fired.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FiredMsg is delivered when a debounce timer elapses
type FiredMsg struct {
	id  int
	gen uint64
}

// Timer is a cancellable debounce timer. It is not safe for concurrent use;
// call it from Update only.
type Timer struct {
	id    int
	delay time.Duration
	gen   uint64
	stop  chan struct{}
}

// New creates a timer with the given delay
func New(delay time.Duration) *Timer {
	return &Timer{id: nextID(), delay: delay}
}

// Delay returns the debounce interval
func (t *Timer) Delay() time.Duration {
	return t.delay
}

// Trigger restarts the timer and returns the command that waits for it
func (t *Timer) Trigger() tea.Cmd {
	t.Cancel()
	t.gen++
	stop := make(chan struct{})
	t.stop = stop
	msg := FiredMsg{id: t.id, gen: t.gen}
	delay := t.delay

	return func() tea.Msg {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
			return msg
		case <-stop:
			return nil
		}
	}
}

// Cancel drops the pending timer, if any
func (t *Timer) Cancel() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

// Pending reports whether a timer is armed
func (t *Timer) Pending() bool {
	return t.stop != nil
}

// Fired reports whether msg belongs to the newest trigger of this timer,
// consuming it so a duplicate is ignored
func (t *Timer) Fired(msg FiredMsg) bool {
	if msg.id != t.id || msg.gen != t.gen || t.stop == nil {
		return false
	}
	t.stop = nil
	return true
}
