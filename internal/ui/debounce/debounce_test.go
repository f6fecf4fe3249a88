package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerFiresAfterDelay(t *testing.T) {
	timer := New(10 * time.Millisecond)
	cmd := timer.Trigger()
	require.True(t, timer.Pending())

	start := time.Now()
	msg := cmd()
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)

	fired, ok := msg.(FiredMsg)
	require.True(t, ok)
	assert.True(t, timer.Fired(fired))
	assert.False(t, timer.Pending())
}

func TestRetriggerCancelsPreviousTimer(t *testing.T) {
	timer := New(20 * time.Millisecond)
	first := timer.Trigger()
	second := timer.Trigger()

	// The cancelled command returns immediately with no message
	done := make(chan any, 1)
	go func() { done <- first() }()
	select {
	case msg := <-done:
		assert.Nil(t, msg)
	case <-time.After(time.Second):
		t.Fatal("cancelled timer did not return")
	}

	msg, ok := second().(FiredMsg)
	require.True(t, ok)
	assert.True(t, timer.Fired(msg))
}

func TestStaleGenerationIsIgnored(t *testing.T) {
	timer := New(time.Millisecond)
	stale := FiredMsg{id: timer.id, gen: 1}
	timer.Trigger()
	timer.Trigger()

	assert.False(t, timer.Fired(stale))
	assert.True(t, timer.Fired(FiredMsg{id: timer.id, gen: 2}))
	assert.False(t, timer.Fired(FiredMsg{id: timer.id, gen: 2}), "a fired message is consumed")
}

func TestFiredIgnoresOtherTimers(t *testing.T) {
	a := New(time.Millisecond)
	b := New(time.Millisecond)
	b.Trigger()
	msg, ok := b.Trigger()().(FiredMsg)
	require.True(t, ok)

	a.Trigger()
	assert.False(t, a.Fired(msg))
	assert.True(t, b.Fired(msg))
}

func TestCancel(t *testing.T) {
	timer := New(time.Hour)
	cmd := timer.Trigger()
	timer.Cancel()

	assert.False(t, timer.Pending())
	assert.Nil(t, cmd())
	assert.False(t, timer.Fired(FiredMsg{id: timer.id, gen: 1}))
}
