package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSteppedClock_FiresInDueOrder(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := newSteppedClock(start)

	var order []string
	clock.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	clock.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	clock.AfterFunc(10*time.Millisecond, func() { order = append(order, "b") })

	clock.Advance(9 * time.Millisecond)
	assert.Empty(t, order)
	assert.Equal(t, 3, clock.Pending())

	clock.Advance(time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, order, "ties fire in scheduling order")

	clock.Advance(time.Hour)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, start.Add(time.Hour+10*time.Millisecond), clock.Now())
}

func TestSteppedClock_Stop(t *testing.T) {
	clock := newSteppedClock(time.Time{})
	fired := false
	timer := clock.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop is a no-op")
	assert.Zero(t, clock.Pending())

	clock.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestSteppedClock_StopWithinSameInstant(t *testing.T) {
	clock := newSteppedClock(time.Time{})
	var second Timer
	ran := 0
	clock.AfterFunc(time.Second, func() {
		ran++
		assert.True(t, second.Stop(), "a timer due at the same instant has not fired yet")
	})
	second = clock.AfterFunc(time.Second, func() { ran++ })

	clock.Advance(time.Second)
	assert.Equal(t, 1, ran)
}

func TestSteppedClock_NestedScheduling(t *testing.T) {
	clock := newSteppedClock(time.Time{})
	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		if ticks < 5 {
			clock.AfterFunc(100*time.Millisecond, tick)
		}
	}
	clock.AfterFunc(100*time.Millisecond, tick)

	clock.Advance(250 * time.Millisecond)
	assert.Equal(t, 2, ticks, "callbacks scheduled by callbacks fire within the same advance")

	assert.Equal(t, 3, clock.RunAll())
	assert.Equal(t, 5, ticks)
	assert.Equal(t, time.Time{}.Add(500*time.Millisecond), clock.Now())
}

func TestRealClock(t *testing.T) {
	clock := RealClock()
	done := make(chan struct{})
	clock.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("real clock callback did not fire")
	}
	assert.WithinDuration(t, time.Now(), clock.Now(), time.Second)
}
