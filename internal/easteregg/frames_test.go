package easteregg

import (
	"testing"
	"time"
)

func TestFrameQueueFiresOnce(t *testing.T) {
	q := NewFrameQueue()
	calls := 0
	q.RequestFrame(func(time.Time) { calls++ })

	if !q.Pending() {
		t.Fatal("expected pending frame")
	}
	if !q.Fire(time.Now()) {
		t.Fatal("Fire() = false with pending frame")
	}
	if q.Fire(time.Now()) {
		t.Error("Fire() ran a frame twice")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	id := q.RequestFrame(func(time.Time) { t.Error("cancelled frame ran") })

	q.CancelFrame(id)
	q.CancelFrame(id)
	if q.Pending() || q.Fire(time.Now()) {
		t.Error("cancelled frame still pending")
	}
}

func TestFrameQueueStaleCancel(t *testing.T) {
	q := NewFrameQueue()
	old := q.RequestFrame(func(time.Time) {})
	ran := false
	q.RequestFrame(func(time.Time) { ran = true })

	q.CancelFrame(old)
	q.Fire(time.Now())
	if !ran {
		t.Error("stale cancel dropped the current frame")
	}
}

func TestFrameQueueCallbackReschedules(t *testing.T) {
	q := NewFrameQueue()
	n := 0
	var step func(time.Time)
	step = func(time.Time) {
		n++
		if n < 3 {
			q.RequestFrame(step)
		}
	}
	q.RequestFrame(step)

	for q.Fire(time.Now()) {
	}
	if n != 3 {
		t.Errorf("frames run = %d, want 3", n)
	}
}
