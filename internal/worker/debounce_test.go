package worker

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_LastSubmissionWins(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var ran int32
	var last int32
	for i := 1; i <= 5; i++ {
		v := int32(i)
		d.Submit(func() {
			atomic.AddInt32(&ran, 1)
			atomic.StoreInt32(&last, v)
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(80 * time.Millisecond)

	if got := atomic.LoadInt32(&ran); got != 1 {
		t.Errorf("expected exactly 1 run, got %d", got)
	}
	if got := atomic.LoadInt32(&last); got != 5 {
		t.Errorf("expected last submission to run, got %d", got)
	}
}

func TestDebouncer_SeparatedSubmissionsBothRun(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)

	var ran int32
	d.Submit(func() { atomic.AddInt32(&ran, 1) })
	time.Sleep(40 * time.Millisecond)
	d.Submit(func() { atomic.AddInt32(&ran, 1) })
	time.Sleep(40 * time.Millisecond)

	if got := atomic.LoadInt32(&ran); got != 2 {
		t.Errorf("expected 2 runs outside the quiet window, got %d", got)
	}
}

func TestDebouncer_Flush(t *testing.T) {
	d := NewDebouncer(time.Hour)

	var ran int32
	d.Submit(func() { atomic.AddInt32(&ran, 1) })
	d.Flush()

	if got := atomic.LoadInt32(&ran); got != 1 {
		t.Errorf("expected flush to run pending submission, got %d runs", got)
	}

	// Nothing pending: flush is a no-op.
	d.Flush()
	if got := atomic.LoadInt32(&ran); got != 1 {
		t.Errorf("expected no extra runs, got %d", got)
	}
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)

	var ran int32
	d.Submit(func() { atomic.AddInt32(&ran, 1) })
	d.Stop()
	time.Sleep(40 * time.Millisecond)

	if got := atomic.LoadInt32(&ran); got != 0 {
		t.Errorf("expected stopped submission never to run, got %d", got)
	}
}

func TestDebouncer_DrainWaitsForRunningSubmission(t *testing.T) {
	d := NewDebouncer(5 * time.Millisecond)

	started := make(chan struct{})
	var done int32
	d.Submit(func() {
		close(started)
		time.Sleep(30 * time.Millisecond)
		atomic.StoreInt32(&done, 1)
	})

	<-started
	d.Drain()

	if atomic.LoadInt32(&done) != 1 {
		t.Error("expected Drain to wait for the running submission")
	}

	// Nothing pending or running: drain returns immediately.
	d.Drain()
}

func TestNewDebouncer_DefaultQuiet(t *testing.T) {
	d := NewDebouncer(0)
	if d.quiet != 500*time.Millisecond {
		t.Errorf("expected default quiet window 500ms, got %v", d.quiet)
	}
}
