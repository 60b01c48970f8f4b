package app

import (
	"testing"
	"time"
)

func TestFrameLimit(t *testing.T) {
	l := frameLimit{max: 3}
	for i := 0; i < 3; i++ {
		if l.done() {
			t.Fatalf("done after %d frames, want 3", i)
		}
		l.tick()
	}
	if !l.done() {
		t.Error("expected done after 3 frames")
	}
}

func TestFrameLimitUnlimited(t *testing.T) {
	l := frameLimit{}
	for i := 0; i < 1000; i++ {
		l.tick()
	}
	if l.done() {
		t.Error("max 0 should never stop")
	}
}

func TestFPSCounter(t *testing.T) {
	start := time.Unix(100, 0)
	f := newFPSCounter(start)

	for i := 1; i < 60; i++ {
		if _, _, ok := f.tick(start.Add(time.Duration(i) * 16 * time.Millisecond)); ok {
			t.Fatalf("reported after %d frames, before a second passed", i)
		}
	}

	n, elapsed, ok := f.tick(start.Add(time.Second))
	if !ok {
		t.Fatal("expected a report after one second")
	}
	if n != 60 {
		t.Errorf("count = %d, want 60", n)
	}
	if elapsed != time.Second {
		t.Errorf("elapsed = %v, want 1s", elapsed)
	}

	if _, _, ok := f.tick(start.Add(time.Second + time.Millisecond)); ok {
		t.Error("counter should restart after reporting")
	}
}

func TestObserverTitle(t *testing.T) {
	if got := observerTitle(60, time.Second); got != "Frustum Observer (60 fps)" {
		t.Errorf("observerTitle = %q", got)
	}
	if got := observerTitle(90, 1500*time.Millisecond); got != "Frustum Observer (60 fps)" {
		t.Errorf("observerTitle over 1.5s = %q", got)
	}
	if got := observerTitle(10, 0); got != ObserverTitle {
		t.Errorf("observerTitle with no elapsed time = %q", got)
	}
}
