package app

import (
	"fmt"
	"time"
)

// frameLimit stops the loop after max frames; max 0 never stops.
type frameLimit struct {
	max   uint64
	drawn uint64
}

func (l *frameLimit) tick() { l.drawn++ }

func (l *frameLimit) done() bool {
	return l.max > 0 && l.drawn >= l.max
}

// fpsCounter reports the number of frames drawn once per second.
type fpsCounter struct {
	start  time.Time
	frames int
}

func newFPSCounter(now time.Time) *fpsCounter {
	return &fpsCounter{start: now}
}

// tick counts a frame. Once a second has passed it returns the count and
// the elapsed time and starts a new window.
func (f *fpsCounter) tick(now time.Time) (int, time.Duration, bool) {
	f.frames++
	elapsed := now.Sub(f.start)
	if elapsed < time.Second {
		return 0, 0, false
	}
	n := f.frames
	f.frames = 0
	f.start = now
	return n, elapsed, true
}

// observerTitle shows the measured frame rate in the observer window title.
func observerTitle(frames int, elapsed time.Duration) string {
	if elapsed <= 0 {
		return ObserverTitle
	}
	return fmt.Sprintf("%s (%.0f fps)", ObserverTitle, float64(frames)/elapsed.Seconds())
}
