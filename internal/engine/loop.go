package engine

import "time"

// fpsReset is the length of one FPS measurement cycle.
const fpsReset = 5 * time.Second

// Loop paces ticks against a wall clock. A tick is due only when strictly
// more than one interval has elapsed; missed intervals are not queued.
type Loop struct {
	interval time.Duration
	last     time.Time

	// Two staggered measurement cycles, so a fresh reading is always backed
	// by at least half a cycle of frames.
	cycleStart [2]time.Time
	cycleCount [2]int
	fps        float64
}

// NewLoop returns a loop running at rate ticks per second.
func NewLoop(rate int) *Loop {
	if rate <= 0 {
		rate = 60
	}
	return &Loop{interval: time.Second / time.Duration(rate)}
}

// Ready reports whether a tick should run at now. The first call always
// runs. After a tick the reference time is phase-corrected so the schedule
// does not drift.
func (l *Loop) Ready(now time.Time) bool {
	if l.last.IsZero() {
		l.last = now
		l.measure(now)
		return true
	}
	elapsed := now.Sub(l.last)
	if elapsed <= l.interval {
		return false
	}
	l.last = now.Add(-(elapsed % l.interval))
	l.measure(now)
	return true
}

// FPS returns the most recent measured tick rate.
func (l *Loop) FPS() float64 {
	return l.fps
}

func (l *Loop) measure(now time.Time) {
	if l.cycleStart[0].IsZero() {
		l.cycleStart[0] = now
	}
	if l.cycleStart[1].IsZero() && now.Sub(l.cycleStart[0]) >= fpsReset/2 {
		l.cycleStart[1] = now
	}

	oldest := -1
	for i := range l.cycleStart {
		if l.cycleStart[i].IsZero() {
			continue
		}
		l.cycleCount[i]++
		if oldest < 0 || l.cycleStart[i].Before(l.cycleStart[oldest]) {
			oldest = i
		}
	}
	if age := now.Sub(l.cycleStart[oldest]); age > 0 {
		l.fps = float64(l.cycleCount[oldest]-1) / age.Seconds()
	}

	for i := range l.cycleStart {
		if !l.cycleStart[i].IsZero() && now.Sub(l.cycleStart[i]) >= fpsReset {
			l.cycleStart[i] = now
			l.cycleCount[i] = 1
		}
	}
}
