// Package anim implements the animation clock: per-frame delta
// computation and the Still/Animating/Delay signal that decides whether
// the event loop requests another redraw immediately, idles, or
// schedules a wakeup.
package anim

import "time"

// Motion mirrors scroll.Motion's two states plus a third: Delay, used
// when nothing is animating right now but a known future event (cursor
// blink) requires a redraw at a specific time.
type Motion int

const (
	Still Motion = iota
	Animating
	Delay
)

// Clock tracks the time of the last rendered frame and the monitor
// refresh period used as a fallback when no prior frame exists.
type Clock struct {
	last          time.Time
	refreshPeriod time.Duration
}

// NewClock returns a Clock that falls back to refreshPeriod (e.g.
// 1/60s) for its first delta.
func NewClock(refreshPeriod time.Duration) *Clock {
	return &Clock{refreshPeriod: refreshPeriod}
}

// Tick returns the time elapsed since the previous Tick call (or the
// refresh period on the first call) and records now as the new
// reference point.
func (c *Clock) Tick(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return c.refreshPeriod
	}
	dt := now.Sub(c.last)
	c.last = now
	return dt
}

// Deadline is a scheduled wakeup time, returned when Motion is Delay.
type Deadline struct {
	At time.Time
}

// Combine folds per-grid scroll Motion plus cursor-blink scheduling into
// one overall Motion for the frame: Animating wins over Delay, which
// wins over Still.
func Combine(motions ...Motion) Motion {
	best := Still
	for _, m := range motions {
		if m == Animating {
			return Animating
		}
		if m == Delay && best == Still {
			best = Delay
		}
	}
	return best
}
