package anim

import "time"

// Blink tracks the cursor's on/off timing from the active mode's
// blinkwait/blinkon/blinkoff fields (mode_info_set), deciding when the
// cursor pass should render it visible and when the next wakeup is due.
//
// A zero BlinkWait (matching Neovim's cursor-blink-disabled convention)
// means always visible and never schedules a wakeup.
type Blink struct {
	wait, on, off time.Duration
	start         time.Time
}

// Set configures the timing from a mode's millisecond fields and resets
// the blink phase, matching Neovim resetting the blink cycle on every
// mode change and keystroke.
func (b *Blink) Set(waitMs, onMs, offMs int, now time.Time) {
	b.wait = time.Duration(waitMs) * time.Millisecond
	b.on = time.Duration(onMs) * time.Millisecond
	b.off = time.Duration(offMs) * time.Millisecond
	b.start = now
}

// Reset restarts the blink phase without changing timing, called on
// cursor movement.
func (b *Blink) Reset(now time.Time) {
	b.start = now
}

// Visible reports whether the cursor should be drawn at now, and the
// Motion to report for this frame: Still if blinking is disabled,
// otherwise Delay with the next phase boundary.
func (b *Blink) Visible(now time.Time) (visible bool, motion Motion, next time.Time) {
	if b.wait == 0 || (b.on == 0 && b.off == 0) {
		return true, Still, time.Time{}
	}

	elapsed := now.Sub(b.start)
	if elapsed < b.wait {
		return true, Delay, b.start.Add(b.wait)
	}

	cycle := b.on + b.off
	if cycle == 0 {
		return true, Still, time.Time{}
	}
	phase := (elapsed - b.wait) % cycle
	if phase < b.on {
		return true, Delay, now.Add(b.on - phase)
	}
	return false, Delay, now.Add(cycle - phase)
}
