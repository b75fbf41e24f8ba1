package anim

import (
	"testing"
	"time"
)

func TestClockFirstTickFallsBackToRefreshPeriod(t *testing.T) {
	c := NewClock(16 * time.Millisecond)
	dt := c.Tick(time.Now())
	if dt != 16*time.Millisecond {
		t.Errorf("dt = %v, want 16ms", dt)
	}
}

func TestClockSubsequentTickMeasuresElapsed(t *testing.T) {
	c := NewClock(16 * time.Millisecond)
	t0 := time.Now()
	c.Tick(t0)
	dt := c.Tick(t0.Add(10 * time.Millisecond))
	if dt != 10*time.Millisecond {
		t.Errorf("dt = %v, want 10ms", dt)
	}
}

func TestCombineMotionPrefersAnimating(t *testing.T) {
	if got := Combine(Still, Delay, Animating); got != Animating {
		t.Errorf("got %v, want Animating", got)
	}
}

func TestCombineMotionPrefersDelayOverStill(t *testing.T) {
	if got := Combine(Still, Delay); got != Delay {
		t.Errorf("got %v, want Delay", got)
	}
}

func TestCombineMotionAllStill(t *testing.T) {
	if got := Combine(Still, Still); got != Still {
		t.Errorf("got %v, want Still", got)
	}
}

func TestBlinkDisabledAlwaysVisible(t *testing.T) {
	var b Blink
	b.Set(0, 0, 0, time.Now())
	visible, motion, _ := b.Visible(time.Now())
	if !visible || motion != Still {
		t.Errorf("visible=%v motion=%v, want true,Still", visible, motion)
	}
}

func TestBlinkCyclesOnThenOff(t *testing.T) {
	var b Blink
	start := time.Now()
	b.Set(500, 400, 250, start)

	visible, motion, _ := b.Visible(start.Add(200 * time.Millisecond))
	if !visible || motion != Delay {
		t.Errorf("during wait: visible=%v motion=%v", visible, motion)
	}

	visible, _, _ = b.Visible(start.Add(600 * time.Millisecond))
	if !visible {
		t.Errorf("at start of on-phase: visible=%v, want true", visible)
	}

	visible, _, _ = b.Visible(start.Add(950 * time.Millisecond))
	if visible {
		t.Errorf("at start of off-phase: visible=%v, want false", visible)
	}
}
