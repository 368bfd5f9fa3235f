package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

// RetargetThreshold is the target speed jump that triggers a smoothed
// transition instead of an immediate switch.
const RetargetThreshold = 4.0

// SpeedTransition interpolates from a captured start speed to a captured
// target over several frames. It is resumed once per frame by Step.
type SpeedTransition struct {
	start   float64
	target  float64
	span    float64
	elapsed float64
	done    bool
}

// NewSpeedTransition captures start and target. The span is |target - start|.
func NewSpeedTransition(start, target float64) *SpeedTransition {
	return &SpeedTransition{
		start:  start,
		target: target,
		span:   math.Abs(target - start),
	}
}

// Step advances the transition by one frame and returns the speed to use.
// rate scales dt into progress units. Once elapsed reaches the span the
// target is returned exactly and done is true; a zero span finishes on the
// first step.
func (t *SpeedTransition) Step(dt, rate float64) (speed float64, done bool) {
	if t.done || t.elapsed >= t.span {
		t.done = true
		return t.target, true
	}

	speed = lerp(t.start, t.target, t.elapsed/t.span)
	t.elapsed += dt * rate
	return speed, false
}

// Target returns the captured target speed.
func (t *SpeedTransition) Target() float64 { return t.target }

// Done reports whether the transition has finished.
func (t *SpeedTransition) Done() bool { return t.done }

// SpeedState is the speed memory carried between frames.
type SpeedState struct {
	Current    float64 // effective speed used by the integrator
	Target     float64 // desired speed from the classifier
	LastTarget float64 // previous frame's target

	transition *SpeedTransition
}

// Retarget applies a new target. A jump larger than RetargetThreshold while
// moving replaces any running transition with a new one; otherwise Current
// snaps to target. It reports whether a transition was started.
func (s *SpeedState) Retarget(target float64) bool {
	s.Target = target

	started := false
	if math.Abs(target-s.LastTarget) > RetargetThreshold && s.Current != 0 {
		s.transition = NewSpeedTransition(s.Current, target)
		started = true
	} else {
		s.Current = target
	}

	s.LastTarget = target
	return started
}

// Advance resumes the running transition, if any, and reports whether it
// finished this frame.
func (s *SpeedState) Advance(dt, rate float64) bool {
	if s.transition == nil {
		return false
	}

	speed, done := s.transition.Step(dt, rate)
	s.Current = speed
	if done {
		s.transition = nil
	}
	return done
}

// Transitioning reports whether a transition is in flight.
func (s SpeedState) Transitioning() bool {
	return s.transition != nil
}

// Snapshot returns a copy that owns its own transition, so advancing the
// copy leaves s untouched.
func (s SpeedState) Snapshot() SpeedState {
	if s.transition != nil {
		t := *s.transition
		s.transition = &t
	}
	return s
}

// SmoothingRate returns the progress multiplier for one transition step.
// On a slope the base rate is amplified by the slope multiplier and by
// (1 + angle/90).
func SmoothingRate(cfg config.SmoothingConfig, onSlope bool, slopeAngle float64) float64 {
	if !onSlope {
		return cfg.SpeedIncreaseMultiplier
	}
	return cfg.SpeedIncreaseMultiplier * cfg.SlopeIncreaseMultiplier * (1 + slopeAngle/90)
}

func lerp(a, b, t float64) float64 {
	t = mgl64.Clamp(t, 0, 1)
	return a + (b-a)*t
}
