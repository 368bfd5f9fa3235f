package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid controller config")

// Validate checks the invariants the controller relies on. All violations
// are reported together.
func (c *ControllerConfig) Validate() error {
	var errs []error

	nonNegative := func(field string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be >= 0, got %v", ErrInvalidConfig, field, v))
		}
	}
	positive := func(field string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidConfig, field, v))
		}
	}

	nonNegative("movement.walk_speed", c.Movement.WalkSpeed)
	nonNegative("movement.sprint_speed", c.Movement.SprintSpeed)
	nonNegative("movement.crouch_speed", c.Movement.CrouchSpeed)
	nonNegative("movement.slide_speed", c.Movement.SlideSpeed)
	nonNegative("movement.wall_run_speed", c.Movement.WallRunSpeed)
	nonNegative("movement.dash_speed", c.Movement.DashSpeed)
	nonNegative("movement.air_multiplier", c.Movement.AirMultiplier)
	nonNegative("jump.force", c.Jump.Force)
	nonNegative("jump.cooldown", c.Jump.Cooldown)
	nonNegative("body.ground_drag", c.Body.GroundDrag)
	nonNegative("physics.gravity", c.Physics.Gravity)
	nonNegative("dash.duration", c.Dash.Duration)
	nonNegative("dash.cooldown", c.Dash.Cooldown)

	positive("crouch.scale", c.Crouch.Scale)
	positive("body.height", c.Body.Height)
	positive("body.mass", c.Body.Mass)
	positive("physics.fixed_step", c.Physics.FixedStep)
	positive("smoothing.speed_increase_multiplier", c.Smoothing.SpeedIncreaseMultiplier)
	positive("smoothing.slope_increase_multiplier", c.Smoothing.SlopeIncreaseMultiplier)

	if c.Slope.MaxAngle <= 0 || c.Slope.MaxAngle >= 90 {
		errs = append(errs, fmt.Errorf("%w: slope.max_angle must be in (0, 90), got %v", ErrInvalidConfig, c.Slope.MaxAngle))
	}

	return errors.Join(errs...)
}
