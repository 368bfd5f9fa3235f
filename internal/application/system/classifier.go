package system

import (
	"github.com/younwookim/stride/internal/application/state"
	"github.com/younwookim/stride/internal/domain/entity"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

// slideDescentThreshold is the vertical speed below which a slide on a slope
// counts as going downhill.
const slideDescentThreshold = 0.1

// ModeClassifier picks the movement mode and target speed.
type ModeClassifier struct {
	speeds config.MovementConfig
}

// NewModeClassifier creates a classifier using the configured base speeds.
func NewModeClassifier(speeds config.MovementConfig) *ModeClassifier {
	return &ModeClassifier{speeds: speeds}
}

// Classify evaluates the mode checks in a fixed order where later checks
// overwrite earlier ones. The ground check always runs last, so while
// grounded the reported mode is Sprinting or Walking even if an ability flag
// is set. While airborne the mode is Airborne and the target keeps whatever
// the earlier checks wrote, or target if none of them fired.
func (c *ModeClassifier) Classify(flags entity.ModeFlags, sample entity.KinematicSample, target float64) (state.MovementMode, float64) {
	var mode state.MovementMode

	if flags.IsDashing {
		mode = state.ModeDashing
		target = c.speeds.DashSpeed
	}

	if flags.IsWallRunning {
		mode = state.ModeWallRunning
		target = c.speeds.WallRunSpeed
	}

	if flags.IsSliding {
		mode = state.ModeSliding
		if sample.OnSlope && sample.Velocity.Y() < slideDescentThreshold {
			target = c.speeds.SlideSpeed
		} else {
			target = c.speeds.SprintSpeed
		}
	} else if flags.CrouchHeld {
		mode = state.ModeCrouching
		target = c.speeds.CrouchSpeed
	}

	if sample.IsGrounded && flags.SprintHeld {
		mode = state.ModeSprinting
		target = c.speeds.SprintSpeed
	} else if sample.IsGrounded {
		mode = state.ModeWalking
		target = c.speeds.WalkSpeed
	} else {
		mode = state.ModeAirborne
	}

	return mode, target
}
