package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/younwookim/stride/internal/application/state"
	"github.com/younwookim/stride/internal/domain/entity"
)

func TestModeClassifier_Classify(t *testing.T) {
	speeds := createTestControllerConfig().Movement
	c := NewModeClassifier(speeds)

	grounded := entity.KinematicSample{IsGrounded: true}
	airborne := entity.KinematicSample{}
	downhill := entity.KinematicSample{OnSlope: true, SlopeAngle: 20, Velocity: mgl64.Vec3{0, -1, 0}}
	uphill := entity.KinematicSample{OnSlope: true, SlopeAngle: 20, Velocity: mgl64.Vec3{0, 0.5, 0}}

	tests := []struct {
		name       string
		flags      entity.ModeFlags
		sample     entity.KinematicSample
		prevTarget float64
		wantMode   state.MovementMode
		wantTarget float64
	}{
		{
			name:       "grounded idle walks",
			sample:     grounded,
			wantMode:   state.ModeWalking,
			wantTarget: speeds.WalkSpeed,
		},
		{
			name:       "grounded sprint",
			flags:      entity.ModeFlags{SprintHeld: true},
			sample:     grounded,
			wantMode:   state.ModeSprinting,
			wantTarget: speeds.SprintSpeed,
		},
		{
			name:       "grounded dash is overwritten by walking",
			flags:      entity.ModeFlags{IsDashing: true},
			sample:     grounded,
			wantMode:   state.ModeWalking,
			wantTarget: speeds.WalkSpeed,
		},
		{
			name:       "grounded crouch is overwritten by walking",
			flags:      entity.ModeFlags{CrouchHeld: true},
			sample:     grounded,
			wantMode:   state.ModeWalking,
			wantTarget: speeds.WalkSpeed,
		},
		{
			name:       "grounded slide with sprint reports sprinting",
			flags:      entity.ModeFlags{IsSliding: true, SprintHeld: true},
			sample:     grounded,
			wantMode:   state.ModeSprinting,
			wantTarget: speeds.SprintSpeed,
		},
		{
			name:       "airborne dash keeps dash speed",
			flags:      entity.ModeFlags{IsDashing: true},
			sample:     airborne,
			wantMode:   state.ModeAirborne,
			wantTarget: speeds.DashSpeed,
		},
		{
			name:       "wall run overwrites dash",
			flags:      entity.ModeFlags{IsDashing: true, IsWallRunning: true},
			sample:     airborne,
			wantMode:   state.ModeAirborne,
			wantTarget: speeds.WallRunSpeed,
		},
		{
			name:       "slide downhill uses slide speed",
			flags:      entity.ModeFlags{IsSliding: true},
			sample:     downhill,
			wantMode:   state.ModeAirborne,
			wantTarget: speeds.SlideSpeed,
		},
		{
			name:       "slide uphill uses sprint speed",
			flags:      entity.ModeFlags{IsSliding: true},
			sample:     uphill,
			wantMode:   state.ModeAirborne,
			wantTarget: speeds.SprintSpeed,
		},
		{
			name:       "slide off slope uses sprint speed",
			flags:      entity.ModeFlags{IsSliding: true},
			sample:     airborne,
			wantMode:   state.ModeAirborne,
			wantTarget: speeds.SprintSpeed,
		},
		{
			name:       "slide takes precedence over crouch",
			flags:      entity.ModeFlags{IsSliding: true, CrouchHeld: true},
			sample:     downhill,
			wantMode:   state.ModeAirborne,
			wantTarget: speeds.SlideSpeed,
		},
		{
			name:       "airborne crouch keeps crouch speed",
			flags:      entity.ModeFlags{CrouchHeld: true},
			sample:     airborne,
			wantMode:   state.ModeAirborne,
			wantTarget: speeds.CrouchSpeed,
		},
		{
			name:       "airborne sprint held does not sprint",
			flags:      entity.ModeFlags{SprintHeld: true},
			sample:     airborne,
			prevTarget: speeds.WalkSpeed,
			wantMode:   state.ModeAirborne,
			wantTarget: speeds.WalkSpeed,
		},
		{
			name:       "airborne without flags keeps previous target",
			sample:     airborne,
			prevTarget: 12.5,
			wantMode:   state.ModeAirborne,
			wantTarget: 12.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, target := c.Classify(tt.flags, tt.sample, tt.prevTarget)
			assert.Equal(t, tt.wantMode, mode)
			assert.Equal(t, tt.wantTarget, target)
		})
	}
}
