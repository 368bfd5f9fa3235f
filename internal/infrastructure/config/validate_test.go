package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ControllerConfig)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *ControllerConfig) {},
		},
		{
			name:    "negative sprint speed",
			mutate:  func(c *ControllerConfig) { c.Movement.SprintSpeed = -2 },
			wantErr: "movement.sprint_speed",
		},
		{
			name:    "negative jump force",
			mutate:  func(c *ControllerConfig) { c.Jump.Force = -0.1 },
			wantErr: "jump.force",
		},
		{
			name:    "zero max slope angle",
			mutate:  func(c *ControllerConfig) { c.Slope.MaxAngle = 0 },
			wantErr: "slope.max_angle",
		},
		{
			name:    "right angle max slope",
			mutate:  func(c *ControllerConfig) { c.Slope.MaxAngle = 90 },
			wantErr: "slope.max_angle",
		},
		{
			name:    "zero height",
			mutate:  func(c *ControllerConfig) { c.Body.Height = 0 },
			wantErr: "body.height",
		},
		{
			name:    "zero fixed step",
			mutate:  func(c *ControllerConfig) { c.Physics.FixedStep = 0 },
			wantErr: "physics.fixed_step",
		},
		{
			name:    "zero speed increase multiplier",
			mutate:  func(c *ControllerConfig) { c.Smoothing.SpeedIncreaseMultiplier = 0 },
			wantErr: "smoothing.speed_increase_multiplier",
		},
		{
			name:    "zero slope increase multiplier",
			mutate:  func(c *ControllerConfig) { c.Smoothing.SlopeIncreaseMultiplier = 0 },
			wantErr: "smoothing.slope_increase_multiplier",
		},
		{
			name:   "zero speeds are allowed",
			mutate: func(c *ControllerConfig) { c.Movement.DashSpeed = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Default()
			require.NoError(t, err)
			tt.mutate(cfg)

			err = cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestControllerConfig_ValidateReportsAll(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	cfg.Movement.WalkSpeed = -1
	cfg.Jump.Cooldown = -1

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "movement.walk_speed")
	assert.Contains(t, err.Error(), "jump.cooldown")
}
