package config

// ControllerConfig is the root config for controller.yaml
type ControllerConfig struct {
	Movement  MovementConfig  `json:"movement" yaml:"movement"`
	Jump      JumpConfig      `json:"jump" yaml:"jump"`
	Crouch    CrouchConfig    `json:"crouch" yaml:"crouch"`
	Slope     SlopeConfig     `json:"slope" yaml:"slope"`
	Smoothing SmoothingConfig `json:"smoothing" yaml:"smoothing"`
	Body      BodyConfig      `json:"body" yaml:"body"`
	Physics   PhysicsSettings `json:"physics" yaml:"physics"`
	Dash      DashConfig      `json:"dash" yaml:"dash"`
	Camera    CameraConfig    `json:"camera" yaml:"camera"`
}

// MovementConfig holds the per-mode base speeds (units per second)
type MovementConfig struct {
	WalkSpeed     float64 `json:"walkSpeed" yaml:"walk_speed"`
	SprintSpeed   float64 `json:"sprintSpeed" yaml:"sprint_speed"`
	CrouchSpeed   float64 `json:"crouchSpeed" yaml:"crouch_speed"`
	SlideSpeed    float64 `json:"slideSpeed" yaml:"slide_speed"`
	WallRunSpeed  float64 `json:"wallRunSpeed" yaml:"wall_run_speed"`
	DashSpeed     float64 `json:"dashSpeed" yaml:"dash_speed"`
	AirMultiplier float64 `json:"airMultiplier" yaml:"air_multiplier"` // Fraction of ground force available in the air
}

type JumpConfig struct {
	Force    float64 `json:"force" yaml:"force"`       // Upward impulse
	Cooldown float64 `json:"cooldown" yaml:"cooldown"` // Seconds before the next jump is allowed
}

type CrouchConfig struct {
	Scale float64 `json:"scale" yaml:"scale"` // Vertical scale while crouched
}

type SlopeConfig struct {
	MaxAngle float64 `json:"maxAngle" yaml:"max_angle"` // Degrees, exclusive
}

// SmoothingConfig configures the speed transition rate.
// The slope multiplier is applied on top of the base one while on a slope.
type SmoothingConfig struct {
	SpeedIncreaseMultiplier float64 `json:"speedIncreaseMultiplier" yaml:"speed_increase_multiplier"`
	SlopeIncreaseMultiplier float64 `json:"slopeIncreaseMultiplier" yaml:"slope_increase_multiplier"`
}

type BodyConfig struct {
	Height      float64 `json:"height" yaml:"height"`
	Mass        float64 `json:"mass" yaml:"mass"`
	GroundDrag  float64 `json:"groundDrag" yaml:"ground_drag"`
	GroundLayer string  `json:"groundLayer" yaml:"ground_layer"`
}

type PhysicsSettings struct {
	Gravity   float64 `json:"gravity" yaml:"gravity"`      // Downward acceleration, positive
	FixedStep float64 `json:"fixedStep" yaml:"fixed_step"` // Seconds per physics step
}

// DashConfig configures the dash ability that drives the dashing flag
type DashConfig struct {
	Duration float64 `json:"duration" yaml:"duration"`
	Cooldown float64 `json:"cooldown" yaml:"cooldown"`
}

// CameraConfig configures the cosmetic sprint FOV effect
type CameraConfig struct {
	BaseFOV   float64 `json:"baseFov" yaml:"base_fov"`
	SprintFOV float64 `json:"sprintFov" yaml:"sprint_fov"`
	LerpRate  float64 `json:"lerpRate" yaml:"lerp_rate"`
}

// DisplayConfig is the root config for display.yaml
type DisplayConfig struct {
	ScreenWidth   int     `json:"screenWidth" yaml:"screen_width"`
	ScreenHeight  int     `json:"screenHeight" yaml:"screen_height"`
	Scale         int     `json:"scale" yaml:"scale"`
	Framerate     int     `json:"framerate" yaml:"framerate"`
	PixelsPerUnit float64 `json:"pixelsPerUnit" yaml:"pixels_per_unit"`
}

// CourseConfig is the root config for course files
type CourseConfig struct {
	ID       string          `json:"id" yaml:"id"`
	Name     string          `json:"name" yaml:"name"`
	Spawn    Vec3Config      `json:"spawn" yaml:"spawn"`
	KillY    float64         `json:"killY" yaml:"kill_y"`
	Surfaces []SurfaceConfig `json:"surfaces" yaml:"surfaces"`
}

type Vec3Config struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// SurfaceConfig describes one walkable patch.
// Grade is rise per unit of run; a grade of 1 is a 45 degree ramp.
type SurfaceConfig struct {
	Name   string  `json:"name" yaml:"name"`
	MinX   float64 `json:"minX" yaml:"min_x"`
	MinZ   float64 `json:"minZ" yaml:"min_z"`
	MaxX   float64 `json:"maxX" yaml:"max_x"`
	MaxZ   float64 `json:"maxZ" yaml:"max_z"`
	Base   float64 `json:"base" yaml:"base"`
	GradeX float64 `json:"gradeX" yaml:"grade_x"`
	GradeZ float64 `json:"gradeZ" yaml:"grade_z"`
	Layer  string  `json:"layer" yaml:"layer"`
}
