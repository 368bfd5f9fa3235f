package system

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/younwookim/stride/internal/application/state"
	"github.com/younwookim/stride/internal/domain/entity"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

// Controller is the first-person locomotion controller. Update runs on the
// frame clock and FixedUpdate on the physics clock; the host must not call
// them concurrently.
type Controller struct {
	cfg        *config.ControllerConfig
	body       Body
	probe      *EnvironmentProbe
	classifier *ModeClassifier
	integrator *LocomotionIntegrator
	timers     *Timers // nil when the host owns scheduling
	log        logrus.FieldLogger

	// Flags holds the ability flags. CrouchHeld and SprintHeld are
	// overwritten from input every frame.
	Flags entity.ModeFlags

	speed    SpeedState
	mode     state.MovementMode
	sample   entity.KinematicSample
	grounded bool

	horizontal float64
	vertical   float64
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler makes the controller schedule deferred actions on s instead
// of its own timers. The host is then responsible for advancing s.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		c.timers = nil
		c.integrator.scheduler = s
	}
}

// WithLogger sets the logger used for mode and jump traces.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// NewController validates cfg and wires the controller to its collaborators.
func NewController(cfg *config.ControllerConfig, body Body, orient Orientation, caster Raycaster, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	probe := NewEnvironmentProbe(caster, cfg.Body.Height, entity.ParseLayer(cfg.Body.GroundLayer), cfg.Slope.MaxAngle)
	timers := NewTimers()

	c := &Controller{
		cfg:        cfg,
		body:       body,
		probe:      probe,
		classifier: NewModeClassifier(cfg.Movement),
		integrator: NewLocomotionIntegrator(cfg, body, orient, probe, timers),
		timers:     timers,
		log:        discard,
		mode:       state.ModeWalking,
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Update runs one frame: ground check, drag, jump and crouch input, speed
// clamp, classification and one smoothing step, in that order.
func (c *Controller) Update(dt float64, input InputState) {
	if c.timers != nil {
		c.timers.Advance(dt)
	}

	c.grounded = c.probe.ProbeGround(c.body.Position())

	if c.grounded {
		c.body.SetDrag(c.cfg.Body.GroundDrag)
	} else {
		c.body.SetDrag(0)
	}

	c.horizontal = input.Horizontal
	c.vertical = input.Vertical
	c.Flags.CrouchHeld = input.Crouch
	c.Flags.SprintHeld = input.Sprint

	if c.integrator.TryJump(input.Jump, c.grounded) {
		c.log.WithField("velocity", c.body.Velocity()).Debug("jump")
	}
	c.integrator.HandleCrouch(input.CrouchPressed, input.CrouchReleased)

	c.integrator.ClampSpeed(c.speed.Current)

	c.sample = c.probe.Sample(c.body.Position(), c.body.Velocity())
	c.sample.IsGrounded = c.grounded

	c.handleState()

	rate := SmoothingRate(c.cfg.Smoothing, c.sample.OnSlope, c.sample.SlopeAngle)
	if c.speed.Advance(dt, rate) {
		c.log.WithField("speed", c.speed.Current).Debug("speed transition finished")
	}
}

// FixedUpdate applies movement forces for one physics step.
func (c *Controller) FixedUpdate() {
	c.integrator.ApplyMovement(c.horizontal, c.vertical, c.speed.Current, c.grounded)
}

func (c *Controller) handleState() {
	mode, target := c.classifier.Classify(c.Flags, c.sample, c.speed.Target)

	if mode != c.mode {
		c.log.WithFields(logrus.Fields{
			"from":   c.mode,
			"to":     mode,
			"target": target,
		}).Debug("movement mode changed")
		c.mode = mode
	}

	from := c.speed.Current
	if c.speed.Retarget(target) {
		c.log.WithFields(logrus.Fields{
			"from": from,
			"to":   target,
		}).Debug("speed transition started")
	}
}

// Mode returns the movement mode from the last Update.
func (c *Controller) Mode() state.MovementMode { return c.mode }

// Speed returns a copy of the speed state.
func (c *Controller) Speed() SpeedState { return c.speed.Snapshot() }

// Sample returns the kinematic facts from the last Update.
func (c *Controller) Sample() entity.KinematicSample { return c.sample }

// Grounded returns the ground check from the last Update.
func (c *Controller) Grounded() bool { return c.grounded }

// ReadyToJump reports whether the jump cooldown has expired.
func (c *Controller) ReadyToJump() bool { return c.integrator.ReadyToJump() }

// ExitingSlope reports whether slope handling is suppressed after a jump.
func (c *Controller) ExitingSlope() bool { return c.integrator.ExitingSlope() }

// Probe exposes the environment probe used by the controller.
func (c *Controller) Probe() *EnvironmentProbe { return c.probe }
