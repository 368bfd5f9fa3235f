// Package playing provides the sandbox scene where the locomotion controller
// runs on a course.
package playing

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/stride/internal/application/scene"
	"github.com/younwookim/stride/internal/application/system"
	"github.com/younwookim/stride/internal/domain/entity"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

// turnRate is the yaw speed in radians per second at full turn input.
const turnRate = math.Pi

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorGround   = color.RGBA{70, 80, 100, 255}
	colorRamp     = color.RGBA{90, 110, 140, 255}
	colorProp     = color.RGBA{140, 110, 70, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorFacing   = color.RGBA{240, 240, 240, 255}
	colorAirborne = color.RGBA{200, 200, 100, 255}
	colorSpeedBG  = color.RGBA{60, 60, 60, 255}
	colorSpeedFG  = color.RGBA{100, 200, 100, 255}
)

// InputSource supplies one frame of input.
type InputSource interface {
	GetInput() system.InputState
}

// Playing is the sandbox scene
type Playing struct {
	config     *config.GameConfig
	course     *entity.Course
	body       *entity.RigidBody
	orient     *system.YawOrientation
	controller *system.Controller
	physics    *system.PhysicsSystem
	timers     *system.Timers
	input      InputSource
	log        logrus.FieldLogger

	dash    *system.DashAbility
	slide   *system.SlideAbility
	wallRun *system.WallRunAbility

	screenW int
	screenH int
	ppu     float64
	paused  bool
	fov     float64
	frames  int

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene on course.
// If recordPath is not empty, input will be recorded.
func New(cfg *config.GameConfig, course *entity.Course, recordPath string, log logrus.FieldLogger) (*Playing, error) {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	log = log.WithField("course", course.Name)

	ctrlCfg := cfg.Controller
	body := entity.NewRigidBody(course.Spawn, ctrlCfg.Body.Height, ctrlCfg.Body.Mass)
	orient := &system.YawOrientation{}
	timers := system.NewTimers()

	controller, err := system.NewController(ctrlCfg, body, orient, course,
		system.WithScheduler(timers),
		system.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create controller: %w", err)
	}

	p := &Playing{
		config:         cfg,
		course:         course,
		body:           body,
		orient:         orient,
		controller:     controller,
		physics:        system.NewPhysicsSystem(ctrlCfg.Physics, course),
		timers:         timers,
		input:          system.NewInputSystem(system.DefaultKeyBindings()),
		log:            log,
		slide:          system.NewSlideAbility(&controller.Flags),
		wallRun:        system.NewWallRunAbility(&controller.Flags),
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		ppu:            cfg.Display.PixelsPerUnit,
		fov:            ctrlCfg.Camera.BaseFOV,
		recordFilename: recordPath,
	}
	p.dash = system.NewDashAbility(ctrlCfg.Dash, &controller.Flags, timers)
	if p.ppu <= 0 {
		p.ppu = 8
	}

	if recordPath != "" {
		p.recorder = NewRecorder(course.Name, p.frameDT())
		log.WithField("path", recordPath).Info("recording enabled")
	}

	return p, nil
}

// SetInputSource replaces the keyboard with src.
func (p *Playing) SetInputSource(src InputSource) {
	p.input = src
}

func (p *Playing) frameDT() float64 {
	if p.config.Display.Framerate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(p.config.Display.Framerate)
}

// Update runs the frame clock (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.paused = !p.paused
	}
	if p.paused {
		return nil, nil
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	input := p.input.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.step(dt, input)
	return nil, nil // nil = stay on this scene
}

func (p *Playing) step(dt float64, input system.InputState) {
	p.frames++
	p.orient.Turn(input.Turn * turnRate * dt)
	p.timers.Advance(dt)

	grounded := p.controller.Grounded()
	if input.Dash && p.dash.Trigger() {
		p.log.Debug("dash")
	}
	p.slide.Update(input.Slide, grounded)
	p.wallRun.Update(input.WallRun, grounded)

	p.controller.Update(dt, input)
	p.updateFOV(input.Sprint, dt)
}

// updateFOV eases the field of view toward the sprint or base value.
func (p *Playing) updateFOV(sprinting bool, dt float64) {
	cam := p.config.Controller.Camera
	target := cam.BaseFOV
	if sprinting {
		target = cam.SprintFOV
	}
	t := mgl64.Clamp(cam.LerpRate*dt, 0, 1)
	p.fov += (target - p.fov) * t
}

// FixedUpdate runs one physics step (implements scene.Scene)
func (p *Playing) FixedUpdate(step float64) {
	if p.paused {
		return
	}

	p.controller.FixedUpdate()
	if p.physics.Step(p.body, step) {
		p.log.WithField("frame", p.frames).Info("fell off the course, respawned")
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.WithError(err).Warn("failed to save recording")
	} else {
		p.log.WithFields(logrus.Fields{
			"path":   filename,
			"frames": p.recorder.FrameCount(),
		}).Info("recording saved")
	}
}

// Draw renders a top-down view centered on the player. World +X is screen
// right and world +Z is screen up.
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.drawCourse(screen)
	p.drawPlayer(screen)
	p.drawHUD(screen)

	if p.paused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) toScreen(x, z float64) (float64, float64) {
	pos := p.body.Position()
	sx := (x-pos.X())*p.ppu + float64(p.screenW)/2
	sy := -(z-pos.Z())*p.ppu + float64(p.screenH)/2
	return sx, sy
}

func (p *Playing) drawCourse(screen *ebiten.Image) {
	for _, s := range p.course.Surfaces {
		x0, y0 := p.toScreen(s.MinX, s.MaxZ)
		x1, y1 := p.toScreen(s.MaxX, s.MinZ)

		c := colorGround
		switch {
		case s.Layer == entity.LayerProp:
			c = colorProp
		case s.GradeX != 0 || s.GradeZ != 0:
			c = colorRamp
		}
		ebitenutil.DrawRect(screen, x0, y0, x1-x0, y1-y0, shade(c, s.HeightAt((s.MinX+s.MaxX)/2, (s.MinZ+s.MaxZ)/2)))
	}
}

// shade brightens c with height so stacked surfaces stay distinguishable.
func shade(c color.RGBA, height float64) color.RGBA {
	k := mgl64.Clamp(1+height*0.08, 0.6, 1.6)
	ch := func(v uint8) uint8 { return uint8(mgl64.Clamp(float64(v)*k, 0, 255)) }
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), c.A}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	cx, cy := float64(p.screenW)/2, float64(p.screenH)/2
	size := p.ppu * p.body.Scale().Y()

	c := colorPlayer
	if !p.controller.Mode().Grounded() {
		c = colorAirborne
	}
	ebitenutil.DrawRect(screen, cx-size/2, cy-size/2, size, size, c)

	fwd := p.orient.Forward()
	ebitenutil.DrawLine(screen, cx, cy, cx+fwd.X()*p.ppu*1.5, cy-fwd.Z()*p.ppu*1.5, colorFacing)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	speed := p.controller.Speed()
	sample := p.controller.Sample()
	vel := p.body.Velocity()
	flags := p.controller.Flags

	hud := fmt.Sprintf(
		"%s  mode: %s\nspeed %.2f -> %.2f  vel %.2f (y %.2f)\nslope %t %.1fdeg  jump %t  fov %.1f\ndash %t slide %t wall %t crouch %t",
		p.course.Name, p.controller.Mode(),
		speed.Current, speed.Target, math.Hypot(vel.X(), vel.Z()), vel.Y(),
		sample.OnSlope, sample.SlopeAngle, p.controller.ReadyToJump(), p.fov,
		flags.IsDashing, flags.IsSliding, flags.IsWallRunning, flags.CrouchHeld,
	)
	ebitenutil.DebugPrint(screen, hud)

	// Speed bar, full at dash speed
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 8.0
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorSpeedBG)

	ratio := mgl64.Clamp(speed.Current/math.Max(p.config.Controller.Movement.DashSpeed, 1), 0, 1)
	ebitenutil.DrawRect(screen, barX, barY, barW*ratio, barH, colorSpeedFG)

	controls := "WASD: Move | Arrows: Turn | Space: Jump | Shift: Sprint | Ctrl: Crouch | E/Q/R: Dash/Slide/Wall | ESC: Pause"
	ebitenutil.DebugPrintAt(screen, controls, 10, p.screenH-36)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	// Semi-transparent overlay
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.log.WithField("spawn", p.course.Spawn).Info("entering course")
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Controller returns the locomotion controller driven by this scene.
func (p *Playing) Controller() *system.Controller { return p.controller }

// Body returns the player body.
func (p *Playing) Body() *entity.RigidBody { return p.body }

// FOV returns the current field of view in degrees.
func (p *Playing) FOV() float64 { return p.fov }

// Frames returns the number of frame updates run.
func (p *Playing) Frames() int { return p.frames }
