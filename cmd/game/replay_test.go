package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/stride/internal/application/game"
	"github.com/younwookim/stride/internal/application/replay"
	"github.com/younwookim/stride/internal/application/scene/playing"
	"github.com/younwookim/stride/internal/application/state"
	"github.com/younwookim/stride/internal/application/system"
	"github.com/younwookim/stride/internal/domain/entity"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

const testDT = 0.02

func loadTestConfig(t *testing.T) (*config.GameConfig, *entity.Course) {
	t.Helper()

	loader, err := newLoader("")
	require.NoError(t, err)
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	courseCfg, err := loader.LoadCourse("demo")
	require.NoError(t, err)
	return cfg, system.LoadCourse(courseCfg)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestReplayIdlePlayer_Stability(t *testing.T) {
	cfg, course := loadTestConfig(t)
	data := replay.CreateTestReplayData(300, testDT, system.InputState{})

	summary, err := RunReplay(cfg, course, &data, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, 300, summary.Frames)
	assert.Len(t, summary.Positions, 300)

	// Spawn hovers slightly above the floor; after settling nothing moves.
	settled := summary.Positions[50]
	for i, pos := range summary.Positions[50:] {
		assert.InDelta(t, 0.0, pos.Sub(settled).Len(), 1e-9, "drift at frame %d", i+50)
	}
	assert.InDelta(t, 0.0, summary.Distance, 1e-9)
	assert.Equal(t, 300, summary.ModeFrames[state.ModeWalking]+summary.ModeFrames[state.ModeAirborne])
}

func TestReplayDeterminism(t *testing.T) {
	cfg, course := loadTestConfig(t)

	data := replay.CreateTestReplayData(120, testDT, system.InputState{})
	for i := range data.Frames {
		data.Frames[i].V = 1
		data.Frames[i].S = i > 30
		data.Frames[i].J = i == 60
		data.Frames[i].T = 0.25
	}

	s1, err := RunReplay(cfg, course, &data, quietLogger())
	require.NoError(t, err)
	s2, err := RunReplay(cfg, course, &data, quietLogger())
	require.NoError(t, err)

	require.Equal(t, len(s1.Positions), len(s2.Positions), "Frame count should match")
	for i := range s1.Positions {
		assert.Equal(t, s1.Positions[i], s2.Positions[i], "Position at frame %d should match", i)
	}
	assert.Equal(t, s1.ModeFrames, s2.ModeFrames)
}

func TestReplayWithMovement(t *testing.T) {
	cfg, course := loadTestConfig(t)
	data := replay.CreateTestReplayData(60, testDT, system.InputState{Vertical: -1, Sprint: true})

	summary, err := RunReplay(cfg, course, &data, quietLogger())
	require.NoError(t, err)

	assert.Less(t, summary.Final.Z(), summary.Start.Z()-5, "walked backwards along -Z")
	assert.Greater(t, summary.Distance, 5.0)
	assert.Equal(t, cfg.Controller.Movement.SprintSpeed, summary.MaxSpeed)
	assert.Greater(t, summary.ModeFrames[state.ModeSprinting], 50)
	assert.InDelta(t, 0.0, summary.Final.X(), 1e-9)
}

func TestRecorderAndReplayer(t *testing.T) {
	cfg, course := loadTestConfig(t)
	path := filepath.Join(t.TempDir(), "session.json")

	// Record a short session through the live game loop
	p, err := playing.New(cfg, course, path, quietLogger())
	require.NoError(t, err)
	p.SetInputSource(&constantInput{state: system.InputState{Horizontal: 1}})

	g := game.New(p, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Controller.Physics.FixedStep)
	g.SetDT(1.0 / float64(cfg.Display.Framerate))
	for i := 0; i < 40; i++ {
		require.NoError(t, g.Update())
	}
	p.OnExit()
	live := p.Body().Position()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, course.Name, data.Course)
	assert.Len(t, data.Frames, 40)

	summary, err := RunReplay(cfg, course, data, quietLogger())
	require.NoError(t, err)
	assert.Greater(t, summary.Final.X(), summary.Start.X())
	assert.InDelta(t, live.X(), summary.Final.X(), 1e-9, "replay reproduces the live session")
}

func TestReplaySummary_Log(t *testing.T) {
	log, hook := logtest.NewNullLogger()

	ReplaySummary{
		Frames:     10,
		Final:      mgl64.Vec3{1, 2, 3},
		ModeFrames: map[state.MovementMode]int{state.ModeWalking: 10},
	}.Log(log)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "replay finished", entry.Message)
	assert.Equal(t, 10, entry.Data["frames"])
	assert.Equal(t, 10, entry.Data["frames_"+state.ModeWalking.String()])
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger("debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestNewLoader_Directory(t *testing.T) {
	loader, err := newLoader("configs")
	require.NoError(t, err)

	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Display.ScreenWidth)
}

type constantInput struct {
	state system.InputState
}

func (c *constantInput) GetInput() system.InputState { return c.state }
