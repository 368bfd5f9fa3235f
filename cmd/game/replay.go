package main

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/stride/internal/application/game"
	"github.com/younwookim/stride/internal/application/replay"
	"github.com/younwookim/stride/internal/application/scene/playing"
	"github.com/younwookim/stride/internal/application/state"
	"github.com/younwookim/stride/internal/application/system"
	"github.com/younwookim/stride/internal/domain/entity"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

// replayInput feeds recorded frames to the scene. Past the end it returns
// idle input.
type replayInput struct {
	replayer *replay.Replayer
}

func (r *replayInput) GetInput() system.InputState {
	in, _ := r.replayer.GetInput()
	return in
}

// ReplaySummary describes a replayed session.
type ReplaySummary struct {
	Frames     int
	Start      mgl64.Vec3
	Final      mgl64.Vec3
	Distance   float64 // planar path length
	MaxSpeed   float64 // peak effective speed
	Positions  []mgl64.Vec3
	ModeFrames map[state.MovementMode]int
}

// RunReplay replays data on course without a window, stepping the scene
// through the same fixed-step loop the game uses.
func RunReplay(cfg *config.GameConfig, course *entity.Course, data *replay.ReplayData, log logrus.FieldLogger) (ReplaySummary, error) {
	scene, err := playing.New(cfg, course, "", log)
	if err != nil {
		return ReplaySummary{}, fmt.Errorf("failed to create scene: %w", err)
	}

	replayer := replay.NewReplayer(*data)
	scene.SetInputSource(&replayInput{replayer: replayer})

	g := game.New(scene, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Controller.Physics.FixedStep)
	g.SetDT(data.DT)

	summary := ReplaySummary{
		Start:      scene.Body().Position(),
		Positions:  make([]mgl64.Vec3, 0, replayer.TotalFrames()),
		ModeFrames: make(map[state.MovementMode]int),
	}

	prev := summary.Start
	for replayer.CurrentFrame() < replayer.TotalFrames() {
		if err := g.Update(); err != nil {
			return summary, fmt.Errorf("frame %d: %w", replayer.CurrentFrame(), err)
		}

		pos := scene.Body().Position()
		summary.Positions = append(summary.Positions, pos)
		summary.Distance += math.Hypot(pos.X()-prev.X(), pos.Z()-prev.Z())
		summary.MaxSpeed = math.Max(summary.MaxSpeed, scene.Controller().Speed().Current)
		summary.ModeFrames[scene.Controller().Mode()]++
		prev = pos
	}

	summary.Frames = replayer.TotalFrames()
	summary.Final = prev
	return summary, nil
}

// Log writes the summary at info level.
func (s ReplaySummary) Log(log logrus.FieldLogger) {
	fields := logrus.Fields{
		"frames":    s.Frames,
		"final":     fmt.Sprintf("(%.2f, %.2f, %.2f)", s.Final.X(), s.Final.Y(), s.Final.Z()),
		"distance":  fmt.Sprintf("%.2f", s.Distance),
		"max_speed": fmt.Sprintf("%.2f", s.MaxSpeed),
	}
	for mode, n := range s.ModeFrames {
		fields["frames_"+mode.String()] = n
	}
	log.WithFields(fields).Info("replay finished")
}
