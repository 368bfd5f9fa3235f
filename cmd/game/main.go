package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/stride/internal/application/game"
	"github.com/younwookim/stride/internal/application/replay"
	"github.com/younwookim/stride/internal/application/scene/playing"
	"github.com/younwookim/stride/internal/application/system"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

// newLogger creates the process logger at the named level.
func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return log, nil
}

// newLoader reads configs from dir, or from the embedded configs when dir is empty.
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	courseName := flag.String("course", "demo", "Course to load from <config>/courses")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headless and print a summary")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	loader, err := newLoader(*configDir)
	if err != nil {
		log.WithError(err).Fatal("failed to open configs")
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.WithError(err).Fatal("failed to load replay")
		}

		name := *courseName
		if data.Course != "" {
			name = data.Course
		}
		courseCfg, err := loader.LoadCourse(name)
		if err != nil {
			log.WithError(err).Fatal("failed to load course")
		}

		summary, err := RunReplay(cfg, system.LoadCourse(courseCfg), data, log)
		if err != nil {
			log.WithError(err).Fatal("replay failed")
		}
		summary.Log(log)
		return
	}

	courseCfg, err := loader.LoadCourse(*courseName)
	if err != nil {
		log.WithError(err).Fatal("failed to load course")
	}
	course := system.LoadCourse(courseCfg)

	scene, err := playing.New(cfg, course, *recordFlag, log)
	if err != nil {
		log.WithError(err).Fatal("failed to create scene")
	}

	display := cfg.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, cfg.Controller.Physics.FixedStep)
	if display.Framerate > 0 {
		g.SetDT(1.0 / float64(display.Framerate))
		ebiten.SetTPS(display.Framerate)
	}

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Stride - " + course.Name)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("game exited with error")
	}
}
