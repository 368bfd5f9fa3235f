package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// GameConfig holds all loaded configurations
type GameConfig struct {
	Controller *ControllerConfig
	Display    *DisplayConfig
}

// Loader loads configuration files using fs.FS interface.
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Default returns the embedded default controller config.
func Default() (*ControllerConfig, error) {
	var cfg ControllerConfig
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse embedded defaults: %w", err)
	}
	return &cfg, nil
}

// LoadController loads controller.yaml (or controller.json) on top of the
// embedded defaults and validates the result.
func (l *Loader) LoadController() (*ControllerConfig, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if err := l.decodeFirst(cfg, "controller.yaml", "controller.yml", "controller.json"); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDisplay loads display.yaml (or display.json)
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	var cfg DisplayConfig
	if err := l.decodeFirst(&cfg, "display.yaml", "display.yml", "display.json"); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadCourse loads courses/<name>.json (or .yaml)
func (l *Loader) LoadCourse(name string) (*CourseConfig, error) {
	var cfg CourseConfig
	if err := l.decodeFirst(&cfg, "courses/"+name+".json", "courses/"+name+".yaml", "courses/"+name+".yml"); err != nil {
		return nil, fmt.Errorf("failed to load course %s: %w", name, err)
	}
	return &cfg, nil
}

// LoadAll loads all base configurations (controller, display)
func (l *Loader) LoadAll() (*GameConfig, error) {
	controller, err := l.LoadController()
	if err != nil {
		return nil, err
	}

	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Controller: controller,
		Display:    display,
	}, nil
}

// decodeFirst decodes the first of names that exists into v.
func (l *Loader) decodeFirst(v any, names ...string) error {
	for _, name := range names {
		data, err := fs.ReadFile(l.fsys, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		if err := decode(name, data, v); err != nil {
			return fmt.Errorf("failed to parse %s: %w", name, err)
		}
		return nil
	}
	return fmt.Errorf("failed to read %s: %w", names[0], fs.ErrNotExist)
}

func decode(name string, data []byte, v any) error {
	switch path.Ext(name) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	default:
		return json.Unmarshal(data, v)
	}
}
