package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Locomotion *LocomotionConfig
	Stage      *StageConfig
}

// Loader loads game configuration from JSON or YAML files using fs.FS interface
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

// LoadLocomotion loads locomotion.json on top of the defaults and validates it.
// Keys absent from the file keep their default value.
func (l *Loader) LoadLocomotion() (*LocomotionConfig, error) {
	data, err := fs.ReadFile(l.fsys, "locomotion.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read locomotion.json: %w", err)
	}

	cfg := DefaultLocomotionConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse locomotion.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("locomotion.json: %w", err)
	}

	return cfg, nil
}

// LoadLocomotionYAML loads locomotion.yaml on top of the defaults and validates it
func (l *Loader) LoadLocomotionYAML() (*LocomotionConfig, error) {
	data, err := fs.ReadFile(l.fsys, "locomotion.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read locomotion.yaml: %w", err)
	}

	cfg := DefaultLocomotionConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse locomotion.yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("locomotion.yaml: %w", err)
	}

	return cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads the locomotion tunables (YAML preferred when present) and the named stage
func (l *Loader) LoadAll(stage string) (*GameConfig, error) {
	var (
		loco *LocomotionConfig
		err  error
	)
	if _, statErr := fs.Stat(l.fsys, "locomotion.yaml"); statErr == nil {
		loco, err = l.LoadLocomotionYAML()
	} else {
		loco, err = l.LoadLocomotion()
	}
	if err != nil {
		return nil, err
	}

	stageCfg, err := l.LoadStage(stage)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Locomotion: loco,
		Stage:      stageCfg,
	}, nil
}
