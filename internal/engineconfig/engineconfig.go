package engineconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"saturn-scene/internal/layout"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// Environment variables that override the file.
const (
	EnvSeed    = "SATURN_SEED"
	EnvLayout  = "SATURN_LAYOUT"
	EnvShowFPS = "SATURN_SHOW_FPS"
)

// EnginePrefs holds window and overlay preferences plus the generation seed. Persisted across runs.
// The scene itself is described by the layout file at LayoutPath.
type EnginePrefs struct {
	ShowFPS      bool   `json:"show_fps"`
	ShowMemAlloc bool   `json:"show_memalloc"`
	ShowPoints   bool   `json:"show_points"`
	ShowLog      bool   `json:"show_log"`
	Fullscreen   bool   `json:"fullscreen"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	TargetFPS    int    `json:"target_fps"`
	Seed         int64  `json:"seed"` // 0 = time-based
	LayoutPath   string `json:"layout_path"`
}

// Default returns default engine preferences (overlays off, 1280x720 window, random seed).
func Default() EnginePrefs {
	return EnginePrefs{
		Width:      1280,
		Height:     720,
		TargetFPS:  60,
		LayoutPath: layout.DefaultPath,
	}
}

// Load reads engine preferences from path. A missing file returns Default() and does not
// create one. An unreadable or invalid file also returns Default(), together with an error
// the caller can report before carrying on. Zero sizes fall back to the defaults.
func Load(path string) (EnginePrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read engine config %s: %w", path, err)
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse engine config %s: %w", path, err)
	}
	d := Default()
	if p.Width <= 0 || p.Height <= 0 {
		p.Width, p.Height = d.Width, d.Height
	}
	if p.TargetFPS <= 0 {
		p.TargetFPS = d.TargetFPS
	}
	if p.LayoutPath == "" {
		p.LayoutPath = d.LayoutPath
	}
	return p, nil
}

// Save writes engine preferences to path, creating the directory if needed.
func Save(path string, p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides p with any SATURN_* variables set in the environment.
// A malformed value is an error naming the variable.
func ApplyEnv(p *EnginePrefs) error {
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		p.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvLayout); ok && v != "" {
		p.LayoutPath = v
	}
	if v, ok := os.LookupEnv(EnvShowFPS); ok {
		show, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvShowFPS, err)
		}
		p.ShowFPS = show
	}
	return nil
}
