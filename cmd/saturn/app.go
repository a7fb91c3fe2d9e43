package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"saturn-scene/internal/cloud"
	"saturn-scene/internal/commands"
	"saturn-scene/internal/debug"
	"saturn-scene/internal/engineconfig"
	"saturn-scene/internal/graphics"
	"saturn-scene/internal/layout"
	"saturn-scene/internal/logger"
	"saturn-scene/internal/scene"
	"saturn-scene/internal/sim"
	"saturn-scene/internal/window"
)

// options are the flags shared by every subcommand.
type options struct {
	configPath string
	layoutPath string
	seed       int64
	debug      bool
	save       bool
}

func (o *options) bind(fs *flag.FlagSet) {
	fs.StringVar(&o.configPath, "config", engineconfig.EngineConfigPath, "engine preferences file")
	fs.StringVar(&o.layoutPath, "layout", "", "scene layout file (overrides the preference)")
	fs.Int64Var(&o.seed, "seed", 0, "generation seed, 0 for the preference or a time-based seed")
	fs.BoolVar(&o.debug, "debug", false, "log at debug level")
	fs.BoolVar(&o.save, "save", false, "write the resolved preferences, seed included, back to -config")
}

// load resolves preferences from file, environment and flags, in that order.
// An unusable preferences file is logged and replaced by the defaults.
func (o *options) load(log *logger.Logger) (engineconfig.EnginePrefs, error) {
	log.SetDebug(o.debug)
	prefs, err := engineconfig.Load(o.configPath)
	if err != nil {
		log.Warn("engine config ignored, using defaults", "error", err)
	}
	if err := engineconfig.ApplyEnv(&prefs); err != nil {
		return prefs, err
	}
	if o.layoutPath != "" {
		prefs.LayoutPath = o.layoutPath
	}
	if o.seed != 0 {
		prefs.Seed = o.seed
	}
	if prefs.Seed == 0 {
		prefs.Seed = time.Now().UnixNano()
	}
	log.Debug("preferences resolved", "config", o.configPath, "seed", prefs.Seed, "layout", prefs.LayoutPath)
	if o.save {
		if err := engineconfig.Save(o.configPath, prefs); err != nil {
			return prefs, fmt.Errorf("save preferences: %w", err)
		}
		log.Info("preferences saved", "path", o.configPath)
	}
	return prefs, nil
}

// buildWorld loads the layout and generates every entity.
func buildWorld(prefs engineconfig.EnginePrefs, log *logger.Logger) (*sim.World, error) {
	l, err := layout.Load(prefs.LayoutPath)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	w, err := sim.Build(l, cloud.NewRand(uint64(prefs.Seed)))
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	for _, pc := range w.Clouds() {
		log.Debug("cloud generated", "name", pc.Name, "points", pc.Len(), "size", pc.Material.Size, "opacity", pc.Material.Opacity)
	}
	log.Info("scene built",
		"layout", prefs.LayoutPath,
		"seed", prefs.Seed,
		"points", w.PointCount(),
		"galaxies", len(w.Galaxies),
		"elapsed", time.Since(start))
	return w, nil
}

func registerCommands(reg *commands.Registry, log *logger.Logger, stdout io.Writer) {
	var runOpts options
	var frames int
	runFS := flag.NewFlagSet("run", flag.ContinueOnError)
	runOpts.bind(runFS)
	runFS.IntVar(&frames, "frames", 0, "close after this many frames, 0 to run until the window is closed")
	reg.Register("run", "open the window and animate the scene", runFS, func() error {
		return run(&runOpts, frames, log)
	})

	var statsOpts options
	statsFS := flag.NewFlagSet("stats", flag.ContinueOnError)
	statsOpts.bind(statsFS)
	reg.Register("stats", "generate the scene without a window and print point clouds", statsFS, func() error {
		prefs, err := statsOpts.load(log)
		if err != nil {
			return err
		}
		w, err := buildWorld(prefs, log)
		if err != nil {
			return err
		}
		return writeStats(stdout, w, prefs.Seed)
	})

	var layoutOpts options
	layoutFS := flag.NewFlagSet("layout", flag.ContinueOnError)
	layoutOpts.bind(layoutFS)
	reg.Register("layout", "print the effective scene layout as YAML", layoutFS, func() error {
		prefs, err := layoutOpts.load(log)
		if err != nil {
			return err
		}
		l, err := layout.Load(prefs.LayoutPath)
		if err != nil {
			return err
		}
		data, err := l.Marshal()
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	})
}

func run(o *options, frames int, log *logger.Logger) error {
	if frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", frames)
	}
	prefs, err := o.load(log)
	if err != nil {
		return err
	}
	w, err := buildWorld(prefs, log)
	if err != nil {
		return err
	}

	win := window.Open(window.Options{
		Width:      prefs.Width,
		Height:     prefs.Height,
		Title:      "saturn",
		Fullscreen: prefs.Fullscreen,
		TargetFPS:  prefs.TargetFPS,
		MSAA:       true,
	})
	defer win.Close()

	scn := scene.New(w)
	defer scn.Close()

	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowMemAlloc = prefs.ShowMemAlloc
	dbg.ShowPoints = prefs.ShowPoints
	dbg.ShowLog = prefs.ShowLog
	dbg.SetPointCount(w.PointCount())
	dbg.SetLogSource(log.Lines)

	tick := func(t float64) {
		w.Step(t)
		scn.Update()
	}
	draw := func() {
		scn.Draw()
		dbg.Draw()
	}
	if frames > 0 {
		drawn := graphics.RunFrames(win, frames, tick, draw)
		log.Info("window closed", "frames", drawn)
		return nil
	}
	graphics.Run(win, tick, draw)
	log.Info("window closed")
	return nil
}
