// Package app wires the runner together: flags, logger, loader, executor
// and the chosen frame driver.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wqhan/jxscript/pkg/cli"
	"github.com/wqhan/jxscript/pkg/engine"
	"github.com/wqhan/jxscript/pkg/fileutil"
	"github.com/wqhan/jxscript/pkg/logger"
	"github.com/wqhan/jxscript/pkg/script"
	"github.com/wqhan/jxscript/pkg/vm"
)

const (
	windowWidth  = 800
	windowHeight = 600
)

// Application holds the runner's assembled pieces.
type Application struct {
	config  *cli.Config
	log     *slog.Logger
	manager *engine.Manager
}

// New creates an empty Application; Run does the wiring.
func New() *Application {
	return &Application{}
}

// Run parses args, builds the interpreter stack and drives the entry script
// to completion (headless) or hands the loop to ebiten (windowed).
func (app *Application) Run(args []string) error {
	config, err := cli.ParseArgs(args)
	if err != nil {
		return fmt.Errorf("failed to parse args: %w", err)
	}
	app.config = config

	if config.ShowHelp {
		cli.PrintHelp()
		return nil
	}

	if err := logger.InitLogger(config.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.log = logger.GetLogger()
	app.log.Info("starting", "entry", config.EntryFile, "base", config.BaseDir,
		"headless", config.Headless)

	fsys := fileutil.NewRealFS(config.BaseDir)
	loader := script.NewLoader(fsys, config.CommonDir)
	// The base directory itself is the initial context tier, so a script
	// named directly on the command line resolves before the common dir.
	loader.SetMapDir(".")

	music := app.setupMusic(fsys)
	gameCtx := engine.NewDemoContext(music)
	executor := vm.NewExecutor(loader, gameCtx, vm.NewVarStore())
	app.manager = engine.NewManager(executor)

	if err := executor.RunScript(config.EntryFile); err != nil {
		return err
	}

	if config.Headless {
		return app.runHeadless()
	}
	return app.runWindowed()
}

// setupMusic builds the MIDI backend when a SoundFont is available.
// Headless runs skip audio entirely.
func (app *Application) setupMusic(fsys fileutil.FileSystem) *engine.MusicPlayer {
	if app.config.Headless {
		return nil
	}
	soundFont := app.config.SoundFont
	if soundFont == "" {
		soundFont = findSoundFont(app.config.BaseDir)
	}
	if soundFont == "" {
		app.log.Info("no soundfont found, music disabled")
		return nil
	}

	music := engine.NewMusicPlayer(fsys)
	if err := music.LoadSoundFont(soundFont); err != nil {
		app.log.Error("soundfont load failed, music disabled", "error", err)
		return nil
	}
	return music
}

func (app *Application) runHeadless() error {
	ticker := engine.NewTicker(app.manager)
	ticker.AutoInput = true
	ticker.Interval = time.Second / 60
	if err := ticker.Run(context.Background(), app.config.Timeout); err != nil {
		return fmt.Errorf("headless run: %w", err)
	}
	app.log.Info("script finished")
	return nil
}

func (app *Application) runWindowed() error {
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("jxscript")
	if err := ebiten.RunGame(engine.NewGame(app.manager, windowWidth, windowHeight)); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
