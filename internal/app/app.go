// Package app is the raylib host: it owns the window, turns raylib input
// into editor events and draws the projected scene.
package app

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gokin/internal/config"
	"github.com/philipparndt/gokin/internal/editor"
	"github.com/philipparndt/gokin/internal/script"
	"github.com/philipparndt/gokin/pkg/watcher"
	"go.uber.org/zap"
)

// Options selects what the window opens with
type Options struct {
	Config     config.Config
	Log        *zap.Logger
	ScriptPath string // optional event script, replayed on start and on change
}

// Run opens the editor window and blocks until it is closed
func Run(opts Options) error {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	app := &App{
		Editor: opts.Config.NewEditor(editor.WithLogger(log)),
		Config: opts.Config,
		Style:  opts.Config.Style(),
		Log:    log,
		Keys:   newKeyPoller(),
		Script: ScriptState{path: opts.ScriptPath},
		UI:     UIState{colors: make(map[colorKey]rl.Color), dirty: true},
	}

	if app.Script.path != "" {
		if err := app.replayScript(); err != nil {
			return err
		}
		if err := app.setupFileWatcher(); err != nil {
			log.Warn("auto-reload not available", zap.Error(err))
		} else {
			defer app.Script.fileWatcher.Close()
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(opts.Config.Window.Width), int32(opts.Config.Window.Height), "gokin")
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyNull) // Escape cancels placement instead of quitting
	rl.SetTargetFPS(60)

	unmount := app.Editor.Mount(app.Keys)
	defer unmount()

	cancel := app.Editor.Subscribe(func() { app.UI.dirty = true })
	defer cancel()

	app.layoutToolbar()

	for !rl.WindowShouldClose() {
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		if app.Script.needsReload.Swap(false) {
			if err := app.replayScript(); err != nil {
				app.Script.lastError = err.Error()
				log.Warn("script reload failed", zap.Error(err))
			}
		}

		app.handleInput()

		rl.BeginDrawing()
		rl.ClearBackground(app.color(app.Style.Background, 1))
		app.drawScene()
		app.drawUI()
		rl.EndDrawing()
	}

	return nil
}

// replayScript rebuilds the sketch from the script file
func (app *App) replayScript() error {
	events, err := script.ParseFile(app.Script.path)
	if err != nil {
		return fmt.Errorf("failed to load script: %w", err)
	}
	app.Editor.Clear()
	script.Replay(app.Editor, events)
	app.Script.lastError = ""
	app.Log.Info("script replayed", zap.String("file", app.Script.path), zap.Int("events", len(events)))
	return nil
}

func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(watcher.DefaultDebounce, app.Log)
	if err != nil {
		return err
	}
	if err := fw.Watch(app.Script.path, func(string) {
		app.Script.needsReload.Store(true)
	}); err != nil {
		fw.Close()
		return err
	}
	go fw.Run(context.Background())

	app.Script.fileWatcher = fw
	return nil
}
