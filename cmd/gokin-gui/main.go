package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gokin/internal/config"
	"github.com/philipparndt/gokin/internal/editor"
	"github.com/philipparndt/gokin/internal/logging"
	"github.com/philipparndt/gokin/internal/script"
	"github.com/philipparndt/gokin/pkg/viewer"
	"github.com/philipparndt/gokin/pkg/watcher"
	"github.com/philipparndt/gokin/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	window fyne.Window
	editor *editor.Editor
	view   *viewer.SketchView
	status *widget.Label
	log    *zap.Logger
	script string
}

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "gokin-gui [script]",
	Short:         "Planar mechanism sketch editor (fyne)",
	Version:       version.GetFullVersion(),
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		log, err := logging.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer log.Sync() //nolint:errcheck

		scriptPath := ""
		if len(args) == 1 {
			scriptPath = args[0]
		}
		return run(cfg, log, scriptPath)
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log editor transitions")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *zap.Logger, scriptPath string) error {
	a := app.New()
	w := a.NewWindow("gokin")

	appInstance := &App{
		window: w,
		editor: cfg.NewEditor(editor.WithLogger(log)),
		log:    log,
		script: scriptPath,
	}
	appInstance.view = viewer.NewSketchView(appInstance.editor, cfg.Style())
	appInstance.status = widget.NewLabel(appInstance.editor.Debug())
	appInstance.editor.Subscribe(func() {
		appInstance.status.SetText(appInstance.editor.Debug())
	})

	if scriptPath != "" {
		if err := appInstance.replay(); err != nil {
			return err
		}
		fw, err := appInstance.watch()
		if err != nil {
			log.Warn("auto-reload not available", zap.Error(err))
		} else {
			defer fw.Close()
		}
	}

	unmount := appInstance.editor.Mount(viewer.CanvasKeys{Canvas: w.Canvas()})
	defer unmount()
	w.SetOnClosed(unmount)

	w.SetContent(appInstance.layout())
	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	w.ShowAndRun()
	return nil
}

func (a *App) layout() fyne.CanvasObject {
	tool := func(label string, t editor.Tool) *widget.Button {
		return widget.NewButton(label, func() { a.editor.SelectTool(t) })
	}
	toolbar := container.NewHBox(
		tool("Pivot", editor.ToolPivot),
		tool("Slider", editor.ToolSlider),
		tool("Ground", editor.ToolGround),
		tool("Beam", editor.ToolBeam),
		widget.NewSeparator(),
		widget.NewButton("Clear all", func() {
			dialog.ShowConfirm("Clear all", "Remove every element from the sketch?", func(ok bool) {
				if ok {
					a.editor.Clear()
				}
			}, a.window)
		}),
	)

	return container.NewBorder(
		toolbar,  // top
		a.status, // bottom
		nil,      // left
		nil,      // right
		a.view,   // center
	)
}

// replay rebuilds the sketch from the script file
func (a *App) replay() error {
	events, err := script.ParseFile(a.script)
	if err != nil {
		return err
	}
	a.editor.Clear()
	script.Replay(a.editor, events)
	a.log.Info("script replayed", zap.String("file", a.script), zap.Int("events", len(events)))
	return nil
}

func (a *App) watch() (*watcher.FileWatcher, error) {
	fw, err := watcher.NewFileWatcher(watcher.DefaultDebounce, a.log)
	if err != nil {
		return nil, err
	}
	err = fw.Watch(a.script, func(string) {
		fyne.Do(func() {
			if err := a.replay(); err != nil {
				dialog.ShowError(err, a.window)
			}
		})
	})
	if err != nil {
		fw.Close()
		return nil, err
	}
	go fw.Run(context.Background())
	return fw, nil
}
