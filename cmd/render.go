package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/philipparndt/gokin/internal/config"
	"github.com/philipparndt/gokin/internal/scene"
	"github.com/philipparndt/gokin/internal/script"
	"github.com/philipparndt/gokin/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	renderOutput string
	renderWatch  bool
)

var renderCmd = &cobra.Command{
	Use:   "render <script>",
	Short: "Replay an event script and write the sketch as SVG",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "SVG file to write (default: stdout)")
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "re-render whenever the script changes")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	scriptPath := args[0]
	if renderWatch && renderOutput == "" {
		return fmt.Errorf("--watch requires --output")
	}
	if err := renderScript(cfg, scriptPath, renderOutput); err != nil {
		return err
	}
	if renderOutput != "" {
		fmt.Printf("Wrote %s\n", renderOutput)
	}
	if !renderWatch {
		return nil
	}

	fw, err := watcher.NewFileWatcher(watcher.DefaultDebounce, log)
	if err != nil {
		return err
	}
	defer fw.Close()

	var mu sync.Mutex
	if err := fw.Watch(scriptPath, func(string) {
		mu.Lock()
		defer mu.Unlock()
		if err := renderScript(cfg, scriptPath, renderOutput); err != nil {
			log.Warn("render failed", zap.Error(err))
			return
		}
		fmt.Printf("Wrote %s\n", renderOutput)
	}); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	fmt.Printf("Watching %s (Ctrl+C to stop)\n", scriptPath)
	if err := fw.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// renderScript replays the script headlessly and writes the resulting
// scene. An empty output writes to stdout.
func renderScript(cfg config.Config, scriptPath, output string) error {
	events, err := script.ParseFile(scriptPath)
	if err != nil {
		return err
	}

	ed := cfg.NewEditor()
	script.Replay(ed, events)

	s := scene.Project(ed.Graph(), ed.Preview(), cfg.Style())
	s.Caption = ed.Debug()

	if output == "" {
		return scene.WriteSVG(os.Stdout, s, ed.Viewport(), cfg.Window.Width, cfg.Window.Height, cfg.Colors.Background)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	if err := scene.WriteSVG(f, s, ed.Viewport(), cfg.Window.Width, cfg.Window.Height, cfg.Colors.Background); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
