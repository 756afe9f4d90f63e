package app

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gokin/internal/config"
	"github.com/philipparndt/gokin/internal/editor"
	"github.com/philipparndt/gokin/internal/scene"
	"github.com/philipparndt/gokin/pkg/watcher"
	"go.uber.org/zap"
)

// App is the raylib host around one editor
type App struct {
	Editor      *editor.Editor
	Config      config.Config
	Style       scene.Style
	Log         *zap.Logger
	Keys        *keyPoller
	Interaction InteractionState
	Script      ScriptState
	UI          UIState
}

// InteractionState holds mouse state that is not the editor's business
type InteractionState struct {
	lastMousePos rl.Vector2
	isPanning    bool
	overToolbar  bool // press started on the toolbar, keep it away from the canvas
}

// ScriptState holds the replayed script and its reload state
type ScriptState struct {
	path        string
	fileWatcher *watcher.FileWatcher
	needsReload atomic.Bool // set from the watcher goroutine
	lastError   string
}

// UIState holds toolbar layout and cached drawing data
type UIState struct {
	buttons []toolbarButton
	colors  map[colorKey]rl.Color
	scene   scene.Scene
	dirty   bool // editor notified since the scene was projected
}

type colorKey struct {
	hex     string
	opacity float64
}
