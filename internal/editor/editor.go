// Package editor turns pointer and key events into sketch edits.
//
// The Editor is a small state machine (see Mode) and the only writer of its
// sketch.Graph. Events are handled synchronously in delivery order; after
// every visible change the editor notifies its observers once.
package editor

import (
	"fmt"

	"github.com/philipparndt/gokin/pkg/geometry"
	"github.com/philipparndt/gokin/pkg/sketch"
	"go.uber.org/zap"
)

// DefaultBeamWidth is the drawn and hit-tested width of a beam
const DefaultBeamWidth = 8.0

type subscriber struct {
	id int
	fn func()
}

// Editor holds the sketch being edited and the current interaction mode
type Editor struct {
	graph     *sketch.Graph
	mode      Mode
	cursor    geometry.ModelPoint
	viewport  geometry.Viewport
	beamWidth float64
	log       *zap.Logger

	observers    []subscriber
	nextObserver int
	notifying    bool

	unmount func()
}

// Option configures an Editor
type Option func(*Editor)

// WithGraph edits an existing graph instead of a fresh one
func WithGraph(g *sketch.Graph) Option {
	return func(e *Editor) {
		e.graph = g
	}
}

// WithViewport sets the initial screen to model mapping
func WithViewport(v geometry.Viewport) Option {
	return func(e *Editor) {
		e.viewport = v
	}
}

// WithBeamWidth sets the beam hit-test width in model units
func WithBeamWidth(w float64) Option {
	return func(e *Editor) {
		e.beamWidth = w
	}
}

// WithLogger sets the logger used for transition tracing
func WithLogger(l *zap.Logger) Option {
	return func(e *Editor) {
		e.log = l
	}
}

// New creates an idle editor
func New(opts ...Option) *Editor {
	e := &Editor{
		mode:      Idle{},
		viewport:  geometry.NewViewport(),
		beamWidth: DefaultBeamWidth,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.graph == nil {
		e.graph = sketch.New()
	}
	return e
}

// Graph gives read access to the sketch. Callers must not mutate it.
func (e *Editor) Graph() *sketch.Graph {
	return e.graph
}

// Mode returns the current mode
func (e *Editor) Mode() Mode {
	return e.mode
}

// Cursor returns the last pointer position in model space
func (e *Editor) Cursor() geometry.ModelPoint {
	return e.cursor
}

// BeamWidth returns the beam hit-test width
func (e *Editor) BeamWidth() float64 {
	return e.beamWidth
}

// Viewport returns the current screen to model mapping
func (e *Editor) Viewport() geometry.Viewport {
	return e.viewport
}

// SetViewport changes the mapping used for subsequent pointer events
func (e *Editor) SetViewport(v geometry.Viewport) {
	e.viewport = v
	e.notify()
}

// Debug summarises the editor state for on-screen diagnostics
func (e *Editor) Debug() string {
	return fmt.Sprintf("Mode: %v | nodes: %d beams: %d pivots: %d",
		e.mode, e.graph.NodeCount(), e.graph.BeamCount(), e.graph.PivotCount())
}

// Handle applies one event. Events the current mode does not handle are
// ignored.
func (e *Editor) Handle(ev Event) {
	if e.notifying {
		panic("editor: Handle called from an observer")
	}

	switch ev := ev.(type) {
	case ToolSelected:
		e.selectTool(ev.Tool)
	case PointerMove:
		e.pointerMove(e.viewport.ToModel(ev.Pos))
	case PointerDown:
		if ev.Button == ButtonPrimary {
			e.primaryDown(e.viewport.ToModel(ev.Pos))
		}
	case PointerUp:
		if ev.Button == ButtonPrimary {
			e.primaryUp()
		}
	case KeyDown:
		e.keyDown(ev)
	}
}

// SelectTool is shorthand for Handle(ToolSelected{t})
func (e *Editor) SelectTool(t Tool) {
	e.Handle(ToolSelected{Tool: t})
}

// Clear empties the sketch and returns to Idle
func (e *Editor) Clear() {
	e.graph.Clear()
	e.log.Info("sketch cleared")
	if _, idle := e.mode.(Idle); idle {
		e.notify()
		return
	}
	e.setMode(Idle{})
}

func (e *Editor) selectTool(t Tool) {
	// A drag in progress owns the pointer until release
	if _, moving := e.mode.(Moving); moving {
		return
	}
	e.setMode(t.mode())
}

func (e *Editor) pointerMove(pos geometry.ModelPoint) {
	e.cursor = pos

	switch m := e.mode.(type) {
	case Idle:
		return
	case Moving:
		b := e.graph.Beam(m.Beam)
		e.graph.MoveNode(b.Start, pos.Add(m.StartOffset))
		e.graph.MoveNode(b.End, pos.Add(m.EndOffset))
	}
	// Preview follows the cursor
	e.notify()
}

func (e *Editor) primaryDown(pos geometry.ModelPoint) {
	e.cursor = pos

	switch m := e.mode.(type) {
	case Idle:
		beam, ok := e.graph.BeamAt(pos, e.beamWidth)
		if !ok {
			return
		}
		start, end := e.graph.Endpoints(beam)
		e.setMode(Moving{
			Beam:        beam,
			StartOffset: start.Sub(pos),
			EndOffset:   end.Sub(pos),
		})
	case PlacingBeamStart:
		e.setMode(PlacingBeamEnd{Start: e.graph.Snap(pos)})
	case PlacingBeamEnd:
		e.commitBeam(m.Start, e.graph.Snap(pos))
	}
}

func (e *Editor) commitBeam(start, end geometry.ModelPoint) {
	if !e.graph.Distinct(start, end) {
		e.log.Debug("beam ignored, endpoints resolve to one node",
			zap.Stringer("start", start), zap.Stringer("end", end))
		return
	}

	startID := e.graph.ResolveOrCreateNode(start)
	endID := e.graph.ResolveOrCreateNode(end)
	beam := e.graph.AddBeam(startID, endID)

	e.log.Debug("beam committed",
		zap.Int("beam", int(beam)),
		zap.Int("start", int(startID)),
		zap.Int("end", int(endID)),
		zap.Float64("rest_length", e.graph.Beam(beam).RestLength))

	// Chain into the next beam
	e.setMode(PlacingBeamStart{})
}

func (e *Editor) primaryUp() {
	if _, moving := e.mode.(Moving); moving {
		e.setMode(Idle{})
	}
}

func (e *Editor) keyDown(k KeyDown) {
	if k.Key != KeyEscape || k.Mods.Any() {
		return
	}
	if _, idle := e.mode.(Idle); idle {
		return
	}
	e.setMode(Idle{})
}

func (e *Editor) setMode(m Mode) {
	e.log.Debug("mode change", zap.Stringer("from", e.mode), zap.Stringer("to", m))
	e.mode = m
	e.notify()
}
