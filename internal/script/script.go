// Package script reads YAML event scripts and replays them into an editor
// without a window. Positions are screen coordinates.
//
//	events:
//	  - tool: beam
//	  - down: [0, 0]
//	  - move: [50, 0]
//	  - key: escape
//	    mods: [ctrl]
package script

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/philipparndt/gokin/internal/editor"
	"github.com/philipparndt/gokin/pkg/geometry"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type file struct {
	Events []entry `yaml:"events"`
}

// entry is one list item; exactly one of Tool, Down, Move, Up or Key is set
type entry struct {
	Tool   string    `yaml:"tool"`
	Down   []float64 `yaml:"down"`
	Move   []float64 `yaml:"move"`
	Up     []float64 `yaml:"up"`
	Key    string    `yaml:"key"`
	Mods   []string  `yaml:"mods"`
	Button string    `yaml:"button"`
}

// Parse decodes a script into editor events
func Parse(r io.Reader) ([]editor.Event, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to decode script")
	}

	events := make([]editor.Event, 0, len(f.Events))
	for i, e := range f.Events {
		ev, err := e.event()
		if err != nil {
			return nil, errors.Wrapf(err, "event %d", i)
		}
		events = append(events, ev)
	}
	return events, nil
}

// ParseFile reads and decodes the script at path
func ParseFile(path string) ([]editor.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read script %s", path)
	}
	events, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return events, nil
}

// Replay feeds events to ed in order
func Replay(ed *editor.Editor, events []editor.Event) {
	for _, ev := range events {
		ed.Handle(ev)
	}
}

func (e entry) event() (editor.Event, error) {
	set := 0
	for _, present := range []bool{e.Tool != "", e.Down != nil, e.Move != nil, e.Up != nil, e.Key != ""} {
		if present {
			set++
		}
	}
	if set != 1 {
		return nil, errors.Errorf("expected exactly one of tool, down, move, up, key (got %d)", set)
	}

	switch {
	case e.Tool != "":
		t, err := editor.ParseTool(e.Tool)
		if err != nil {
			return nil, err
		}
		return editor.ToolSelected{Tool: t}, nil

	case e.Key != "":
		key, err := parseKey(e.Key)
		if err != nil {
			return nil, err
		}
		mods, err := parseMods(e.Mods)
		if err != nil {
			return nil, err
		}
		return editor.KeyDown{Key: key, Mods: mods}, nil
	}

	if len(e.Mods) > 0 {
		return nil, errors.New("mods only apply to key events")
	}
	button, err := parseButton(e.Button)
	if err != nil {
		return nil, err
	}

	switch {
	case e.Down != nil:
		pos, err := point(e.Down)
		if err != nil {
			return nil, errors.Wrap(err, "down")
		}
		return editor.PointerDown{Pos: pos, Button: button}, nil
	case e.Up != nil:
		pos, err := point(e.Up)
		if err != nil {
			return nil, errors.Wrap(err, "up")
		}
		return editor.PointerUp{Pos: pos, Button: button}, nil
	default:
		if e.Button != "" {
			return nil, errors.New("button does not apply to move")
		}
		pos, err := point(e.Move)
		if err != nil {
			return nil, errors.Wrap(err, "move")
		}
		return editor.PointerMove{Pos: pos}, nil
	}
}

func point(xy []float64) (geometry.ScreenPoint, error) {
	if len(xy) != 2 {
		return geometry.ScreenPoint{}, errors.Errorf("expected [x, y], got %d values", len(xy))
	}
	return geometry.Pt[geometry.Screen](xy[0], xy[1]), nil
}

func parseKey(name string) (editor.Key, error) {
	switch strings.ToLower(name) {
	case "escape", "esc":
		return editor.KeyEscape, nil
	case "other":
		return editor.KeyOther, nil
	default:
		return 0, errors.Errorf("unknown key %q", name)
	}
}

func parseMods(names []string) (editor.Modifiers, error) {
	var m editor.Modifiers
	for _, name := range names {
		switch strings.ToLower(name) {
		case "ctrl", "control":
			m.Ctrl = true
		case "alt", "option":
			m.Alt = true
		case "shift":
			m.Shift = true
		case "meta", "cmd", "super":
			m.Meta = true
		default:
			return m, errors.Errorf("unknown modifier %q", name)
		}
	}
	return m, nil
}

func parseButton(name string) (editor.Button, error) {
	for _, b := range []editor.Button{editor.ButtonPrimary, editor.ButtonSecondary, editor.ButtonMiddle} {
		if name == "" || strings.EqualFold(name, b.String()) {
			return b, nil
		}
	}
	return 0, errors.Errorf("unknown button %q", name)
}
