package sketch

import (
	"errors"
	"fmt"
	"math"
)

// Validate checks every cross-reference of the graph and returns all
// violations joined, or nil. The editor never produces an invalid graph;
// this exists for tests and for graphs assembled by hand.
func (g *Graph) Validate() error {
	var errs []error

	node := func(what string, id NodeID) {
		if id < 0 || int(id) >= len(g.nodes) {
			errs = append(errs, fmt.Errorf("%s: node %d out of range (have %d)", what, id, len(g.nodes)))
		}
	}
	beam := func(what string, id BeamID) {
		if id < 0 || int(id) >= len(g.beams) {
			errs = append(errs, fmt.Errorf("%s: beam %d out of range (have %d)", what, id, len(g.beams)))
		}
	}

	for i, n := range g.nodes {
		if n.ID != NodeID(i) {
			errs = append(errs, fmt.Errorf("node %d: stored id %d", i, n.ID))
		}
	}
	for i, b := range g.beams {
		what := fmt.Sprintf("beam %d", i)
		node(what, b.Start)
		node(what, b.End)
		if b.Start == b.End {
			errs = append(errs, fmt.Errorf("%s: endpoints are both node %d", what, b.Start))
		}
		if b.RestLength < 0 || math.IsNaN(b.RestLength) {
			errs = append(errs, fmt.Errorf("%s: invalid rest length %v", what, b.RestLength))
		}
	}
	for i, p := range g.pivots {
		node(fmt.Sprintf("pivot %d", i), p.Node)
	}
	for i, s := range g.sliders {
		what := fmt.Sprintf("slider %d", i)
		node(what, s.Node)
		for _, b := range s.Beams {
			beam(what, b)
		}
	}
	for i, gr := range g.grounds {
		what := fmt.Sprintf("ground %d", i)
		node(what, gr.Node)
		if gr.Kind == ElementBeam {
			beam(what, BeamID(gr.Target))
		}
	}
	for i, c := range g.coincidences {
		what := fmt.Sprintf("coincidence %d", i)
		node(what, c.Node)
		beam(what, c.Beam)
	}
	for i, f := range g.fixations {
		what := fmt.Sprintf("fixation %d", i)
		beam(what, f.BeamA)
		beam(what, f.BeamB)
	}

	return errors.Join(errs...)
}
