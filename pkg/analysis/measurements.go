// Package analysis computes summary statistics of a sketch for the info
// command and status displays.
package analysis

import (
	"fmt"
	"math"
	"slices"

	"github.com/philipparndt/gokin/pkg/geometry"
	"github.com/philipparndt/gokin/pkg/sketch"
	"github.com/samber/lo"
)

// BeamInfo contains the measured state of one beam
type BeamInfo struct {
	ID         sketch.BeamID
	Start      geometry.ModelPoint
	End        geometry.ModelPoint
	Length     float64
	RestLength float64
}

// Strain is the signed deviation of the current length from the rest length
func (b BeamInfo) Strain() float64 {
	return b.Length - b.RestLength
}

// Bounds is an axis-aligned box in model space
type Bounds struct {
	Min, Max geometry.ModelPoint
}

// Size returns the box extent
func (b Bounds) Size() geometry.ModelVector {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box
func (b Bounds) Center() geometry.ModelPoint {
	return b.Min.Lerp(b.Max, 0.5)
}

// Result contains the measurements of a sketch
type Result struct {
	Bounds           Bounds
	NodeCount        int
	BeamCount        int
	PivotCount       int
	SliderCount      int
	GroundCount      int
	CoincidenceCount int
	FixationCount    int
	MinBeamLength    float64
	MaxBeamLength    float64
	AvgBeamLength    float64
	TotalBeamLength  float64
	MaxStrain        float64 // largest |length - rest length|
	MaxNodeDegree    int     // most beams meeting at one node
	AllBeams         []BeamInfo
}

// AnalyzeSketch measures the graph. An empty graph yields zero lengths and
// zero bounds.
func AnalyzeSketch(g *sketch.Graph) *Result {
	result := &Result{
		NodeCount:        g.NodeCount(),
		BeamCount:        g.BeamCount(),
		PivotCount:       g.PivotCount(),
		SliderCount:      len(g.Sliders()),
		GroundCount:      len(g.Grounds()),
		CoincidenceCount: len(g.Coincidences()),
		FixationCount:    len(g.Fixations()),
	}

	nodes := g.Nodes()
	if len(nodes) > 0 {
		result.Bounds = Bounds{Min: nodes[0].Pos, Max: nodes[0].Pos}
		for _, n := range nodes[1:] {
			result.Bounds.Min.X = math.Min(result.Bounds.Min.X, n.Pos.X)
			result.Bounds.Min.Y = math.Min(result.Bounds.Min.Y, n.Pos.Y)
			result.Bounds.Max.X = math.Max(result.Bounds.Max.X, n.Pos.X)
			result.Bounds.Max.Y = math.Max(result.Bounds.Max.Y, n.Pos.Y)
		}
	}

	result.AllBeams = lo.Map(g.Beams(), func(b sketch.Beam, _ int) BeamInfo {
		start, end := g.Endpoints(b.ID)
		return BeamInfo{
			ID:         b.ID,
			Start:      start,
			End:        end,
			Length:     start.Distance(end),
			RestLength: b.RestLength,
		}
	})

	if len(result.AllBeams) > 0 {
		result.MinBeamLength = math.MaxFloat64
	}
	for _, b := range result.AllBeams {
		result.TotalBeamLength += b.Length
		result.MinBeamLength = math.Min(result.MinBeamLength, b.Length)
		result.MaxBeamLength = math.Max(result.MaxBeamLength, b.Length)
		result.MaxStrain = math.Max(result.MaxStrain, math.Abs(b.Strain()))
	}
	if result.BeamCount > 0 {
		result.AvgBeamLength = result.TotalBeamLength / float64(result.BeamCount)
	}

	for _, n := range nodes {
		result.MaxNodeDegree = max(result.MaxNodeDegree, len(g.BeamsAt(n.ID)))
	}

	return result
}

// FindLongestBeams returns the N longest beams
func FindLongestBeams(result *Result, count int) []BeamInfo {
	return firstN(result.AllBeams, count, func(a, b BeamInfo) int {
		return cmpFloat(b.Length, a.Length)
	})
}

// FindShortestBeams returns the N shortest beams
func FindShortestBeams(result *Result, count int) []BeamInfo {
	return firstN(result.AllBeams, count, func(a, b BeamInfo) int {
		return cmpFloat(a.Length, b.Length)
	})
}

func firstN(beams []BeamInfo, count int, cmp func(a, b BeamInfo) int) []BeamInfo {
	sorted := slices.Clone(beams)
	slices.SortStableFunc(sorted, cmp)
	if count > len(sorted) {
		count = len(sorted)
	}
	return sorted[:count]
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.3f %s", value, unit)
}

// FormatPoint formats a model point
func FormatPoint(p geometry.ModelPoint) string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}
