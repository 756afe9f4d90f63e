package cmd

import (
	"fmt"

	"github.com/philipparndt/gokin/internal/script"
	"github.com/philipparndt/gokin/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCount int

var infoCmd = &cobra.Command{
	Use:   "info <script>",
	Short: "Replay an event script and print sketch statistics",
	Long:  "Show element counts, bounds and beam lengths of the sketch an event script produces.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().IntVarP(&infoCount, "count", "n", 3, "number of longest/shortest beams to list")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	events, err := script.ParseFile(args[0])
	if err != nil {
		return err
	}
	ed := cfg.NewEditor()
	script.Replay(ed, events)
	g := ed.Graph()

	if err := g.Validate(); err != nil {
		return fmt.Errorf("sketch is inconsistent: %w", err)
	}
	result := analysis.AnalyzeSketch(g)

	fmt.Println("Sketch Information")
	fmt.Println("==================")
	fmt.Printf("Script: %s (%d events)\n", args[0], len(events))
	fmt.Printf("Final mode: %v\n\n", ed.Mode())

	fmt.Println("Elements:")
	fmt.Printf("  Nodes: %d\n", result.NodeCount)
	fmt.Printf("  Beams: %d\n", result.BeamCount)
	fmt.Printf("  Pivots: %d\n", result.PivotCount)
	fmt.Printf("  Sliders: %d\n", result.SliderCount)
	fmt.Printf("  Grounds: %d\n", result.GroundCount)
	fmt.Printf("  Max beams at a node: %d\n\n", result.MaxNodeDegree)

	if result.NodeCount == 0 {
		return nil
	}

	fmt.Println("Bounds:")
	fmt.Printf("  Min: %s\n", analysis.FormatPoint(result.Bounds.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatPoint(result.Bounds.Max))
	size := result.Bounds.Size()
	fmt.Printf("  Size: %.3f x %.3f units\n\n", size.X, size.Y)

	if result.BeamCount == 0 {
		return nil
	}

	fmt.Println("Beam Lengths:")
	fmt.Printf("  Minimum: %s\n", analysis.FormatMeasurement(result.MinBeamLength, ""))
	fmt.Printf("  Maximum: %s\n", analysis.FormatMeasurement(result.MaxBeamLength, ""))
	fmt.Printf("  Average: %s\n", analysis.FormatMeasurement(result.AvgBeamLength, ""))
	fmt.Printf("  Total: %s\n", analysis.FormatMeasurement(result.TotalBeamLength, ""))
	fmt.Printf("  Max deviation from rest length: %s\n\n", analysis.FormatMeasurement(result.MaxStrain, ""))

	fmt.Println("Longest beams:")
	for _, b := range analysis.FindLongestBeams(result, infoCount) {
		fmt.Printf("  #%d %s -> %s: %.3f\n", b.ID, analysis.FormatPoint(b.Start), analysis.FormatPoint(b.End), b.Length)
	}
	fmt.Println("Shortest beams:")
	for _, b := range analysis.FindShortestBeams(result, infoCount) {
		fmt.Printf("  #%d %s -> %s: %.3f\n", b.ID, analysis.FormatPoint(b.Start), analysis.FormatPoint(b.End), b.Length)
	}
	return nil
}
