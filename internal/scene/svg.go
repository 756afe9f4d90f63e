package scene

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/philipparndt/gokin/pkg/geometry"
)

// errWriter remembers the first write error; svgo does not report them
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG renders the scene as a width x height SVG document, mapping model
// coordinates through vp
func WriteSVG(w io.Writer, s Scene, vp geometry.Viewport, width, height int, background string) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)

	if background != "" {
		canvas.Rect(0, 0, width, height, "fill:"+background)
	}

	for _, shape := range s.Shapes {
		style := svgStyle(shape.Style(), vp)
		switch sh := shape.(type) {
		case Bar:
			o := vp.ToScreen(sh.Rect.Origin)
			half := vp.ScaleToScreen(sh.Rect.Width) / 2
			transform := fmt.Sprintf(`transform="rotate(%.2f %d %d)"`, sh.Rect.Degrees(), px(o.X), px(o.Y))
			canvas.Rect(px(o.X), px(o.Y-half),
				px(vp.ScaleToScreen(sh.Rect.Length)), px(2*half),
				style, transform)
		case Circle:
			c := vp.ToScreen(sh.Center)
			canvas.Circle(px(c.X), px(c.Y), px(vp.ScaleToScreen(sh.Radius)), style)
		case Box:
			c := vp.ToScreen(sh.Center)
			bw := vp.ScaleToScreen(sh.Width)
			bh := vp.ScaleToScreen(sh.Height)
			r := px(vp.ScaleToScreen(sh.Corner))
			canvas.Roundrect(px(c.X-bw/2), px(c.Y-bh/2), px(bw), px(bh), r, r, style)
		case Polygon:
			xs := make([]int, len(sh.Points))
			ys := make([]int, len(sh.Points))
			for i, p := range sh.Points {
				sp := vp.ToScreen(p)
				xs[i], ys[i] = px(sp.X), px(sp.Y)
			}
			canvas.Polygon(xs, ys, style)
		}
	}

	if s.Caption != "" {
		canvas.Text(10, 20, s.Caption, "font-family:monospace;font-size:14px;fill:#001d59")
	}

	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("failed to write svg: %w", ew.err)
	}
	return nil
}

func svgStyle(p Paint, vp geometry.Viewport) string {
	parts := []string{
		"fill:" + p.Fill,
		"stroke:" + p.Stroke,
		fmt.Sprintf("stroke-width:%g", vp.ScaleToScreen(p.StrokeWidth)),
	}
	if p.Opacity < 1 {
		parts = append(parts, fmt.Sprintf("opacity:%g", p.Opacity))
	}
	return strings.Join(parts, ";")
}

func px(v float64) int {
	return int(math.Round(v))
}
