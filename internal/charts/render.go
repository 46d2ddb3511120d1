package charts

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoPanel is returned when a figure has no trace at the requested panel.
var ErrNoPanel = errors.New("figure has no such panel")

const (
	svgHeight     = 320
	svgBarWidth   = 24
	svgBarSpacing = 8
	svgMinWidth   = 480
)

// namedColors covers the CSS names used by the palette conventions.
var namedColors = map[string]string{
	"grey":  "808080",
	"gray":  "808080",
	"white": "ffffff",
	"black": "000000",
	"red":   "ff0000",
}

// ParseColor converts a "#RRGGBB" or known CSS name to a drawing colour.
// Unknown values fall back to grey.
func ParseColor(c string) drawing.Color {
	c = strings.ToLower(strings.TrimSpace(c))
	if hex, ok := namedColors[c]; ok {
		return drawing.ColorFromHex(hex)
	}
	hex := strings.TrimPrefix(c, "#")
	if len(hex) != 6 && len(hex) != 3 {
		return drawing.ColorFromHex(namedColors["grey"])
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return drawing.ColorFromHex(namedColors["grey"])
		}
	}
	return drawing.ColorFromHex(hex)
}

// RenderSVG draws one panel (trace) of a figure as an SVG bar chart.
func RenderSVG(w io.Writer, fig Figure, panel int, title string) error {
	if panel < 0 || panel >= len(fig.Data) {
		return fmt.Errorf("%w: %d of %d", ErrNoPanel, panel, len(fig.Data))
	}
	trace := fig.Data[panel]
	if len(trace.Values) == 0 {
		return fmt.Errorf("%w: panel %d has no bars", ErrNoPanel, panel)
	}

	fill := ParseColor(trace.MarkerColor)
	bars := make([]chart.Value, len(trace.Values))
	lo, hi := 0.0, 0.0
	for i, v := range trace.Values {
		label := ""
		if i < len(trace.Labels) {
			label = trace.Labels[i]
		}
		bars[i] = chart.Value{
			Label: label,
			Value: v,
			Style: chart.Style{FillColor: fill, StrokeColor: fill, StrokeWidth: 1},
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}

	width := len(bars)*(svgBarWidth+svgBarSpacing) + 160
	if width < svgMinWidth {
		width = svgMinWidth
	}

	bc := chart.BarChart{
		Title:      title,
		Height:     svgHeight,
		Width:      width,
		BarWidth:   svgBarWidth,
		BarSpacing: svgBarSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.Style{TextRotationDegrees: 45, FontSize: 8},
		Bars:       bars,
	}
	// Bars start at zero. go-chart rejects a zero-width range, which a
	// single bar or equal bars would otherwise produce.
	if hi <= lo {
		hi = lo + 1
	}
	bc.YAxis.Range = &chart.ContinuousRange{Min: lo, Max: hi}

	if err := bc.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("rendering bar chart: %w", err)
	}
	return nil
}
