// Package charts builds Plotly figures for the explorer's
// chart panel and renders them server-side as SVG.
package charts

import "encoding/json"

// Figure is a Plotly figure: {"data": [...], "layout": {...}}.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// IsEmpty reports whether the figure has no traces.
func (f Figure) IsEmpty() bool { return len(f.Data) == 0 }

// Trace is a bar trace. Labels are the categories and Values the bar
// lengths; Orientation decides which of them lands on the x axis.
type Trace struct {
	Type        string
	Orientation string // "h" for horizontal, empty for vertical
	Labels      []string
	Values      []float64
	MarkerColor string
	XAxis       string // "x", "x2"; empty means the default axis
	YAxis       string
}

func (t Trace) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"type":   t.Type,
		"marker": map[string]string{"color": t.MarkerColor},
	}
	labels := t.Labels
	if labels == nil {
		labels = []string{}
	}
	values := t.Values
	if values == nil {
		values = []float64{}
	}
	if t.Orientation == "h" {
		m["orientation"] = "h"
		m["x"], m["y"] = values, labels
	} else {
		m["x"], m["y"] = labels, values
	}
	if t.XAxis != "" {
		m["xaxis"] = t.XAxis
	}
	if t.YAxis != "" {
		m["yaxis"] = t.YAxis
	}
	return json.Marshal(m)
}

// Layout is the subset of Plotly layout keys the explorer uses.
type Layout struct {
	Height      int     `json:"height,omitempty"`
	ShowLegend  *bool   `json:"showlegend,omitempty"`
	Margin      *Margin `json:"margin,omitempty"`
	PlotBgColor string  `json:"plot_bgcolor,omitempty"`
	XAxis       *Axis   `json:"xaxis,omitempty"`
	YAxis       *Axis   `json:"yaxis,omitempty"`
	XAxis2      *Axis   `json:"xaxis2,omitempty"`
	YAxis2      *Axis   `json:"yaxis2,omitempty"`
}

// Margin is a layout margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Axis configures one axis.
type Axis struct {
	Title      *AxisTitle `json:"title,omitempty"`
	Domain     []float64  `json:"domain,omitempty"`
	Anchor     string     `json:"anchor,omitempty"`
	TickAngle  *float64   `json:"tickangle,omitempty"`
	TickFont   *Font      `json:"tickfont,omitempty"`
	AutoMargin bool       `json:"automargin,omitempty"`
}

// AxisTitle is an axis title with its distance from the tick labels.
type AxisTitle struct {
	Text     string `json:"text"`
	Standoff int    `json:"standoff,omitempty"`
}

// Font sets tick label size.
type Font struct {
	Size int `json:"size"`
}

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }
