// Package explorer wires selection events from the two graph views to
// their three independent reactions: the firing view's stylesheet, the
// chart panel and the detail panel.
package explorer

import (
	"errors"
	"fmt"

	"github.com/ziadkadry99/topicmap/internal/assets"
	"github.com/ziadkadry99/topicmap/internal/charts"
	"github.com/ziadkadry99/topicmap/internal/graph"
)

// ErrNoSource is returned for events that do not name the firing view.
var ErrNoSource = errors.New("selection event has no source")

// Explorer is the immutable context shared by all handlers. It is safe for
// concurrent use because nothing is written after New.
type Explorer struct {
	assets      *assets.Assets
	coordinator *Coordinator
	detail      *DetailPanel
}

// New creates an Explorer over loaded assets.
func New(a *assets.Assets) *Explorer {
	return &Explorer{
		assets:      a,
		coordinator: NewCoordinator(a.Topics, a.FilterHist),
		detail:      NewDetailPanel(),
	}
}

// Assets returns the loaded assets. Callers must not modify them.
func (e *Explorer) Assets() *assets.Assets { return e.assets }

// Update is everything the page must redraw after one event.
type Update struct {
	Source     graph.Source     `json:"source"`
	Stylesheet graph.Stylesheet `json:"stylesheet"`
	Chart      charts.Figure    `json:"chart"`
	ChartKind  ChartKind        `json:"chart_kind"`
	Detail     *Detail          `json:"detail,omitempty"`
	Selected   *graph.Resolved  `json:"selected,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// Handle computes the update for one event. A chart error still yields a
// complete Update (empty chart, Error set) alongside the returned error.
func (e *Explorer) Handle(ev Event) (Update, error) {
	u := Update{Source: ev.Source, Chart: charts.Empty(), ChartKind: ChartEmpty}

	switch ev.Source {
	case graph.SourceScatter:
		u.Stylesheet = graph.ScatterStylesheet(ev.Scatter)
		d, err := e.detail.Render(ev.Scatter)
		if err != nil {
			u.Error = err.Error()
			return u, err
		}
		u.Detail = &d
	case graph.SourceNetwork:
		u.Stylesheet = graph.NetworkStylesheet(ev.Network)
	default:
		u.Error = ErrNoSource.Error()
		return u, ErrNoSource
	}

	if r, ok := graph.Resolve(ev.Source, ev.Scatter, ev.Network); ok {
		u.Selected = &r
	}

	fig, kind, err := e.coordinator.Reduce(ev)
	if err != nil {
		u.Error = err.Error()
		return u, err
	}
	u.Chart, u.ChartKind = fig, kind
	return u, nil
}

// InitialChart is the chart shown before any selection: the summary of
// topic 0 in its palette colour.
func (e *Explorer) InitialChart() (charts.Figure, error) {
	if e.assets.Topics.Len() == 0 {
		return charts.Empty(), nil
	}
	return e.TopicSummary(0, "")
}

// TopicSummary builds a topic's summary figure. An empty color uses the
// palette colour of the topic.
func (e *Explorer) TopicSummary(idx int, color string) (charts.Figure, error) {
	return charts.TopicSummary(e.assets.Topics, idx, e.colorFor(idx, color))
}

// TokenWeights builds a topic's horizontal token-weight bar chart.
func (e *Explorer) TokenWeights(idx int, color string) (charts.Figure, error) {
	return charts.TokenWeightBar(e.assets.Topics, idx, e.colorFor(idx, color))
}

// FilterHistogram builds a subject's token histogram.
func (e *Explorer) FilterHistogram(filterID string) (charts.Figure, error) {
	return charts.FilterTokenHistogram(e.assets.FilterHist, filterID)
}

func (e *Explorer) colorFor(idx int, override string) string {
	if override != "" {
		return override
	}
	c, _ := e.assets.Palette.Color(idx)
	return c
}

// TopicInfo is a short description of one topic for listings.
type TopicInfo struct {
	Index     int      `json:"index"`
	Color     string   `json:"color"`
	TopTokens []string `json:"top_tokens"`
	Subjects  int      `json:"subjects"`
}

// Topics lists every topic with up to n leading tokens.
func (e *Explorer) Topics(n int) []TopicInfo {
	all := e.assets.Topics.All()
	out := make([]TopicInfo, 0, len(all))
	for _, t := range all {
		top := t.TopTokens(n)
		tokens := make([]string, len(top))
		for i, tw := range top {
			tokens[i] = tw.Token
		}
		out = append(out, TopicInfo{
			Index:     t.Index,
			Color:     e.colorFor(t.Index, ""),
			TopTokens: tokens,
			Subjects:  len(t.FilterIndex),
		})
	}
	return out
}

// String is used in startup logs.
func (e *Explorer) String() string {
	s := e.assets.Summary()
	return fmt.Sprintf("%d topics, %d scatter nodes, %d network nodes, %d edges, %d filters",
		s.Topics, s.ScatterNodes, s.NetworkNodes, s.NetworkEdges, s.Filters)
}
