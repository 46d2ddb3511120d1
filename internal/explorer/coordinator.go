package explorer

import (
	"errors"
	"fmt"

	"github.com/ziadkadry99/topicmap/internal/charts"
	"github.com/ziadkadry99/topicmap/internal/graph"
	"github.com/ziadkadry99/topicmap/internal/topics"
)

// ErrUnassignedTopic is returned when the selected node carries the
// unassigned sentinel: it has neither a topic nor a subject histogram.
var ErrUnassignedTopic = errors.New("selected node has no assigned topic")

// ChartKind names which chart the coordinator picked.
type ChartKind string

const (
	ChartEmpty           ChartKind = "empty"
	ChartTopicSummary    ChartKind = "topic_summary"
	ChartFilterHistogram ChartKind = "filter_histogram"
)

// Event is one selection event: the firing view and the current selection
// lists of both views as reported by the page.
type Event struct {
	Source  graph.Source        `json:"source"`
	Scatter []graph.ScatterNode `json:"scatter"`
	Network []graph.NetworkNode `json:"network"`
}

// Coordinator decides what the chart panel shows for an event.
type Coordinator struct {
	topics *topics.Set
	hist   *topics.FilterHistogram
}

// NewCoordinator creates a Coordinator over the loaded topics and histogram.
func NewCoordinator(set *topics.Set, hist *topics.FilterHistogram) *Coordinator {
	return &Coordinator{topics: set, hist: hist}
}

// Reduce maps an event to a chart. Only the firing view's selection is
// read; a stale selection in the other view never affects the result.
func (c *Coordinator) Reduce(ev Event) (charts.Figure, ChartKind, error) {
	sel, ok := graph.Resolve(ev.Source, ev.Scatter, ev.Network)
	if !ok {
		return charts.Empty(), ChartEmpty, nil
	}

	switch sel.TopicIndex {
	case topics.Background:
		fig, err := charts.FilterTokenHistogram(c.hist, sel.NodeID)
		if err != nil {
			return charts.Empty(), ChartEmpty, err
		}
		return fig, ChartFilterHistogram, nil
	case topics.Unassigned:
		return charts.Empty(), ChartEmpty, fmt.Errorf("%w: node %q", ErrUnassignedTopic, sel.NodeID)
	}

	fig, err := charts.TopicSummary(c.topics, sel.TopicIndex, sel.Color)
	if err != nil {
		return charts.Empty(), ChartEmpty, err
	}
	return fig, ChartTopicSummary, nil
}
