package charts

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ziadkadry99/topicmap/internal/topics"
)

// ErrUnknownFilter is returned when a subject id has no token histogram.
var ErrUnknownFilter = errors.New("unknown filter")

// FilterColor is the fixed bar colour of subject histograms.
const FilterColor = "grey"

// Subplot x-domains of the two summary panels.
var (
	leftDomain  = []float64{0, 0.45}
	rightDomain = []float64{0.55, 1}
)

// Empty returns the figure shown when nothing is selected.
func Empty() Figure {
	return Figure{Data: []Trace{}}
}

// TokenWeightBar draws a topic's token weights as horizontal bars, the
// heaviest token on top.
func TokenWeightBar(set *topics.Set, topicIndex int, color string) (Figure, error) {
	t, err := set.Get(topicIndex)
	if err != nil {
		return Figure{}, err
	}

	labels := make([]string, len(t.Tokens))
	values := make([]float64, len(t.Tokens))
	for i, tw := range t.Tokens {
		labels[i] = tw.Token
		values[i] = tw.Weight
	}
	slices.Reverse(labels)
	slices.Reverse(values)

	return Figure{
		Data: []Trace{{
			Type:        "bar",
			Orientation: "h",
			Labels:      labels,
			Values:      values,
			MarkerColor: color,
		}},
		Layout: Layout{},
	}, nil
}

// TopicSummary draws two panels for a topic: token weights (scaled to
// percent) on the left and each subject's share of the topic on the right.
func TopicSummary(set *topics.Set, topicIndex int, color string) (Figure, error) {
	t, err := set.Get(topicIndex)
	if err != nil {
		return Figure{}, err
	}

	tokens := make([]string, len(t.Tokens))
	weights := make([]float64, len(t.Tokens))
	for i, tw := range t.Tokens {
		tokens[i] = tw.Token
		weights[i] = tw.Weight * 100
	}

	layout := baseLayout()
	layout.XAxis = &Axis{
		Title:     &AxisTitle{Text: fmt.Sprintf("Weight of tokens in topic %d", topicIndex)},
		Domain:    leftDomain,
		Anchor:    "y",
		TickAngle: floatPtr(-45),
		TickFont:  &Font{Size: 12},
	}
	layout.XAxis2 = &Axis{
		Title:     &AxisTitle{Text: fmt.Sprintf("Percentage of subjects in topic %d", topicIndex)},
		Domain:    rightDomain,
		Anchor:    "y2",
		TickAngle: floatPtr(-45),
		TickFont:  &Font{Size: 12},
	}
	layout.YAxis = &Axis{Title: &AxisTitle{Text: "Token weight", Standoff: 5}, Anchor: "x", AutoMargin: true}
	layout.YAxis2 = &Axis{Title: &AxisTitle{Text: "[%]", Standoff: 5}, Anchor: "x2", AutoMargin: true}

	return Figure{
		Data: []Trace{
			{Type: "bar", Labels: tokens, Values: weights, MarkerColor: color, XAxis: "x", YAxis: "y"},
			{Type: "bar", Labels: slices.Clone(t.FilterIndex), Values: t.SubjectShares(), MarkerColor: color, XAxis: "x2", YAxis: "y2"},
		},
		Layout: layout,
	}, nil
}

// FilterTokenHistogram draws the raw token counts of one subject. It backs
// the background topic, whose nodes are subjects rather than documents.
func FilterTokenHistogram(hist *topics.FilterHistogram, filterID string) (Figure, error) {
	counts, ok := hist.Get(filterID)
	if !ok {
		return Figure{}, fmt.Errorf("%w: %q", ErrUnknownFilter, filterID)
	}

	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	for i, c := range counts {
		labels[i] = c.Token
		values[i] = c.Count
	}

	layout := baseLayout()
	layout.XAxis = &Axis{Title: &AxisTitle{Text: "Tokens"}, TickAngle: floatPtr(-45), TickFont: &Font{Size: 12}}
	layout.YAxis = &Axis{Title: &AxisTitle{Text: "Token count", Standoff: 5}, AutoMargin: true}

	return Figure{
		Data:   []Trace{{Type: "bar", Labels: labels, Values: values, MarkerColor: FilterColor}},
		Layout: layout,
	}, nil
}

func baseLayout() Layout {
	return Layout{
		Height:      200,
		ShowLegend:  boolPtr(false),
		Margin:      &Margin{L: 75, R: 75, T: 25, B: 25},
		PlotBgColor: "white",
	}
}
