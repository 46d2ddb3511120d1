// Package assets loads the static files produced by the topic-modelling
// pipeline into one immutable value. Loading is all-or-nothing.
package assets

import (
	"fmt"
	"path/filepath"

	"github.com/ziadkadry99/topicmap/internal/graph"
	"github.com/ziadkadry99/topicmap/internal/topics"
)

// Default file names inside the data directory.
const (
	TopicsFile     = "topics.json"
	ScatterFile    = "topic_elm_list.json"
	NetworkFile    = "token_network_elm_list.json"
	FilterHistFile = "filter_token_hist.json"
	PaletteFile    = "topic_color.txt"
)

// Paths locates each asset file.
type Paths struct {
	Topics     string
	Scatter    string
	Network    string
	FilterHist string
	Palette    string
}

// DefaultPaths returns the conventional file names under dir.
func DefaultPaths(dir string) Paths {
	return Paths{
		Topics:     filepath.Join(dir, TopicsFile),
		Scatter:    filepath.Join(dir, ScatterFile),
		Network:    filepath.Join(dir, NetworkFile),
		FilterHist: filepath.Join(dir, FilterHistFile),
		Palette:    filepath.Join(dir, PaletteFile),
	}
}

// Options tunes how assets are interpreted.
type Options struct {
	BackgroundColor string
	UnassignedColor string
}

// Assets is everything the explorer reads at interaction time.
type Assets struct {
	Topics     *topics.Set
	Scatter    *graph.ScatterGraph
	Network    *graph.NetworkGraph
	FilterHist *topics.FilterHistogram
	Palette    *topics.Palette
}

// Load reads and cross-validates all assets. Any failure aborts the load.
func Load(paths Paths, opts Options) (*Assets, error) {
	set, err := loadTopics(paths.Topics)
	if err != nil {
		return nil, fmt.Errorf("loading topics from %s: %w", paths.Topics, err)
	}

	colors, err := loadPalette(paths.Palette)
	if err != nil {
		return nil, fmt.Errorf("loading palette from %s: %w", paths.Palette, err)
	}
	if len(colors) < set.Len() {
		return nil, fmt.Errorf("palette %s defines %d colours for %d topics", paths.Palette, len(colors), set.Len())
	}
	palette := topics.NewPalette(colors, opts.BackgroundColor, opts.UnassignedColor)

	hist, err := loadFilterHistogram(paths.FilterHist)
	if err != nil {
		return nil, fmt.Errorf("loading filter histogram from %s: %w", paths.FilterHist, err)
	}

	scatter, err := loadScatter(paths.Scatter)
	if err != nil {
		return nil, fmt.Errorf("loading scatter elements from %s: %w", paths.Scatter, err)
	}

	network, err := loadNetwork(paths.Network)
	if err != nil {
		return nil, fmt.Errorf("loading network elements from %s: %w", paths.Network, err)
	}

	a := &Assets{
		Topics:     set,
		Scatter:    scatter,
		Network:    network,
		FilterHist: hist,
		Palette:    palette,
	}
	if err := a.resolveAndValidate(); err != nil {
		return nil, err
	}
	return a, nil
}

// resolveAndValidate fills empty node colours from the palette and checks
// that every node's topic index is a sentinel or a loaded topic.
func (a *Assets) resolveAndValidate() error {
	checkTopic := func(view, id string, idx int) error {
		if topics.IsSentinel(idx) || a.Topics.Has(idx) {
			return nil
		}
		return fmt.Errorf("%s node %q: %w: %d", view, id, topics.ErrIndexOutOfRange, idx)
	}

	seen := make(map[string]bool, len(a.Scatter.Nodes))
	for i := range a.Scatter.Nodes {
		n := &a.Scatter.Nodes[i].Data
		if seen[n.ID] {
			return fmt.Errorf("scatter node %q: duplicate id", n.ID)
		}
		seen[n.ID] = true
		if err := checkTopic("scatter", n.ID, n.TopicIdx); err != nil {
			return err
		}
		if n.Color == "" {
			n.Color, _ = a.Palette.Color(n.TopicIdx)
		}
	}

	seen = make(map[string]bool, len(a.Network.Nodes))
	for i := range a.Network.Nodes {
		n := &a.Network.Nodes[i].Data
		if seen[n.ID] {
			return fmt.Errorf("network node %q: duplicate id", n.ID)
		}
		seen[n.ID] = true
		if err := checkTopic("network", n.ID, n.TopicIdx); err != nil {
			return err
		}
		if n.Color == "" {
			n.Color, _ = a.Palette.Color(n.TopicIdx)
		}
	}

	for i, e := range a.Network.Edges {
		if !seen[e.Source] || !seen[e.Target] {
			return fmt.Errorf("network edge %d (%s -> %s): endpoint is not a network node", i, e.Source, e.Target)
		}
	}
	return nil
}

// Summary is a count of loaded items, used for startup logs and `check`.
type Summary struct {
	Topics       int `json:"topics"`
	ScatterNodes int `json:"scatter_nodes"`
	NetworkNodes int `json:"network_nodes"`
	NetworkEdges int `json:"network_edges"`
	Filters      int `json:"filters"`
	Colors       int `json:"colors"`
}

// Summary reports how much was loaded.
func (a *Assets) Summary() Summary {
	return Summary{
		Topics:       a.Topics.Len(),
		ScatterNodes: len(a.Scatter.Nodes),
		NetworkNodes: len(a.Network.Nodes),
		NetworkEdges: len(a.Network.Edges),
		Filters:      a.FilterHist.Len(),
		Colors:       a.Palette.Len(),
	}
}
