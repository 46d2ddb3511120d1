// Package graph models the two Cytoscape views of the explorer: the
// document scatter graph and the token network graph, their stylesheets
// and the node selections they emit.
package graph

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Position is a preset layout coordinate computed upstream.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BagOfWords is a node's token bag-of-words. Upstream writes it either as
// a preformatted string or as a JSON list of tokens.
type BagOfWords string

func (b *BagOfWords) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = BagOfWords(s)
		return nil
	}
	var list []any
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("token_bow must be a string or a list: %w", err)
	}
	parts := make([]string, len(list))
	for i, v := range list {
		parts[i] = fmt.Sprint(v)
	}
	*b = BagOfWords("[" + strings.Join(parts, ", ") + "]")
	return nil
}

// ScatterNode is the data payload of a document node in the scatter view.
type ScatterNode struct {
	ID       string     `json:"id"`
	Filter   string     `json:"filter"`
	TopicIdx int        `json:"topic_idx"`
	Color    string     `json:"color"`
	Text     string     `json:"text"`
	TokenBow BagOfWords `json:"token_bow"`
	NodeSize float64    `json:"node_size"`
}

// NetworkNode is the data payload of a token node in the network view.
type NetworkNode struct {
	ID       string  `json:"id"`
	TopicIdx int     `json:"topic_idx"`
	Color    string  `json:"color"`
	Name     string  `json:"name"`
	NodeSize float64 `json:"node_size"`
}

// NetworkEdge links two token nodes; EdgeWeight drives the drawn width.
type NetworkEdge struct {
	ID         string  `json:"id,omitempty"`
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	EdgeWeight float64 `json:"edge_weight"`
}

// Element is one entry of a Cytoscape elements array.
type Element struct {
	Group    string    `json:"group"`
	Data     any       `json:"data"`
	Position *Position `json:"position,omitempty"`
}

// ScatterElement is a scatter node with its preset position.
type ScatterElement struct {
	Data     ScatterNode `json:"data"`
	Position *Position   `json:"position,omitempty"`
}

// NetworkNodeElement is a network node with its preset position.
type NetworkNodeElement struct {
	Data     NetworkNode `json:"data"`
	Position *Position   `json:"position,omitempty"`
}

// ScatterGraph is the static element list of the scatter view.
type ScatterGraph struct {
	Nodes []ScatterElement
}

// Elements converts the graph to Cytoscape's elements format.
func (g *ScatterGraph) Elements() []Element {
	out := make([]Element, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		out = append(out, Element{Group: "nodes", Data: n.Data, Position: n.Position})
	}
	return out
}

// NetworkGraph is the static element list of the token network view.
type NetworkGraph struct {
	Nodes []NetworkNodeElement
	Edges []NetworkEdge
}

// Elements converts the graph to Cytoscape's elements format. Edges
// without an id get a positional one so Cytoscape accepts duplicates.
func (g *NetworkGraph) Elements() []Element {
	out := make([]Element, 0, len(g.Nodes)+len(g.Edges))
	for _, n := range g.Nodes {
		out = append(out, Element{Group: "nodes", Data: n.Data, Position: n.Position})
	}
	for i, e := range g.Edges {
		if e.ID == "" {
			e.ID = edgeID(e.Source, e.Target, i)
		}
		out = append(out, Element{Group: "edges", Data: e})
	}
	return out
}

func edgeID(source, target string, index int) string {
	return fmt.Sprintf("%s-%s-%d", source, target, index)
}
