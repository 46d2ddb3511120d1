package graph

import (
	"maps"
	"strconv"
	"strings"
)

// Style is one rule's property map, e.g. {"opacity": 0.5}.
type Style map[string]any

// Rule is a Cytoscape stylesheet entry.
type Rule struct {
	Selector string `json:"selector"`
	Style    Style  `json:"style"`
}

// Stylesheet is an ordered rule list; later rules win.
type Stylesheet []Rule

// Clone returns a copy sharing no maps with s.
func (s Stylesheet) Clone() Stylesheet {
	out := make(Stylesheet, len(s))
	for i, r := range s {
		out[i] = Rule{Selector: r.Selector, Style: maps.Clone(r.Style)}
	}
	return out
}

var baseScatterStylesheet = Stylesheet{
	{
		Selector: "node",
		Style: Style{
			"width":            0.5,
			"height":           0.5,
			"background-color": "data(color)",
			"opacity":          0.5,
			"font-size":        "1px",
		},
	},
}

var baseNetworkStylesheet = Stylesheet{
	{
		Selector: "node",
		Style: Style{
			"width":            "data(node_size)",
			"height":           "data(node_size)",
			"background-color": "data(color)",
			"border-color":     "black",
			"border-opacity":   "1",
			"border-width":     0.1,
			"label":            "data(name)",
			"opacity":          0.35,
			"font-size":        1,
		},
	},
	{
		Selector: "edge",
		Style: Style{
			"curve-style": "bezier",
			"width":       "data(edge_weight)",
			"opacity":     0.25,
		},
	},
}

// BaseScatterStylesheet returns a fresh copy of the scatter view's base rules.
func BaseScatterStylesheet() Stylesheet { return baseScatterStylesheet.Clone() }

// BaseNetworkStylesheet returns a fresh copy of the network view's base rules.
func BaseNetworkStylesheet() Stylesheet { return baseNetworkStylesheet.Clone() }

// quoteSelectorValue renders s as a double-quoted selector literal.
func quoteSelectorValue(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

func nodeIDSelector(id string) string {
	return "node[id = " + quoteSelectorValue(id) + "]"
}

func topicSelector(topic int) string {
	return "node[topic_idx = " + strconv.Itoa(topic) + "]"
}

func edgeSourceSelector(id string) string {
	return "edge[source = " + quoteSelectorValue(id) + "]"
}

func edgeTargetSelector(id string) string {
	return "edge[target = " + quoteSelectorValue(id) + "]"
}
