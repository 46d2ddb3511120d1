package graph

import "fmt"

// Source names the view that emitted a selection event.
type Source string

const (
	SourceNone    Source = ""
	SourceScatter Source = "scatter"
	SourceNetwork Source = "network"
)

// ParseSource validates a source tag received from the page.
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceScatter, SourceNetwork:
		return Source(s), nil
	case SourceNone:
		return SourceNone, nil
	}
	return SourceNone, fmt.Errorf("unknown selection source %q", s)
}

// Resolved is the view-independent projection of a selected node.
type Resolved struct {
	TopicIndex int    `json:"topic_idx"`
	Color      string `json:"color"`
	NodeID     string `json:"node_id"`
}

// Selection is a single selected node of one view. The concrete type is
// either ScatterSelection or NetworkSelection.
type Selection interface {
	Source() Source
	Resolved() Resolved
}

// ScatterSelection is a selected document node.
type ScatterSelection struct {
	Node ScatterNode
}

func (ScatterSelection) Source() Source { return SourceScatter }

func (s ScatterSelection) Resolved() Resolved {
	return Resolved{TopicIndex: s.Node.TopicIdx, Color: s.Node.Color, NodeID: s.Node.ID}
}

// NetworkSelection is a selected token node.
type NetworkSelection struct {
	Node NetworkNode
}

func (NetworkSelection) Source() Source { return SourceNetwork }

func (s NetworkSelection) Resolved() Resolved {
	return Resolved{TopicIndex: s.Node.TopicIdx, Color: s.Node.Color, NodeID: s.Node.ID}
}

// SelectionFor picks the selection of the firing view. It returns nil when
// nothing fired or the firing view's selection is empty; the other view's
// payload is never consulted.
func SelectionFor(trigger Source, scatter []ScatterNode, network []NetworkNode) Selection {
	switch trigger {
	case SourceScatter:
		if len(scatter) == 0 {
			return nil
		}
		return ScatterSelection{Node: scatter[0]}
	case SourceNetwork:
		if len(network) == 0 {
			return nil
		}
		return NetworkSelection{Node: network[0]}
	}
	return nil
}

// Resolve extracts (topic, colour, node id) from the firing view's
// selection. ok is false when there is nothing to resolve.
func Resolve(trigger Source, scatter []ScatterNode, network []NetworkNode) (Resolved, bool) {
	sel := SelectionFor(trigger, scatter, network)
	if sel == nil {
		return Resolved{}, false
	}
	return sel.Resolved(), true
}
