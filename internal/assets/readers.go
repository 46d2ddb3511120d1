package assets

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ziadkadry99/topicmap/internal/graph"
	"github.com/ziadkadry99/topicmap/internal/topics"
)

// rawTopic mirrors one entry of topics.json.
type rawTopic struct {
	WeightToken []string  `json:"weight_token"`
	FilterIndex []string  `json:"filter_index"`
	FilterValue []float64 `json:"filter_value"`
}

func loadTopics(path string) (*topics.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]rawTopic
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}

	list := make([]topics.Topic, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		rt, ok := raw[strconv.Itoa(i)]
		if !ok {
			return nil, fmt.Errorf("topic %d missing: keys must be 0..%d", i, len(raw)-1)
		}
		tokens, err := topics.ParseWeightTokens(rt.WeightToken)
		if err != nil {
			return nil, fmt.Errorf("topic %d: %w", i, err)
		}
		list = append(list, topics.Topic{
			Index:       i,
			Tokens:      tokens,
			FilterIndex: rt.FilterIndex,
			FilterValue: rt.FilterValue,
		})
	}
	return topics.NewSet(list)
}

func loadPalette(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var colors []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		colors = append(colors, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	// A trailing blank line is not a colour.
	for len(colors) > 0 && strings.TrimSpace(colors[len(colors)-1]) == "" {
		colors = colors[:len(colors)-1]
	}
	for i, c := range colors {
		if strings.TrimSpace(c) == "" {
			return nil, fmt.Errorf("line %d: empty colour", i+1)
		}
	}
	return colors, nil
}

// loadFilterHistogram streams the file so token order inside each subject
// survives; a Go map would lose it.
func loadFilterHistogram(path string) (*topics.FilterHistogram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeFilterHistogram(f)
}

func decodeFilterHistogram(r io.Reader) (*topics.FilterHistogram, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var b topics.FilterHistogramBuilder
	for dec.More() {
		filter, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		if err := expectDelim(dec, '{'); err != nil {
			return nil, fmt.Errorf("filter %q: %w", filter, err)
		}
		var counts []topics.TokenCount
		for dec.More() {
			token, err := readKey(dec)
			if err != nil {
				return nil, fmt.Errorf("filter %q: %w", filter, err)
			}
			var n float64
			if err := dec.Decode(&n); err != nil {
				return nil, fmt.Errorf("filter %q token %q: %w", filter, token, err)
			}
			counts = append(counts, topics.TokenCount{Token: token, Count: n})
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, fmt.Errorf("filter %q: %w", filter, err)
		}
		b.Add(filter, counts)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("decoding: expected %q, got %v", want, tok)
	}
	return nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("decoding: %w", err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("decoding: expected object key, got %v", tok)
	}
	return key, nil
}

// elementFile is the {"elm_list": [...]} wrapper of both element files.
type elementFile struct {
	ElmList []rawElement `json:"elm_list"`
}

type rawElement struct {
	Group    string          `json:"group,omitempty"`
	Data     json.RawMessage `json:"data"`
	Position *graph.Position `json:"position,omitempty"`
}

func readElements(path string) ([]rawElement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ef elementFile
	if err := json.Unmarshal(data, &ef); err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	if ef.ElmList == nil {
		return nil, errors.New(`missing "elm_list"`)
	}
	return ef.ElmList, nil
}

// topicField detects a missing topic_idx, which would otherwise decode as 0.
type topicField struct {
	TopicIdx *int `json:"topic_idx"`
}

func requireTopic(data json.RawMessage) error {
	var tf topicField
	if err := json.Unmarshal(data, &tf); err != nil {
		return err
	}
	if tf.TopicIdx == nil {
		return errors.New("missing topic_idx")
	}
	return nil
}

func loadScatter(path string) (*graph.ScatterGraph, error) {
	elems, err := readElements(path)
	if err != nil {
		return nil, err
	}
	g := &graph.ScatterGraph{Nodes: make([]graph.ScatterElement, 0, len(elems))}
	for i, e := range elems {
		var n graph.ScatterNode
		if err := json.Unmarshal(e.Data, &n); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if n.ID == "" {
			return nil, fmt.Errorf("element %d: missing id", i)
		}
		if err := requireTopic(e.Data); err != nil {
			return nil, fmt.Errorf("element %d (%s): %w", i, n.ID, err)
		}
		g.Nodes = append(g.Nodes, graph.ScatterElement{Data: n, Position: e.Position})
	}
	return g, nil
}

// edgeProbe tells edges from nodes in the mixed network element list.
type edgeProbe struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

func loadNetwork(path string) (*graph.NetworkGraph, error) {
	elems, err := readElements(path)
	if err != nil {
		return nil, err
	}
	g := &graph.NetworkGraph{}
	for i, e := range elems {
		var probe edgeProbe
		if err := json.Unmarshal(e.Data, &probe); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		if e.Group == "edges" || probe.Source != "" || probe.Target != "" {
			var edge graph.NetworkEdge
			if err := json.Unmarshal(e.Data, &edge); err != nil {
				return nil, fmt.Errorf("edge element %d: %w", i, err)
			}
			if edge.Source == "" || edge.Target == "" {
				return nil, fmt.Errorf("edge element %d: source and target are required", i)
			}
			g.Edges = append(g.Edges, edge)
			continue
		}

		var n graph.NetworkNode
		if err := json.Unmarshal(e.Data, &n); err != nil {
			return nil, fmt.Errorf("node element %d: %w", i, err)
		}
		if n.ID == "" {
			return nil, fmt.Errorf("node element %d: missing id", i)
		}
		if err := requireTopic(e.Data); err != nil {
			return nil, fmt.Errorf("node element %d (%s): %w", i, n.ID, err)
		}
		g.Nodes = append(g.Nodes, graph.NetworkNodeElement{Data: n, Position: e.Position})
	}
	return g, nil
}
