// Package topics holds the LDA topic model as loaded from upstream assets:
// weighted tokens per topic, per-topic subject counts and the topic colour
// palette.
package topics

import (
	"errors"
	"fmt"
)

// Sentinel topic indices used by the graph element lists.
const (
	// Background marks nodes outside every topic. Selecting one shows the
	// token histogram of its subject instead of a topic summary.
	Background = -1

	// Unassigned marks nodes the upstream pipeline never classified.
	Unassigned = -2
)

// ErrIndexOutOfRange is returned when a topic index is not in the loaded set.
var ErrIndexOutOfRange = errors.New("topic index out of range")

// IsSentinel reports whether idx is one of the reserved negative indices.
func IsSentinel(idx int) bool {
	return idx == Background || idx == Unassigned
}

// TokenWeight is one token of a topic with its weight.
type TokenWeight struct {
	Token  string  `json:"token"`
	Weight float64 `json:"weight"`
}

// Topic is a single LDA topic.
type Topic struct {
	Index int `json:"index"`

	// Tokens keep the upstream order, which is descending weight.
	Tokens []TokenWeight `json:"tokens"`

	// FilterIndex and FilterValue are aligned by position: subject id and
	// the number of its documents assigned to this topic.
	FilterIndex []string  `json:"filter_index"`
	FilterValue []float64 `json:"filter_value"`
}

// SubjectShares returns each subject's percentage of the topic's total
// subject count. A topic with a zero total yields all-zero shares.
func (t Topic) SubjectShares() []float64 {
	shares := make([]float64, len(t.FilterValue))
	var total float64
	for _, v := range t.FilterValue {
		total += v
	}
	if total == 0 {
		return shares
	}
	for i, v := range t.FilterValue {
		shares[i] = v / total * 100
	}
	return shares
}

// TopTokens returns at most n leading tokens.
func (t Topic) TopTokens(n int) []TokenWeight {
	if n < 0 || n >= len(t.Tokens) {
		return t.Tokens
	}
	return t.Tokens[:n]
}

// Set is the dense, immutable list of topics indexed 0..Len()-1.
type Set struct {
	topics []Topic
}

// NewSet builds a Set. Topic i must carry Index i.
func NewSet(list []Topic) (*Set, error) {
	for i, t := range list {
		if t.Index != i {
			return nil, fmt.Errorf("topic at position %d has index %d", i, t.Index)
		}
		if len(t.FilterIndex) != len(t.FilterValue) {
			return nil, fmt.Errorf("topic %d: filter_index has %d entries, filter_value has %d",
				i, len(t.FilterIndex), len(t.FilterValue))
		}
	}
	cp := make([]Topic, len(list))
	copy(cp, list)
	return &Set{topics: cp}, nil
}

// Len returns the number of topics.
func (s *Set) Len() int { return len(s.topics) }

// Has reports whether idx addresses a loaded topic.
func (s *Set) Has(idx int) bool {
	return idx >= 0 && idx < len(s.topics)
}

// Get returns the topic at idx.
func (s *Set) Get(idx int) (Topic, error) {
	if !s.Has(idx) {
		return Topic{}, fmt.Errorf("%w: %d (have %d topics)", ErrIndexOutOfRange, idx, len(s.topics))
	}
	return s.topics[idx], nil
}

// All returns the topics in index order. Callers must not modify the result.
func (s *Set) All() []Topic { return s.topics }
