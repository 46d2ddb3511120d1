package topics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse is the sentinel wrapped by every ParseError.
var ErrParse = errors.New("malformed weight*token entry")

// ParseError reports a weight*token entry that could not be parsed.
type ParseError struct {
	Entry  string
	Index  int // position of the entry in its list, -1 when parsed alone
	Reason string
}

func (e *ParseError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("entry %d %q: %s", e.Index, e.Entry, e.Reason)
	}
	return fmt.Sprintf("entry %q: %s", e.Entry, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// ParseWeightToken parses one `0.052*"token"` entry as written by gensim's
// print_topics. It splits on the first '*'.
func ParseWeightToken(entry string) (TokenWeight, error) {
	return parseWeightToken(entry, -1)
}

func parseWeightToken(entry string, idx int) (TokenWeight, error) {
	weightPart, tokenPart, ok := strings.Cut(entry, "*")
	if !ok {
		return TokenWeight{}, &ParseError{Entry: entry, Index: idx, Reason: "missing '*' separator"}
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(weightPart), 64)
	if err != nil {
		return TokenWeight{}, &ParseError{Entry: entry, Index: idx, Reason: fmt.Sprintf("weight %q is not a number", weightPart)}
	}

	token := strings.TrimSpace(strings.ReplaceAll(tokenPart, `"`, ""))
	return TokenWeight{Token: token, Weight: weight}, nil
}

// ParseWeightTokens parses a topic's entries in order.
func ParseWeightTokens(entries []string) ([]TokenWeight, error) {
	out := make([]TokenWeight, 0, len(entries))
	for i, e := range entries {
		tw, err := parseWeightToken(e, i)
		if err != nil {
			return nil, err
		}
		out = append(out, tw)
	}
	return out, nil
}
