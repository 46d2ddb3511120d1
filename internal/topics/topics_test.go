package topics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeightToken(t *testing.T) {
	tests := []struct {
		entry string
		want  TokenWeight
	}{
		{`0.052*"python"`, TokenWeight{Token: "python", Weight: 0.052}},
		{` 0.1 * "machine learning" `, TokenWeight{Token: "machine learning", Weight: 0.1}},
		{`1e-3*"c++"`, TokenWeight{Token: "c++", Weight: 0.001}},
		{`0.2*a*b`, TokenWeight{Token: "a*b", Weight: 0.2}},
		{`0.3*""`, TokenWeight{Token: "", Weight: 0.3}},
	}
	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			got, err := ParseWeightToken(tt.entry)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Token, got.Token)
			assert.InDelta(t, tt.want.Weight, got.Weight, 1e-12)
		})
	}
}

func TestParseWeightTokenErrors(t *testing.T) {
	for _, entry := range []string{`python`, `abc*"python"`, `*"python"`, ``} {
		_, err := ParseWeightToken(entry)
		require.Error(t, err, entry)
		assert.True(t, errors.Is(err, ErrParse), entry)

		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, -1, pe.Index)
	}
}

func TestParseWeightTokensKeepsOrder(t *testing.T) {
	got, err := ParseWeightTokens([]string{`0.5*"b"`, `0.3*"a"`, `0.2*"c"`})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].Token)
	assert.Equal(t, "a", got[1].Token)
	assert.Equal(t, "c", got[2].Token)

	_, err = ParseWeightTokens([]string{`0.5*"b"`, `bad`})
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Index)
	assert.Contains(t, err.Error(), "entry 1")
}

func TestSubjectShares(t *testing.T) {
	topic := Topic{FilterIndex: []string{"a", "b", "c"}, FilterValue: []float64{2, 1, 1}}
	shares := topic.SubjectShares()
	assert.InDeltaSlice(t, []float64{50, 25, 25}, shares, 1e-9)

	var sum float64
	for _, s := range shares {
		sum += s
	}
	assert.InDelta(t, 100, sum, 1e-9)
}

func TestSubjectSharesZeroTotal(t *testing.T) {
	topic := Topic{FilterIndex: []string{"a", "b"}, FilterValue: []float64{0, 0}}
	assert.Equal(t, []float64{0, 0}, topic.SubjectShares())
	assert.Empty(t, Topic{}.SubjectShares())
}

func TestTopTokens(t *testing.T) {
	topic := Topic{Tokens: []TokenWeight{{"a", 0.5}, {"b", 0.3}, {"c", 0.2}}}
	assert.Len(t, topic.TopTokens(2), 2)
	assert.Len(t, topic.TopTokens(10), 3)
	assert.Len(t, topic.TopTokens(-1), 3)
	assert.Empty(t, topic.TopTokens(0))
}

func TestSet(t *testing.T) {
	set, err := NewSet([]Topic{{Index: 0}, {Index: 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Has(1))
	assert.False(t, set.Has(2))
	assert.False(t, set.Has(Background))

	_, err = set.Get(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = set.Get(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = NewSet([]Topic{{Index: 1}})
	assert.Error(t, err)

	_, err = NewSet([]Topic{{Index: 0, FilterIndex: []string{"a"}}})
	assert.Error(t, err)
}

func TestPalette(t *testing.T) {
	p := NewPalette([]string{"#111111", "#222222"}, "", "")
	assert.Equal(t, 2, p.Len())

	c, ok := p.Color(1)
	assert.True(t, ok)
	assert.Equal(t, "#222222", c)

	c, _ = p.Color(Background)
	assert.Equal(t, DefaultBackgroundColor, c)
	c, _ = p.Color(Unassigned)
	assert.Equal(t, DefaultUnassignedColor, c)

	_, ok = p.Color(2)
	assert.False(t, ok)

	p = NewPalette(nil, "black", "pink")
	c, _ = p.Color(Background)
	assert.Equal(t, "black", c)
	c, _ = p.Color(Unassigned)
	assert.Equal(t, "pink", c)
}

func TestFilterHistogram(t *testing.T) {
	var b FilterHistogramBuilder
	b.Add("Engineer", []TokenCount{{"go", 3}, {"sql", 1}})
	b.Add("Analyst", []TokenCount{{"excel", 2}})
	b.Add("Engineer", []TokenCount{{"rust", 5}})
	h := b.Build()

	assert.Equal(t, []string{"Engineer", "Analyst"}, h.Filters())
	assert.Equal(t, 2, h.Len())

	counts, ok := h.Get("Engineer")
	require.True(t, ok)
	assert.Equal(t, []TokenCount{{"rust", 5}}, counts)

	_, ok = h.Get("Nobody")
	assert.False(t, ok)

	var empty FilterHistogramBuilder
	assert.Equal(t, 0, empty.Build().Len())
}
