package topics

// TokenCount is a token's raw occurrence count within one subject.
type TokenCount struct {
	Token string  `json:"token"`
	Count float64 `json:"count"`
}

// FilterHistogram maps subject (filter) ids to their token counts. Token
// order within a subject is the upstream file order.
type FilterHistogram struct {
	order  []string
	counts map[string][]TokenCount
}

// FilterHistogramBuilder accumulates subjects in insertion order.
type FilterHistogramBuilder struct {
	h FilterHistogram
}

// Add appends a subject. A repeated id replaces the earlier counts but
// keeps its original position.
func (b *FilterHistogramBuilder) Add(filter string, counts []TokenCount) {
	if b.h.counts == nil {
		b.h.counts = make(map[string][]TokenCount)
	}
	if _, ok := b.h.counts[filter]; !ok {
		b.h.order = append(b.h.order, filter)
	}
	cp := make([]TokenCount, len(counts))
	copy(cp, counts)
	b.h.counts[filter] = cp
}

// Build returns the finished histogram; the builder must not be reused.
func (b *FilterHistogramBuilder) Build() *FilterHistogram {
	h := b.h
	if h.counts == nil {
		h.counts = make(map[string][]TokenCount)
	}
	return &h
}

// Get returns the token counts of a subject.
func (h *FilterHistogram) Get(filter string) ([]TokenCount, bool) {
	c, ok := h.counts[filter]
	return c, ok
}

// Filters returns subject ids in file order.
func (h *FilterHistogram) Filters() []string { return h.order }

// Len returns the number of subjects.
func (h *FilterHistogram) Len() int { return len(h.order) }
