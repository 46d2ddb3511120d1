package topics

// Reserved colours for the sentinel indices.
const (
	DefaultBackgroundColor = "grey"
	DefaultUnassignedColor = "white"
)

// Palette maps topic indices, sentinels included, to display colours.
type Palette struct {
	colors     []string
	background string
	unassigned string
}

// NewPalette builds a palette from per-topic colours (line order of
// topic_color.txt). Empty sentinel colours fall back to the defaults.
func NewPalette(colors []string, background, unassigned string) *Palette {
	if background == "" {
		background = DefaultBackgroundColor
	}
	if unassigned == "" {
		unassigned = DefaultUnassignedColor
	}
	cp := make([]string, len(colors))
	copy(cp, colors)
	return &Palette{colors: cp, background: background, unassigned: unassigned}
}

// Color returns the colour for idx and whether the palette defines it.
func (p *Palette) Color(idx int) (string, bool) {
	switch {
	case idx == Background:
		return p.background, true
	case idx == Unassigned:
		return p.unassigned, true
	case idx >= 0 && idx < len(p.colors):
		return p.colors[idx], true
	}
	return "", false
}

// Len returns the number of topic colours, sentinels excluded.
func (p *Palette) Len() int { return len(p.colors) }
