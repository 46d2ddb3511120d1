package explorer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/ziadkadry99/topicmap/internal/graph"
)

// Placeholder is shown in the detail panel when no document is selected.
const Placeholder = "Click on a node to see its details here"

// Detail is the rendered content of the detail panel.
type Detail struct {
	Placeholder bool   `json:"placeholder"`
	Text        string `json:"text,omitempty"`
	HTML        string `json:"html,omitempty"`
}

// DetailPanel renders the selected document's profile.
type DetailPanel struct {
	md goldmark.Markdown
}

// NewDetailPanel creates a DetailPanel. Raw HTML in profiles is not passed
// through.
func NewDetailPanel() *DetailPanel {
	return &DetailPanel{
		md: goldmark.New(goldmark.WithExtensions(extension.Linkify)),
	}
}

// Render builds the panel for a scatter selection list.
func (p *DetailPanel) Render(selected []graph.ScatterNode) (Detail, error) {
	if len(selected) == 0 {
		return Detail{Placeholder: true, Text: Placeholder}, nil
	}
	node := selected[0]

	src := Markdown(node)
	var buf bytes.Buffer
	if err := p.md.Convert([]byte(src), &buf); err != nil {
		return Detail{}, fmt.Errorf("rendering detail for node %q: %w", node.ID, err)
	}
	return Detail{Text: src, HTML: buf.String()}, nil
}

// Markdown returns the panel source for a node: subject heading, one
// paragraph per profile line, then the bag-of-words heading.
func Markdown(node graph.ScatterNode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### Subject: %s\n\n", escapeMarkdown(node.Filter))
	for _, line := range strings.Split(node.Text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString(escapeMarkdown(line))
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "### Tokens: %s\n", escapeMarkdown(string(node.TokenBow)))
	return b.String()
}

// inlineSpecials start emphasis, code, links, raw HTML, entities or
// headings anywhere on a line.
const inlineSpecials = "\\`*_[]<>#|~!&"

// escapeMarkdown makes profile text render literally. Bare URLs are left
// intact so the Linkify extension can turn them into links.
func escapeMarkdown(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if isBareURL(w) {
			continue
		}
		words[i] = escapeInline(w)
	}
	return escapeLineStart(strings.Join(words, " "))
}

func isBareURL(w string) bool {
	for _, prefix := range []string{"https://", "http://", "www."} {
		if len(w) > len(prefix) && strings.HasPrefix(strings.ToLower(w), prefix) {
			return !strings.ContainsAny(w, "<>")
		}
	}
	return false
}

func escapeInline(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x80 && strings.ContainsRune(inlineSpecials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// escapeLineStart neutralises list, quote and thematic-break markers that
// only count at the start of a line.
func escapeLineStart(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '-', '+', '=':
		return "\\" + s
	}
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(s) && (s[digits] == '.' || s[digits] == ')') {
		return s[:digits] + "\\" + s[digits:]
	}
	return s
}
