package dashboard

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/ziadkadry99/topicmap/internal/charts"
	"github.com/ziadkadry99/topicmap/internal/observability"
)

// Panels of the topic summary figure.
const (
	panelTokens   = "tokens"
	panelSubjects = "subjects"
)

func (d *Dashboard) handleTopicSummarySVG(w http.ResponseWriter, r *http.Request) {
	idx, err := topicIndex(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	panelName := r.URL.Query().Get("panel")
	if panelName == "" {
		panelName = panelTokens
	}
	var panel int
	switch panelName {
	case panelTokens:
		panel = 0
	case panelSubjects:
		panel = 1
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown panel %q", panelName))
		return
	}

	color := r.URL.Query().Get("color")
	key := fmt.Sprintf("topic/%d/%s/%s", idx, panelName, color)
	d.serveSVG(w, key, func() (charts.Figure, string, error) {
		fig, err := d.explorer.TopicSummary(idx, color)
		return fig, fmt.Sprintf("Topic %d: %s", idx, panelName), err
	}, panel)
}

func (d *Dashboard) handleFilterHistogramSVG(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	if filter == "" {
		writeError(w, http.StatusBadRequest, "filter is required")
		return
	}
	d.serveSVG(w, "filter/"+filter, func() (charts.Figure, string, error) {
		fig, err := d.explorer.FilterHistogram(filter)
		return fig, "Subject: " + filter, err
	}, 0)
}

// serveSVG renders one panel of a figure, consulting the LRU cache first.
// Figures are a pure function of the loaded assets, so entries never expire.
func (d *Dashboard) serveSVG(w http.ResponseWriter, key string, build func() (charts.Figure, string, error), panel int) {
	if d.svgCache != nil {
		if data, ok := d.svgCache.Get(key); ok {
			observability.SVGCacheLookups.WithLabelValues("hit").Inc()
			writeSVG(w, data)
			return
		}
		observability.SVGCacheLookups.WithLabelValues("miss").Inc()
	}

	fig, title, err := build()
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	var buf bytes.Buffer
	if err := charts.RenderSVG(&buf, fig, panel, title); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	data := buf.Bytes()
	if d.svgCache != nil {
		d.svgCache.Add(key, data)
	}
	writeSVG(w, data)
}

func writeSVG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
