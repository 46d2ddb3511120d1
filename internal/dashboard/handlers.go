package dashboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/topicmap/internal/charts"
	"github.com/ziadkadry99/topicmap/internal/explorer"
	"github.com/ziadkadry99/topicmap/internal/graph"
	"github.com/ziadkadry99/topicmap/internal/observability"
	"github.com/ziadkadry99/topicmap/internal/topics"
)

const (
	defaultTopTokens = 10
	maxEventBytes    = 1 << 20
)

// writeJSON is a helper to write JSON responses.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, topics.ErrIndexOutOfRange), errors.Is(err, charts.ErrUnknownFilter):
		return http.StatusNotFound
	case errors.Is(err, explorer.ErrUnassignedTopic), errors.Is(err, explorer.ErrNoSource):
		return http.StatusUnprocessableEntity
	case errors.Is(err, charts.ErrNoPanel):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (d *Dashboard) handleElements(w http.ResponseWriter, r *http.Request) {
	a := d.explorer.Assets()
	switch graph.Source(chi.URLParam(r, "view")) {
	case graph.SourceScatter:
		writeJSON(w, http.StatusOK, a.Scatter.Elements())
	case graph.SourceNetwork:
		writeJSON(w, http.StatusOK, a.Network.Elements())
	default:
		writeError(w, http.StatusNotFound, "unknown view")
	}
}

func (d *Dashboard) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	switch graph.Source(chi.URLParam(r, "view")) {
	case graph.SourceScatter:
		writeJSON(w, http.StatusOK, graph.BaseScatterStylesheet())
	case graph.SourceNetwork:
		writeJSON(w, http.StatusOK, graph.BaseNetworkStylesheet())
	default:
		writeError(w, http.StatusNotFound, "unknown view")
	}
}

func (d *Dashboard) handleInitialChart(w http.ResponseWriter, r *http.Request) {
	fig, err := d.explorer.InitialChart()
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, fig)
}

// decodeEvent reads a selection event and rejects unknown source tags.
func decodeEvent(data []byte) (explorer.Event, error) {
	var ev explorer.Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return ev, fmt.Errorf("invalid event: %w", err)
	}
	src, err := graph.ParseSource(string(ev.Source))
	if err != nil {
		return ev, err
	}
	ev.Source = src
	return ev, nil
}

// handle runs one event through the explorer and records metrics.
func (d *Dashboard) handle(ev explorer.Event, transport string) (explorer.Update, error) {
	observability.SelectionEvents.WithLabelValues(string(ev.Source), transport).Inc()

	u, err := d.explorer.Handle(ev)
	if err != nil {
		observability.SelectionErrors.WithLabelValues(string(ev.Source)).Inc()
		d.logger.Warn().Err(err).Str("source", string(ev.Source)).Str("transport", transport).Msg("selection failed")
		return u, err
	}
	observability.ChartsServed.WithLabelValues(string(u.ChartKind)).Inc()
	return u, nil
}

func (d *Dashboard) handleSelect(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(http.MaxBytesReader(w, r.Body, maxEventBytes)); err != nil {
		writeError(w, http.StatusBadRequest, "reading event: "+err.Error())
		return
	}
	ev, err := decodeEvent(buf.Bytes())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := d.handle(ev, "http")
	if err != nil {
		writeJSON(w, statusFor(err), u)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (d *Dashboard) handleTopics(w http.ResponseWriter, r *http.Request) {
	n := defaultTopTokens
	if v := r.URL.Query().Get("top"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "top must be a non-negative integer")
			return
		}
		n = parsed
	}
	writeJSON(w, http.StatusOK, d.explorer.Topics(n))
}

// topicIndex parses the {idx} path parameter.
func topicIndex(r *http.Request) (int, error) {
	idx, err := strconv.Atoi(chi.URLParam(r, "idx"))
	if err != nil {
		return 0, fmt.Errorf("invalid topic index %q", chi.URLParam(r, "idx"))
	}
	return idx, nil
}

func (d *Dashboard) handleTopicSummary(w http.ResponseWriter, r *http.Request) {
	idx, err := topicIndex(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	fig, err := d.explorer.TopicSummary(idx, r.URL.Query().Get("color"))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, fig)
}

func (d *Dashboard) handleTokenWeights(w http.ResponseWriter, r *http.Request) {
	idx, err := topicIndex(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	fig, err := d.explorer.TokenWeights(idx, r.URL.Query().Get("color"))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, fig)
}

func (d *Dashboard) handleFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.explorer.Assets().FilterHist.Filters())
}

func (d *Dashboard) handleFilterHistogram(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	if filter == "" {
		writeError(w, http.StatusBadRequest, "filter is required")
		return
	}
	fig, err := d.explorer.FilterHistogram(filter)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, fig)
}
