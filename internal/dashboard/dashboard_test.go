package dashboard

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/topicmap/internal/assets"
	"github.com/ziadkadry99/topicmap/internal/assets/assetstest"
	"github.com/ziadkadry99/topicmap/internal/explorer"
	"github.com/ziadkadry99/topicmap/internal/graph"
)

func newTestRouter(t *testing.T, opts Options) http.Handler {
	t.Helper()
	dir := assetstest.Write(t, nil)
	a, err := assets.Load(assets.DefaultPaths(dir), assets.Options{})
	require.NoError(t, err)

	d, err := New(explorer.New(a), opts, nil)
	require.NoError(t, err)

	r := chi.NewRouter()
	d.RegisterRoutes(r)
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postSelect(t *testing.T, h http.Handler, ev explorer.Event) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(ev)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/select", bytes.NewReader(body))
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServeIndex(t *testing.T) {
	h := newTestRouter(t, Options{})
	rec := get(t, h, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Topic Explorer")
	assert.Contains(t, rec.Body.String(), "/ws/select")
	assert.Contains(t, rec.Body.String(), `selectionType: "single"`)
	assert.Contains(t, rec.Body.String(), "boxSelectionEnabled: false")
}

func TestElements(t *testing.T) {
	h := newTestRouter(t, Options{})

	rec := get(t, h, "/api/elements/network")
	require.Equal(t, http.StatusOK, rec.Code)
	var elems []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &elems))
	require.Len(t, elems, 5)
	assert.Equal(t, "nodes", elems[0]["group"])
	assert.Equal(t, "edges", elems[3]["group"])
	edge := elems[3]["data"].(map[string]any)
	assert.Equal(t, "data-design-0", edge["id"])

	rec = get(t, h, "/api/elements/scatter")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &elems))
	assert.Len(t, elems, 4)

	rec = get(t, h, "/api/elements/other")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStylesheets(t *testing.T) {
	h := newTestRouter(t, Options{})

	rec := get(t, h, "/api/stylesheets/scatter")
	require.Equal(t, http.StatusOK, rec.Code)
	var sheet graph.Stylesheet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sheet))
	assert.Len(t, sheet, len(graph.BaseScatterStylesheet()))

	rec = get(t, h, "/api/stylesheets/network")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sheet))
	assert.Len(t, sheet, len(graph.BaseNetworkStylesheet()))
}

func TestInitialChart(t *testing.T) {
	h := newTestRouter(t, Options{})
	rec := get(t, h, "/api/charts/initial")
	require.Equal(t, http.StatusOK, rec.Code)

	var fig struct {
		Data []struct {
			Marker struct {
				Color string `json:"color"`
			} `json:"marker"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fig))
	require.Len(t, fig.Data, 2)
	assert.Equal(t, "#1f77b4", fig.Data[0].Marker.Color)
}

func TestSelectScatterTopic(t *testing.T) {
	h := newTestRouter(t, Options{})
	rec := postSelect(t, h, explorer.Event{
		Source:  graph.SourceScatter,
		Scatter: []graph.ScatterNode{{ID: "d1", Filter: "Data Scientist", TopicIdx: 0, Color: "#123456", Text: "Builds models"}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var u explorer.Update
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, explorer.ChartTopicSummary, u.ChartKind)
	assert.Len(t, u.Stylesheet, len(graph.BaseScatterStylesheet())+2)
	require.NotNil(t, u.Detail)
	assert.Contains(t, u.Detail.HTML, "Subject: Data Scientist")
	require.NotNil(t, u.Selected)
	assert.Equal(t, "#123456", u.Selected.Color)
}

func TestSelectBackgroundNode(t *testing.T) {
	h := newTestRouter(t, Options{})
	rec := postSelect(t, h, explorer.Event{
		Source:  graph.SourceNetwork,
		Network: []graph.NetworkNode{{ID: "Designer", TopicIdx: -1, Color: "grey"}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var u explorer.Update
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, explorer.ChartFilterHistogram, u.ChartKind)
	assert.Len(t, u.Stylesheet, len(graph.BaseNetworkStylesheet())+4)
	assert.Nil(t, u.Detail)
}

func TestSelectErrors(t *testing.T) {
	h := newTestRouter(t, Options{})

	tests := []struct {
		name   string
		ev     explorer.Event
		status int
	}{
		{
			name:   "unassigned topic",
			ev:     explorer.Event{Source: graph.SourceScatter, Scatter: []graph.ScatterNode{{ID: "d3", TopicIdx: -2}}},
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "no source",
			ev:     explorer.Event{Scatter: []graph.ScatterNode{{ID: "d1"}}},
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "topic out of range",
			ev:     explorer.Event{Source: graph.SourceNetwork, Network: []graph.NetworkNode{{ID: "x", TopicIdx: 7}}},
			status: http.StatusNotFound,
		},
		{
			name:   "unknown subject",
			ev:     explorer.Event{Source: graph.SourceNetwork, Network: []graph.NetworkNode{{ID: "nobody", TopicIdx: -1}}},
			status: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postSelect(t, h, tt.ev)
			assert.Equal(t, tt.status, rec.Code)

			var u explorer.Update
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
			assert.NotEmpty(t, u.Error)
			assert.Equal(t, explorer.ChartEmpty, u.ChartKind)
		})
	}
}

func TestSelectRejectsBadPayload(t *testing.T) {
	h := newTestRouter(t, Options{})

	req := httptest.NewRequest(http.MethodPost, "/api/select", strings.NewReader(`{"source": "sideways"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/select", strings.NewReader(`not json`))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSelectRateLimited(t *testing.T) {
	h := newTestRouter(t, Options{RateLimitRPS: 0.001, RateLimitBurst: 1})
	ev := explorer.Event{Source: graph.SourceScatter}

	assert.Equal(t, http.StatusOK, postSelect(t, h, ev).Code)
	assert.Equal(t, http.StatusTooManyRequests, postSelect(t, h, ev).Code)
}

func TestTopics(t *testing.T) {
	h := newTestRouter(t, Options{})

	rec := get(t, h, "/api/topics?top=1")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []explorer.TopicInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, []string{"data"}, list[0].TopTokens)
	assert.Equal(t, "#ff7f0e", list[1].Color)

	assert.Equal(t, http.StatusBadRequest, get(t, h, "/api/topics?top=-1").Code)
}

func TestTopicCharts(t *testing.T) {
	h := newTestRouter(t, Options{})

	assert.Equal(t, http.StatusOK, get(t, h, "/api/topics/1/summary").Code)
	assert.Equal(t, http.StatusOK, get(t, h, "/api/topics/0/weights?color=red").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/api/topics/9/summary").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/api/topics/abc/weights").Code)
}

func TestFilterHistogram(t *testing.T) {
	h := newTestRouter(t, Options{})

	rec := get(t, h, "/api/filters")
	require.Equal(t, http.StatusOK, rec.Code)
	var filters []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filters))
	assert.Equal(t, []string{"Data Scientist", "Designer", "Sales/Ops"}, filters)

	rec = get(t, h, "/api/filters/histogram?filter="+url.QueryEscape("Sales/Ops"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "crm")

	assert.Equal(t, http.StatusNotFound, get(t, h, "/api/filters/histogram?filter=nobody").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/api/filters/histogram").Code)
}

func TestSVGEndpoints(t *testing.T) {
	h := newTestRouter(t, Options{SVGCacheSize: 8})

	for i := 0; i < 2; i++ {
		rec := get(t, h, "/api/topics/0/summary.svg?panel=subjects")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "<svg")
	}

	rec := get(t, h, "/api/filters/histogram.svg?filter="+url.QueryEscape("Data Scientist"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<svg")

	// Single-bar and equal-bar panels.
	for _, target := range []string{
		"/api/filters/histogram.svg?filter=Designer",
		"/api/topics/1/summary.svg?panel=tokens",
		"/api/topics/1/summary.svg?panel=subjects",
	} {
		rec := get(t, h, target)
		assert.Equal(t, http.StatusOK, rec.Code, target+": "+rec.Body.String())
	}

	assert.Equal(t, http.StatusBadRequest, get(t, h, "/api/topics/0/summary.svg?panel=left").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/api/topics/5/summary.svg").Code)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, statusFor(explorer.ErrNoSource))
	assert.Equal(t, http.StatusInternalServerError, statusFor(assert.AnError))
}

func TestWebSocketSelect(t *testing.T) {
	server := httptest.NewServer(newTestRouter(t, Options{}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/select"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(explorer.Event{
		Source:  graph.SourceNetwork,
		Network: []graph.NetworkNode{{ID: "data", TopicIdx: 0, Color: "#1f77b4"}},
		Scatter: []graph.ScatterNode{{ID: "d3", TopicIdx: -2}},
	}))

	var frame selectFrame
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, frameUpdate, frame.Type)
	assert.NotEmpty(t, frame.SessionID)
	require.NotNil(t, frame.Update)
	assert.Equal(t, explorer.ChartTopicSummary, frame.Update.ChartKind)
	sessionID := frame.SessionID

	require.NoError(t, conn.WriteJSON(explorer.Event{
		Source:  graph.SourceScatter,
		Scatter: []graph.ScatterNode{{ID: "d3", TopicIdx: -2}},
	}))
	frame = selectFrame{}
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, frameError, frame.Type)
	assert.Equal(t, sessionID, frame.SessionID)
	assert.Contains(t, frame.Error, "no assigned topic")
	require.NotNil(t, frame.Update)
	assert.Equal(t, explorer.ChartEmpty, frame.Update.ChartKind)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{")))
	frame = selectFrame{}
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, frameError, frame.Type)
	assert.Nil(t, frame.Update)
}
