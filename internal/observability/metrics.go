package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SelectionEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "topicmap_selection_events_total",
		Help: "Selection events received, by firing view and transport",
	}, []string{"source", "transport"})

	ChartsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "topicmap_charts_served_total",
		Help: "Charts returned for selection events, by kind",
	}, []string{"kind"})

	SelectionErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "topicmap_selection_errors_total",
		Help: "Selection events that ended in an error, by source",
	}, []string{"source"})

	WebsocketSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "topicmap_websocket_sessions",
		Help: "Open websocket selection sessions",
	})

	SVGCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "topicmap_svg_cache_lookups_total",
		Help: "Rendered SVG cache lookups, by result",
	}, []string{"result"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "topicmap_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern and status",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "status"})
)
