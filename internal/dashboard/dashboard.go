package dashboard

import (
	"fmt"

	"github.com/go-chi/chi/v5"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/topicmap/internal/explorer"
)

// Options tunes the dashboard's caches and limits.
type Options struct {
	SVGCacheSize   int     // 0 disables the rendered-SVG cache
	RateLimitRPS   float64 // 0 disables per-client rate limiting
	RateLimitBurst int
}

// Dashboard serves the explorer page and answers its selection events.
type Dashboard struct {
	explorer *explorer.Explorer
	logger   *zerolog.Logger
	svgCache *lru.Cache[string, []byte]
	limiter  *clientLimiter
}

// New creates a new Dashboard.
func New(ex *explorer.Explorer, opts Options, logger *zerolog.Logger) (*Dashboard, error) {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	limiter, err := newClientLimiter(opts.RateLimitRPS, opts.RateLimitBurst, maxTrackedClients)
	if err != nil {
		return nil, err
	}
	d := &Dashboard{
		explorer: ex,
		logger:   logger,
		limiter:  limiter,
	}
	if opts.SVGCacheSize > 0 {
		cache, err := lru.New[string, []byte](opts.SVGCacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating svg cache: %w", err)
		}
		d.svgCache = cache
	}
	return d, nil
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.ServeIndex)

	r.Route("/api", func(r chi.Router) {
		r.Get("/elements/{view}", d.handleElements)
		r.Get("/stylesheets/{view}", d.handleStylesheet)
		r.Get("/charts/initial", d.handleInitialChart)
		r.With(d.rateLimit).Post("/select", d.handleSelect)

		r.Get("/topics", d.handleTopics)
		r.Get("/topics/{idx}/summary", d.handleTopicSummary)
		r.Get("/topics/{idx}/summary.svg", d.handleTopicSummarySVG)
		r.Get("/topics/{idx}/weights", d.handleTokenWeights)

		r.Get("/filters", d.handleFilters)
		r.Get("/filters/histogram", d.handleFilterHistogram)
		r.Get("/filters/histogram.svg", d.handleFilterHistogramSVG)
	})

	r.Get("/ws/select", d.handleWebSocket)
}
