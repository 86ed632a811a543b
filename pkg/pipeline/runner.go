package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/blydeben/sankey-app/pkg/cache"
	"github.com/blydeben/sankey-app/pkg/diagram"
	"github.com/blydeben/sankey-app/pkg/flow"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Diagram is the computed layout.
	Diagram diagram.Diagram

	// InputHash is the content hash of the edges and options.
	InputHash string

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether the diagram came from cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	BuildTime  time.Duration
	LayoutTime time.Duration
}

// Execute runs the complete build → layout pipeline with caching.
// The cache key is the content hash of the edges and the semantic
// option fields; Refresh forces a recompute.
func (r *Runner) Execute(ctx context.Context, edges []flow.Edge, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}

	result := &Result{
		InputHash: cache.HashParts(edges, opts.keyFields()),
	}
	key := cache.DiagramKey(result.InputHash)

	if !opts.Refresh {
		if d, ok := r.lookup(ctx, key, logger); ok {
			result.Diagram = d
			result.CacheHit = true
			result.Stats.NodeCount = len(d.Nodes)
			result.Stats.EdgeCount = len(d.Links)
			logger.Debug("cache hit", "key", key)
			return result, nil
		}
	}

	// Stage 1: Build
	buildStart := time.Now()
	g, tiers, err := buildGraph(edges)
	if err != nil {
		return nil, err
	}
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	logger.Info("built flow graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"tiers", tiers.Max()+1,
		"duration", result.Stats.BuildTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	d, err := assemble(g, tiers, opts)
	if err != nil {
		return nil, err
	}
	result.Diagram = d
	result.Stats.LayoutTime = time.Since(layoutStart)

	logger.Info("computed layout",
		"mode", opts.Mode,
		"duration", result.Stats.LayoutTime)

	r.store(ctx, key, d, logger)
	return result, nil
}

// lookup fetches and decodes a cached diagram. A corrupt entry is
// treated as a miss.
func (r *Runner) lookup(ctx context.Context, key string, logger *log.Logger) (diagram.Diagram, bool) {
	data, ok, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "key", key, "error", err)
		return diagram.Diagram{}, false
	}
	if !ok {
		return diagram.Diagram{}, false
	}
	d, err := diagram.Unmarshal(data)
	if err != nil {
		logger.Warn("cache entry corrupt", "key", key, "error", err)
		return diagram.Diagram{}, false
	}
	return d, true
}

// store writes a computed diagram to the cache. Failures are logged,
// not returned: a broken cache must not fail the pipeline.
func (r *Runner) store(ctx context.Context, key string, d diagram.Diagram, logger *log.Logger) {
	data, err := diagram.Marshal(d)
	if err != nil {
		logger.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLDiagram); err != nil {
		logger.Warn("cache write failed", "key", key, "error", err)
	}
}

// Close releases the runner's cache resources.
func (r *Runner) Close() error {
	return r.Cache.Close()
}
