package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gfret/fretboard/pkg/cache"
	"github.com/gfret/fretboard/pkg/layout"
	"github.com/gfret/fretboard/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a versioned DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.VersionedKeyer(cache.NewDefaultKeyer())
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete resolve → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Resolve
	resolveStart := time.Now()
	inst, err := Resolve(&opts)
	if err != nil {
		return nil, err
	}
	result.Units = inst.Units
	result.BoardHash = BoardHash(inst)
	result.Stats.ResolveTime = time.Since(resolveStart)

	opts.Logger.Debug("resolved instrument",
		"scale", inst.Specs.Scale,
		"variant", inst.Specs.Variant,
		"frets", inst.Specs.Count,
		"units", inst.Units)

	// Stage 2: Layout
	layoutStart := time.Now()
	board, err := ComputeLayout(ctx, inst)
	if err != nil {
		return nil, err
	}
	result.Board = board
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.FretCount = int(inst.Specs.Count)

	opts.Logger.Info("computed layout",
		"lines", len(board.Frets),
		"treble_offset", board.Factors.TrebleOffset,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	cfg := *opts.Config
	cfg.Units = inst.Units
	opts.Config = &cfg

	renderStart := time.Now()
	artifacts, info, err := r.RenderWithCacheInfo(ctx, board, result.BoardHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo = info
	result.Stats.RenderTime = time.Since(renderStart)
	for _, data := range artifacts {
		result.Stats.Bytes += len(data)
	}

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"bytes", result.Stats.Bytes,
		"cached", len(info.Hits),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderWithCacheInfo renders the requested formats, serving each from the
// cache when possible, and reports which formats hit.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, b *layout.Board, boardHash string, opts Options) (map[string][]byte, CacheInfo, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	var info CacheInfo
	var missing []string

	hooks := observability.Cache()
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(boardHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache read failed", "format", format, "err", err)
		}
		if err == nil && hit {
			hooks.OnCacheHit(ctx, format)
			artifacts[format] = data
			info.Hits = append(info.Hits, format)
			continue
		}
		hooks.OnCacheMiss(ctx, format)
		missing = append(missing, format)
	}
	info.RenderHit = len(missing) == 0

	if len(missing) == 0 {
		return artifacts, info, nil
	}

	rendered, err := Render(ctx, b, *opts.Config, missing, opts.PNGScale)
	if err != nil {
		return nil, info, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(boardHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		hooks.OnCacheSet(ctx, format, len(data))
	}

	return artifacts, info, nil
}

// BoardHash returns the content hash of an instrument. Two instruments with
// the same hash produce identical boards.
func BoardHash(inst Instrument) string {
	s := inst.Specs
	return cache.Hash(fmt.Appendf(nil, "%g|%d|%g|%g|%s|%s|%g",
		s.Scale, s.Count, s.Nut, s.Bridge, s.Variant, inst.Units, inst.Border))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
