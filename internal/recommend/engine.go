// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinesim/internal/cache"
	"github.com/tomtom215/cinesim/internal/catalog"
	"github.com/tomtom215/cinesim/internal/metrics"
	"github.com/tomtom215/cinesim/internal/recommend/similarity"
)

// resultCacheType labels result cache metrics.
const resultCacheType = "recommend_results"

// snapshot is an immutable, fully built model. Queries read whichever
// snapshot is current; builds publish a new one in a single pointer swap.
type snapshot struct {
	version       uint64
	items         []catalog.Item
	model         *similarity.Model
	matrix        *similarity.Matrix
	index         *TitleIndex
	source        string
	builtAt       time.Time
	buildDuration time.Duration
}

// resultKey identifies a cacheable query against one snapshot version.
type resultKey struct {
	version uint64
	title   string
	n       int
}

// Engine answers "more like this" queries over a catalog.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	loaderMu sync.RWMutex
	loader   catalog.Loader

	current atomic.Pointer[snapshot]
	version atomic.Uint64

	// buildMu serializes builds; TryLock rejects overlapping requests.
	buildMu  sync.Mutex
	building atomic.Bool

	statusMu      sync.RWMutex
	lastError     string
	lastAttemptAt time.Time

	results *cache.LRU[resultKey, *Result]

	queryCount  atomic.Int64
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
}

// NewEngine creates a recommendation engine with no published model.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}
	if cfg.Cache.Enabled {
		e.results = cache.NewLRU[resultKey, *Result](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	return e, nil
}

// SetLoader sets the catalog source used by Rebuild.
func (e *Engine) SetLoader(l catalog.Loader) {
	e.loaderMu.Lock()
	defer e.loaderMu.Unlock()
	e.loader = l
}

func (e *Engine) getLoader() catalog.Loader {
	e.loaderMu.RLock()
	defer e.loaderMu.RUnlock()
	return e.loader
}

// Ready reports whether a model has been published.
func (e *Engine) Ready() bool {
	return e.current.Load() != nil
}

// Build vectorizes items, computes the similarity matrix and publishes the
// result. On failure the previously published model stays live.
func (e *Engine) Build(ctx context.Context, items []catalog.Item) error {
	if !e.buildMu.TryLock() {
		metrics.RecordBuildError("busy")
		return ErrBuildInProgress
	}
	defer e.buildMu.Unlock()

	return e.runBuild(ctx, "inline", func(context.Context) ([]catalog.Item, error) {
		return items, nil
	})
}

// Rebuild loads the catalog from the configured loader and builds from it.
func (e *Engine) Rebuild(ctx context.Context) error {
	loader := e.getLoader()
	if loader == nil {
		return ErrNoLoader
	}

	if !e.buildMu.TryLock() {
		metrics.RecordBuildError("busy")
		return ErrBuildInProgress
	}
	defer e.buildMu.Unlock()

	return e.runBuild(ctx, loader.Source(), loader.Load)
}

// runBuild performs one build. Must be called with buildMu held.
func (e *Engine) runBuild(ctx context.Context, source string, load func(context.Context) ([]catalog.Item, error)) error {
	e.building.Store(true)
	defer e.building.Store(false)

	start := time.Now()
	buildCtx, cancel := context.WithTimeout(ctx, e.config.Build.Timeout)
	defer cancel()

	logger := e.logger.With().Str("source", source).Logger()
	logger.Info().Msg("starting model build")

	snap, err := e.buildSnapshot(buildCtx, source, load)
	duration := time.Since(start)
	e.recordAttempt(err)

	if err != nil {
		metrics.RecordBuild(duration, 0, 0, 0, err)
		logger.Error().Err(err).Int64("duration_ms", duration.Milliseconds()).Msg("model build failed")
		return err
	}

	snap.buildDuration = duration
	snap.version = e.version.Add(1)
	e.current.Store(snap)
	if e.results != nil {
		e.results.Clear()
		metrics.CacheSize.WithLabelValues(resultCacheType).Set(0)
	}

	metrics.RecordBuild(duration, len(snap.items), snap.model.VocabularySize(), snap.version, nil)
	logger.Info().
		Uint64("version", snap.version).
		Int("items", len(snap.items)).
		Int("vocabulary", snap.model.VocabularySize()).
		Int64("duration_ms", duration.Milliseconds()).
		Msg("model build complete")

	return nil
}

// buildSnapshot runs the load, vectorize and matrix stages.
func (e *Engine) buildSnapshot(ctx context.Context, source string, load func(context.Context) ([]catalog.Item, error)) (*snapshot, error) {
	items, err := load(ctx)
	if err != nil {
		metrics.RecordBuildError(StageLoad)
		return nil, &BuildError{Stage: StageLoad, Err: err}
	}
	if len(items) == 0 {
		metrics.RecordBuildError(StageMatrix)
		return nil, &BuildError{Stage: StageMatrix, Err: similarity.ErrEmptyCorpus}
	}

	model, err := similarity.NewVectorizer().Fit(ctx, catalog.Documents(items))
	if err != nil {
		metrics.RecordBuildError(StageVectorize)
		return nil, &BuildError{Stage: StageVectorize, Err: err}
	}

	matrix, err := similarity.BuildMatrix(ctx, model.Vectors(), e.config.Build.Workers)
	if err != nil {
		metrics.RecordBuildError(StageMatrix)
		return nil, &BuildError{Stage: StageMatrix, Err: err}
	}

	return &snapshot{
		items:   items,
		model:   model,
		matrix:  matrix,
		index:   NewTitleIndex(items),
		source:  source,
		builtAt: time.Now(),
	}, nil
}

func (e *Engine) recordAttempt(err error) {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()

	e.lastAttemptAt = time.Now()
	if err != nil {
		e.lastError = err.Error()
	} else {
		e.lastError = ""
	}
}

// Recommend returns the n items most similar to title.
//
// The title is matched case-insensitively. An unknown title yields a
// NotFound result carrying substring suggestions, not an error. n <= 0 uses
// the configured default; larger n is bounded only by the catalog size.
func (e *Engine) Recommend(ctx context.Context, title string, n int) (*Result, error) {
	start := time.Now()
	e.queryCount.Add(1)

	if err := ctx.Err(); err != nil {
		metrics.RecordQuery(metrics.OutcomeError, time.Since(start))
		return nil, err
	}

	snap := e.current.Load()
	if snap == nil {
		metrics.RecordQuery(metrics.OutcomeError, time.Since(start))
		return nil, ErrNotReady
	}

	n = e.resolveN(n)
	key := resultKey{version: snap.version, title: strings.ToLower(title), n: n}

	if res, ok := e.cachedResult(key); ok {
		res.Query = title
		metrics.RecordQuery(outcomeOf(res), time.Since(start))
		return res, nil
	}

	res := e.query(snap, title, n)
	e.storeResult(key, res)

	metrics.RecordQuery(outcomeOf(res), time.Since(start))
	e.logger.Debug().
		Str("title", title).
		Int("n", n).
		Str("status", res.Status.String()).
		Int("returned", len(res.Items)).
		Uint64("version", snap.version).
		Msg("recommendation query")

	return res, nil
}

// query answers one query against snap.
func (e *Engine) query(snap *snapshot, title string, n int) *Result {
	idx, ok := snap.index.Lookup(title)
	if !ok {
		return &Result{
			Status:        StatusNotFound,
			Query:         title,
			ResolvedIndex: -1,
			Suggestions:   snap.index.Search(title, e.config.Limits.SuggestionLimit),
			ModelVersion:  snap.version,
		}
	}

	ranked := rankRow(snap.matrix.Row(idx))

	// The top-ranked entry is dropped; it is normally the query item itself.
	ranked = ranked[1:]
	if n < len(ranked) {
		ranked = ranked[:n]
	}

	items := make([]Recommendation, len(ranked))
	row := snap.matrix.Row(idx)
	for i, j := range ranked {
		it := snap.items[j]
		items[i] = Recommendation{
			Index:      it.Index,
			Title:      it.Title,
			Genres:     it.Genres,
			Similarity: row[j],
		}
	}

	return &Result{
		Status:        StatusFound,
		Query:         title,
		ResolvedIndex: idx,
		ResolvedTitle: snap.items[idx].Title,
		Items:         items,
		ModelVersion:  snap.version,
	}
}

// rankRow returns column indices ordered by descending score. Equal scores
// keep catalog order.
func rankRow(row []float64) []int {
	order := make([]int, len(row))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return row[order[a]] > row[order[b]]
	})
	return order
}

// Search returns up to limit catalog titles containing query, case-insensitively.
func (e *Engine) Search(query string, limit int) ([]string, error) {
	snap := e.current.Load()
	if snap == nil {
		return nil, ErrNotReady
	}
	return snap.index.Search(query, limit), nil
}

// Item returns the catalog item at index from the published model.
func (e *Engine) Item(index int) (catalog.Item, bool) {
	snap := e.current.Load()
	if snap == nil || index < 0 || index >= len(snap.items) {
		return catalog.Item{}, false
	}
	return snap.items[index], true
}

// Status returns the published model and build state.
func (e *Engine) Status() EngineStatus {
	st := EngineStatus{
		Building:    e.building.Load(),
		Queries:     e.queryCount.Load(),
		CacheHits:   e.cacheHits.Load(),
		CacheMisses: e.cacheMisses.Load(),
	}

	e.statusMu.RLock()
	st.LastError = e.lastError
	st.LastAttemptAt = e.lastAttemptAt
	e.statusMu.RUnlock()

	if snap := e.current.Load(); snap != nil {
		st.Ready = true
		st.Version = snap.version
		st.Items = len(snap.items)
		st.Vocabulary = snap.model.VocabularySize()
		st.Source = snap.source
		st.BuiltAt = snap.builtAt
		st.BuildDurationMS = snap.buildDuration.Milliseconds()
	}
	return st
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// resolveN applies the default for n <= 0. Larger n is never capped; the
// result length is bounded by the catalog size alone.
func (e *Engine) resolveN(n int) int {
	if n <= 0 {
		return e.config.Limits.DefaultN
	}
	return n
}

// cachedResult returns a private copy of a cached result.
func (e *Engine) cachedResult(key resultKey) (*Result, bool) {
	if e.results == nil {
		return nil, false
	}

	res, ok := e.results.Get(key)
	metrics.RecordCacheLookup(resultCacheType, ok)
	if !ok {
		e.cacheMisses.Add(1)
		return nil, false
	}

	e.cacheHits.Add(1)
	c := res.clone()
	c.CacheHit = true
	return c, true
}

func (e *Engine) storeResult(key resultKey, res *Result) {
	if e.results == nil {
		return
	}
	e.results.Add(key, res.clone())
	metrics.CacheSize.WithLabelValues(resultCacheType).Set(float64(e.results.Len()))
}

func outcomeOf(res *Result) string {
	if res.Found() {
		return metrics.OutcomeFound
	}
	return metrics.OutcomeNotFound
}
