// Package service implements the color matching operations consumed by the
// HTTP API and the CLI.
package service

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/swatch/internal/adapters/mq/queue"
	"github.com/okian/swatch/internal/adapters/mq/worker"
	"github.com/okian/swatch/internal/adapters/repository"
	"github.com/okian/swatch/internal/domain/color"
	"github.com/okian/swatch/internal/domain/matchcache"
	"github.com/okian/swatch/internal/domain/model"
	"github.com/okian/swatch/internal/domain/pantone"
	"github.com/okian/swatch/internal/domain/types"
	"github.com/okian/swatch/internal/imaging"
	"github.com/okian/swatch/pkg/logger"
	"github.com/okian/swatch/pkg/metrics"
)

// Service wires the matcher with its cache and the asynchronous analysis pipeline.
type Service struct {
	mu sync.RWMutex

	matcher *pantone.Matcher
	cache   matchcache.Cache

	// Started by Start.
	queue *queue.InMemoryQueue
	pool  *worker.Pool
	store *repository.MemoryJobStore

	table        []pantone.Color
	tableSource  string
	cacheSize    int
	maxNearest   int
	workerCount  int
	queueSize    int
	maxDimension int
	maxPixels    int64
	jobRetention time.Duration
	newID        func() string

	started   bool
	startedAt time.Time

	logger logger.Logger
}

// New builds a Service around the configured reference table. Synchronous
// operations work right away; Start is needed for SubmitAnalysis.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		tableSource:  "builtin",
		cacheSize:    50_000,
		maxNearest:   50,
		workerCount:  runtime.NumCPU(),
		queueSize:    1_024,
		maxDimension: 2_048,
		maxPixels:    imaging.DefaultMaxPixels,
		jobRetention: 15 * time.Minute,
		newID:        func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	var mopts []pantone.Option
	if s.table != nil {
		mopts = append(mopts, pantone.WithTable(s.table))
	}
	m, err := pantone.New(mopts...)
	if err != nil {
		return nil, fmt.Errorf("build matcher: %w", err)
	}
	s.matcher = m
	s.cache = matchcache.NewInMemoryCache(matchcache.WithMaxSize(s.cacheSize))
	s.startedAt = time.Now()

	metrics.UpdateReferenceTableSize(m.Len())
	return s, nil
}

// Start starts the analysis queue, job store and worker pool.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	s.store = repository.NewMemoryJobStore(ctx, repository.WithRetention(s.jobRetention))
	s.queue = queue.NewInMemoryQueue(queue.WithCapacity(s.queueSize))
	s.pool = worker.NewPool(s.workerCount, s.queue, s.matcher, s.store)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "color service started",
		logger.Int("tableSize", s.matcher.Len()),
		logger.String("tableSource", s.tableSource),
		logger.Int("workers", s.pool.Size()),
		logger.Int("queueSize", s.queueSize),
		logger.Int("cacheSize", s.cacheSize),
		logger.Int64("maxImagePixels", s.maxPixels),
		logger.Duration("jobRetention", s.jobRetention),
	)
	return nil
}

// Stop drains the analysis queue and stops the workers.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	ctx := context.Background()
	s.logger.Info(ctx, "stopping color service...")

	start := time.Now()
	err := s.pool.Shutdown(ctx)
	if err != nil {
		s.logger.Warn(ctx, "worker pool shutdown", logger.Error(err))
	}
	_ = s.store.Close()

	s.started = false
	s.logger.Info(ctx, "color service stopped",
		logger.Duration("drain", time.Since(start)),
		logger.Bool("drained", err == nil),
	)
}

// Table returns a copy of the loaded reference table.
func (s *Service) Table() []pantone.Color {
	return s.matcher.Table()
}

// Families returns the color family names understood by Family.
func (s *Service) Families() []string {
	return pantone.Families()
}

// Match returns the closest reference color for a hex string, using the cache.
func (s *Service) Match(ctx context.Context, hex string) (pantone.MatchResult, error) {
	key, err := color.NormalizeHex(hex)
	if err != nil {
		return pantone.MatchResult{}, err
	}

	if r, ok := s.cache.Get(ctx, key); ok {
		metrics.RecordCacheHit()
		metrics.RecordMatch(string(r.Quality), r.Distance)
		return r, nil
	}
	metrics.RecordCacheMiss()

	start := time.Now()
	r, err := s.matcher.FindClosest(key)
	metrics.RecordMatchLatency("closest", msSince(start))
	if err != nil {
		return pantone.MatchResult{}, err
	}

	s.cache.Put(ctx, key, r)
	metrics.UpdateCacheSize(s.cache.Size())
	metrics.RecordMatch(string(r.Quality), r.Distance)
	return r, nil
}

// MatchRGB returns the closest reference color for possibly out-of-range channels.
func (s *Service) MatchRGB(_ context.Context, rgb color.RGB) pantone.MatchResult {
	start := time.Now()
	r := s.matcher.RGBToPantone(rgb)
	metrics.RecordMatchLatency("rgb", msSince(start))
	metrics.RecordMatch(string(r.Quality), r.Distance)
	return r
}

// Nearest returns up to count closest reference colors; count is capped at
// the configured maximum.
func (s *Service) Nearest(_ context.Context, hex string, count int) ([]pantone.MatchResult, error) {
	count = min(count, s.maxNearest)
	start := time.Now()
	res, err := s.matcher.FindNearest(hex, count)
	metrics.RecordMatchLatency("nearest", msSince(start))
	return res, err
}

// MaxNearest returns the cap applied by Nearest.
func (s *Service) MaxNearest() int {
	return s.maxNearest
}

// Complement returns the reference color closest to the complement of hex.
func (s *Service) Complement(_ context.Context, hex string) (pantone.MatchResult, error) {
	start := time.Now()
	r, err := s.matcher.Complementary(hex)
	metrics.RecordMatchLatency("complement", msSince(start))
	return r, err
}

// Distance returns the RGB distance between two hex colors and its quality band.
func (s *Service) Distance(_ context.Context, a, b string) (types.DistanceResult, error) {
	na, err := color.NormalizeHex(a)
	if err != nil {
		return types.DistanceResult{}, err
	}
	nb, err := color.NormalizeHex(b)
	if err != nil {
		return types.DistanceResult{}, err
	}
	d, err := color.HexDistance(na, nb)
	if err != nil {
		return types.DistanceResult{}, err
	}
	return types.DistanceResult{A: na, B: nb, Distance: d, Quality: pantone.QualityFor(d)}, nil
}

// HSL converts a hex color to HSL.
func (s *Service) HSL(_ context.Context, hex string) (types.HSLResult, error) {
	n, err := color.NormalizeHex(hex)
	if err != nil {
		return types.HSLResult{}, err
	}
	rgb, err := color.HexToRGB(n)
	if err != nil {
		return types.HSLResult{}, err
	}
	return types.HSLResult{Hex: n, RGB: rgb, HSL: color.RGBToHSL(rgb)}, nil
}

// SearchCode finds reference colors whose code contains the query.
func (s *Service) SearchCode(_ context.Context, q string) pantone.SearchResult {
	metrics.RecordSearch("code")
	return s.matcher.SearchByCode(q)
}

// SearchName finds reference colors whose name contains the query.
func (s *Service) SearchName(_ context.Context, q string) pantone.SearchResult {
	metrics.RecordSearch("name")
	return s.matcher.SearchByName(q)
}

// ByCode looks up a single reference color.
func (s *Service) ByCode(_ context.Context, code string) (pantone.Color, error) {
	metrics.RecordSearch("exact")
	c, ok := s.matcher.ByCode(code)
	if !ok {
		return pantone.Color{}, fmt.Errorf("%w: %q", ErrColorNotFound, code)
	}
	return c, nil
}

// Family returns the reference colors in a named family.
func (s *Service) Family(_ context.Context, family string) []pantone.Color {
	metrics.RecordSearch("family")
	return s.matcher.ByFamily(family)
}

// Analyze decodes an image and returns its dominant reference colors.
func (s *Service) Analyze(ctx context.Context, r io.Reader) (types.AnalysisResult, error) {
	px, err := s.decode(r)
	if err != nil {
		metrics.RecordErrorByComponent("service", "decode")
		return types.AnalysisResult{}, err
	}
	return s.AnalyzePixels(ctx, px), nil
}

func (s *Service) decode(r io.Reader) (imaging.Pixels, error) {
	return imaging.Decode(r,
		imaging.WithMaxDimension(s.maxDimension),
		imaging.WithMaxPixels(s.maxPixels),
	)
}

// AnalyzePixels runs dominant color analysis on an already decoded image.
func (s *Service) AnalyzePixels(ctx context.Context, px imaging.Pixels) types.AnalysisResult {
	start := time.Now()
	colors, stats := s.matcher.AnalyzeImageColorsWithStats(px.Data, px.Width, px.Height)
	metrics.RecordImageAnalysis(stats.Sampled, msSince(start))

	s.logger.Debug(ctx, "image analyzed",
		logger.Int("width", px.Width),
		logger.Int("height", px.Height),
		logger.Int("sampled", stats.Sampled),
		logger.Int("colors", len(colors)),
	)
	return types.AnalysisResult{
		Width:  px.Width,
		Height: px.Height,
		Format: px.Format,
		Colors: colors,
		Stats:  stats,
	}
}

// SubmitAnalysis decodes an image and queues it for asynchronous analysis.
// Decode errors are returned directly; a full queue yields ErrBusy.
func (s *Service) SubmitAnalysis(ctx context.Context, r io.Reader) (model.JobRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return model.JobRecord{}, ErrNotStarted
	}

	px, err := s.decode(r)
	if err != nil {
		metrics.RecordErrorByComponent("service", "decode")
		return model.JobRecord{}, err
	}

	job := model.AnalysisJob{
		ID:          s.newID(),
		Pixels:      px.Data,
		Width:       px.Width,
		Height:      px.Height,
		Format:      px.Format,
		SubmittedAt: time.Now(),
	}
	if err := s.store.Create(ctx, job); err != nil {
		return model.JobRecord{}, err
	}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		_ = s.store.Fail(ctx, job.ID, err)
		s.logger.Warn(ctx, "analysis job rejected", logger.String("jobID", job.ID), logger.Error(err))
		return model.JobRecord{}, fmt.Errorf("%w: %w", ErrBusy, err)
	}

	s.logger.Debug(ctx, "analysis job queued", logger.String("jobID", job.ID))
	return s.store.Get(ctx, job.ID)
}

// Job returns the state of an analysis job.
func (s *Service) Job(ctx context.Context, id string) (model.JobRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return model.JobRecord{}, ErrNotStarted
	}
	return s.store.Get(ctx, id)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats(ctx context.Context) types.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := types.Stats{
		TableSize:   s.matcher.Len(),
		TableSource: s.tableSource,
		CacheSize:   s.cache.Size(),
		Uptime:      time.Since(s.startedAt).Round(time.Second).String(),
	}
	if s.started {
		st.QueueLength = s.queue.Len()
		st.WorkerCount = s.pool.Size()
		st.JobsStored = s.store.Count(ctx)
	}

	metrics.UpdateCacheSize(st.CacheSize)
	metrics.UpdateQueueSize(st.QueueLength)
	return st
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000
}
