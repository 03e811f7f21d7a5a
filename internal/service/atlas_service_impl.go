package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/atlas/internal/catalog"
	"github.com/alexanderramin/atlas/internal/cohort"
	"github.com/alexanderramin/atlas/internal/config"
	"github.com/alexanderramin/atlas/internal/domain"
	"github.com/alexanderramin/atlas/internal/repository"
	"github.com/alexanderramin/atlas/internal/views"
	"github.com/alexanderramin/atlas/internal/wordfreq"
	"github.com/google/uuid"
)

// SourceFactory builds the random source for one enrichment pass.
type SourceFactory func(seed int64) cohort.Source

type atlasService struct {
	repo      repository.CourseRepo
	newSource SourceFactory
	cfg       config.Config
	observer  UseCaseObserver
	now       func() time.Time

	mu   sync.Mutex
	snap *domain.Snapshot
}

// NewAtlasService wires the catalog, simulator and session table together.
// A nil newSource falls back to cohort.NewSeededSource.
func NewAtlasService(
	repo repository.CourseRepo,
	newSource SourceFactory,
	cfg config.Config,
	observers ...UseCaseObserver,
) AtlasService {
	if newSource == nil {
		newSource = cohort.NewSeededSource
	}
	return &atlasService{
		repo:      repo,
		newSource: newSource,
		cfg:       cfg,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *atlasService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *atlasService) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap != nil {
		return s.snap, nil
	}
	return s.rebuildLocked(ctx, s.cfg.Seed)
}

func (s *atlasService) Reload(ctx context.Context, seed *int64) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seed == nil {
		seed = s.cfg.Seed
	}
	return s.rebuildLocked(ctx, seed)
}

// rebuildLocked runs catalog and simulator once and replaces the session
// table. The previous snapshot stays current if the write fails.
func (s *atlasService) rebuildLocked(ctx context.Context, seed *int64) (snap *domain.Snapshot, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		s.observe(ctx, "enrich-catalog", startedAt, fields, err)
	}()

	effective := startedAt.UnixNano()
	if seed != nil {
		effective = *seed
	}
	fields["seed"] = effective

	courses := catalog.Load()
	fingerprint, err := catalog.Fingerprint(courses)
	if err != nil {
		return nil, err
	}

	sim := cohort.NewSimulator(s.newSource(effective), cohort.WithFemalePolicy(s.cfg.FemalePolicy))
	snap = &domain.Snapshot{
		ID:                 uuid.New().String(),
		Seed:               effective,
		GeneratedAt:        s.now().Truncate(time.Second),
		CatalogFingerprint: fingerprint,
		Rows:               sim.Enrich(courses),
	}

	adjusted := 0
	for _, r := range snap.Rows {
		if r.Cohort.Adjusted {
			adjusted++
		}
	}
	fields["snapshot_id"] = snap.ID
	fields["courses"] = len(snap.Rows)
	fields["adjusted_cohorts"] = adjusted

	if err = s.repo.ReplaceSnapshot(ctx, snap); err != nil {
		return nil, fmt.Errorf("storing snapshot: %w", err)
	}
	s.snap = snap
	return snap, nil
}

func (s *atlasService) ensureLoaded(ctx context.Context) error {
	_, err := s.Snapshot(ctx)
	return err
}

func (s *atlasService) Courses(ctx context.Context, filter domain.CourseFilter) (rows []domain.EnrichedCourse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"filter": filter.String()}
	defer func() {
		s.observe(ctx, "list-courses", startedAt, fields, err)
	}()

	if err = s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	rows, err = s.repo.ListByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	fields["count"] = len(rows)
	return rows, nil
}

func (s *atlasService) TopWords(ctx context.Context, name string, k int) (row domain.EnrichedCourse, words []wordfreq.WordCount, err error) {
	if k <= 0 {
		k = s.cfg.TopWords
	}
	startedAt := time.Now()
	defer func() {
		s.observe(ctx, "top-words", startedAt, map[string]any{"course": name, "k": k}, err)
	}()

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return row, nil, err
	}
	row, ok := views.FindCourse(snap.Rows, name)
	if !ok {
		return row, nil, fmt.Errorf("%w: %q", ErrCourseNotFound, name)
	}
	return row, wordfreq.TopK(row.Cohort.CommentCorpus, k), nil
}

func (s *atlasService) Watchlist(ctx context.Context, minHours float64) (rows []domain.EnrichedCourse, err error) {
	if minHours <= 0 {
		minHours = s.cfg.WatchlistHours
	}
	startedAt := time.Now()
	fields := map[string]any{"min_hours": minHours}
	defer func() {
		s.observe(ctx, "watchlist", startedAt, fields, err)
	}()

	if err = s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	rows, err = s.repo.ListHighLoad(ctx, minHours)
	if err != nil {
		return nil, err
	}
	fields["count"] = len(rows)
	return rows, nil
}
