package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/atlas/internal/domain"
	"github.com/alexanderramin/atlas/internal/wordfreq"
)

// ErrCourseNotFound is returned for a course name absent from the table.
var ErrCourseNotFound = errors.New("course not found")

// AtlasService serves the enriched course table. The table is built once per
// session and rebuilt only by Reload.
type AtlasService interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
	Reload(ctx context.Context, seed *int64) (*domain.Snapshot, error)
	Courses(ctx context.Context, filter domain.CourseFilter) ([]domain.EnrichedCourse, error)
	// TopWords looks a course up in the table and summarizes its comment
	// corpus. k <= 0 uses the configured default.
	TopWords(ctx context.Context, name string, k int) (domain.EnrichedCourse, []wordfreq.WordCount, error)
	Watchlist(ctx context.Context, minHours float64) ([]domain.EnrichedCourse, error)
}
