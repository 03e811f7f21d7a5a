package repository

import (
	"context"

	"github.com/alexanderramin/atlas/internal/domain"
)

// CourseRepo holds the enriched table of the current snapshot. Only one
// snapshot exists at a time; storing a new one replaces the old.
type CourseRepo interface {
	ReplaceSnapshot(ctx context.Context, snap *domain.Snapshot) error
	ListByFilter(ctx context.Context, f domain.CourseFilter) ([]domain.EnrichedCourse, error)
	ListHighLoad(ctx context.Context, minHours float64) ([]domain.EnrichedCourse, error)
}
