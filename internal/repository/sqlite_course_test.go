package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"testing"

	"github.com/alexanderramin/atlas/internal/domain"
	"github.com/alexanderramin/atlas/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseRepo_ReplaceAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(db)
	ctx := context.Background()

	snap := testutil.NewTestSnapshot(42)
	require.NoError(t, repo.ReplaceSnapshot(ctx, snap))

	rows, err := repo.ListByFilter(ctx, domain.CourseFilter{})
	require.NoError(t, err)
	require.Len(t, rows, len(snap.Rows))

	// Round trip keeps order and every field, corpus included.
	assert.Equal(t, snap.Rows, rows)
}

// storedSnapshot reads back the provenance row written by ReplaceSnapshot.
func storedSnapshot(t *testing.T, database *sql.DB) (id string, seed int64, fingerprint string) {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&n))
	require.Equal(t, 1, n, "exactly one snapshot row")
	require.NoError(t, database.QueryRow(
		`SELECT id, seed, catalog_fingerprint FROM snapshots`,
	).Scan(&id, &seed, &fingerprint))
	return id, seed, fingerprint
}

func TestCourseRepo_StoresSnapshotRow(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(db)
	ctx := context.Background()

	snap := testutil.NewTestSnapshot(7)
	require.NoError(t, repo.ReplaceSnapshot(ctx, snap))

	id, seed, fingerprint := storedSnapshot(t, db)
	assert.Equal(t, snap.ID, id)
	assert.Equal(t, int64(7), seed)
	assert.Equal(t, strconv.FormatUint(snap.CatalogFingerprint, 10), fingerprint)
}

func TestCourseRepo_ReplaceDropsPreviousSnapshot(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(db)
	ctx := context.Background()

	first := testutil.NewTestSnapshot(1)
	second := testutil.NewTestSnapshot(2)
	require.NoError(t, repo.ReplaceSnapshot(ctx, first))
	require.NoError(t, repo.ReplaceSnapshot(ctx, second))

	id, _, _ := storedSnapshot(t, db)
	assert.Equal(t, second.ID, id)

	rows, err := repo.ListByFilter(ctx, domain.CourseFilter{})
	require.NoError(t, err)
	assert.Equal(t, second.Rows, rows)
}

func TestCourseRepo_ReplaceRollsBackOnFailure(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	good := testutil.NewTestSnapshot(1)
	require.NoError(t, NewSQLiteCourseRepo(db).ReplaceSnapshot(ctx, good))

	// Exec #1 and #2 clear tables, #3 inserts the snapshot, #4 is the first course.
	uow := &testutil.FailOnNthExecUoW{DB: db, FailOn: 4, Err: errors.New("disk on fire")}
	failing := NewSQLiteCourseRepoWithUoW(db, uow)

	err := failing.ReplaceSnapshot(ctx, testutil.NewTestSnapshot(2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")

	id, _, _ := storedSnapshot(t, db)
	assert.Equal(t, good.ID, id, "previous snapshot must survive a failed replace")

	rows, err := NewSQLiteCourseRepo(db).ListByFilter(ctx, domain.CourseFilter{})
	require.NoError(t, err)
	assert.Len(t, rows, len(good.Rows))
}

func TestCourseRepo_ListByFilter(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(db)
	ctx := context.Background()
	require.NoError(t, repo.ReplaceSnapshot(ctx, testutil.NewTestSnapshot(3)))

	tests := []struct {
		name   string
		filter domain.CourseFilter
		want   int
	}{
		{"all", domain.CourseFilter{}, 29},
		{"science", domain.CourseFilter{Departments: []domain.Department{domain.DeptScience}}, 11},
		{"electives", domain.CourseFilter{Types: []domain.CourseType{domain.TypeElective}}, 13},
		{"medium or high math", domain.CourseFilter{
			Departments: []domain.Department{domain.DeptMath},
			Focus:       []domain.DEIBFocus{domain.FocusMedium, domain.FocusHigh},
		}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := repo.ListByFilter(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, rows, tt.want)
			for _, r := range rows {
				assert.True(t, tt.filter.Match(r.Course), r.Name)
			}
		})
	}
}

func TestCourseRepo_ListHighLoad(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(db)
	ctx := context.Background()
	require.NoError(t, repo.ReplaceSnapshot(ctx, testutil.NewTestSnapshot(3)))

	rows, err := repo.ListHighLoad(ctx, 5.0)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "UAS Adv Chemistry", rows[0].Name)
	assert.Equal(t, "UAS Calculus", rows[1].Name)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].HomeworkHours, rows[i].HomeworkHours)
	}
}
