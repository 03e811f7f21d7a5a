package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/atlas/internal/db"
	"github.com/alexanderramin/atlas/internal/domain"
)

// SQLiteCourseRepo implements CourseRepo on the in-memory session database.
type SQLiteCourseRepo struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLiteCourseRepo creates a repo whose snapshot writes run in one
// transaction on database.
func NewSQLiteCourseRepo(database *sql.DB) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: database, uow: db.NewSQLiteUnitOfWork(database)}
}

// NewSQLiteCourseRepoWithUoW lets tests inject a failing UnitOfWork.
func NewSQLiteCourseRepoWithUoW(database *sql.DB, uow db.UnitOfWork) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: database, uow: uow}
}

const courseColumns = `name, department, course_type, deib_focus, deib_tag, homework_hours,
	total_students, male, female, non_binary, male_fraction, male_pct, vocabulary, comment_corpus, adjusted`

func (r *SQLiteCourseRepo) ReplaceSnapshot(ctx context.Context, snap *domain.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("replacing snapshot: nil snapshot")
	}
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM courses`); err != nil {
			return fmt.Errorf("clearing courses: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots`); err != nil {
			return fmt.Errorf("clearing snapshots: %w", err)
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO snapshots (id, seed, generated_at, catalog_fingerprint) VALUES (?, ?, ?, ?)`,
			snap.ID,
			snap.Seed,
			snap.GeneratedAt.UTC().Format(time.RFC3339),
			strconv.FormatUint(snap.CatalogFingerprint, 10),
		)
		if err != nil {
			return fmt.Errorf("inserting snapshot: %w", err)
		}

		query := `INSERT INTO courses (snapshot_id, position, ` + courseColumns + `)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		for i, row := range snap.Rows {
			co := row.Cohort
			_, err := tx.ExecContext(ctx, query,
				snap.ID,
				i,
				row.Name,
				string(row.Department),
				string(row.Type),
				string(row.Focus),
				row.Tag,
				row.HomeworkHours,
				co.TotalStudents,
				co.Gender.Male,
				co.Gender.Female,
				co.Gender.NonBinary,
				co.MaleFraction,
				co.MalePercentage,
				co.Vocabulary,
				joinCorpus(co.CommentCorpus),
				boolToInt(co.Adjusted),
			)
			if err != nil {
				return fmt.Errorf("inserting course %q: %w", row.Name, err)
			}
		}
		return nil
	})
}

func (r *SQLiteCourseRepo) ListByFilter(ctx context.Context, f domain.CourseFilter) ([]domain.EnrichedCourse, error) {
	var q strings.Builder
	args := []any{}
	q.WriteString(`SELECT ` + courseColumns + ` FROM courses WHERE 1 = 1`)
	inClause(&q, &args, "department", f.Departments)
	inClause(&q, &args, "course_type", f.Types)
	inClause(&q, &args, "deib_focus", f.Focus)
	q.WriteString(` ORDER BY position`)

	return r.query(ctx, "listing courses", q.String(), args...)
}

func (r *SQLiteCourseRepo) ListHighLoad(ctx context.Context, minHours float64) ([]domain.EnrichedCourse, error) {
	query := `SELECT ` + courseColumns + ` FROM courses
		WHERE homework_hours >= ? ORDER BY homework_hours DESC, position`
	return r.query(ctx, "listing high-load courses", query, minHours)
}

func (r *SQLiteCourseRepo) query(ctx context.Context, op, query string, args ...any) ([]domain.EnrichedCourse, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []domain.EnrichedCourse
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterating: %w", op, err)
	}
	return out, nil
}

func scanCourse(rows *sql.Rows) (domain.EnrichedCourse, error) {
	var (
		c                       domain.EnrichedCourse
		dept, courseType, focus string
		corpus                  string
		adjusted                int
	)
	err := rows.Scan(
		&c.Name, &dept, &courseType, &focus, &c.Tag, &c.HomeworkHours,
		&c.Cohort.TotalStudents,
		&c.Cohort.Gender.Male, &c.Cohort.Gender.Female, &c.Cohort.Gender.NonBinary,
		&c.Cohort.MaleFraction, &c.Cohort.MalePercentage,
		&c.Cohort.Vocabulary, &corpus, &adjusted,
	)
	if err != nil {
		return c, fmt.Errorf("scanning course row: %w", err)
	}
	c.Department = domain.Department(dept)
	c.Type = domain.CourseType(courseType)
	c.Focus = domain.DEIBFocus(focus)
	c.Cohort.CommentCorpus = splitCorpus(corpus)
	c.Cohort.Adjusted = intToBool(adjusted)
	return c, nil
}
