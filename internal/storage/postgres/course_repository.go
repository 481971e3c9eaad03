package postgres

import (
	"context"
	"fmt"

	"github.com/Ramu-Prajapati/Study-Point/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CourseRepository serves the pricing stage: read-only course and
// enrollment lookups.
type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

func (r *CourseRepository) GetCourse(ctx context.Context, courseID string) (domain.Course, error) {
	const query = `SELECT id, name, price, created_at FROM courses WHERE id = $1`

	var c domain.Course
	err := r.queryRow(ctx, query, courseID).Scan(&c.ID, &c.Name, &c.Price, &c.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) || err == pgx.ErrNoRows {
			return domain.Course{}, domain.ErrCourseNotFound
		}
		return domain.Course{}, fmt.Errorf("get course: %w", err)
	}
	return c, nil
}

func (r *CourseRepository) IsEnrolled(ctx context.Context, courseID, studentID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM enrollments WHERE course_id = $1 AND student_id = $2)`

	var enrolled bool
	err := r.queryRow(ctx, query, courseID, studentID).Scan(&enrolled)
	if err != nil {
		if isInvalidUUID(err) {
			return false, domain.ErrCourseNotFound
		}
		return false, fmt.Errorf("check enrollment: %w", err)
	}
	return enrolled, nil
}

func (r *CourseRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
