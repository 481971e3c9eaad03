package postgres

import (
	"context"
	"fmt"

	"github.com/Ramu-Prajapati/Study-Point/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EnrollmentRepository serves the fulfillment stage. Grant and progress
// writes are designed to be retried: both are no-ops when the row already
// exists.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

func (r *EnrollmentRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

// GrantEnrollment adds the student to the course's enrolled set and returns
// the course. The insert is idempotent; a vanished course surfaces as
// ErrCourseNotFound before anything is written.
func (r *EnrollmentRepository) GrantEnrollment(ctx context.Context, courseID, studentID string) (domain.Course, error) {
	const courseQuery = `SELECT id, name, price, created_at FROM courses WHERE id = $1`

	var c domain.Course
	err := r.queryRow(ctx, courseQuery, courseID).Scan(&c.ID, &c.Name, &c.Price, &c.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) || err == pgx.ErrNoRows {
			return domain.Course{}, domain.ErrCourseNotFound
		}
		return domain.Course{}, fmt.Errorf("get course for grant: %w", err)
	}

	const stmt = `
INSERT INTO enrollments (course_id, student_id)
VALUES ($1, $2)
ON CONFLICT (course_id, student_id) DO NOTHING`

	if _, err := r.exec(ctx, stmt, courseID, studentID); err != nil {
		if isForeignKeyViolation(err) {
			return domain.Course{}, domain.ErrStudentNotFound
		}
		return domain.Course{}, fmt.Errorf("grant enrollment: %w", err)
	}
	return c, nil
}

// CreateProgress inserts a progress record unless the (course, student)
// pair already has one.
func (r *EnrollmentRepository) CreateProgress(ctx context.Context, progress domain.CourseProgress) (bool, error) {
	const stmt = `
INSERT INTO course_progress (id, course_id, student_id, completed_videos, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (course_id, student_id) DO NOTHING`

	tag, err := r.exec(ctx, stmt,
		progress.ID, progress.CourseID, progress.StudentID, progress.CompletedVideos, progress.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrCourseNotFound
		}
		return false, fmt.Errorf("create progress: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *EnrollmentRepository) GetStudent(ctx context.Context, studentID string) (domain.Student, error) {
	return getStudent(ctx, r.queryRow, studentID)
}

func (r *EnrollmentRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *EnrollmentRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
