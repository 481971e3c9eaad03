package postgres

import (
	"context"
	"fmt"

	"github.com/Ramu-Prajapati/Study-Point/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func (r *AdminRepository) CreateCourse(ctx context.Context, course domain.Course) error {
	const stmt = `
INSERT INTO courses (id, name, price, created_at)
VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, stmt, course.ID, course.Name, course.Price, course.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

func (r *AdminRepository) ListCourses(ctx context.Context) ([]domain.Course, error) {
	const query = `
SELECT id, name, price, created_at
FROM courses
ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Price, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate courses: %w", rows.Err())
	}
	return courses, nil
}

func (r *AdminRepository) CreateStudent(ctx context.Context, student domain.Student) error {
	const stmt = `
INSERT INTO students (id, email, first_name, last_name, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, stmt, student.ID, student.Email, student.FirstName, student.LastName, student.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		if isUniqueViolation(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}
