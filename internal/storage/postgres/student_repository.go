package postgres

import (
	"context"
	"fmt"

	"github.com/Ramu-Prajapati/Study-Point/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

func (r *StudentRepository) GetStudent(ctx context.Context, studentID string) (domain.Student, error) {
	return getStudent(ctx, r.queryRow, studentID)
}

func (r *StudentRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}

type rowQuerier func(ctx context.Context, sql string, args ...any) pgx.Row

func getStudent(ctx context.Context, queryRow rowQuerier, studentID string) (domain.Student, error) {
	const query = `SELECT id, email, first_name, last_name, created_at FROM students WHERE id = $1`

	var s domain.Student
	err := queryRow(ctx, query, studentID).Scan(&s.ID, &s.Email, &s.FirstName, &s.LastName, &s.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) || err == pgx.ErrNoRows {
			return domain.Student{}, domain.ErrStudentNotFound
		}
		return domain.Student{}, fmt.Errorf("get student: %w", err)
	}
	return s, nil
}
