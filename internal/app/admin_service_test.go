package app

import (
	"context"
	"testing"
	"time"

	"github.com/Ramu-Prajapati/Study-Point/internal/clock"
	"github.com/Ramu-Prajapati/Study-Point/internal/domain"
)

type fakeAdminRepo struct {
	courses  []domain.Course
	students []domain.Student
}

func (f *fakeAdminRepo) CreateCourse(_ context.Context, course domain.Course) error {
	f.courses = append(f.courses, course)
	return nil
}

func (f *fakeAdminRepo) ListCourses(_ context.Context) ([]domain.Course, error) {
	return f.courses, nil
}

func (f *fakeAdminRepo) CreateStudent(_ context.Context, student domain.Student) error {
	f.students = append(f.students, student)
	return nil
}

func TestAdminService_CreateCourse(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("creates course", func(t *testing.T) {
		repo := &fakeAdminRepo{}
		svc := NewAdminService(repo, clock.NewFixed(now))

		course, err := svc.CreateCourse(context.Background(), CreateCourseInput{Name: "Go Basics", Price: 500})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if course.ID == "" {
			t.Fatalf("expected course ID to be set")
		}
		if course.CreatedAt != now {
			t.Fatalf("expected created_at %v, got %v", now, course.CreatedAt)
		}
		if len(repo.courses) != 1 {
			t.Fatalf("expected 1 course in repo, got %d", len(repo.courses))
		}
	})

	t.Run("requires a name", func(t *testing.T) {
		svc := NewAdminService(&fakeAdminRepo{}, clock.NewFixed(now))

		_, err := svc.CreateCourse(context.Background(), CreateCourseInput{Name: "  ", Price: 500})
		if err != domain.ErrCourseNameRequired {
			t.Fatalf("expected ErrCourseNameRequired, got %v", err)
		}
	})

	t.Run("rejects negative price", func(t *testing.T) {
		svc := NewAdminService(&fakeAdminRepo{}, clock.NewFixed(now))

		_, err := svc.CreateCourse(context.Background(), CreateCourseInput{Name: "Go Basics", Price: -1})
		if err != domain.ErrInvalidPrice {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})
}

func TestAdminService_CreateStudent(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("creates student", func(t *testing.T) {
		repo := &fakeAdminRepo{}
		svc := NewAdminService(repo, clock.NewFixed(now))

		student, err := svc.CreateStudent(context.Background(), CreateStudentInput{
			Email:     "u1@example.com",
			FirstName: "Asha",
			LastName:  "Verma",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if student.ID == "" {
			t.Fatalf("expected student ID to be set")
		}
		if len(repo.students) != 1 {
			t.Fatalf("expected 1 student in repo, got %d", len(repo.students))
		}
	})

	t.Run("requires an email", func(t *testing.T) {
		svc := NewAdminService(&fakeAdminRepo{}, clock.NewFixed(now))

		_, err := svc.CreateStudent(context.Background(), CreateStudentInput{Email: ""})
		if err != domain.ErrEmailRequired {
			t.Fatalf("expected ErrEmailRequired, got %v", err)
		}
	})
}
