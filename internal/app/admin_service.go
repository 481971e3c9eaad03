package app

import (
	"context"
	"strings"

	"github.com/Ramu-Prajapati/Study-Point/internal/clock"
	"github.com/Ramu-Prajapati/Study-Point/internal/domain"
	"github.com/google/uuid"
)

type AdminRepository interface {
	CreateCourse(ctx context.Context, course domain.Course) error
	ListCourses(ctx context.Context) ([]domain.Course, error)
	CreateStudent(ctx context.Context, student domain.Student) error
}

type AdminService struct {
	repo  AdminRepository
	clock clock.Clock
}

func NewAdminService(repo AdminRepository, clk clock.Clock) *AdminService {
	return &AdminService{
		repo:  repo,
		clock: clk,
	}
}

type CreateCourseInput struct {
	Name  string
	Price int64
}

func (s *AdminService) CreateCourse(ctx context.Context, in CreateCourseInput) (domain.Course, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Course{}, domain.ErrCourseNameRequired
	}
	if in.Price < 0 {
		return domain.Course{}, domain.ErrInvalidPrice
	}

	course := domain.Course{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Price:     in.Price,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.CreateCourse(ctx, course); err != nil {
		return domain.Course{}, err
	}
	return course, nil
}

func (s *AdminService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return s.repo.ListCourses(ctx)
}

type CreateStudentInput struct {
	Email     string
	FirstName string
	LastName  string
}

func (s *AdminService) CreateStudent(ctx context.Context, in CreateStudentInput) (domain.Student, error) {
	if strings.TrimSpace(in.Email) == "" {
		return domain.Student{}, domain.ErrEmailRequired
	}

	student := domain.Student{
		ID:        uuid.NewString(),
		Email:     strings.TrimSpace(in.Email),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.CreateStudent(ctx, student); err != nil {
		return domain.Student{}, err
	}
	return student, nil
}
