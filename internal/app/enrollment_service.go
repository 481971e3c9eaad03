package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Ramu-Prajapati/Study-Point/internal/clock"
	"github.com/Ramu-Prajapati/Study-Point/internal/domain"
	"github.com/Ramu-Prajapati/Study-Point/internal/mail"
	"github.com/google/uuid"
)

type EnrollmentRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	// GrantEnrollment adds the student to the course's enrolled set. Adding
	// an existing member is a no-op; a missing course is ErrCourseNotFound.
	GrantEnrollment(ctx context.Context, courseID, studentID string) (domain.Course, error)
	// CreateProgress inserts the record unless one already exists for the
	// same (course, student) pair; created reports which happened.
	CreateProgress(ctx context.Context, progress domain.CourseProgress) (created bool, err error)
	GetStudent(ctx context.Context, studentID string) (domain.Student, error)
}

// CallbackVerifier checks a gateway callback signature.
type CallbackVerifier interface {
	Verify(orderID, paymentID, signature string) bool
}

// CourseStatus is the terminal state of one course within a fulfillment run.
type CourseStatus string

const (
	CoursePending         CourseStatus = "pending"
	CourseGranted         CourseStatus = "granted"
	CourseProgressCreated CourseStatus = "progress_created"
	CourseNotifySent      CourseStatus = "notify_sent"
	CourseNotifyFailed    CourseStatus = "notify_failed"
)

// CourseOutcome records how far one course got through fulfillment.
type CourseOutcome struct {
	CourseID string
	Status   CourseStatus
	Err      error
}

// VerifyResult aggregates per-course outcomes for one verified payment.
type VerifyResult struct {
	Courses []CourseOutcome
}

type EnrollmentService struct {
	repo     EnrollmentRepository
	verifier CallbackVerifier
	mailer   mail.Mailer
	clock    clock.Clock
	logger   *log.Logger

	// abortOnMissingCourse stops the loop at the first course that vanished
	// between pricing and fulfillment. Courses already granted stand.
	abortOnMissingCourse bool
}

type EnrollmentServiceOption func(*EnrollmentService)

// WithAbortOnMissingCourse controls whether a missing course aborts the
// remaining fulfillment loop.
func WithAbortOnMissingCourse(abort bool) EnrollmentServiceOption {
	return func(s *EnrollmentService) {
		s.abortOnMissingCourse = abort
	}
}

func NewEnrollmentService(repo EnrollmentRepository, verifier CallbackVerifier, mailer mail.Mailer, clk clock.Clock, logger *log.Logger, opts ...EnrollmentServiceOption) *EnrollmentService {
	if logger == nil {
		logger = log.Default()
	}
	svc := &EnrollmentService{
		repo:                 repo,
		verifier:             verifier,
		mailer:               mailer,
		clock:                clk,
		logger:               logger,
		abortOnMissingCourse: true,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// VerifyPayment gates fulfillment behind the gateway signature. Missing
// fields and bad signatures are ordinary failed-payment outcomes; nothing
// is enrolled and no HMAC is computed for an incomplete payload.
func (s *EnrollmentService) VerifyPayment(ctx context.Context, cb domain.PaymentCallback) (VerifyResult, error) {
	if cb.OrderID == "" || cb.PaymentID == "" || cb.Signature == "" || len(cb.CourseIDs) == 0 || cb.StudentID == "" {
		return VerifyResult{}, domain.ErrIncompletePayload
	}

	if !s.verifier.Verify(cb.OrderID, cb.PaymentID, cb.Signature) {
		return VerifyResult{}, domain.ErrSignatureMismatch
	}

	return s.enroll(ctx, cb.CourseIDs, cb.StudentID)
}

// enroll grants each course in order. Grant and progress creation for one
// course share a transaction; across courses the loop is sequential and a
// failure leaves earlier grants in place.
func (s *EnrollmentService) enroll(ctx context.Context, courseIDs []string, studentID string) (VerifyResult, error) {
	now := s.clock.Now()
	result := VerifyResult{}

	student, err := s.repo.GetStudent(ctx, studentID)
	if err != nil {
		if !errors.Is(err, domain.ErrStudentNotFound) {
			return result, err
		}
		// Enrollment proceeds without email when the address is unresolvable.
		s.logger.Printf("enroll: student %s not found, skipping notifications", studentID)
		student = domain.Student{ID: studentID}
	}

	for _, courseID := range dedupeIDs(courseIDs) {
		outcome := CourseOutcome{CourseID: courseID, Status: CoursePending}

		var course domain.Course
		err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
			granted, err := s.repo.GrantEnrollment(txCtx, courseID, studentID)
			if err != nil {
				return err
			}
			course = granted
			outcome.Status = CourseGranted

			_, err = s.repo.CreateProgress(txCtx, domain.CourseProgress{
				ID:              uuid.NewString(),
				CourseID:        courseID,
				StudentID:       studentID,
				CompletedVideos: []string{},
				CreatedAt:       now,
			})
			if err != nil {
				return err
			}
			outcome.Status = CourseProgressCreated
			return nil
		})
		if err != nil {
			outcome.Err = err
			result.Courses = append(result.Courses, outcome)
			if errors.Is(err, domain.ErrCourseNotFound) && s.abortOnMissingCourse {
				return result, fmt.Errorf("%w: %s", domain.ErrEnrollmentAborted, courseID)
			}
			return result, err
		}

		if student.Email != "" {
			subject := mail.EnrollmentSubject(course.Name)
			body := mail.EnrollmentBody(course.Name, student.DisplayName())
			if err := s.mailer.Send(ctx, student.Email, subject, body); err != nil {
				s.logger.Printf("enroll: notification for course %s failed: %v", courseID, err)
				outcome.Status = CourseNotifyFailed
			} else {
				outcome.Status = CourseNotifySent
			}
		}

		result.Courses = append(result.Courses, outcome)
	}

	return result, nil
}
