package domain

import "errors"

var (
	ErrNoCoursesSelected  = errors.New("no courses selected")
	ErrCourseNotFound     = errors.New("course not found")
	ErrAlreadyEnrolled    = errors.New("student already enrolled")
	ErrGatewayUnavailable = errors.New("could not initiate order")
	ErrIncompletePayload  = errors.New("incomplete payment payload")
	ErrSignatureMismatch  = errors.New("payment signature mismatch")
	ErrEnrollmentAborted  = errors.New("enrollment aborted: course missing")
	ErrNotificationFailed = errors.New("could not send email")
	ErrStudentNotFound    = errors.New("student not found")
	ErrInvalidID          = errors.New("invalid id")
	ErrCourseNameRequired = errors.New("course name required")
	ErrInvalidPrice       = errors.New("invalid price")
	ErrEmailRequired      = errors.New("email required")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidAmount      = errors.New("invalid amount")
)
