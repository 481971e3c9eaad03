package domain

import "time"

// CourseProgress tracks a student's advancement through one course.
// At most one record exists per (course, student) pair.
type CourseProgress struct {
	ID              string
	CourseID        string
	StudentID       string
	CompletedVideos []string
	CreatedAt       time.Time
}
