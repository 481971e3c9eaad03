package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Ramu-Prajapati/Study-Point/internal/app"
	"github.com/Ramu-Prajapati/Study-Point/internal/domain"
)

// AdminCourseService is the minimal interface needed for course administration.
type AdminCourseService interface {
	CreateCourse(ctx context.Context, in app.CreateCourseInput) (domain.Course, error)
	ListCourses(ctx context.Context) ([]domain.Course, error)
}

// AdminStudentService is the minimal interface needed for student registration.
type AdminStudentService interface {
	CreateStudent(ctx context.Context, in app.CreateStudentInput) (domain.Student, error)
}

// HandleAdminCourses returns an HTTP handler for course creation/listing.
func HandleAdminCourses(svc AdminCourseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			courses, err := svc.ListCourses(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			resp := make([]courseResponse, 0, len(courses))
			for _, course := range courses {
				resp = append(resp, courseResponse{
					ID:        course.ID,
					Name:      course.Name,
					Price:     course.Price,
					CreatedAt: course.CreatedAt,
				})
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
			return
		case http.MethodPost:
			var req createCourseRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			course, err := svc.CreateCourse(r.Context(), app.CreateCourseInput{
				Name:  req.Name,
				Price: req.Price,
			})
			if err != nil {
				switch err {
				case domain.ErrCourseNameRequired:
					writeError(w, http.StatusBadRequest, codeCourseNameRequired, err.Error())
				case domain.ErrInvalidPrice:
					writeError(w, http.StatusBadRequest, codeInvalidPrice, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				}
				return
			}

			resp := courseResponse{
				ID:        course.ID,
				Name:      course.Name,
				Price:     course.Price,
				CreatedAt: course.CreatedAt,
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(resp)
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// HandleAdminStudents returns an HTTP handler for student registration.
func HandleAdminStudents(svc AdminStudentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req createStudentRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		student, err := svc.CreateStudent(r.Context(), app.CreateStudentInput{
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		})
		if err != nil {
			switch err {
			case domain.ErrEmailRequired:
				writeError(w, http.StatusBadRequest, codeEmailRequired, err.Error())
			case domain.ErrEmailExists:
				writeError(w, http.StatusConflict, codeEmailExists, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		resp := studentResponse{
			ID:        student.ID,
			Email:     student.Email,
			FirstName: student.FirstName,
			LastName:  student.LastName,
			CreatedAt: student.CreatedAt,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type createCourseRequest struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type courseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

type createStudentRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type studentResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}
