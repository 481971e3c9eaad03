package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ramu-Prajapati/Study-Point/internal/app"
	"github.com/Ramu-Prajapati/Study-Point/internal/domain"
	"github.com/Ramu-Prajapati/Study-Point/internal/metrics"
)

// PaymentCapturer is the minimal interface needed to open a gateway order.
type PaymentCapturer interface {
	Capture(ctx context.Context, in app.CaptureInput) (domain.GatewayOrder, error)
}

// HandleCapturePayment returns an HTTP handler that prices the requested
// courses and opens a gateway order for the authenticated student.
func HandleCapturePayment(svc PaymentCapturer, m *metrics.PaymentMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		studentID, ok := StudentIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing session")
			return
		}

		var req captureRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		order, err := svc.Capture(r.Context(), app.CaptureInput{
			StudentID: studentID,
			CourseIDs: req.Courses,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNoCoursesSelected):
				writeError(w, http.StatusBadRequest, codeNoCoursesSelected, err.Error())
			case errors.Is(err, domain.ErrCourseNotFound):
				writeError(w, http.StatusBadRequest, codeCourseNotFound, err.Error())
			case errors.Is(err, domain.ErrAlreadyEnrolled):
				writeError(w, http.StatusBadRequest, codeAlreadyEnrolled, err.Error())
			case errors.Is(err, domain.ErrInvalidID):
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			case errors.Is(err, domain.ErrGatewayUnavailable):
				writeError(w, http.StatusBadGateway, codeGatewayUnavailable, domain.ErrGatewayUnavailable.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		if m != nil {
			m.OrdersCreated.Inc()
		}

		resp := captureResponse{
			Success: true,
			Data: gatewayOrderResponse{
				ID:       order.ID,
				Amount:   order.Amount,
				Currency: order.Currency,
				Receipt:  order.Receipt,
				Status:   order.Status,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type captureRequest struct {
	Courses []string `json:"courses"`
}

type captureResponse struct {
	Success bool                 `json:"success"`
	Data    gatewayOrderResponse `json:"data"`
}

type gatewayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}
