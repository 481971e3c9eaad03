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

// PaymentVerifier is the minimal interface needed to verify a callback and
// run fulfillment.
type PaymentVerifier interface {
	VerifyPayment(ctx context.Context, cb domain.PaymentCallback) (app.VerifyResult, error)
}

// HandleVerifyPayment returns an HTTP handler for the signed gateway
// callback. Verification-stage failures are reported as success=false with
// a 200 status: an invalid signature is a failed payment, not a server
// error, and must never enroll anything.
func HandleVerifyPayment(svc PaymentVerifier, m *metrics.PaymentMetrics) http.HandlerFunc {
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

		var req verifyRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		_, err := svc.VerifyPayment(r.Context(), domain.PaymentCallback{
			OrderID:   req.OrderID,
			PaymentID: req.PaymentID,
			Signature: req.Signature,
			CourseIDs: req.Courses,
			StudentID: studentID,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrIncompletePayload), errors.Is(err, domain.ErrSignatureMismatch):
				if m != nil {
					m.SignatureRejects.Inc()
				}
				writeVerify(w, http.StatusOK, verifyResponse{Success: false, Message: "Payment Failed"})
			case errors.Is(err, domain.ErrEnrollmentAborted):
				if m != nil {
					m.EnrollmentAborts.Inc()
				}
				writeVerify(w, http.StatusConflict, verifyResponse{Success: false, Message: err.Error()})
			default:
				writeVerify(w, http.StatusInternalServerError, verifyResponse{Success: false, Message: "Error enrolling student"})
			}
			return
		}

		if m != nil {
			m.PaymentsVerified.Inc()
		}
		writeVerify(w, http.StatusOK, verifyResponse{Success: true, Message: "Student enrolled successfully"})
	}
}

func writeVerify(w http.ResponseWriter, status int, resp verifyResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

type verifyRequest struct {
	OrderID   string   `json:"razorpay_order_id"`
	PaymentID string   `json:"razorpay_payment_id"`
	Signature string   `json:"razorpay_signature"`
	Courses   []string `json:"courses"`
}

type verifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
