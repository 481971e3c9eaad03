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

// ReceiptSender is the minimal interface needed to send the standalone
// payment-received email.
type ReceiptSender interface {
	SendPaymentReceipt(ctx context.Context, in app.SendReceiptInput) error
}

// HandleSendReceipt returns an HTTP handler for the payment-received
// confirmation email.
func HandleSendReceipt(svc ReceiptSender, m *metrics.PaymentMetrics) http.HandlerFunc {
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

		var req receiptRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		err := svc.SendPaymentReceipt(r.Context(), app.SendReceiptInput{
			OrderID:   req.OrderID,
			PaymentID: req.PaymentID,
			Amount:    req.Amount,
			StudentID: studentID,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrIncompletePayload):
				writeError(w, http.StatusBadRequest, codeIncompletePayload, err.Error())
			case errors.Is(err, domain.ErrInvalidAmount):
				writeError(w, http.StatusBadRequest, codeInvalidAmount, err.Error())
			case errors.Is(err, domain.ErrNotificationFailed):
				if m != nil {
					m.ReceiptEmailErrors.Inc()
				}
				writeError(w, http.StatusBadGateway, codeNotificationFailed, domain.ErrNotificationFailed.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(receiptResponse{Success: true, Message: "Email sent"})
	}
}

type receiptRequest struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount"`
}

type receiptResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
