package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ramu-Prajapati/Study-Point/internal/app"
	"github.com/Ramu-Prajapati/Study-Point/internal/domain"
)

type fakeReceiptService struct {
	gotInput app.SendReceiptInput
	err      error
}

func (f *fakeReceiptService) SendPaymentReceipt(_ context.Context, in app.SendReceiptInput) error {
	f.gotInput = in
	return f.err
}

func TestHandleSendReceipt(t *testing.T) {
	t.Parallel()

	const body = `{"order_id":"order_9","payment_id":"pay_9","amount":200000}`

	t.Run("sends receipt email", func(t *testing.T) {
		svc := &fakeReceiptService{}
		handler := HandleSendReceipt(svc, nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/payments/receipt-email", body))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if svc.gotInput.StudentID != "u1" || svc.gotInput.Amount != 200000 {
			t.Fatalf("unexpected input %+v", svc.gotInput)
		}
	})

	t.Run("maps incomplete payload to bad request", func(t *testing.T) {
		handler := HandleSendReceipt(&fakeReceiptService{err: domain.ErrIncompletePayload}, nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/payments/receipt-email", body))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("maps delivery failure to bad gateway", func(t *testing.T) {
		handler := HandleSendReceipt(&fakeReceiptService{err: domain.ErrNotificationFailed}, nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/payments/receipt-email", body))

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("expected status 502, got %d", rec.Code)
		}
		var resp errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Code != codeNotificationFailed {
			t.Fatalf("expected code %s, got %s", codeNotificationFailed, resp.Code)
		}
	})
}
