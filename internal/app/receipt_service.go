package app

import (
	"context"
	"fmt"

	"github.com/Ramu-Prajapati/Study-Point/internal/domain"
	"github.com/Ramu-Prajapati/Study-Point/internal/mail"
)

type StudentDirectory interface {
	GetStudent(ctx context.Context, studentID string) (domain.Student, error)
}

// ReceiptService sends the standalone "payment received" confirmation.
// Unlike the enrollment path, a delivery failure here is surfaced to the
// caller.
type ReceiptService struct {
	students StudentDirectory
	mailer   mail.Mailer
}

func NewReceiptService(students StudentDirectory, mailer mail.Mailer) *ReceiptService {
	return &ReceiptService{
		students: students,
		mailer:   mailer,
	}
}

type SendReceiptInput struct {
	OrderID   string
	PaymentID string
	// Amount is in paise, as reported by the gateway.
	Amount    int64
	StudentID string
}

func (s *ReceiptService) SendPaymentReceipt(ctx context.Context, in SendReceiptInput) error {
	if in.OrderID == "" || in.PaymentID == "" || in.StudentID == "" {
		return domain.ErrIncompletePayload
	}
	if in.Amount <= 0 {
		return domain.ErrInvalidAmount
	}

	student, err := s.students.GetStudent(ctx, in.StudentID)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err)
	}

	body := mail.PaymentReceiptBody(student.DisplayName(), in.Amount, in.OrderID, in.PaymentID)
	if err := s.mailer.Send(ctx, student.Email, mail.PaymentReceiptSubject, body); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err)
	}
	return nil
}
