package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ramu-Prajapati/Study-Point/internal/clock"
	"github.com/Ramu-Prajapati/Study-Point/internal/domain"
	"github.com/google/uuid"
)

type CourseCatalog interface {
	GetCourse(ctx context.Context, courseID string) (domain.Course, error)
	IsEnrolled(ctx context.Context, courseID, studentID string) (bool, error)
}

type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (domain.GatewayOrder, error)
}

const orderCurrency = "INR"

// paisePerRupee converts catalog prices (rupees) to the gateway unit.
const paisePerRupee = 100

type CheckoutService struct {
	catalog CourseCatalog
	gateway PaymentGateway
	clock   clock.Clock
}

func NewCheckoutService(catalog CourseCatalog, gateway PaymentGateway, clk clock.Clock) *CheckoutService {
	return &CheckoutService{
		catalog: catalog,
		gateway: gateway,
		clock:   clk,
	}
}

type CaptureInput struct {
	StudentID string
	CourseIDs []string
}

// Capture prices the requested courses and opens a gateway order for the
// total. The whole request fails on the first unknown or already-enrolled
// course; the gateway is only called once pricing succeeds.
func (s *CheckoutService) Capture(ctx context.Context, in CaptureInput) (domain.GatewayOrder, error) {
	if in.StudentID == "" {
		return domain.GatewayOrder{}, domain.ErrInvalidID
	}

	courseIDs := dedupeIDs(in.CourseIDs)
	if len(courseIDs) == 0 {
		return domain.GatewayOrder{}, domain.ErrNoCoursesSelected
	}

	var total int64
	for _, courseID := range courseIDs {
		course, err := s.catalog.GetCourse(ctx, courseID)
		if err != nil {
			return domain.GatewayOrder{}, err
		}

		enrolled, err := s.catalog.IsEnrolled(ctx, courseID, in.StudentID)
		if err != nil {
			return domain.GatewayOrder{}, err
		}
		if enrolled {
			return domain.GatewayOrder{}, domain.ErrAlreadyEnrolled
		}

		total += course.Price
	}

	order, err := s.gateway.CreateOrder(ctx, total*paisePerRupee, orderCurrency, s.newReceipt())
	if err != nil {
		return domain.GatewayOrder{}, err
	}
	return order, nil
}

// newReceipt builds a correlation token unique enough to avoid gateway
// collisions. Razorpay caps receipts at 40 characters.
func (s *CheckoutService) newReceipt() string {
	short := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("rcpt_%d_%s", s.clock.Now().Unix(), short)
}

// dedupeIDs drops duplicate course IDs, keeping first occurrences, so a
// repeated ID is never charged twice.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
