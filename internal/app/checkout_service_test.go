package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Ramu-Prajapati/Study-Point/internal/clock"
	"github.com/Ramu-Prajapati/Study-Point/internal/domain"
)

type gatewayCall struct {
	amount   int64
	currency string
	receipt  string
}

type fakeGateway struct {
	calls []gatewayCall
	err   error
}

func (f *fakeGateway) CreateOrder(_ context.Context, amount int64, currency, receipt string) (domain.GatewayOrder, error) {
	f.calls = append(f.calls, gatewayCall{amount: amount, currency: currency, receipt: receipt})
	if f.err != nil {
		return domain.GatewayOrder{}, f.err
	}
	return domain.GatewayOrder{
		ID:       "order_test_1",
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

type fakeCatalog struct {
	courses  map[string]domain.Course
	enrolled map[string]map[string]bool
}

func (f *fakeCatalog) GetCourse(_ context.Context, courseID string) (domain.Course, error) {
	c, ok := f.courses[courseID]
	if !ok {
		return domain.Course{}, domain.ErrCourseNotFound
	}
	return c, nil
}

func (f *fakeCatalog) IsEnrolled(_ context.Context, courseID, studentID string) (bool, error) {
	return f.enrolled[courseID][studentID], nil
}

func TestCheckoutService_Capture(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	makeSvc := func(catalog *fakeCatalog, gateway *fakeGateway) *CheckoutService {
		return NewCheckoutService(catalog, gateway, clock.NewFixed(now))
	}

	t.Run("sums prices and charges in paise", func(t *testing.T) {
		catalog := &fakeCatalog{courses: map[string]domain.Course{
			"c1": {ID: "c1", Name: "Go Basics", Price: 500},
			"c2": {ID: "c2", Name: "Go Advanced", Price: 1500},
		}}
		gateway := &fakeGateway{}
		svc := makeSvc(catalog, gateway)

		order, err := svc.Capture(context.Background(), CaptureInput{
			StudentID: "u1",
			CourseIDs: []string{"c1", "c2"},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if order.Amount != 200000 {
			t.Fatalf("expected amount 200000 paise, got %d", order.Amount)
		}
		if order.Currency != "INR" {
			t.Fatalf("expected currency INR, got %s", order.Currency)
		}
		if order.Receipt == "" {
			t.Fatalf("expected receipt to be set")
		}
		if len(gateway.calls) != 1 {
			t.Fatalf("expected 1 gateway call, got %d", len(gateway.calls))
		}
	})

	t.Run("rejects empty course list without calling gateway", func(t *testing.T) {
		gateway := &fakeGateway{}
		svc := makeSvc(&fakeCatalog{}, gateway)

		_, err := svc.Capture(context.Background(), CaptureInput{StudentID: "u1"})
		if err != domain.ErrNoCoursesSelected {
			t.Fatalf("expected ErrNoCoursesSelected, got %v", err)
		}
		if len(gateway.calls) != 0 {
			t.Fatalf("expected no gateway calls, got %d", len(gateway.calls))
		}
	})

	t.Run("fails whole request on unknown course", func(t *testing.T) {
		catalog := &fakeCatalog{courses: map[string]domain.Course{
			"c1": {ID: "c1", Price: 500},
		}}
		gateway := &fakeGateway{}
		svc := makeSvc(catalog, gateway)

		_, err := svc.Capture(context.Background(), CaptureInput{
			StudentID: "u1",
			CourseIDs: []string{"c1", "missing"},
		})
		if err != domain.ErrCourseNotFound {
			t.Fatalf("expected ErrCourseNotFound, got %v", err)
		}
		if len(gateway.calls) != 0 {
			t.Fatalf("expected no gateway calls, got %d", len(gateway.calls))
		}
	})

	t.Run("fails whole request when already enrolled", func(t *testing.T) {
		catalog := &fakeCatalog{
			courses: map[string]domain.Course{
				"c1": {ID: "c1", Price: 500},
				"c2": {ID: "c2", Price: 700},
			},
			enrolled: map[string]map[string]bool{
				"c2": {"u1": true},
			},
		}
		gateway := &fakeGateway{}
		svc := makeSvc(catalog, gateway)

		_, err := svc.Capture(context.Background(), CaptureInput{
			StudentID: "u1",
			CourseIDs: []string{"c1", "c2"},
		})
		if err != domain.ErrAlreadyEnrolled {
			t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
		}
		if len(gateway.calls) != 0 {
			t.Fatalf("expected no gateway calls, got %d", len(gateway.calls))
		}
	})

	t.Run("never charges twice for a duplicated course id", func(t *testing.T) {
		catalog := &fakeCatalog{courses: map[string]domain.Course{
			"c1": {ID: "c1", Price: 500},
		}}
		gateway := &fakeGateway{}
		svc := makeSvc(catalog, gateway)

		order, err := svc.Capture(context.Background(), CaptureInput{
			StudentID: "u1",
			CourseIDs: []string{"c1", "c1", "c1"},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if order.Amount != 50000 {
			t.Fatalf("expected 50000 paise for one charge, got %d", order.Amount)
		}
	})

	t.Run("propagates gateway failure", func(t *testing.T) {
		catalog := &fakeCatalog{courses: map[string]domain.Course{
			"c1": {ID: "c1", Price: 500},
		}}
		gateway := &fakeGateway{err: domain.ErrGatewayUnavailable}
		svc := makeSvc(catalog, gateway)

		_, err := svc.Capture(context.Background(), CaptureInput{
			StudentID: "u1",
			CourseIDs: []string{"c1"},
		})
		if !errors.Is(err, domain.ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})
}
