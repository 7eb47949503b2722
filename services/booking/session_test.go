package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"handymatch/models"
	"handymatch/services/directory"
	"handymatch/services/session"
)

func newTestService(t *testing.T, processorDelay time.Duration) (*SessionService, *directory.Store) {
	t.Helper()
	dir := directory.NewStore([]models.Professional{
		{
			ID:          "pro-1",
			Name:        "Carlos Silva",
			Category:    models.CategoryPlumber,
			Rating:      4.9,
			HourlyRate:  100,
			Distance:    "1.2 km",
			PhoneNumber: "11987654321",
			Email:       "carlos@example.com",
		},
	})
	svc := NewSessionService(dir, session.NewMemoryStore(), NewSimulatedProcessor(processorDelay, zap.NewNop()), time.Minute)
	return svc, dir
}

func TestBookingHappyPath(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()

	sess, err := svc.Start(ctx, "pro-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if sess.Step != models.StepDetails {
		t.Fatalf("expected DETAILS, got %s", sess.Step)
	}
	if sess.Hours < 1 {
		t.Fatalf("new session hours below minimum: %d", sess.Hours)
	}

	sess, err = svc.SetHours(ctx, sess.ID, 3)
	if err != nil {
		t.Fatalf("set hours: %v", err)
	}
	if sess.Quote.TotalAmount != 300.00 || sess.Quote.PlatformFee != 30.00 || sess.Quote.ProProceeds != 270.00 {
		t.Fatalf("unexpected quote: %+v", sess.Quote)
	}

	sess, err = svc.ConfirmDetails(ctx, sess.ID)
	if err != nil {
		t.Fatalf("confirm details: %v", err)
	}
	if sess.Step != models.StepPayment {
		t.Fatalf("expected PAYMENT, got %s", sess.Step)
	}

	sess, err = svc.SubmitPayment(ctx, sess.ID, models.PaymentPix)
	if err != nil {
		t.Fatalf("submit payment: %v", err)
	}
	if sess.Step != models.StepEscrow {
		t.Fatalf("expected ESCROW, got %s", sess.Step)
	}
	if sess.PaymentID == "" {
		t.Fatal("expected a payment id after capture")
	}

	sess, err = svc.CompleteService(ctx, sess.ID)
	if err != nil {
		t.Fatalf("complete service: %v", err)
	}
	if sess.Step != models.StepReview {
		t.Fatalf("expected REVIEW, got %s", sess.Step)
	}

	sess, receipt, err := svc.SubmitReview(ctx, sess.ID, 4, "ótimo trabalho")
	if err != nil {
		t.Fatalf("submit review: %v", err)
	}
	if sess.Step != models.StepSuccess {
		t.Fatalf("expected SUCCESS, got %s", sess.Step)
	}
	if receipt.AmountPaid != 300.00 || receipt.ProProceeds != 270.00 || receipt.Rating != 4 {
		t.Fatalf("unexpected receipt: %+v", receipt)
	}
}

func TestBookingUnknownProfessional(t *testing.T) {
	svc, _ := newTestService(t, 0)
	if _, err := svc.Start(context.Background(), "nope"); !errors.Is(err, ErrProfessionalNotFound) {
		t.Fatalf("expected ErrProfessionalNotFound, got %v", err)
	}
}

func TestBookingHoursBelowMinimumRejected(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()

	sess, err := svc.Start(ctx, "pro-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err := svc.SetHours(ctx, sess.ID, 0); !errors.Is(err, ErrInvalidHours) {
		t.Fatalf("expected ErrInvalidHours, got %v", err)
	}

	// A rejected adjustment leaves the session untouched.
	got, err := svc.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Hours != sess.Hours {
		t.Fatalf("hours changed after rejected adjustment: %d -> %d", sess.Hours, got.Hours)
	}
}

func TestBookingNoBackwardOrSkippedTransitions(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()

	sess, err := svc.Start(ctx, "pro-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// Payment before confirming details.
	if _, err := svc.SubmitPayment(ctx, sess.ID, models.PaymentCredit); !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("expected ErrInvalidStep for early payment, got %v", err)
	}
	// Review before escrow completes.
	if _, _, err := svc.SubmitReview(ctx, sess.ID, 5, "bom"); !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("expected ErrInvalidStep for early review, got %v", err)
	}

	if _, err := svc.ConfirmDetails(ctx, sess.ID); err != nil {
		t.Fatalf("confirm details: %v", err)
	}
	// Hours are locked once details are confirmed.
	if _, err := svc.SetHours(ctx, sess.ID, 5); !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("expected ErrInvalidStep for late hour change, got %v", err)
	}
}

func TestBookingInvalidMethodRejected(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()

	sess, _ := svc.Start(ctx, "pro-1")
	if _, err := svc.ConfirmDetails(ctx, sess.ID); err != nil {
		t.Fatalf("confirm details: %v", err)
	}
	if _, err := svc.SubmitPayment(ctx, sess.ID, models.PaymentMethod("CASH")); !errors.Is(err, ErrInvalidMethod) {
		t.Fatalf("expected ErrInvalidMethod, got %v", err)
	}
}

func TestBookingReviewRequiredBeforeRelease(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()

	sess, _ := svc.Start(ctx, "pro-1")
	svcMustAdvanceToReview(t, svc, ctx, sess.ID)

	if _, _, err := svc.SubmitReview(ctx, sess.ID, 5, "   "); !errors.Is(err, ErrReviewRequired) {
		t.Fatalf("expected ErrReviewRequired, got %v", err)
	}
	if _, _, err := svc.SubmitReview(ctx, sess.ID, 6, "ok"); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("expected ErrInvalidRating, got %v", err)
	}
}

func TestBookingCancelledPaymentLeavesNoTrace(t *testing.T) {
	svc, _ := newTestService(t, 100*time.Millisecond)
	ctx := context.Background()

	sess, _ := svc.Start(ctx, "pro-1")
	if _, err := svc.ConfirmDetails(ctx, sess.ID); err != nil {
		t.Fatalf("confirm details: %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := svc.SubmitPayment(cancelled, sess.ID, models.PaymentPix); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	got, err := svc.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Step != models.StepPayment || got.PaymentID != "" {
		t.Fatalf("cancelled payment mutated state: %+v", got)
	}
}

func TestBookingCloseDiscardsSession(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()

	sess, _ := svc.Start(ctx, "pro-1")
	if err := svc.Close(ctx, sess.ID); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := svc.Get(ctx, sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after close, got %v", err)
	}
}

func svcMustAdvanceToReview(t *testing.T, svc *SessionService, ctx context.Context, sessionID string) {
	t.Helper()
	if _, err := svc.ConfirmDetails(ctx, sessionID); err != nil {
		t.Fatalf("confirm details: %v", err)
	}
	if _, err := svc.SubmitPayment(ctx, sessionID, models.PaymentCredit); err != nil {
		t.Fatalf("submit payment: %v", err)
	}
	if _, err := svc.CompleteService(ctx, sessionID); err != nil {
		t.Fatalf("complete service: %v", err)
	}
}
