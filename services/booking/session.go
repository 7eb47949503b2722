package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"handymatch/models"
	"handymatch/services/directory"
	"handymatch/services/session"
)

// defaultHours is the starting hour estimate for a new booking.
const defaultHours = 2

// SessionService drives the linear hire-and-escrow flow:
// DETAILS -> PAYMENT -> ESCROW -> REVIEW -> SUCCESS. There are no backward
// transitions; closing the session discards it entirely.
type SessionService struct {
	Directory  *directory.Store
	Sessions   session.Store
	Payments   PaymentProcessor
	SessionTTL time.Duration
}

func NewSessionService(dir *directory.Store, sessions session.Store, payments PaymentProcessor, ttl time.Duration) *SessionService {
	return &SessionService{
		Directory:  dir,
		Sessions:   sessions,
		Payments:   payments,
		SessionTTL: ttl,
	}
}

func sessionKey(id string) string { return "booking:" + id }

// Start opens a booking session against a professional from the directory.
func (s *SessionService) Start(ctx context.Context, professionalID string) (models.BookingSession, error) {
	pro, ok := s.Directory.FindByID(professionalID)
	if !ok {
		return models.BookingSession{}, ErrProfessionalNotFound
	}

	now := time.Now()
	sess := models.BookingSession{
		ID:           uuid.New().String(),
		Professional: pro,
		Step:         models.StepDetails,
		Hours:        defaultHours,
		Rating:       5,
		Quote:        BuildQuote(defaultHours, pro.HourlyRate),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.save(ctx, sess); err != nil {
		return models.BookingSession{}, err
	}
	return sess, nil
}

// Get returns the current session state.
func (s *SessionService) Get(ctx context.Context, sessionID string) (models.BookingSession, error) {
	return s.load(ctx, sessionID)
}

// SetHours adjusts the hour estimate while still on the details step.
// Values below 1 are rejected, which makes a decrement at 1 a no-op for
// clients that clamp.
func (s *SessionService) SetHours(ctx context.Context, sessionID string, hours int) (models.BookingSession, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return models.BookingSession{}, err
	}
	if sess.Step != models.StepDetails {
		return models.BookingSession{}, ErrInvalidStep
	}
	if hours < 1 {
		return models.BookingSession{}, ErrInvalidHours
	}

	sess.Hours = hours
	sess.Quote = BuildQuote(hours, sess.Professional.HourlyRate)
	sess.UpdatedAt = time.Now()
	if err := s.save(ctx, sess); err != nil {
		return models.BookingSession{}, err
	}
	return sess, nil
}

// ConfirmDetails locks the hour estimate and moves to payment selection.
func (s *SessionService) ConfirmDetails(ctx context.Context, sessionID string) (models.BookingSession, error) {
	return s.advance(ctx, sessionID, models.StepDetails, models.StepPayment)
}

// SubmitPayment runs the simulated capture and moves the session into
// escrow. A cancelled context aborts before any state change.
func (s *SessionService) SubmitPayment(ctx context.Context, sessionID string, method models.PaymentMethod) (models.BookingSession, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return models.BookingSession{}, err
	}
	if sess.Step != models.StepPayment {
		return models.BookingSession{}, ErrInvalidStep
	}
	if !method.Valid() {
		return models.BookingSession{}, ErrInvalidMethod
	}

	paymentID, err := s.Payments.Process(ctx, sess.Quote.TotalAmount, method)
	if err != nil {
		return models.BookingSession{}, err
	}

	sess.Method = method
	sess.PaymentID = paymentID
	sess.Step = models.StepEscrow
	sess.UpdatedAt = time.Now()
	if err := s.save(ctx, sess); err != nil {
		return models.BookingSession{}, err
	}
	return sess, nil
}

// CompleteService is the buyer asserting the work is done, opening the
// review step.
func (s *SessionService) CompleteService(ctx context.Context, sessionID string) (models.BookingSession, error) {
	return s.advance(ctx, sessionID, models.StepEscrow, models.StepReview)
}

// SubmitReview records the rating and comment, releases the escrowed
// payment and returns the final receipt. The comment is mandatory; release
// never happens without one.
func (s *SessionService) SubmitReview(ctx context.Context, sessionID string, rating int, reviewText string) (models.BookingSession, models.Receipt, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return models.BookingSession{}, models.Receipt{}, err
	}
	if sess.Step != models.StepReview {
		return models.BookingSession{}, models.Receipt{}, ErrInvalidStep
	}
	if rating < 1 || rating > 5 {
		return models.BookingSession{}, models.Receipt{}, ErrInvalidRating
	}
	if strings.TrimSpace(reviewText) == "" {
		return models.BookingSession{}, models.Receipt{}, ErrReviewRequired
	}

	sess.Rating = rating
	sess.ReviewText = reviewText
	sess.Step = models.StepSuccess
	sess.UpdatedAt = time.Now()
	if err := s.save(ctx, sess); err != nil {
		return models.BookingSession{}, models.Receipt{}, err
	}

	receipt := models.Receipt{
		SessionID:      sess.ID,
		ProfessionalID: sess.Professional.ID,
		PaymentID:      sess.PaymentID,
		AmountPaid:     sess.Quote.TotalAmount,
		PlatformFee:    sess.Quote.PlatformFee,
		ProProceeds:    sess.Quote.ProProceeds,
		Rating:         sess.Rating,
		Review:         sess.ReviewText,
		ReleasedAt:     sess.UpdatedAt,
	}
	return sess, receipt, nil
}

// Close discards the session regardless of step.
func (s *SessionService) Close(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionKey(sessionID))
}

func (s *SessionService) advance(ctx context.Context, sessionID string, from, to models.BookingStep) (models.BookingSession, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return models.BookingSession{}, err
	}
	if sess.Step != from {
		return models.BookingSession{}, ErrInvalidStep
	}
	sess.Step = to
	sess.UpdatedAt = time.Now()
	if err := s.save(ctx, sess); err != nil {
		return models.BookingSession{}, err
	}
	return sess, nil
}

func (s *SessionService) load(ctx context.Context, sessionID string) (models.BookingSession, error) {
	var sess models.BookingSession
	err := s.Sessions.Load(ctx, sessionKey(sessionID), &sess)
	if errors.Is(err, session.ErrNotFound) {
		return models.BookingSession{}, ErrSessionNotFound
	}
	if err != nil {
		return models.BookingSession{}, err
	}
	return sess, nil
}

func (s *SessionService) save(ctx context.Context, sess models.BookingSession) error {
	return s.Sessions.Save(ctx, sessionKey(sess.ID), sess, s.SessionTTL)
}
