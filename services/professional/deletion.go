package professional

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"handymatch/models"
	"handymatch/services/directory"
	"handymatch/services/session"
)

// DeletionService drives the account-deletion flow:
// SEARCH -> CONFIRM -> SUCCESS. Search looks the email up in the directory;
// confirm is the irreversible removal. Cancelling discards the session,
// which puts the client back on the search form.
type DeletionService struct {
	Directory   *directory.Store
	Sessions    session.Store
	LookupDelay time.Duration
	SessionTTL  time.Duration
	Logger      *zap.Logger
}

func NewDeletionService(dir *directory.Store, sessions session.Store, lookupDelay, ttl time.Duration, logger *zap.Logger) *DeletionService {
	return &DeletionService{
		Directory:   dir,
		Sessions:    sessions,
		LookupDelay: lookupDelay,
		SessionTTL:  ttl,
		Logger:      logger,
	}
}

func deletionKey(id string) string { return "deletion:" + id }

// Start performs the simulated profile lookup. The delay is context-aware:
// a cancelled context aborts with no session created. An email with no
// matching record fails with ErrAccountNotFound instead of proceeding.
func (s *DeletionService) Start(ctx context.Context, email string) (models.DeletionSession, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return models.DeletionSession{}, ErrEmailRequired
	}

	timer := time.NewTimer(s.LookupDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return models.DeletionSession{}, ctx.Err()
	case <-timer.C:
	}

	if _, ok := s.Directory.FindByEmail(email); !ok {
		return models.DeletionSession{}, ErrAccountNotFound
	}

	sess := models.DeletionSession{
		ID:    uuid.New().String(),
		Email: email,
		Step:  models.DeletionStepConfirm,
	}
	if err := s.Sessions.Save(ctx, deletionKey(sess.ID), sess, s.SessionTTL); err != nil {
		return models.DeletionSession{}, err
	}
	return sess, nil
}

// Confirm removes every record matching the session's email and moves the
// flow to its terminal state. Idempotent at the store level; a second
// confirm on the same session is rejected by the step check.
func (s *DeletionService) Confirm(ctx context.Context, sessionID string) (models.DeletionSession, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return models.DeletionSession{}, err
	}
	if sess.Step != models.DeletionStepConfirm {
		return models.DeletionSession{}, ErrInvalidStep
	}

	sess.Removed = s.Directory.RemoveByEmail(sess.Email)
	sess.Step = models.DeletionStepSuccess
	if err := s.Sessions.Save(ctx, deletionKey(sess.ID), sess, s.SessionTTL); err != nil {
		return models.DeletionSession{}, err
	}

	s.Logger.Info("Professional account deleted",
		zap.String("email", sess.Email),
		zap.Int("removed", sess.Removed),
	)
	return sess, nil
}

// Cancel discards the deletion session.
func (s *DeletionService) Cancel(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, deletionKey(sessionID))
}

// Get returns the current deletion session state.
func (s *DeletionService) Get(ctx context.Context, sessionID string) (models.DeletionSession, error) {
	return s.load(ctx, sessionID)
}

func (s *DeletionService) load(ctx context.Context, sessionID string) (models.DeletionSession, error) {
	var sess models.DeletionSession
	err := s.Sessions.Load(ctx, deletionKey(sessionID), &sess)
	if errors.Is(err, session.ErrNotFound) {
		return models.DeletionSession{}, ErrSessionNotFound
	}
	if err != nil {
		return models.DeletionSession{}, err
	}
	return sess, nil
}
