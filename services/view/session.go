package view

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"handymatch/models"
	"handymatch/services/session"
)

var (
	ErrSessionNotFound = errors.New("view session not found or expired")
	ErrUnknownView     = errors.New("unknown view")
)

// Service holds per-client navigation state: the current view, the last
// analysis result and the active category filter. It is the only
// cross-flow coordination in the system.
type Service struct {
	Sessions   session.Store
	SessionTTL time.Duration
}

func NewService(sessions session.Store, ttl time.Duration) *Service {
	return &Service{Sessions: sessions, SessionTTL: ttl}
}

func viewKey(id string) string { return "view:" + id }

// StartSession creates a fresh session on the home view.
func (s *Service) StartSession(ctx context.Context) (models.ViewSession, error) {
	sess := models.ViewSession{
		ID:          uuid.New().String(),
		CurrentView: models.ViewHome,
	}
	if err := s.save(ctx, sess); err != nil {
		return models.ViewSession{}, err
	}
	return sess, nil
}

// Get returns the current session state.
func (s *Service) Get(ctx context.Context, sessionID string) (models.ViewSession, error) {
	return s.load(ctx, sessionID)
}

// Navigate switches the current view. Navigating home clears both the
// analysis result and the active filter.
func (s *Service) Navigate(ctx context.Context, sessionID string, target models.ViewState) (models.ViewSession, error) {
	if !target.Valid() {
		return models.ViewSession{}, ErrUnknownView
	}
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return models.ViewSession{}, err
	}

	sess.CurrentView = target
	if target == models.ViewHome {
		sess.AnalysisResult = nil
		sess.ActiveFilter = nil
	}
	if err := s.save(ctx, sess); err != nil {
		return models.ViewSession{}, err
	}
	return sess, nil
}

// CompleteAnalysis stores the analysis outcome, activates its category as
// the filter and forces navigation to the professional list.
func (s *Service) CompleteAnalysis(ctx context.Context, sessionID string, result models.AnalysisResult) (models.ViewSession, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return models.ViewSession{}, err
	}

	category := result.Category
	sess.AnalysisResult = &result
	sess.ActiveFilter = &category
	sess.CurrentView = models.ViewProList
	if err := s.save(ctx, sess); err != nil {
		return models.ViewSession{}, err
	}
	return sess, nil
}

// SetFilter activates a category filter directly (the popular-services
// shortcut) and shows the professional list.
func (s *Service) SetFilter(ctx context.Context, sessionID string, category models.Category) (models.ViewSession, error) {
	if !category.Valid() {
		return models.ViewSession{}, errors.New("unknown category")
	}
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return models.ViewSession{}, err
	}

	sess.ActiveFilter = &category
	sess.CurrentView = models.ViewProList
	if err := s.save(ctx, sess); err != nil {
		return models.ViewSession{}, err
	}
	return sess, nil
}

// ClearFilter drops both the active filter and the analysis result.
func (s *Service) ClearFilter(ctx context.Context, sessionID string) (models.ViewSession, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return models.ViewSession{}, err
	}

	sess.ActiveFilter = nil
	sess.AnalysisResult = nil
	if err := s.save(ctx, sess); err != nil {
		return models.ViewSession{}, err
	}
	return sess, nil
}

func (s *Service) load(ctx context.Context, sessionID string) (models.ViewSession, error) {
	var sess models.ViewSession
	err := s.Sessions.Load(ctx, viewKey(sessionID), &sess)
	if errors.Is(err, session.ErrNotFound) {
		return models.ViewSession{}, ErrSessionNotFound
	}
	if err != nil {
		return models.ViewSession{}, err
	}
	return sess, nil
}

func (s *Service) save(ctx context.Context, sess models.ViewSession) error {
	return s.Sessions.Save(ctx, viewKey(sess.ID), sess, s.SessionTTL)
}
