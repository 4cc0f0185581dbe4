package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"legalmind/app/config"
	"legalmind/app/domain"

	"github.com/samber/do"
)

// Service is the process-wide registry of active sessions keyed by Telegram
// user ID. It exclusively owns all sessions; handlers borrow one for the
// duration of a single turn.
type Service struct {
	cfg *config.Config

	mu       sync.Mutex
	sessions map[int64]*domain.Session
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		cfg:      do.MustInvoke[*config.Config](di),
		sessions: make(map[int64]*domain.Session),
	}, nil
}

// Get returns the user's session if one exists.
func (s *Service) Get(userID int64) (*domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	return sess, ok
}

// GetOrCreate returns the user's session, creating an idle one on first
// contact.
func (s *Service) GetOrCreate(userID int64) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess
	}

	sess := domain.NewSession()
	s.sessions[userID] = sess
	return sess
}

// CreateOrReplace produces a fresh session for the user, discarding any
// previous one.
func (s *Service) CreateOrReplace(userID int64) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := domain.NewSession()
	s.sessions[userID] = sess
	return sess
}

// Len reports the number of live sessions.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

// RunReaper periodically evicts sessions inactive beyond the configured TTL,
// active or not. It stops when the context is cancelled.
func (s *Service) RunReaper(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Session.ReapInterval)
	defer ticker.Stop()

	slog.Info("Session reaper started",
		"interval", s.cfg.Session.ReapInterval,
		"ttl", s.cfg.Session.TTL)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Session reaper stopped")
			return
		case <-ticker.C:
			if reaped := s.reapOnce(time.Now()); reaped > 0 {
				slog.Info("Reaped inactive sessions", "count", reaped)
			}
		}
	}
}

// reapOnce deletes every session whose last activity is older than the TTL.
// Each session's own lock is taken before the final staleness check so a
// session is never deleted mid-turn.
func (s *Service) reapOnce(now time.Time) int {
	s.mu.Lock()
	candidates := make(map[int64]*domain.Session, len(s.sessions))
	for userID, sess := range s.sessions {
		candidates[userID] = sess
	}
	s.mu.Unlock()

	reaped := 0
	for userID, sess := range candidates {
		sess.Lock()
		stale := now.Sub(sess.LastActivity) > s.cfg.Session.TTL
		if stale {
			s.mu.Lock()
			if s.sessions[userID] == sess {
				delete(s.sessions, userID)
				reaped++
			}
			s.mu.Unlock()
		}
		sess.Unlock()
	}

	return reaped
}
