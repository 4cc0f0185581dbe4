package domain

import (
	"sync"
	"time"
)

// Session tracks one user's case intake across turns. A session is owned by
// the session store; handlers lock it for the whole turn so a user never has
// two messages processed against the same state concurrently.
type Session struct {
	mu sync.Mutex

	Active          bool
	AwaitingProblem bool
	Analysis        *Analysis
	Slots           map[string]string
	PendingSlot     string
	PendingKind     AnswerKind
	PendingQuestion string
	LastActivity    time.Time
}

func NewSession() *Session {
	return &Session{
		Slots:        make(map[string]string),
		LastActivity: time.Now(),
	}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Touch updates the last-activity timestamp. Caller must hold the lock.
func (s *Session) Touch() {
	s.LastActivity = time.Now()
}

// Reset returns the session to its initial state, discarding any prior case.
func (s *Session) Reset() {
	s.Active = false
	s.AwaitingProblem = false
	s.Analysis = nil
	s.Slots = make(map[string]string)
	s.ClearPending()
	s.LastActivity = time.Now()
}

// Deactivate closes the current case but keeps collected state around until
// the session is reaped or reset.
func (s *Session) Deactivate() {
	s.Active = false
	s.AwaitingProblem = false
	s.ClearPending()
}

func (s *Session) SetPending(f Followup) {
	s.PendingSlot = f.Slot
	s.PendingKind = f.Kind
	s.PendingQuestion = f.Question
}

func (s *Session) ClearPending() {
	s.PendingSlot = ""
	s.PendingKind = ""
	s.PendingQuestion = ""
}
