package model

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/vantis-uk/vantis/pkg/domain/model/audit"
)

// SessionID identifies one visitor's audit session
type SessionID string

// NewSessionID returns a time-ordered session ID
func NewSessionID() SessionID {
	return SessionID(uuid.Must(uuid.NewV7()).String())
}

// String returns the string representation of SessionID
func (id SessionID) String() string {
	return string(id)
}

// AuditSession owns one quiz and the notices raised for it.
// Mu serialises events for the session; holders of the session must lock it before
// touching Quiz.
type AuditSession struct {
	Mu sync.Mutex

	ID        SessionID
	Quiz      *audit.Quiz
	CreatedAt time.Time

	touched  atomic.Int64
	noticeMu sync.Mutex
	notices  []Notice
}

// NewAuditSession creates a session with a fresh quiz
func NewAuditSession(bank *audit.QuestionBank, now time.Time) *AuditSession {
	s := &AuditSession{
		ID:        NewSessionID(),
		Quiz:      audit.NewQuiz(bank),
		CreatedAt: now,
	}
	s.Touch(now)
	return s
}

// Touch records activity on the session
func (s *AuditSession) Touch(now time.Time) {
	s.touched.Store(now.UnixNano())
}

// Touched returns the time of the last recorded activity
func (s *AuditSession) Touched() time.Time {
	return time.Unix(0, s.touched.Load())
}

// AddNotice appends a notice. Safe to call without holding Mu.
func (s *AuditSession) AddNotice(n Notice) {
	s.noticeMu.Lock()
	defer s.noticeMu.Unlock()
	s.notices = append(s.notices, n)
}

// DrainNotices returns and clears pending notices. Safe to call without holding Mu.
func (s *AuditSession) DrainNotices() []Notice {
	s.noticeMu.Lock()
	defer s.noticeMu.Unlock()
	out := s.notices
	s.notices = nil
	return out
}
