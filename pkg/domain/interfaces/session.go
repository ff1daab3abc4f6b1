package interfaces

import (
	"context"
	"time"

	"github.com/vantis-uk/vantis/pkg/domain/model"
)

// SessionRepository stores live audit sessions keyed by ID
type SessionRepository interface {
	// Put stores or replaces a session
	Put(ctx context.Context, session *model.AuditSession) error

	// Get retrieves a session by ID
	Get(ctx context.Context, id model.SessionID) (*model.AuditSession, error)

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id model.SessionID) error

	// DeleteIdleSince removes sessions not updated since the given time and returns how many were removed
	DeleteIdleSince(ctx context.Context, since time.Time) (int, error)

	// Count returns the number of live sessions
	Count(ctx context.Context) (int, error)
}
