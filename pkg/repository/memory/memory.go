package memory

import (
	"github.com/vantis-uk/vantis/pkg/domain/interfaces"
)

// Repository is the in-memory implementation of interfaces.Repository
type Repository = Memory

type Memory struct {
	session *sessionRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		session: newSessionRepository(),
	}
}

func (m *Memory) Session() interfaces.SessionRepository {
	return m.session
}

// Close is a no-op; sessions are discarded with the process
func (m *Memory) Close() error {
	return nil
}
