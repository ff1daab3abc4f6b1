package usecase_test

import (
	"context"
	"errors"
	"sync"

	"github.com/vantis-uk/vantis/pkg/domain/interfaces"
	"github.com/vantis-uk/vantis/pkg/domain/model"
	"github.com/vantis-uk/vantis/pkg/domain/types"
)

type mockGateway struct {
	mu      sync.Mutex
	outcome types.SubmitOutcome
	err     error
	leads   []*model.Lead
}

func (g *mockGateway) Submit(ctx context.Context, lead *model.Lead) (types.SubmitOutcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.leads = append(g.leads, lead)
	if g.outcome == "" {
		return types.SubmitOutcomeSuccess, g.err
	}
	return g.outcome, g.err
}

func (g *mockGateway) Leads() []*model.Lead {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*model.Lead, len(g.leads))
	copy(out, g.leads)
	return out
}

type mockNotifier struct {
	mu      sync.Mutex
	err     error
	reports []*model.DeliveryReport
}

func (n *mockNotifier) Notify(ctx context.Context, report *model.DeliveryReport) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reports = append(n.reports, report)
	return n.err
}

func (n *mockNotifier) Reports() []*model.DeliveryReport {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]*model.DeliveryReport, len(n.reports))
	copy(out, n.reports)
	return out
}

type mockMirror struct {
	mu    sync.Mutex
	leads []*model.Lead
}

func (m *mockMirror) MirrorLead(ctx context.Context, lead *model.Lead) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leads = append(m.leads, lead)
	return nil
}

func (m *mockMirror) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.leads)
}

type mockMetrics struct {
	mu         sync.Mutex
	started    int
	tiers      []types.RiskTier
	validation int
}

func (m *mockMetrics) SessionStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started++
}

func (m *mockMetrics) ResultShown(tier types.RiskTier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tiers = append(m.tiers, tier)
}

func (m *mockMetrics) ValidationFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validation++
}

// failingDeleteRepo is an in-memory repository whose Delete always fails
type failingDeleteRepo struct {
	interfaces.Repository
}

func (r *failingDeleteRepo) Session() interfaces.SessionRepository {
	return &failingDeleteSessions{SessionRepository: r.Repository.Session()}
}

type failingDeleteSessions struct {
	interfaces.SessionRepository
}

func (s *failingDeleteSessions) Delete(ctx context.Context, id model.SessionID) error {
	return errors.New("session store unavailable")
}
