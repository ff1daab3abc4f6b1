package usecase

import (
	"time"

	"github.com/vantis-uk/vantis/pkg/domain/interfaces"
	"github.com/vantis-uk/vantis/pkg/domain/model/audit"
	"github.com/vantis-uk/vantis/pkg/domain/types"
)

const (
	// DefaultCalculatingDelay is how long results are held back after submission
	DefaultCalculatingDelay = 2 * time.Second
	// DefaultSessionTTL is how long an idle audit session is kept
	DefaultSessionTTL = 30 * time.Minute
)

// Metrics receives audit flow events
type Metrics interface {
	SessionStarted()
	ResultShown(tier types.RiskTier)
	ValidationFailed()
}

type nopMetrics struct{}

func (nopMetrics) SessionStarted()            {}
func (nopMetrics) ResultShown(types.RiskTier) {}
func (nopMetrics) ValidationFailed()          {}

// UseCases bundles the audit and contact flows built over one repository and lead gateway
type UseCases struct {
	repo      interfaces.Repository
	bank      *audit.QuestionBank
	gateway   interfaces.LeadGateway
	notifiers []interfaces.LeadNotifier
	mirror    interfaces.LeadMirror
	metrics   Metrics
	delay     time.Duration
	ttl       time.Duration
	now       func() time.Time

	Audit   *AuditUseCase
	Contact *ContactUseCase
}

// Option configures UseCases in New
type Option func(*UseCases)

// WithQuestionBank replaces the built-in question bank
func WithQuestionBank(bank *audit.QuestionBank) Option {
	return func(uc *UseCases) {
		uc.bank = bank
	}
}

// WithNotifiers adds receivers for lead delivery outcomes
func WithNotifiers(notifiers ...interfaces.LeadNotifier) Option {
	return func(uc *UseCases) {
		uc.notifiers = append(uc.notifiers, notifiers...)
	}
}

// WithLeadMirror sets a secondary system every lead is copied into
func WithLeadMirror(mirror interfaces.LeadMirror) Option {
	return func(uc *UseCases) {
		uc.mirror = mirror
	}
}

// WithMetrics sets the audit metrics sink
func WithMetrics(m Metrics) Option {
	return func(uc *UseCases) {
		uc.metrics = m
	}
}

// WithCalculatingDelay sets the pause between submission and results. Negative values are treated as zero.
func WithCalculatingDelay(d time.Duration) Option {
	return func(uc *UseCases) {
		if d < 0 {
			d = 0
		}
		uc.delay = d
	}
}

// WithSessionTTL sets how long idle sessions are kept
func WithSessionTTL(ttl time.Duration) Option {
	return func(uc *UseCases) {
		uc.ttl = ttl
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

// New wires the use cases. gateway is the lead intake endpoint and is required.
func New(repo interfaces.Repository, gateway interfaces.LeadGateway, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:    repo,
		gateway: gateway,
		bank:    audit.DefaultQuestionBank(),
		metrics: nopMetrics{},
		delay:   DefaultCalculatingDelay,
		ttl:     DefaultSessionTTL,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	leads := newLeadDispatcher(gateway, uc.notifiers, uc.mirror, uc.now)
	uc.Audit = newAuditUseCase(repo, uc.bank, leads, uc.metrics, uc.delay, uc.ttl, uc.now)
	uc.Contact = newContactUseCase(leads, uc.now)

	return uc
}

// QuestionBank returns the bank in use
func (uc *UseCases) QuestionBank() *audit.QuestionBank {
	return uc.bank
}
