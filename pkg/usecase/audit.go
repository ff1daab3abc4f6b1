package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/vantis-uk/vantis/pkg/domain/interfaces"
	"github.com/vantis-uk/vantis/pkg/domain/model"
	"github.com/vantis-uk/vantis/pkg/domain/model/audit"
	"github.com/vantis-uk/vantis/pkg/domain/types"
	"github.com/vantis-uk/vantis/pkg/utils/errutil"
	"github.com/vantis-uk/vantis/pkg/utils/logging"
)

// SessionView is a read-only snapshot of an audit session
type SessionView struct {
	ID        model.SessionID           `json:"id"`
	State     types.QuizState           `json:"state"`
	Answers   map[types.QuestionID]bool `json:"answers"`
	Answered  int                       `json:"answered"`
	Total     int                       `json:"total"`
	Complete  bool                      `json:"complete"`
	Company   string                    `json:"company,omitempty"`
	LastError string                    `json:"last_error,omitempty"`
	Result    *ResultView               `json:"result,omitempty"`
}

// ResultView is a risk result with its tier copy
type ResultView struct {
	audit.RiskResult
	Label       string `json:"label"`
	Description string `json:"description"`
}

func newResultView(r *audit.RiskResult) *ResultView {
	if r == nil {
		return nil
	}
	return &ResultView{
		RiskResult:  *r,
		Label:       r.Tier.Label(),
		Description: r.Tier.Description(),
	}
}

// AuditUseCase drives audit sessions through the quiz state machine
type AuditUseCase struct {
	repo    interfaces.Repository
	bank    *audit.QuestionBank
	leads   *leadDispatcher
	metrics Metrics
	delay   time.Duration
	ttl     time.Duration
	now     func() time.Time
	sleep   func(ctx context.Context, d time.Duration)
}

func newAuditUseCase(repo interfaces.Repository, bank *audit.QuestionBank, leads *leadDispatcher, metrics Metrics, delay, ttl time.Duration, now func() time.Time) *AuditUseCase {
	return &AuditUseCase{
		repo:    repo,
		bank:    bank,
		leads:   leads,
		metrics: metrics,
		delay:   delay,
		ttl:     ttl,
		now:     now,
		sleep:   sleepContext,
	}
}

// Questions returns the bank in display order
func (uc *AuditUseCase) Questions() []audit.Question {
	return uc.bank.Questions()
}

// MaxScore returns the highest attainable raw score
func (uc *AuditUseCase) MaxScore() int {
	return uc.bank.MaxScore()
}

// StartSession creates a new session in the Collecting state
func (uc *AuditUseCase) StartSession(ctx context.Context) (*SessionView, error) {
	if _, err := uc.Sweep(ctx); err != nil {
		logging.From(ctx).Warn("failed to sweep idle sessions", "error", err.Error())
	}

	session := model.NewAuditSession(uc.bank, uc.now())
	if err := uc.repo.Session().Put(ctx, session); err != nil {
		return nil, goerr.Wrap(err, "failed to store session")
	}
	uc.metrics.SessionStarted()

	logging.From(ctx).Debug("audit session started", "session_id", session.ID)
	return viewOf(session), nil
}

// GetSession returns the current view of a session
func (uc *AuditUseCase) GetSession(ctx context.Context, id model.SessionID) (*SessionView, error) {
	session, err := uc.getSession(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()
	return viewOf(session), nil
}

// Notices returns and clears the lead delivery notices raised for a session
func (uc *AuditUseCase) Notices(ctx context.Context, id model.SessionID) ([]model.Notice, error) {
	session, err := uc.getSession(ctx, id)
	if err != nil {
		return nil, err
	}
	return session.DrainNotices(), nil
}

// EndSession discards a session. Pending lead deliveries are not affected.
func (uc *AuditUseCase) EndSession(ctx context.Context, id model.SessionID) error {
	if err := uc.repo.Session().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete session", goerr.V(SessionIDKey, id))
	}
	return nil
}

// Dispatch applies ev to the session and returns the resulting view.
// A SubmitEvent blocks for the calculating delay before results are shown.
func (uc *AuditUseCase) Dispatch(ctx context.Context, id model.SessionID, ev Event) (*SessionView, error) {
	session, err := uc.getSession(ctx, id)
	if err != nil {
		return nil, err
	}

	switch ev := ev.(type) {
	case AnswerEvent:
		return uc.answer(ctx, session, ev)
	case SubmitEvent:
		return uc.submit(ctx, session, ev)
	case ResetEvent:
		return uc.reset(ctx, session)
	default:
		return nil, goerr.New("unsupported event", goerr.V(SessionIDKey, id))
	}
}

func (uc *AuditUseCase) answer(ctx context.Context, session *model.AuditSession, ev AnswerEvent) (*SessionView, error) {
	session.Mu.Lock()
	defer session.Mu.Unlock()
	session.Touch(uc.now())

	ok, err := session.Quiz.Answer(ev.QuestionID, ev.Value)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to record answer",
			goerr.V(SessionIDKey, session.ID), goerr.V(QuestionIDKey, ev.QuestionID))
	}
	if !ok {
		return nil, goerr.Wrap(ErrUnknownQuestion, "answer ignored",
			goerr.V(SessionIDKey, session.ID), goerr.V(QuestionIDKey, ev.QuestionID))
	}

	return viewOf(session), nil
}

func (uc *AuditUseCase) submit(ctx context.Context, session *model.AuditSession, ev SubmitEvent) (*SessionView, error) {
	session.Mu.Lock()
	session.Touch(uc.now())

	if err := session.Quiz.BeginSubmit(ev.Contact); err != nil {
		if errors.Is(err, audit.ErrValidation) {
			uc.metrics.ValidationFailed()
		}
		session.Mu.Unlock()
		return nil, goerr.Wrap(err, "submission rejected", goerr.V(SessionIDKey, session.ID))
	}

	contact := session.Quiz.Contact()
	lead := newLead(types.LeadSourceAudit, contact.Name, contact.Email, contact.Company, "",
		session.Quiz.Answers().Snapshot(), uc.now())
	epoch := session.Quiz.Epoch()
	session.Mu.Unlock()

	// Lead delivery and result display are independent: the delivery outcome only
	// reaches the session as a notice.
	uc.leads.dispatch(ctx, lead, &sessionNotifier{session: session, now: uc.now})

	uc.sleep(ctx, uc.delay)

	session.Mu.Lock()
	defer session.Mu.Unlock()

	if session.Quiz.Epoch() != epoch {
		logging.From(ctx).Debug("session reset while calculating", "session_id", session.ID)
		return viewOf(session), nil
	}

	result, err := session.Quiz.Finish()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to finish audit", goerr.V(SessionIDKey, session.ID))
	}
	uc.metrics.ResultShown(result.Tier)

	logging.From(ctx).Info("audit result shown",
		"session_id", session.ID,
		"lead_id", lead.ID,
		"tier", result.Tier,
		"raw_score", result.RawScore,
	)
	return viewOf(session), nil
}

func (uc *AuditUseCase) reset(ctx context.Context, session *model.AuditSession) (*SessionView, error) {
	session.Mu.Lock()
	defer session.Mu.Unlock()
	session.Touch(uc.now())

	session.Quiz.Reset()
	return viewOf(session), nil
}

func (uc *AuditUseCase) getSession(ctx context.Context, id model.SessionID) (*model.AuditSession, error) {
	session, err := uc.repo.Session().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrSessionNotFound, "no such session", goerr.V(SessionIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get session", goerr.V(SessionIDKey, id))
	}

	if uc.ttl > 0 && uc.now().Sub(session.Touched()) > uc.ttl {
		if err := uc.repo.Session().Delete(ctx, id); err != nil {
			_ = errutil.Handle(ctx, goerr.Wrap(err, "failed to delete expired session", goerr.V(SessionIDKey, id)), "delete expired session")
		}
		return nil, goerr.Wrap(ErrSessionNotFound, "session expired", goerr.V(SessionIDKey, id))
	}
	return session, nil
}

// Sweep drops sessions idle for longer than the TTL and returns how many were removed
func (uc *AuditUseCase) Sweep(ctx context.Context) (int, error) {
	if uc.ttl <= 0 {
		return 0, nil
	}
	removed, err := uc.repo.Session().DeleteIdleSince(ctx, uc.now().Add(-uc.ttl))
	if err != nil {
		return 0, goerr.Wrap(err, "failed to sweep idle sessions")
	}
	if removed > 0 {
		logging.From(ctx).Debug("swept idle audit sessions", "count", removed)
	}
	return removed, nil
}

func viewOf(session *model.AuditSession) *SessionView {
	q := session.Quiz
	return &SessionView{
		ID:        session.ID,
		State:     q.State(),
		Answers:   q.Answers().Snapshot(),
		Answered:  q.Answers().Len(),
		Total:     q.Bank().Len(),
		Complete:  q.Answers().IsComplete(),
		Company:   q.Contact().Company,
		LastError: q.LastError(),
		Result:    newResultView(q.Result()),
	}
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
