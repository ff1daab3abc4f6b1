package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/vantis-uk/vantis/pkg/domain/interfaces"
	"github.com/vantis-uk/vantis/pkg/domain/model"
	"github.com/vantis-uk/vantis/pkg/domain/types"
	"github.com/vantis-uk/vantis/pkg/utils/async"
	"github.com/vantis-uk/vantis/pkg/utils/errutil"
	"github.com/vantis-uk/vantis/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// leadDispatcher sends leads to the gateway and fans the outcome out to notifiers
type leadDispatcher struct {
	gateway   interfaces.LeadGateway
	notifiers []interfaces.LeadNotifier
	mirror    interfaces.LeadMirror
	now       func() time.Time
}

func newLeadDispatcher(gateway interfaces.LeadGateway, notifiers []interfaces.LeadNotifier, mirror interfaces.LeadMirror, now func() time.Time) *leadDispatcher {
	return &leadDispatcher{
		gateway:   gateway,
		notifiers: notifiers,
		mirror:    mirror,
		now:       now,
	}
}

// dispatch delivers lead in a detached goroutine. The caller never waits for it and its
// outcome only reaches extra and the configured notifiers.
func (d *leadDispatcher) dispatch(ctx context.Context, lead *model.Lead, extra ...interfaces.LeadNotifier) {
	async.Dispatch(ctx, func(ctx context.Context) error {
		d.deliver(ctx, lead, extra...)
		return nil
	})
}

// deliver makes one gateway attempt, mirrors the lead, and notifies. It returns the report.
func (d *leadDispatcher) deliver(ctx context.Context, lead *model.Lead, extra ...interfaces.LeadNotifier) *model.DeliveryReport {
	logger := logging.From(ctx).With("lead_id", lead.ID, "source", lead.Source)

	start := d.now()
	outcome, err := d.gateway.Submit(ctx, lead)
	if err == nil && !outcome.IsSuccess() {
		err = goerr.New("lead delivery failed", goerr.V("outcome", outcome))
	}
	report := &model.DeliveryReport{
		Lead:     lead,
		Outcome:  outcome,
		Err:      err,
		Duration: d.now().Sub(start),
	}

	if err != nil {
		logger.Warn("lead delivery failed", "outcome", outcome, "error", err.Error())
	} else {
		logger.Info("lead delivered", "duration", report.Duration)
	}

	var eg errgroup.Group
	if d.mirror != nil {
		eg.Go(func() error {
			if err := d.mirror.MirrorLead(ctx, lead); err != nil {
				_ = errutil.Handle(ctx, goerr.Wrap(err, "failed to mirror lead", goerr.V(LeadIDKey, lead.ID)), "lead mirror failed")
			}
			return nil
		})
	}
	notifiers := make([]interfaces.LeadNotifier, 0, len(d.notifiers)+len(extra))
	notifiers = append(notifiers, d.notifiers...)
	notifiers = append(notifiers, extra...)
	for _, n := range notifiers {
		eg.Go(func() error {
			if err := n.Notify(ctx, report); err != nil {
				_ = errutil.Handle(ctx, goerr.Wrap(err, "failed to notify lead outcome", goerr.V(LeadIDKey, lead.ID)), "lead notifier failed")
			}
			return nil
		})
	}
	_ = eg.Wait()

	return report
}

// sessionNotifier turns a delivery report into a notice on the visitor's session
type sessionNotifier struct {
	session *model.AuditSession
	now     func() time.Time
}

func (n *sessionNotifier) Notify(ctx context.Context, report *model.DeliveryReport) error {
	n.session.AddNotice(model.Notice{
		LeadID:    report.Lead.ID,
		Outcome:   report.Outcome,
		Message:   model.NoticeMessage(report.Outcome),
		CreatedAt: n.now(),
	})
	return nil
}

func newLead(source types.LeadSource, name, email, company, message string, answers map[types.QuestionID]bool, at time.Time) *model.Lead {
	return &model.Lead{
		ID:          model.NewLeadID(),
		Source:      source,
		Name:        name,
		Email:       email,
		Company:     company,
		Message:     message,
		Answers:     answers,
		SubmittedAt: at,
	}
}
