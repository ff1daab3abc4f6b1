package terminal

import (
	"context"

	"github.com/vantis-uk/vantis/pkg/domain/interfaces"
	"github.com/vantis-uk/vantis/pkg/domain/model"
)

// Notifier prints lead delivery outcomes as an alert line
type Notifier struct {
	console *Console
}

var _ interfaces.LeadNotifier = &Notifier{}

// NewNotifier returns a lead notifier printing to console
func NewNotifier(console *Console) *Notifier {
	return &Notifier{console: console}
}

func (n *Notifier) Notify(ctx context.Context, report *model.DeliveryReport) error {
	msg := model.NoticeMessage(report.Outcome)
	if report.Outcome.IsSuccess() {
		n.console.printf(colorSuccess, "\n✔ %s\n", msg)
	} else {
		n.console.printf(colorFailure, "\n✘ %s\n", msg)
	}
	return nil
}
