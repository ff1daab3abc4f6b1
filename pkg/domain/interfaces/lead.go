package interfaces

import (
	"context"

	"github.com/vantis-uk/vantis/pkg/domain/model"
	"github.com/vantis-uk/vantis/pkg/domain/types"
)

// LeadGateway delivers a lead to the external intake endpoint.
// Implementations make exactly one attempt; the returned error carries detail for logs
// and is non-nil whenever the outcome is not a success.
type LeadGateway interface {
	Submit(ctx context.Context, lead *model.Lead) (types.SubmitOutcome, error)
}

// LeadNotifier receives the outcome of a lead delivery
type LeadNotifier interface {
	Notify(ctx context.Context, report *model.DeliveryReport) error
}

// LeadMirror copies accepted leads into a secondary system
type LeadMirror interface {
	MirrorLead(ctx context.Context, lead *model.Lead) error
}
