package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/vantis-uk/vantis/pkg/domain/model"
	"github.com/vantis-uk/vantis/pkg/domain/model/audit"
	"github.com/vantis-uk/vantis/pkg/domain/types"
)

const maxMessageLength = 5000

// ContactRequest is the general enquiry form on the contact page
type ContactRequest struct {
	Contact audit.Contact
	Message string
}

// ContactUseCase forwards contact-page enquiries to the lead gateway
type ContactUseCase struct {
	leads *leadDispatcher
	now   func() time.Time
}

func newContactUseCase(leads *leadDispatcher, now func() time.Time) *ContactUseCase {
	return &ContactUseCase{
		leads: leads,
		now:   now,
	}
}

// Submit validates the enquiry and delivers it synchronously, since the contact page has
// no other result to show. The returned report is never nil when err is nil.
func (uc *ContactUseCase) Submit(ctx context.Context, req ContactRequest) (*model.DeliveryReport, error) {
	contact := req.Contact.Normalize()
	if err := contact.Validate(); err != nil {
		return nil, goerr.Wrap(err, "contact enquiry rejected")
	}

	message := strings.TrimSpace(req.Message)
	if len(message) > maxMessageLength {
		return nil, goerr.Wrap(ErrValidation, "message is too long",
			goerr.V(audit.FieldKey, "message"),
			goerr.V(audit.HintKey, "Please keep your message under 5000 characters."),
			goerr.V("length", len(message)))
	}

	lead := newLead(types.LeadSourceContact, contact.Name, contact.Email, contact.Company, message, nil, uc.now())
	return uc.leads.deliver(ctx, lead), nil
}
