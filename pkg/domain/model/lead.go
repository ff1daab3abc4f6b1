package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/vantis-uk/vantis/pkg/domain/types"
)

// LeadID identifies a single lead delivery
type LeadID string

// NewLeadID returns a time-ordered lead ID
func NewLeadID() LeadID {
	return LeadID(uuid.Must(uuid.NewV7()).String())
}

// String returns the string representation of LeadID
func (id LeadID) String() string {
	return string(id)
}

// Lead is a prospective client's details as sent to the intake endpoint.
// It is built once at submission time, sent once, and never stored.
type Lead struct {
	ID          LeadID
	Source      types.LeadSource
	Name        string `masq:"secret"`
	Email       string `masq:"secret"`
	Company     string
	Message     string
	Answers     map[types.QuestionID]bool
	SubmittedAt time.Time
}

// Answered reports whether the lead carries quiz answers
func (l *Lead) Answered() bool {
	return len(l.Answers) > 0
}

// Notice is an alert about a finished lead delivery. It is the only way a visitor learns
// the delivery outcome; it never feeds back into quiz state.
type Notice struct {
	LeadID    LeadID              `json:"lead_id"`
	Outcome   types.SubmitOutcome `json:"outcome"`
	Message   string              `json:"message"`
	CreatedAt time.Time           `json:"created_at"`
}

// NoticeMessage returns the visitor-facing text for a delivery outcome
func NoticeMessage(outcome types.SubmitOutcome) string {
	switch outcome {
	case types.SubmitOutcomeSuccess:
		return "Thanks! Your details have been sent to our team."
	case types.SubmitOutcomeServerRejected:
		return "Sorry, we could not save your details. Please try again or email us directly."
	default:
		return "Sorry, there was a network problem sending your details. Please try again later."
	}
}

// DeliveryReport describes one finished lead delivery attempt
type DeliveryReport struct {
	Lead     *Lead
	Outcome  types.SubmitOutcome
	Err      error
	Duration time.Duration
}
