package usecase

import (
	"github.com/vantis-uk/vantis/pkg/domain/model/audit"
	"github.com/vantis-uk/vantis/pkg/domain/types"
)

// Event is a visitor action applied to an audit session
type Event interface {
	eventName() string
}

// AnswerEvent records a yes/no answer
type AnswerEvent struct {
	QuestionID types.QuestionID
	Value      bool
}

// SubmitEvent sends the contact form that gates the results
type SubmitEvent struct {
	Contact audit.Contact
}

// ResetEvent starts the audit over
type ResetEvent struct{}

func (AnswerEvent) eventName() string { return "answer" }
func (SubmitEvent) eventName() string { return "submit" }
func (ResetEvent) eventName() string  { return "reset" }
