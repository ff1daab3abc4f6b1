package usecase

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/vantis-uk/vantis/pkg/domain/model/audit"
)

// Sentinel errors for use case layer
var (
	ErrSessionNotFound = goerr.New("audit session not found")
	ErrUnknownQuestion = goerr.New("unknown question")

	// Re-exported from the audit engine so callers only need this package
	ErrValidation        = audit.ErrValidation
	ErrInvalidTransition = audit.ErrInvalidTransition
	ErrIncompleteAnswers = audit.ErrIncompleteAnswers
)

// Context keys for error values
const (
	SessionIDKey  = "session_id"
	QuestionIDKey = "question_id"
	LeadIDKey     = "lead_id"
)
