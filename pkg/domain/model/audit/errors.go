package audit

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the audit engine
var (
	ErrEmptyQuestionBank   = goerr.New("question bank has no questions")
	ErrInvalidQuestionBank = goerr.New("invalid question bank")
	ErrIncompleteAnswers   = goerr.New("not every question has been answered")
	ErrInvalidTransition   = goerr.New("event is not allowed in the current quiz state")
	ErrValidation          = goerr.New("contact details are invalid")
)

// Context keys for error values
const (
	QuestionIDKey = "question_id"
	StateKey      = "state"
	FieldKey      = "field"
	HintKey       = "hint"
	AnsweredKey   = "answered"
	TotalKey      = "total"
)
