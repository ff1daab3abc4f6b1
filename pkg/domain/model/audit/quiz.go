package audit

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/vantis-uk/vantis/pkg/domain/types"
)

// Quiz is the state of one visitor's pass through the audit.
// It performs no I/O; the caller drives the transitions and owns any locking.
type Quiz struct {
	bank      *QuestionBank
	answers   *AnswerSet
	contact   Contact
	state     types.QuizState
	result    *RiskResult
	lastError string
	epoch     uint64
}

// NewQuiz creates a quiz in the Collecting state
func NewQuiz(bank *QuestionBank) *Quiz {
	return &Quiz{
		bank:    bank,
		answers: NewAnswerSet(bank),
		state:   types.QuizStateCollecting,
	}
}

// Bank returns the question bank the quiz was built from
func (q *Quiz) Bank() *QuestionBank { return q.bank }

// State returns the current state
func (q *Quiz) State() types.QuizState { return q.state }

// Answers returns the live answer set
func (q *Quiz) Answers() *AnswerSet { return q.answers }

// Contact returns the contact details captured by the last accepted submission
func (q *Quiz) Contact() Contact { return q.contact }

// Result returns the computed result, or nil before ResultsShown
func (q *Quiz) Result() *RiskResult { return q.result }

// Epoch increases on every Reset. A caller that releases its lock between BeginSubmit and
// Finish compares epochs to detect that the visitor restarted in between.
func (q *Quiz) Epoch() uint64 { return q.epoch }

// LastError returns the inline message from the most recent rejected submission
func (q *Quiz) LastError() string { return q.lastError }

// Answer records an answer. It returns false when id is unknown.
// Once the set first becomes complete the quiz moves to AwaitingContactInfo.
func (q *Quiz) Answer(id types.QuestionID, value bool) (bool, error) {
	if !q.state.AcceptsAnswers() {
		return false, goerr.Wrap(ErrInvalidTransition, "cannot answer now",
			goerr.V(StateKey, q.state), goerr.V(QuestionIDKey, id))
	}

	if !q.answers.Record(id, value) {
		return false, nil
	}

	if q.state == types.QuizStateCollecting && q.answers.IsComplete() {
		q.state = types.QuizStateAwaitingContactInfo
	}
	return true, nil
}

// BeginSubmit validates contact and moves to Submitting. On a validation error the quiz
// stays in AwaitingContactInfo with LastError set.
func (q *Quiz) BeginSubmit(contact Contact) error {
	if q.state != types.QuizStateAwaitingContactInfo {
		return goerr.Wrap(ErrInvalidTransition, "cannot submit now", goerr.V(StateKey, q.state))
	}

	contact = contact.Normalize()
	if err := contact.Validate(); err != nil {
		q.lastError = ValidationHint(err)
		return err
	}

	q.contact = contact
	q.lastError = ""
	q.state = types.QuizStateSubmitting
	return nil
}

// Finish scores the answers and moves from Submitting to ResultsShown
func (q *Quiz) Finish() (*RiskResult, error) {
	if q.state != types.QuizStateSubmitting {
		return nil, goerr.Wrap(ErrInvalidTransition, "cannot finish now", goerr.V(StateKey, q.state))
	}

	result, err := ComputeScore(q.answers, q.bank)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to score quiz")
	}

	q.result = result
	q.state = types.QuizStateResultsShown
	return result, nil
}

// Reset clears answers, contact details and result, and returns to Collecting
func (q *Quiz) Reset() {
	q.answers.Reset()
	q.contact = Contact{}
	q.result = nil
	q.lastError = ""
	q.state = types.QuizStateCollecting
	q.epoch++
}
