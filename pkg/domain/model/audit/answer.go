package audit

import (
	"github.com/vantis-uk/vantis/pkg/domain/types"
)

// AnswerSet holds the latest yes/no answer per question. An id has no entry until answered.
type AnswerSet struct {
	bank    *QuestionBank
	answers map[types.QuestionID]bool
}

// NewAnswerSet creates an empty answer set bound to bank
func NewAnswerSet(bank *QuestionBank) *AnswerSet {
	return &AnswerSet{
		bank:    bank,
		answers: make(map[types.QuestionID]bool, bank.Len()),
	}
}

// Record stores value for id, replacing any earlier answer.
// Ids outside the bank are ignored and reported by returning false.
func (a *AnswerSet) Record(id types.QuestionID, value bool) bool {
	if !a.bank.Has(id) {
		return false
	}
	a.answers[id] = value
	return true
}

// Get returns the answer for id and whether it has been answered
func (a *AnswerSet) Get(id types.QuestionID) (value bool, answered bool) {
	value, answered = a.answers[id]
	return value, answered
}

// Len returns the number of answered questions
func (a *AnswerSet) Len() int {
	return len(a.answers)
}

// IsComplete reports whether every question in the bank has an answer
func (a *AnswerSet) IsComplete() bool {
	return len(a.answers) == a.bank.Len()
}

// Reset forgets every answer
func (a *AnswerSet) Reset() {
	a.answers = make(map[types.QuestionID]bool, a.bank.Len())
}

// Snapshot returns a copy of the answers
func (a *AnswerSet) Snapshot() map[types.QuestionID]bool {
	out := make(map[types.QuestionID]bool, len(a.answers))
	for k, v := range a.answers {
		out[k] = v
	}
	return out
}
