package audit

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/vantis-uk/vantis/pkg/domain/types"
)

// Question is a single weighted yes/no prompt. Answering yes adds Weight to the raw score.
type Question struct {
	ID     types.QuestionID `json:"id" toml:"id"`
	Text   string           `json:"text" toml:"text"`
	Weight int              `json:"weight" toml:"weight"`
}

// Validate checks if the Question is valid
func (q Question) Validate() error {
	if err := q.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid question ID")
	}
	if q.Text == "" {
		return goerr.Wrap(ErrInvalidQuestionBank, "question text is required", goerr.V(QuestionIDKey, q.ID))
	}
	if q.Weight < 1 {
		return goerr.Wrap(ErrInvalidQuestionBank, "question weight must be positive",
			goerr.V(QuestionIDKey, q.ID), goerr.V("weight", q.Weight))
	}
	return nil
}

// QuestionBank is an ordered, immutable list of questions
type QuestionBank struct {
	questions []Question
	index     map[types.QuestionID]int
	maxScore  int
}

// NewQuestionBank validates questions and builds a bank. The slice is copied.
func NewQuestionBank(questions []Question) (*QuestionBank, error) {
	if len(questions) == 0 {
		return nil, goerr.Wrap(ErrEmptyQuestionBank, "cannot build question bank")
	}

	bank := &QuestionBank{
		questions: make([]Question, len(questions)),
		index:     make(map[types.QuestionID]int, len(questions)),
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid question", goerr.V("index", i))
		}
		if _, dup := bank.index[q.ID]; dup {
			return nil, goerr.Wrap(ErrInvalidQuestionBank, "duplicate question ID", goerr.V(QuestionIDKey, q.ID))
		}
		bank.questions[i] = q
		bank.index[q.ID] = i
		bank.maxScore += q.Weight
	}

	return bank, nil
}

// Questions returns a copy of the questions in display order
func (b *QuestionBank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Len returns the number of questions
func (b *QuestionBank) Len() int {
	return len(b.questions)
}

// Has reports whether id belongs to the bank
func (b *QuestionBank) Has(id types.QuestionID) bool {
	_, ok := b.index[id]
	return ok
}

// Get returns the question with the given id
func (b *QuestionBank) Get(id types.QuestionID) (Question, bool) {
	i, ok := b.index[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[i], true
}

// MaxScore returns the sum of every question weight
func (b *QuestionBank) MaxScore() int {
	return b.maxScore
}

var defaultQuestions = []Question{
	{
		ID:     "q1",
		Text:   "Does your company decide how, when and where your contractors carry out their work?",
		Weight: 3,
	},
	{
		ID:     "q2",
		Text:   "Must your contractors do the work personally, with no genuine right to send a substitute?",
		Weight: 2,
	},
	{
		ID:     "q3",
		Text:   "Do your contractors work exclusively, or almost exclusively, for your company?",
		Weight: 2,
	},
	{
		ID:     "q4",
		Text:   "Are contractors integrated into your teams, with company email addresses, line managers or appraisals?",
		Weight: 2,
	},
	{
		ID:     "q5",
		Text:   "Have any contractors been engaged on rolling extensions for more than 12 months?",
		Weight: 3,
	},
	{
		ID:     "q6",
		Text:   "Do you supply the equipment, software and tools your contractors use?",
		Weight: 1,
	},
	{
		ID:     "q7",
		Text:   "Are contractors paid a fixed day rate regardless of what they deliver?",
		Weight: 1,
	},
}

// DefaultQuestionBank returns the built-in IR35 audit questions
func DefaultQuestionBank() *QuestionBank {
	bank, err := NewQuestionBank(defaultQuestions)
	if err != nil {
		panic("default question bank is invalid: " + err.Error())
	}
	return bank
}
