package audit

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/vantis-uk/vantis/pkg/domain/types"
)

const (
	criticalThreshold  = 65.0
	ambiguousThreshold = 35.0
)

// RiskResult is the outcome of scoring a complete answer set
type RiskResult struct {
	RawScore   int            `json:"raw_score"`
	MaxScore   int            `json:"max_score"`
	Percentage float64        `json:"percentage"`
	Tier       types.RiskTier `json:"tier"`
}

// ComputeScore sums the weights of questions answered yes and classifies the percentage.
// answers must be complete.
func ComputeScore(answers *AnswerSet, bank *QuestionBank) (*RiskResult, error) {
	if bank == nil || bank.Len() == 0 || bank.MaxScore() == 0 {
		return nil, goerr.Wrap(ErrEmptyQuestionBank, "cannot compute score")
	}
	if answers == nil || !answers.IsComplete() {
		answered := 0
		if answers != nil {
			answered = answers.Len()
		}
		return nil, goerr.Wrap(ErrIncompleteAnswers, "cannot compute score",
			goerr.V(AnsweredKey, answered), goerr.V(TotalKey, bank.Len()))
	}

	raw := 0
	for _, q := range bank.questions {
		if v, _ := answers.Get(q.ID); v {
			raw += q.Weight
		}
	}

	pct := float64(raw) / float64(bank.MaxScore()) * 100
	return &RiskResult{
		RawScore:   raw,
		MaxScore:   bank.MaxScore(),
		Percentage: pct,
		Tier:       Classify(pct),
	}, nil
}

// Classify maps a percentage to a tier. Thresholds are strict: exactly 65 is Ambiguous
// and exactly 35 is Exposed.
func Classify(percentage float64) types.RiskTier {
	switch {
	case percentage > criticalThreshold:
		return types.RiskTierCritical
	case percentage > ambiguousThreshold:
		return types.RiskTierAmbiguous
	default:
		return types.RiskTierExposed
	}
}
