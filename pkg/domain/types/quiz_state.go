package types

// QuizState represents where an audit session is in the quiz flow
type QuizState string

const (
	QuizStateCollecting          QuizState = "COLLECTING"
	QuizStateAwaitingContactInfo QuizState = "AWAITING_CONTACT_INFO"
	QuizStateSubmitting          QuizState = "SUBMITTING"
	QuizStateResultsShown        QuizState = "RESULTS_SHOWN"
)

// IsValid checks if the quiz state is valid
func (s QuizState) IsValid() bool {
	switch s {
	case QuizStateCollecting,
		QuizStateAwaitingContactInfo,
		QuizStateSubmitting,
		QuizStateResultsShown:
		return true
	default:
		return false
	}
}

// AcceptsAnswers reports whether answers may still be recorded in this state
func (s QuizState) AcceptsAnswers() bool {
	return s == QuizStateCollecting || s == QuizStateAwaitingContactInfo
}

// String returns the string representation of the quiz state
func (s QuizState) String() string {
	return string(s)
}
