package types

// SubmitOutcome is the result of a single lead delivery attempt
type SubmitOutcome string

const (
	SubmitOutcomeSuccess        SubmitOutcome = "SUCCESS"
	SubmitOutcomeNetworkFailure SubmitOutcome = "NETWORK_FAILURE"
	SubmitOutcomeServerRejected SubmitOutcome = "SERVER_REJECTED"
)

// IsValid checks if the outcome is valid
func (o SubmitOutcome) IsValid() bool {
	switch o {
	case SubmitOutcomeSuccess,
		SubmitOutcomeNetworkFailure,
		SubmitOutcomeServerRejected:
		return true
	default:
		return false
	}
}

// IsSuccess reports whether the sink accepted the lead
func (o SubmitOutcome) IsSuccess() bool {
	return o == SubmitOutcomeSuccess
}

// String returns the string representation of the outcome
func (o SubmitOutcome) String() string {
	return string(o)
}
