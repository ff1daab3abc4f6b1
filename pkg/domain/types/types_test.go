package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/vantis-uk/vantis/pkg/domain/types"
)

func TestQuestionID_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      types.QuestionID
		wantErr bool
	}{
		{"valid short", "q1", false},
		{"valid with hyphen", "control-of-work", false},
		{"empty", "", true},
		{"uppercase", "Q1", true},
		{"spaces", "q 1", true},
		{"underscore", "q_1", true},
		{"starting with hyphen", "-q1", true},
		{"double hyphen", "q--1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("QuestionID.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestQuizState_AcceptsAnswers(t *testing.T) {
	tests := []struct {
		state types.QuizState
		want  bool
	}{
		{types.QuizStateCollecting, true},
		{types.QuizStateAwaitingContactInfo, true},
		{types.QuizStateSubmitting, false},
		{types.QuizStateResultsShown, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			gt.B(t, tt.state.IsValid()).True()
			gt.V(t, tt.state.AcceptsAnswers()).Equal(tt.want)
		})
	}

	gt.B(t, types.QuizState("DONE").IsValid()).False()
}

func TestSubmitOutcome(t *testing.T) {
	gt.B(t, types.SubmitOutcomeSuccess.IsSuccess()).True()
	gt.B(t, types.SubmitOutcomeNetworkFailure.IsSuccess()).False()
	gt.B(t, types.SubmitOutcomeServerRejected.IsSuccess()).False()
	gt.B(t, types.SubmitOutcome("MAYBE").IsValid()).False()
	gt.S(t, types.SubmitOutcomeServerRejected.String()).Equal("SERVER_REJECTED")
}
