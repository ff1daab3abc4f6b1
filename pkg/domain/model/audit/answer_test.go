package audit_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/vantis-uk/vantis/pkg/domain/model/audit"
)

func TestAnswerSet_Record(t *testing.T) {
	bank := audit.DefaultQuestionBank()
	answers := audit.NewAnswerSet(bank)

	gt.B(t, answers.Record("q1", true)).True()
	v, ok := answers.Get("q1")
	gt.B(t, ok).True()
	gt.B(t, v).True()

	t.Run("re-answering overwrites", func(t *testing.T) {
		gt.B(t, answers.Record("q1", false)).True()
		v, ok := answers.Get("q1")
		gt.B(t, ok).True()
		gt.B(t, v).False()
		gt.V(t, answers.Len()).Equal(1)
	})

	t.Run("unknown id is ignored", func(t *testing.T) {
		gt.B(t, answers.Record("q99", true)).False()
		_, ok := answers.Get("q99")
		gt.B(t, ok).False()
		gt.V(t, answers.Len()).Equal(1)
	})
}

func TestAnswerSet_IsComplete(t *testing.T) {
	bank := audit.DefaultQuestionBank()
	answers := audit.NewAnswerSet(bank)

	for i, q := range bank.Questions() {
		gt.B(t, answers.IsComplete()).False()
		answers.Record(q.ID, i%2 == 0)
	}
	gt.B(t, answers.IsComplete()).True()

	answers.Reset()
	gt.B(t, answers.IsComplete()).False()
	gt.V(t, answers.Len()).Equal(0)
}

func TestAnswerSet_Snapshot(t *testing.T) {
	bank := audit.DefaultQuestionBank()
	answers := audit.NewAnswerSet(bank)
	answers.Record("q2", true)

	snap := answers.Snapshot()
	snap["q3"] = true

	_, ok := answers.Get("q3")
	gt.B(t, ok).False()
	gt.V(t, len(snap)).Equal(2)
}

func TestReAnswer_LatestValueScores(t *testing.T) {
	bank := audit.DefaultQuestionBank()
	answers := audit.NewAnswerSet(bank)
	for _, q := range bank.Questions() {
		answers.Record(q.ID, true)
	}
	for _, q := range bank.Questions() {
		answers.Record(q.ID, false)
	}

	result, err := audit.ComputeScore(answers, bank)
	gt.NoError(t, err).Required()
	gt.V(t, result.RawScore).Equal(0)
}
