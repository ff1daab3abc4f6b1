package slack_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	goslack "github.com/slack-go/slack"
	"github.com/vantis-uk/vantis/pkg/domain/model"
	"github.com/vantis-uk/vantis/pkg/domain/types"
	"github.com/vantis-uk/vantis/pkg/service/slack"
)

type mockService struct {
	channelID string
	blocks    []goslack.Block
	text      string
	err       error
}

func (m *mockService) PostMessage(ctx context.Context, channelID string, blocks []goslack.Block, text string) (string, error) {
	m.channelID = channelID
	m.blocks = blocks
	m.text = text
	return "1700000000.000100", m.err
}

func newReport() *model.DeliveryReport {
	return &model.DeliveryReport{
		Lead: &model.Lead{
			ID:      model.NewLeadID(),
			Source:  types.LeadSourceAudit,
			Name:    "Ada Lovelace",
			Email:   "ada@example.com",
			Answers: map[types.QuestionID]bool{"q1": true, "q2": false},
		},
		Outcome: types.SubmitOutcomeSuccess,
	}
}

func TestLeadNotifier_Notify(t *testing.T) {
	svc := &mockService{}
	n := slack.NewLeadNotifier(svc, "C123")

	gt.NoError(t, n.Notify(context.Background(), newReport()))
	gt.S(t, svc.channelID).Equal("C123")
	gt.S(t, svc.text).Contains("New IR35 audit lead")
	gt.S(t, svc.text).Contains("Ada Lovelace")
	gt.A(t, svc.blocks).Length(4)

	t.Run("nil report is ignored", func(t *testing.T) {
		gt.NoError(t, n.Notify(context.Background(), nil))
	})

	t.Run("post failure is returned", func(t *testing.T) {
		failing := slack.NewLeadNotifier(&mockService{err: errors.New("rate limited")}, "C123")
		gt.Error(t, failing.Notify(context.Background(), newReport()))
	})
}

func TestBuildLeadBlocks(t *testing.T) {
	report := newReport()
	report.Outcome = types.SubmitOutcomeNetworkFailure
	report.Lead.Source = types.LeadSourceContact
	report.Lead.Answers = nil
	report.Lead.Message = "Please call"

	blocks, text := slack.BuildLeadBlocks(report)
	gt.S(t, text).Contains("NETWORK_FAILURE")
	gt.S(t, text).Contains("(-)")
	gt.A(t, blocks).Length(4)
}
