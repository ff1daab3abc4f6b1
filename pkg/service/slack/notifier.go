package slack

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
	"github.com/vantis-uk/vantis/pkg/domain/interfaces"
	"github.com/vantis-uk/vantis/pkg/domain/model"
	"github.com/vantis-uk/vantis/pkg/domain/types"
)

// LeadNotifier posts a summary of every lead delivery to a sales channel
type LeadNotifier struct {
	svc       Service
	channelID string
}

var _ interfaces.LeadNotifier = &LeadNotifier{}

// NewLeadNotifier creates a notifier posting to channelID
func NewLeadNotifier(svc Service, channelID string) *LeadNotifier {
	return &LeadNotifier{
		svc:       svc,
		channelID: channelID,
	}
}

// Notify posts the delivery report
func (n *LeadNotifier) Notify(ctx context.Context, report *model.DeliveryReport) error {
	if report == nil || report.Lead == nil {
		return nil
	}

	blocks, text := BuildLeadBlocks(report)
	if _, err := n.svc.PostMessage(ctx, n.channelID, blocks, text); err != nil {
		return goerr.Wrap(err, "failed to post lead notification", goerr.V("lead_id", report.Lead.ID))
	}
	return nil
}

// BuildLeadBlocks renders a delivery report as Block Kit blocks plus fallback text
func BuildLeadBlocks(report *model.DeliveryReport) ([]slack.Block, string) {
	lead := report.Lead

	title := "New lead"
	if lead.Source == types.LeadSourceAudit {
		title = "New IR35 audit lead"
	}
	if !report.Outcome.IsSuccess() {
		title += " (form delivery failed: " + report.Outcome.String() + ")"
	}

	company := lead.Company
	if company == "" {
		company = "-"
	}

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType, "*Name*\n"+lead.Name, false, false),
		slack.NewTextBlockObject(slack.MarkdownType, "*Email*\n"+lead.Email, false, false),
		slack.NewTextBlockObject(slack.MarkdownType, "*Company*\n"+company, false, false),
		slack.NewTextBlockObject(slack.MarkdownType, "*Source*\n"+lead.Source.String(), false, false),
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, title, false, false)),
		slack.NewSectionBlock(nil, fields, nil),
	}

	if lead.Answered() {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, formatAnswers(lead.Answers), false, false),
			nil, nil,
		))
	}
	if lead.Message != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, "*Message*\n"+lead.Message, false, false),
			nil, nil,
		))
	}

	blocks = append(blocks, slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType, "Lead ID: `"+lead.ID.String()+"`", false, false),
	))

	return blocks, fmt.Sprintf("%s: %s (%s)", title, lead.Name, company)
}

func formatAnswers(answers map[types.QuestionID]bool) string {
	ids := make([]string, 0, len(answers))
	yes := 0
	for id, v := range answers {
		ids = append(ids, id.String())
		if v {
			yes++
		}
	}
	sort.Strings(ids)

	var b strings.Builder
	fmt.Fprintf(&b, "*Audit answers* (%d of %d yes)\n", yes, len(answers))
	for _, id := range ids {
		mark := "no"
		if answers[types.QuestionID(id)] {
			mark = "yes"
		}
		fmt.Fprintf(&b, "• %s: %s\n", id, mark)
	}
	return b.String()
}
