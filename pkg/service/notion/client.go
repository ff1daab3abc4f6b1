package notion

import (
	"context"
	"sort"
	"strings"

	"github.com/jomei/notionapi"
	"github.com/m-mizutani/goerr/v2"
	"github.com/vantis-uk/vantis/pkg/domain/interfaces"
	"github.com/vantis-uk/vantis/pkg/domain/model"
	"github.com/vantis-uk/vantis/pkg/domain/types"
)

// Property names expected in the leads database
const (
	PropName      = "Name"
	PropEmail     = "Email"
	PropCompany   = "Company"
	PropSource    = "Source"
	PropYesCount  = "Yes answers"
	PropAnswers   = "Answers"
	PropMessage   = "Message"
	PropLeadID    = "Lead ID"
	PropSubmitted = "Submitted"
)

// client mirrors leads into a Notion database
type client struct {
	api        *notionapi.Client
	databaseID notionapi.DatabaseID
}

var _ interfaces.LeadMirror = &client{}

// New creates a lead mirror writing pages into databaseID
func New(token, databaseID string) (interfaces.LeadMirror, error) {
	if token == "" {
		return nil, goerr.New("Notion API token is required")
	}
	if databaseID == "" {
		return nil, goerr.New("Notion database ID is required")
	}

	return &client{
		api: notionapi.NewClient(
			notionapi.Token(token),
			notionapi.WithRetry(3), // Retry up to 3 times on rate limit (HTTP 429)
		),
		databaseID: notionapi.DatabaseID(databaseID),
	}, nil
}

// MirrorLead creates one page for lead
func (c *client) MirrorLead(ctx context.Context, lead *model.Lead) error {
	if lead == nil {
		return nil
	}

	req := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: c.databaseID,
		},
		Properties: BuildProperties(lead),
	}

	if _, err := c.api.Page.Create(ctx, req); err != nil {
		return goerr.Wrap(err, "failed to create lead page",
			goerr.V("database_id", c.databaseID), goerr.V("lead_id", lead.ID))
	}
	return nil
}

// BuildProperties converts lead into database page properties
func BuildProperties(lead *model.Lead) notionapi.Properties {
	props := notionapi.Properties{
		PropName: notionapi.TitleProperty{
			Title: richText(lead.Name),
		},
		PropEmail: notionapi.EmailProperty{
			Email: lead.Email,
		},
		PropSource: notionapi.SelectProperty{
			Select: notionapi.Option{Name: lead.Source.String()},
		},
		PropLeadID: notionapi.RichTextProperty{
			RichText: richText(lead.ID.String()),
		},
	}

	if !lead.SubmittedAt.IsZero() {
		submitted := notionapi.Date(lead.SubmittedAt)
		props[PropSubmitted] = notionapi.DateProperty{
			Date: &notionapi.DateObject{Start: &submitted},
		}
	}
	if lead.Company != "" {
		props[PropCompany] = notionapi.RichTextProperty{RichText: richText(lead.Company)}
	}
	if lead.Message != "" {
		props[PropMessage] = notionapi.RichTextProperty{RichText: richText(lead.Message)}
	}
	if lead.Answered() {
		yes := 0
		parts := make([]string, 0, len(lead.Answers))
		for id, v := range lead.Answers {
			if v {
				yes++
			}
			parts = append(parts, answerLine(id, v))
		}
		sort.Strings(parts)

		props[PropYesCount] = notionapi.NumberProperty{Number: float64(yes)}
		props[PropAnswers] = notionapi.RichTextProperty{RichText: richText(strings.Join(parts, ", "))}
	}

	return props
}

func answerLine(id types.QuestionID, v bool) string {
	if v {
		return id.String() + "=yes"
	}
	return id.String() + "=no"
}

func richText(s string) []notionapi.RichText {
	return []notionapi.RichText{
		{Text: &notionapi.Text{Content: s}},
	}
}
