package terminal

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/vantis-uk/vantis/pkg/domain/model"
	"github.com/vantis-uk/vantis/pkg/domain/model/audit"
	"github.com/vantis-uk/vantis/pkg/domain/types"
	"github.com/vantis-uk/vantis/pkg/usecase"
	"github.com/vantis-uk/vantis/pkg/utils/logging"
)

// ErrInputClosed is returned when input ends before the quiz does
var ErrInputClosed = goerr.New("input closed")

// Quiz runs the audit interactively over a line-oriented reader and writer
type Quiz struct {
	uc      *usecase.AuditUseCase
	console *Console
	in      *bufio.Reader
}

// NewQuiz wires a terminal quiz reading answers from in
func NewQuiz(uc *usecase.AuditUseCase, console *Console, in io.Reader) *Quiz {
	return &Quiz{
		uc:      uc,
		console: console,
		in:      bufio.NewReader(in),
	}
}

// Run plays the audit until the visitor declines to start again
func (q *Quiz) Run(ctx context.Context) error {
	view, err := q.uc.StartSession(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to start audit session")
	}
	id := view.ID
	defer func() {
		if err := q.uc.EndSession(ctx, id); err != nil {
			logging.From(ctx).Warn("failed to end audit session", "error", err.Error())
		}
	}()

	q.console.printf(colorTitle, "IR35 risk audit\n")
	q.console.printf(nil, "Answer each question with y or n.\n\n")

	for {
		if err := q.collect(ctx, id); err != nil {
			return err
		}

		view, err := q.submit(ctx, id)
		if err != nil {
			return err
		}
		q.showResult(view)

		again, err := q.confirm("Take the audit again? [y/N] ")
		if err != nil || !again {
			return err
		}

		if _, err := q.uc.Dispatch(ctx, id, usecase.ResetEvent{}); err != nil {
			return goerr.Wrap(err, "failed to reset audit")
		}
		q.console.printf(nil, "\n")
	}
}

func (q *Quiz) collect(ctx context.Context, id model.SessionID) error {
	questions := q.uc.Questions()
	for i, question := range questions {
		q.console.printf(colorPrompt, "%d/%d %s\n", i+1, len(questions), question.Text)

		for {
			value, ok, err := q.yesNo("> ")
			if err != nil {
				return err
			}
			if !ok {
				q.console.printf(colorHint, "Please answer y or n.\n")
				continue
			}

			if _, err := q.uc.Dispatch(ctx, id, usecase.AnswerEvent{QuestionID: question.ID, Value: value}); err != nil {
				return goerr.Wrap(err, "failed to record answer")
			}
			break
		}
	}
	return nil
}

func (q *Quiz) submit(ctx context.Context, id model.SessionID) (*usecase.SessionView, error) {
	q.console.printf(nil, "\nLeave your details to see your result.\n")

	for {
		var contact audit.Contact
		var err error
		if contact.Name, err = q.prompt("Name: "); err != nil {
			return nil, err
		}
		if contact.Email, err = q.prompt("Email: "); err != nil {
			return nil, err
		}
		if contact.Company, err = q.prompt("Company (optional): "); err != nil {
			return nil, err
		}

		q.console.printf(nil, "Calculating your risk...\n")
		view, err := q.uc.Dispatch(ctx, id, usecase.SubmitEvent{Contact: contact})
		if err != nil {
			if errors.Is(err, usecase.ErrValidation) {
				q.console.printf(colorHint, "%s\n", audit.ValidationHint(err))
				continue
			}
			return nil, goerr.Wrap(err, "failed to submit audit")
		}
		return view, nil
	}
}

func (q *Quiz) showResult(view *usecase.SessionView) {
	r := view.Result
	if r == nil {
		return
	}

	q.console.printf(nil, "\n")
	q.console.printf(tierColor(r.Tier), "%s\n", r.Label)
	q.console.printf(nil, "Risk score: %d%% (%d of %d)\n", int(math.Round(r.Percentage)), r.RawScore, r.MaxScore)
	q.console.printf(nil, "%s\n\n", r.Description)
}

func tierColor(tier types.RiskTier) *color.Color {
	switch tier {
	case types.RiskTierCritical:
		return colorCritical
	case types.RiskTierAmbiguous:
		return colorWarning
	default:
		return colorInfo
	}
}

func (q *Quiz) confirm(prompt string) (bool, error) {
	value, ok, err := q.yesNo(prompt)
	if err != nil {
		if errors.Is(err, ErrInputClosed) {
			return false, nil
		}
		return false, err
	}
	return ok && value, nil
}

// yesNo reads one answer. ok is false when the line is neither yes nor no.
func (q *Quiz) yesNo(prompt string) (value, ok bool, err error) {
	line, err := q.prompt(prompt)
	if err != nil {
		return false, false, err
	}

	switch strings.ToLower(line) {
	case "y", "yes":
		return true, true, nil
	case "n", "no":
		return false, true, nil
	default:
		return false, false, nil
	}
}

func (q *Quiz) prompt(prompt string) (string, error) {
	q.console.printf(colorPrompt, "%s", prompt)

	line, err := q.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", goerr.Wrap(ErrInputClosed, "no more input")
		}
		return "", goerr.Wrap(err, "failed to read input")
	}
	return strings.TrimSpace(line), nil
}
