package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/vantis-uk/vantis/pkg/cli/config"
	"github.com/vantis-uk/vantis/pkg/utils/logging"
)

func cmdQuestions() *cli.Command {
	var auditCfg config.Audit
	var asJSON bool

	var flags []cli.Flag
	flags = append(flags, auditCfg.Flags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:        "json",
		Usage:       "Print the question bank as JSON",
		Destination: &asJSON,
	})

	return &cli.Command{
		Name:    "questions",
		Aliases: []string{"q"},
		Usage:   "Validate the question bank and print it",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			bank, err := auditCfg.QuestionBank()
			if err != nil {
				return goerr.Wrap(err, "question bank validation failed")
			}

			logging.Default().Info("Question bank validation passed",
				"question_count", bank.Len(),
				"max_score", bank.MaxScore(),
			)

			w := c.Root().Writer
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if err := enc.Encode(bank.Questions()); err != nil {
					return goerr.Wrap(err, "failed to encode question bank")
				}
				return nil
			}

			for _, q := range bank.Questions() {
				fmt.Fprintf(w, "%-12s weight=%d  %s\n", q.ID, q.Weight, q.Text)
			}
			fmt.Fprintf(w, "max score: %d\n", bank.MaxScore())
			return nil
		},
	}
}
