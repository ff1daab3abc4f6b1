package cli

import (
	"context"
	"errors"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/vantis-uk/vantis/pkg/cli/config"
	"github.com/vantis-uk/vantis/pkg/controller/terminal"
	"github.com/vantis-uk/vantis/pkg/usecase"
	"github.com/vantis-uk/vantis/pkg/utils/async"
	"github.com/vantis-uk/vantis/pkg/utils/logging"
)

// gatewayWait bounds how long the terminal waits for the last lead delivery
const gatewayWait = 15 * time.Second

func cmdAudit() *cli.Command {
	var gatewayCfg config.Gateway
	var auditCfg config.Audit
	var slackCfg config.Slack
	var notionCfg config.Notion

	var flags []cli.Flag
	flags = append(flags, gatewayCfg.Flags()...)
	flags = append(flags, auditCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, notionCfg.Flags()...)

	return &cli.Command{
		Name:    "audit",
		Aliases: []string{"a"},
		Usage:   "Take the IR35 risk audit in the terminal",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			console := terminal.NewConsole(c.Root().Writer)

			uc, err := buildUseCases(&gatewayCfg, &auditCfg, &slackCfg, &notionCfg,
				usecase.WithNotifiers(terminal.NewNotifier(console)),
			)
			if err != nil {
				return err
			}

			err = terminal.NewQuiz(uc.Audit, console, c.Root().Reader).Run(ctx)

			// Wait for the last delivery so its alert is printed before exit
			waitCtx, cancel := context.WithTimeout(context.Background(), gatewayWait)
			defer cancel()
			if werr := async.Wait(waitCtx); werr != nil {
				logging.Default().Warn("Lead delivery did not finish", "error", werr.Error())
			}

			if errors.Is(err, terminal.ErrInputClosed) {
				return nil
			}
			return err
		},
	}
}
