package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/vantis-uk/vantis/pkg/cli/config"
	httpctrl "github.com/vantis-uk/vantis/pkg/controller/http"
	"github.com/vantis-uk/vantis/pkg/repository/memory"
	"github.com/vantis-uk/vantis/pkg/service/metrics"
	"github.com/vantis-uk/vantis/pkg/service/worker"
	"github.com/vantis-uk/vantis/pkg/usecase"
	"github.com/vantis-uk/vantis/pkg/utils/async"
	"github.com/vantis-uk/vantis/pkg/utils/logging"
)

// buildUseCases wires the lead gateway and optional integrations shared by serve and audit
func buildUseCases(gatewayCfg *config.Gateway, auditCfg *config.Audit, slackCfg *config.Slack, notionCfg *config.Notion, extra ...usecase.Option) (*usecase.UseCases, error) {
	gateway, err := gatewayCfg.Configure()
	if err != nil {
		return nil, err
	}

	ucOpts, err := auditCfg.Options()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load question bank")
	}

	notifier, err := slackCfg.Configure()
	if err != nil {
		return nil, err
	}
	if notifier != nil {
		ucOpts = append(ucOpts, usecase.WithNotifiers(notifier))
		logging.Default().Info("Slack lead notification enabled")
	}

	mirror, err := notionCfg.Configure()
	if err != nil {
		return nil, err
	}
	if mirror != nil {
		ucOpts = append(ucOpts, usecase.WithLeadMirror(mirror))
		logging.Default().Info("Notion lead mirror enabled")
	}

	ucOpts = append(ucOpts, extra...)
	return usecase.New(memory.New(), gateway, ucOpts...), nil
}

func cmdServe(version string) *cli.Command {
	var addr string
	var gatewayCfg config.Gateway
	var auditCfg config.Audit
	var slackCfg config.Slack
	var notionCfg config.Notion
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("VANTIS_ADDR"),
			Destination: &addr,
		},
	}

	// Add shared config flags
	flags = append(flags, gatewayCfg.Flags()...)
	flags = append(flags, auditCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, notionCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("Configuration",
				"gateway", gatewayCfg,
				"audit", auditCfg,
				"slack", slackCfg,
				"notion", notionCfg,
				"sentry", sentryCfg,
			)

			flush, err := sentryCfg.Configure(version)
			if err != nil {
				return err
			}
			defer flush()

			recorder := metrics.New()
			uc, err := buildUseCases(&gatewayCfg, &auditCfg, &slackCfg, &notionCfg,
				usecase.WithMetrics(recorder),
				usecase.WithNotifiers(recorder),
			)
			if err != nil {
				return err
			}

			if interval := auditCfg.SweepInterval(); interval > 0 {
				sweeper := worker.NewSessionSweepWorker(uc.Audit, interval)
				sweeper.Start(ctx)
				defer sweeper.Stop()
			}

			httpHandler, err := httpctrl.New(uc, httpctrl.WithMetricsHandler(recorder.Handler()))
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				// Create shutdown context with timeout
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				// Attempt graceful shutdown
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				// Let in-flight lead deliveries finish
				if err := async.Wait(shutdownCtx); err != nil {
					logging.Default().Warn("Lead deliveries still running at shutdown", "error", err.Error())
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
