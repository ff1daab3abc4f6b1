package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
	"github.com/vantis-uk/vantis/pkg/domain/model/audit"
	"github.com/vantis-uk/vantis/pkg/usecase"
)

// Audit configures the question bank and session timing
type Audit struct {
	bankPath      string
	delay         time.Duration
	ttl           time.Duration
	sweepInterval time.Duration
}

// DefaultSweepInterval is how often idle sessions are swept in the background
const DefaultSweepInterval = 5 * time.Minute

func (x *Audit) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "question-bank",
			Usage:       "TOML file with [[question]] entries (id, text, weight). Built-in questions are used when unset",
			Category:    "Audit",
			Destination: &x.bankPath,
			Sources:     cli.EnvVars("VANTIS_QUESTION_BANK"),
		},
		&cli.DurationFlag{
			Name:        "calculating-delay",
			Usage:       "Pause between submitting details and showing the result",
			Category:    "Audit",
			Value:       usecase.DefaultCalculatingDelay,
			Destination: &x.delay,
			Sources:     cli.EnvVars("VANTIS_CALCULATING_DELAY"),
		},
		&cli.DurationFlag{
			Name:        "session-ttl",
			Usage:       "How long an idle audit session is kept",
			Category:    "Audit",
			Value:       usecase.DefaultSessionTTL,
			Destination: &x.ttl,
			Sources:     cli.EnvVars("VANTIS_SESSION_TTL"),
		},
		&cli.DurationFlag{
			Name:        "session-sweep-interval",
			Usage:       "How often idle sessions are swept in the background (0 disables the sweeper)",
			Category:    "Audit",
			Value:       DefaultSweepInterval,
			Destination: &x.sweepInterval,
			Sources:     cli.EnvVars("VANTIS_SESSION_SWEEP_INTERVAL"),
		},
	}
}

func (x Audit) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("question-bank", x.bankPath),
		slog.Duration("calculating-delay", x.delay),
		slog.Duration("session-ttl", x.ttl),
		slog.Duration("session-sweep-interval", x.sweepInterval),
	)
}

// SweepInterval returns the background sweep period. Zero disables the sweeper.
func (x *Audit) SweepInterval() time.Duration {
	return x.sweepInterval
}

// QuestionBank returns the configured bank, or the built-in one when no file is set
func (x *Audit) QuestionBank() (*audit.QuestionBank, error) {
	if x.bankPath == "" {
		return audit.DefaultQuestionBank(), nil
	}
	return LoadQuestionBank(x.bankPath)
}

// Options returns the use case options for this configuration
func (x *Audit) Options() ([]usecase.Option, error) {
	bank, err := x.QuestionBank()
	if err != nil {
		return nil, err
	}
	return []usecase.Option{
		usecase.WithQuestionBank(bank),
		usecase.WithCalculatingDelay(x.delay),
		usecase.WithSessionTTL(x.ttl),
	}, nil
}

type questionBankFile struct {
	Questions []audit.Question `toml:"question"`
}

// LoadQuestionBank reads and validates a question bank from a TOML file
func LoadQuestionBank(path string) (*audit.QuestionBank, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "question bank file not found", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read question bank", goerr.V(ConfigPathKey, path))
	}

	var file questionBankFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse question bank TOML",
			goerr.V(ConfigPathKey, path), goerr.V("cause", err.Error()))
	}

	bank, err := audit.NewQuestionBank(file.Questions)
	if err != nil {
		return nil, goerr.Wrap(err, "question bank validation failed", goerr.V(ConfigPathKey, path))
	}
	return bank, nil
}
