package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/vantis-uk/vantis/pkg/utils/logging"
)

type visitor struct {
	Name    string
	Email   string
	Company string
}

func TestNew_RedactsPII(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.FormatJSON, slog.LevelInfo)

	logger.Info("lead received", "visitor", visitor{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Company: "Analytical Engines",
	})

	out := buf.String()
	gt.S(t, out).NotContains("ada@example.com")
	gt.S(t, out).NotContains("Ada Lovelace")
	gt.S(t, out).Contains("Analytical Engines")
}

func TestFromWith(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.FormatJSON, slog.LevelDebug)

	ctx := logging.With(context.Background(), logger)
	gt.V(t, logging.From(ctx)).Equal(logger)

	gt.V(t, logging.From(context.Background())).Equal(logging.Default())
}

func TestSetDefault(t *testing.T) {
	prev := logging.Default()
	defer logging.SetDefault(prev)

	var buf bytes.Buffer
	logger := logging.New(&buf, logging.FormatJSON, slog.LevelInfo)
	logging.SetDefault(logger)

	logging.Default().Info("hello")
	gt.S(t, buf.String()).Contains("hello")
}
