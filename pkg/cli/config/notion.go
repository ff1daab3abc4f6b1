package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/vantis-uk/vantis/pkg/domain/interfaces"
	"github.com/vantis-uk/vantis/pkg/service/notion"
)

// Notion configures the optional lead mirror database
type Notion struct {
	token      string
	databaseID string
}

func (x *Notion) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "notion-api-token",
			Usage:       "Notion API token for mirroring leads",
			Category:    "Notion",
			Destination: &x.token,
			Sources:     cli.EnvVars("VANTIS_NOTION_API_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "notion-database-id",
			Usage:       "Notion database that receives a page per lead",
			Category:    "Notion",
			Destination: &x.databaseID,
			Sources:     cli.EnvVars("VANTIS_NOTION_DATABASE_ID"),
		},
	}
}

func (x Notion) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("api-token.len", len(x.token)),
		slog.String("database-id", x.databaseID),
	)
}

func (x *Notion) IsConfigured() bool {
	return x.token != "" || x.databaseID != ""
}

// Configure returns nil without error when Notion is not configured
func (x *Notion) Configure() (interfaces.LeadMirror, error) {
	if !x.IsConfigured() {
		return nil, nil
	}
	if x.token == "" || x.databaseID == "" {
		return nil, goerr.Wrap(ErrInvalidConfig, "both --notion-api-token and --notion-database-id are required",
			goerr.V(FlagKey, "notion-database-id"))
	}

	mirror, err := notion.New(x.token, x.databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize notion service")
	}
	return mirror, nil
}
