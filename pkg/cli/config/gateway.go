package config

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/vantis-uk/vantis/pkg/service/formspree"
)

// Gateway configures the lead intake endpoint
type Gateway struct {
	endpoint string
	timeout  time.Duration
	subject  string
}

func (x *Gateway) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gateway-url",
			Usage:       "Form endpoint that receives leads (e.g. https://formspree.io/f/xxxx)",
			Category:    "Gateway",
			Destination: &x.endpoint,
			Sources:     cli.EnvVars("VANTIS_GATEWAY_URL"),
		},
		&cli.DurationFlag{
			Name:        "gateway-timeout",
			Usage:       "Timeout for a single lead submission",
			Category:    "Gateway",
			Value:       formspree.DefaultTimeout,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("VANTIS_GATEWAY_TIMEOUT"),
		},
		&cli.StringFlag{
			Name:        "gateway-subject",
			Usage:       "Email subject attached to each lead",
			Category:    "Gateway",
			Value:       formspree.DefaultSubject,
			Destination: &x.subject,
			Sources:     cli.EnvVars("VANTIS_GATEWAY_SUBJECT"),
		},
	}
}

// LogValue omits the endpoint path, which identifies the form
func (x Gateway) LogValue() slog.Value {
	host := ""
	if u, err := url.Parse(x.endpoint); err == nil {
		host = u.Host
	}
	return slog.GroupValue(
		slog.String("host", host),
		slog.Duration("timeout", x.timeout),
	)
}

func (x *Gateway) Configure() (*formspree.Client, error) {
	if x.endpoint == "" {
		return nil, goerr.Wrap(ErrInvalidConfig, "gateway URL is required", goerr.V(FlagKey, "gateway-url"))
	}

	client, err := formspree.New(x.endpoint,
		formspree.WithTimeout(x.timeout),
		formspree.WithSubject(x.subject),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create gateway client")
	}
	return client, nil
}
