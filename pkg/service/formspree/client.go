package formspree

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/vantis-uk/vantis/pkg/domain/interfaces"
	"github.com/vantis-uk/vantis/pkg/domain/model"
	"github.com/vantis-uk/vantis/pkg/domain/types"
	"github.com/vantis-uk/vantis/pkg/utils/safe"
)

const (
	// DefaultTimeout bounds a single delivery attempt
	DefaultTimeout = 10 * time.Second
	// DefaultSubject is the notification email subject
	DefaultSubject = "New Vantis lead"

	maxDrainBytes = 64 << 10
)

// ErrServerRejected is returned when the endpoint answers with a non-2xx status
var ErrServerRejected = goerr.New("form endpoint rejected the submission")

// Client posts leads to a form-collection endpoint such as Formspree
type Client struct {
	endpoint   string
	httpClient *http.Client
	subject    string
}

var _ interfaces.LeadGateway = &Client{}

// Option is a functional option for client configuration
type Option func(*Client)

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-attempt timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: d}
	}
}

// WithSubject sets the `_subject` field used for the notification email
func WithSubject(subject string) Option {
	return func(c *Client) {
		c.subject = subject
	}
}

// New creates a client for the given endpoint URL
func New(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, goerr.New("form endpoint URL is required")
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid form endpoint URL", goerr.V("endpoint", endpoint))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.New("form endpoint URL must be http or https", goerr.V("endpoint", endpoint))
	}

	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		subject:    DefaultSubject,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Submit sends lead in a single POST. There is no retry and no deduplication:
// two calls with the same lead are two independent deliveries.
func (c *Client) Submit(ctx context.Context, lead *model.Lead) (types.SubmitOutcome, error) {
	if lead == nil {
		return types.SubmitOutcomeServerRejected, goerr.New("lead is nil")
	}

	body := Encode(lead, c.subject).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(body))
	if err != nil {
		return types.SubmitOutcomeNetworkFailure, goerr.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.SubmitOutcomeNetworkFailure, goerr.Wrap(err, "failed to reach form endpoint",
			goerr.V("lead_id", lead.ID))
	}
	defer safe.Drain(ctx, resp.Body, maxDrainBytes)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return types.SubmitOutcomeServerRejected, goerr.Wrap(ErrServerRejected, "unexpected status",
			goerr.V("status", resp.StatusCode), goerr.V("lead_id", lead.ID))
	}

	return types.SubmitOutcomeSuccess, nil
}

// Encode converts lead into form fields. Quiz answers become answer_<question id> = yes|no,
// emitted in question-id order.
func Encode(lead *model.Lead, subject string) url.Values {
	v := url.Values{}
	v.Set("name", lead.Name)
	v.Set("email", lead.Email)
	if lead.Company != "" {
		v.Set("company", lead.Company)
	}
	if lead.Message != "" {
		v.Set("message", lead.Message)
	}
	if lead.Source != "" {
		v.Set("source", lead.Source.String())
	}
	if subject != "" {
		v.Set("_subject", subject)
	}

	ids := make([]string, 0, len(lead.Answers))
	for id := range lead.Answers {
		ids = append(ids, id.String())
	}
	sort.Strings(ids)
	for _, id := range ids {
		answer := "no"
		if lead.Answers[types.QuestionID(id)] {
			answer = "yes"
		}
		v.Set("answer_"+id, answer)
	}

	return v
}
