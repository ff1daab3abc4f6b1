package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	httpctrl "github.com/vantis-uk/vantis/pkg/controller/http"
	"github.com/vantis-uk/vantis/pkg/domain/model"
	"github.com/vantis-uk/vantis/pkg/domain/types"
	"github.com/vantis-uk/vantis/pkg/repository/memory"
	"github.com/vantis-uk/vantis/pkg/service/metrics"
	"github.com/vantis-uk/vantis/pkg/usecase"
	"github.com/vantis-uk/vantis/pkg/utils/async"
)

type mockGateway struct {
	mu      sync.Mutex
	outcome types.SubmitOutcome
	leads   []*model.Lead
}

func (g *mockGateway) Submit(ctx context.Context, lead *model.Lead) (types.SubmitOutcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.leads = append(g.leads, lead)
	if g.outcome == "" {
		return types.SubmitOutcomeSuccess, nil
	}
	return g.outcome, nil
}

type sessionView struct {
	ID        string          `json:"id"`
	State     types.QuizState `json:"state"`
	Answered  int             `json:"answered"`
	Complete  bool            `json:"complete"`
	LastError string          `json:"last_error"`
	Result    *struct {
		RawScore   int            `json:"raw_score"`
		MaxScore   int            `json:"max_score"`
		Percentage float64        `json:"percentage"`
		Tier       types.RiskTier `json:"tier"`
		Label      string         `json:"label"`
	} `json:"result"`
}

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field"`
}

func newServer(t *testing.T, gw *mockGateway, opts ...httpctrl.Options) *httptest.Server {
	t.Helper()
	uc := usecase.New(memory.New(), gw, usecase.WithCalculatingDelay(0))
	srv, err := httpctrl.New(uc, opts...)
	gt.NoError(t, err).Required()

	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		gt.NoError(t, err).Required()
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	gt.NoError(t, err).Required()
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	gt.NoError(t, err).Required()
	defer resp.Body.Close()

	if out != nil {
		gt.NoError(t, json.NewDecoder(resp.Body).Decode(out)).Required()
	}
	return resp.StatusCode
}

func waitAsync(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	gt.NoError(t, async.Wait(ctx)).Required()
}

func TestAuditAPI_FullFlow(t *testing.T) {
	gw := &mockGateway{}
	ts := newServer(t, gw)

	var questions struct {
		Questions []struct {
			ID     string `json:"id"`
			Weight int    `json:"weight"`
		} `json:"questions"`
		MaxScore int `json:"max_score"`
	}
	gt.Value(t, doJSON(t, http.MethodGet, ts.URL+"/api/audit/questions", nil, &questions)).Equal(http.StatusOK)
	gt.Array(t, questions.Questions).Length(7)
	gt.Value(t, questions.MaxScore).Equal(14)

	var view sessionView
	gt.Value(t, doJSON(t, http.MethodPost, ts.URL+"/api/audit/sessions", nil, &view)).Equal(http.StatusCreated)
	gt.Value(t, view.State).Equal(types.QuizStateCollecting)
	sessionURL := ts.URL + "/api/audit/sessions/" + view.ID

	yes := map[string]bool{"q1": true, "q5": true, "q6": true, "q7": true}
	for _, q := range questions.Questions {
		status := doJSON(t, http.MethodPut, sessionURL+"/answers/"+q.ID, map[string]bool{"value": yes[q.ID]}, &view)
		gt.Value(t, status).Equal(http.StatusOK)
	}
	gt.Value(t, view.State).Equal(types.QuizStateAwaitingContactInfo)
	gt.Bool(t, view.Complete).True()

	t.Run("validation error keeps the contact step", func(t *testing.T) {
		var body errorBody
		status := doJSON(t, http.MethodPost, sessionURL+"/submit", map[string]string{"name": "Ada", "email": "not-an-email"}, &body)
		gt.Value(t, status).Equal(http.StatusUnprocessableEntity)
		gt.Value(t, body.Field).Equal("email")
		gt.String(t, body.Error).Equal("Please enter a valid email address.")

		var current sessionView
		gt.Value(t, doJSON(t, http.MethodGet, sessionURL, nil, &current)).Equal(http.StatusOK)
		gt.Value(t, current.State).Equal(types.QuizStateAwaitingContactInfo)
		gt.String(t, current.LastError).Equal("Please enter a valid email address.")
	})

	status := doJSON(t, http.MethodPost, sessionURL+"/submit",
		map[string]string{"name": "Ada", "email": "ada@example.com", "company": "Acme"}, &view)
	gt.Value(t, status).Equal(http.StatusOK)
	gt.Value(t, view.State).Equal(types.QuizStateResultsShown)
	gt.Value(t, view.Result).NotNil()
	gt.Value(t, view.Result.RawScore).Equal(8)
	gt.Value(t, view.Result.Tier).Equal(types.RiskTierAmbiguous)
	gt.String(t, view.Result.Label).Equal("DANGEROUS AMBIGUITY")

	waitAsync(t)
	var notices struct {
		Notices []model.Notice `json:"notices"`
	}
	gt.Value(t, doJSON(t, http.MethodGet, sessionURL+"/notices", nil, &notices)).Equal(http.StatusOK)
	gt.Array(t, notices.Notices).Length(1)
	gt.Value(t, notices.Notices[0].Outcome).Equal(types.SubmitOutcomeSuccess)

	t.Run("answers are rejected once results are shown", func(t *testing.T) {
		var body errorBody
		status := doJSON(t, http.MethodPut, sessionURL+"/answers/q1", map[string]bool{"value": false}, &body)
		gt.Value(t, status).Equal(http.StatusConflict)
	})

	t.Run("reset returns to collecting", func(t *testing.T) {
		var reset sessionView
		gt.Value(t, doJSON(t, http.MethodPost, sessionURL+"/reset", nil, &reset)).Equal(http.StatusOK)
		gt.Value(t, reset.State).Equal(types.QuizStateCollecting)
		gt.Value(t, reset.Answered).Equal(0)
		gt.Value(t, reset.Result).Nil()
	})

	t.Run("delete ends the session", func(t *testing.T) {
		gt.Value(t, doJSON(t, http.MethodDelete, sessionURL, nil, nil)).Equal(http.StatusNoContent)
		gt.Value(t, doJSON(t, http.MethodGet, sessionURL, nil, nil)).Equal(http.StatusNotFound)
	})
}

func TestAuditAPI_Errors(t *testing.T) {
	ts := newServer(t, &mockGateway{})

	var view sessionView
	gt.Value(t, doJSON(t, http.MethodPost, ts.URL+"/api/audit/sessions", nil, &view)).Equal(http.StatusCreated)
	sessionURL := ts.URL + "/api/audit/sessions/" + view.ID

	testCases := []struct {
		name   string
		method string
		url    string
		body   any
		status int
	}{
		{"unknown session", http.MethodGet, ts.URL + "/api/audit/sessions/missing", nil, http.StatusNotFound},
		{"unknown question", http.MethodPut, sessionURL + "/answers/q99", map[string]bool{"value": true}, http.StatusBadRequest},
		{"missing value", http.MethodPut, sessionURL + "/answers/q1", map[string]string{}, http.StatusBadRequest},
		{"unknown field", http.MethodPut, sessionURL + "/answers/q1", map[string]any{"value": true, "extra": 1}, http.StatusBadRequest},
		{"empty body", http.MethodPost, sessionURL + "/submit", nil, http.StatusBadRequest},
		{"submit before complete", http.MethodPost, sessionURL + "/submit", map[string]string{"name": "Ada", "email": "ada@example.com"}, http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var body errorBody
			status := doJSON(t, tc.method, tc.url, tc.body, &body)
			gt.Value(t, status).Equal(tc.status)
			gt.String(t, body.Error).NotEqual("")
		})
	}
}

func TestContactAPI(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		gw := &mockGateway{}
		ts := newServer(t, gw)

		var body struct {
			LeadID  string              `json:"lead_id"`
			Outcome types.SubmitOutcome `json:"outcome"`
		}
		status := doJSON(t, http.MethodPost, ts.URL+"/api/contact",
			map[string]string{"name": "Grace", "email": "grace@example.com", "message": "Hello"}, &body)
		gt.Value(t, status).Equal(http.StatusOK)
		gt.Value(t, body.Outcome).Equal(types.SubmitOutcomeSuccess)
		gt.String(t, body.LeadID).NotEqual("")
		gt.Array(t, gw.leads).Length(1)
	})

	t.Run("rejected upstream", func(t *testing.T) {
		ts := newServer(t, &mockGateway{outcome: types.SubmitOutcomeServerRejected})

		var body struct {
			Outcome types.SubmitOutcome `json:"outcome"`
			Message string              `json:"message"`
		}
		status := doJSON(t, http.MethodPost, ts.URL+"/api/contact",
			map[string]string{"name": "Grace", "email": "grace@example.com"}, &body)
		gt.Value(t, status).Equal(http.StatusBadGateway)
		gt.Value(t, body.Outcome).Equal(types.SubmitOutcomeServerRejected)
		gt.String(t, body.Message).NotEqual("")
	})

	t.Run("invalid contact", func(t *testing.T) {
		ts := newServer(t, &mockGateway{})

		var body errorBody
		status := doJSON(t, http.MethodPost, ts.URL+"/api/contact", map[string]string{"email": "grace@example.com"}, &body)
		gt.Value(t, status).Equal(http.StatusUnprocessableEntity)
		gt.Value(t, body.Field).Equal("name")
	})
}

func TestPages(t *testing.T) {
	ts := newServer(t, &mockGateway{})

	for _, path := range []string{"/", "/companies", "/talent", "/solution", "/audit", "/about", "/contact"} {
		t.Run(path, func(t *testing.T) {
			resp, err := http.Get(ts.URL + path)
			gt.NoError(t, err).Required()
			defer resp.Body.Close()

			gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
			gt.String(t, resp.Header.Get("Content-Type")).Contains("text/html")
			body, err := io.ReadAll(resp.Body)
			gt.NoError(t, err).Required()
			gt.String(t, string(body)).Contains("<nav>")
		})
	}

	t.Run("audit page lists the questions", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/audit")
		gt.NoError(t, err).Required()
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		gt.NoError(t, err).Required()
		gt.Number(t, strings.Count(string(body), `type="radio"`)).Equal(14)
	})
}

func TestLandingPages(t *testing.T) {
	ts := newServer(t, &mockGateway{})
	services := []struct {
		slug string
		name string
	}{
		{"social", "Social Media"},
		{"va", "Virtual Assistants"},
		{"data", "Data Entry"},
		{"marketing", "Marketing"},
		{"design", "Graphic Design"},
		{"tech", "Tech Specialists"},
	}

	get := func(t *testing.T, path string) string {
		t.Helper()
		resp, err := http.Get(ts.URL + path)
		gt.NoError(t, err).Required()
		defer resp.Body.Close()
		gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
		body, err := io.ReadAll(resp.Body)
		gt.NoError(t, err).Required()
		return string(body)
	}

	t.Run("home shows the hero and the service catalogue", func(t *testing.T) {
		body := get(t, "/")
		gt.String(t, body).Contains("Increase Your Output, Not Your Payroll.")
		gt.String(t, body).Contains("100% IR35 compliant")
		gt.Number(t, strings.Count(body, `class="service-item"`)).Equal(len(services))
		for _, svc := range services {
			gt.String(t, body).Contains("<h2>" + svc.name + "</h2>")
			gt.String(t, body).Contains(`href="/companies#` + svc.slug + `"`)
		}
	})

	t.Run("companies anchors every service", func(t *testing.T) {
		body := get(t, "/companies")
		for _, svc := range services {
			gt.String(t, body).Contains(`id="` + svc.slug + `"`)
		}
	})
}

func TestHealthAndMetrics(t *testing.T) {
	recorder := metrics.New()
	ts := newServer(t, &mockGateway{}, httpctrl.WithMetricsHandler(recorder.Handler()))

	var health map[string]string
	gt.Value(t, doJSON(t, http.MethodGet, ts.URL+"/healthz", nil, &health)).Equal(http.StatusOK)
	gt.Value(t, health["status"]).Equal("ok")

	resp, err := http.Get(ts.URL + "/metrics")
	gt.NoError(t, err).Required()
	defer resp.Body.Close()
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	body, err := io.ReadAll(resp.Body)
	gt.NoError(t, err).Required()
	gt.String(t, string(body)).Contains("go_goroutines")
}
