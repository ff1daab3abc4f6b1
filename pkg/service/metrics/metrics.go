package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vantis-uk/vantis/pkg/domain/interfaces"
	"github.com/vantis-uk/vantis/pkg/domain/model"
	"github.com/vantis-uk/vantis/pkg/domain/types"
)

const namespace = "vantis"

// Recorder holds the service's Prometheus collectors on its own registry
type Recorder struct {
	registry *prometheus.Registry

	sessionsStarted  prometheus.Counter
	results          *prometheus.CounterVec
	validationErrors prometheus.Counter
	deliveries       *prometheus.CounterVec
	deliveryDuration prometheus.Histogram
}

var _ interfaces.LeadNotifier = &Recorder{}

// New creates a Recorder with Go runtime and process collectors registered
func New() *Recorder {
	reg := prometheus.NewRegistry()

	r := &Recorder{
		registry: reg,
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "sessions_started_total",
			Help:      "Audit sessions created.",
		}),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "results_total",
			Help:      "Audit results shown, by risk tier.",
		}, []string{"tier"}),
		validationErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "validation_errors_total",
			Help:      "Contact form submissions rejected for missing or malformed details.",
		}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lead",
			Name:      "deliveries_total",
			Help:      "Lead delivery attempts, by source and outcome.",
		}, []string{"source", "outcome"}),
		deliveryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "lead",
			Name:      "delivery_duration_seconds",
			Help:      "Time spent on a single lead delivery attempt.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.sessionsStarted,
		r.results,
		r.validationErrors,
		r.deliveries,
		r.deliveryDuration,
	)

	return r
}

// Registry exposes the underlying registry, mainly for tests
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// SessionStarted counts a new audit session
func (r *Recorder) SessionStarted() {
	r.sessionsStarted.Inc()
}

// ResultShown counts a result by tier
func (r *Recorder) ResultShown(tier types.RiskTier) {
	r.results.WithLabelValues(tier.String()).Inc()
}

// ValidationFailed counts a rejected contact submission
func (r *Recorder) ValidationFailed() {
	r.validationErrors.Inc()
}

// Notify records a finished lead delivery
func (r *Recorder) Notify(ctx context.Context, report *model.DeliveryReport) error {
	if report == nil || report.Lead == nil {
		return nil
	}
	r.deliveries.WithLabelValues(report.Lead.Source.String(), report.Outcome.String()).Inc()
	r.deliveryDuration.Observe(report.Duration.Seconds())
	return nil
}
