// Package metrics exposes the Prometheus counters & histograms of the contact flow.
package metrics

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Arlahanmanthrao1/school/core"
	"github.com/Arlahanmanthrao1/school/core/contact"
)

// Submission outcomes
const (
	OutcomeSent    = "sent"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed" // the relay did not deliver
	OutcomeIgnored = "ignored"
	OutcomeError   = "error" // neither the visitor nor the relay is at fault
)

type ContactMetrics struct {
	relayTotal   *prometheus.CounterVec
	relayLatency *prometheus.HistogramVec
	submissions  *prometheus.CounterVec
}

func NewContactMetrics(reg prometheus.Registerer) *ContactMetrics {
	m := &ContactMetrics{
		relayTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "school",
			Subsystem: "contact",
			Name:      "relay_requests_total",
			Help:      "Total requests made to the email relay",
		}, []string{"provider", "status"}),
		relayLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "school",
			Subsystem: "contact",
			Name:      "relay_latency_seconds",
			Help:      "Latency of the email relay requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "school",
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Total contact form submissions by outcome",
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.relayTotal, m.relayLatency, m.submissions)
	return m
}

func (m *ContactMetrics) ObserveRelay(provider string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.relayTotal.WithLabelValues(provider, status).Inc()
	m.relayLatency.WithLabelValues(provider).Observe(elapsed.Seconds())
}

func (m *ContactMetrics) ObserveSubmission(err error) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(OutcomeOf(err)).Inc()
}

// OutcomeOf maps the result of Form.Submit to a submission outcome.
func OutcomeOf(err error) string {
	if err == nil {
		return OutcomeSent
	}
	var (
		valErr *core.ValidationError
		argErr *core.ArgumentError
		subErr *contact.SubmissionError
	)
	switch {
	case errors.As(err, &valErr), errors.As(err, &argErr):
		return OutcomeInvalid
	case errors.Is(err, contact.ErrSubmitInFlight):
		return OutcomeIgnored
	case errors.As(err, &subErr):
		return OutcomeFailed
	}
	return OutcomeError
}

type instrumentedRelay struct {
	relay    contact.Relay
	provider string
	metrics  *ContactMetrics
}

// InstrumentRelay records the count & latency of every request made through relay.
func InstrumentRelay(relay contact.Relay, provider string, m *ContactMetrics) contact.Relay {
	return &instrumentedRelay{relay: relay, provider: provider, metrics: m}
}

func (r *instrumentedRelay) Send(ctx context.Context, req contact.RelayRequest) error {
	start := time.Now()
	err := r.relay.Send(ctx, req)
	r.metrics.ObserveRelay(r.provider, err, time.Since(start))
	return err
}
