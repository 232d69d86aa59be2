package server

import (
	"github.com/NeyGuaiume2/sdisc/internal/interpretation"
	"github.com/NeyGuaiume2/sdisc/internal/types"
	"github.com/prometheus/client_golang/prometheus"
)

// Assessment outcome label values
const (
	OutcomeComplete   = "complete"
	OutcomeIncomplete = "incomplete"
	OutcomeRejected   = "rejected"
	OutcomeInvalid    = "invalid"
)

// Metrics holds the Prometheus collectors of the assessment API.
type Metrics struct {
	assessments     *prometheus.CounterVec
	answersSkipped  prometheus.Counter
	unavailableText *prometheus.CounterVec
}

// MustNewMetrics registers the collectors on reg (the default registerer when nil).
// A collector already registered under the same name is reused; any other error panics.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	assessments := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "disc",
			Name:      "assessments_total",
			Help:      "Assessments evaluated, by outcome.",
		},
		[]string{"outcome"},
	)
	answersSkipped := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "disc",
			Name:      "answers_skipped_total",
			Help:      "Submitted answers skipped because a required field was missing or malformed.",
		},
	)
	unavailableText := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "disc",
			Name:      "interpretations_unavailable_total",
			Help:      "Interpretation lookups that found no authored entry, by table.",
		},
		[]string{"table"},
	)

	m := &Metrics{
		assessments:     registerCounterVec(reg, assessments),
		answersSkipped:  registerCounter(reg, answersSkipped),
		unavailableText: registerCounterVec(reg, unavailableText),
	}
	return m
}

func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return already.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return c
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter) prometheus.Counter {
	if err := reg.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return already.ExistingCollector.(prometheus.Counter)
		}
		panic(err)
	}
	return c
}

// ObserveOutcome counts one assessment with the given outcome label.
func (m *Metrics) ObserveOutcome(outcome string) {
	if m == nil {
		return
	}
	m.assessments.WithLabelValues(outcome).Inc()
}

// ObserveSkipped adds n skipped answers.
func (m *Metrics) ObserveSkipped(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.answersSkipped.Add(float64(n))
}

// ObserveResult records the outcome, skipped answers and missing interpretation text of a result.
func (m *Metrics) ObserveResult(r *types.Result) {
	if m == nil || r == nil {
		return
	}
	if r.Incomplete {
		m.ObserveOutcome(OutcomeIncomplete)
	} else {
		m.ObserveOutcome(OutcomeComplete)
	}
	m.ObserveSkipped(r.Warnings.SkippedAnswers)

	b := r.Interpretations
	for table, in := range map[string]types.Interpretation{
		interpretation.TableGeneralPrimary:        b.General.Primary,
		interpretation.TableGeneralSecondary:      b.General.Secondary,
		interpretation.TableProfessionalPrimary:   b.Professional.Primary,
		interpretation.TableProfessionalSecondary: b.Professional.Secondary,
	} {
		if in.Status == types.StatusUnavailable {
			m.unavailableText.WithLabelValues(table).Inc()
		}
	}
}
