package metrics

import (
	"net/http"
	"time"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rageval"

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds the evaluator's collectors on a dedicated registry.
// A nil *Metrics is a valid no-op recorder.
type Metrics struct {
	registry *prometheus.Registry

	ProviderRequests *prometheus.CounterVec
	Verdicts         *prometheus.CounterVec
	RAGQueries       *prometheus.CounterVec
	RAGDuration      prometheus.Histogram
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		ProviderRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "LLM backend calls by provider and outcome",
		}, []string{"provider", "outcome"}),
		Verdicts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verdicts_total",
			Help:      "Evaluation verdicts produced",
		}, []string{"verdict"}),
		RAGQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rag_queries_total",
			Help:      "RAG queries by outcome",
		}, []string{"outcome"}),
		RAGDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rag_query_duration_seconds",
			Help:      "RAG query latency",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the dedicated registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ProviderRequest(provider string, ok bool) {
	if m == nil {
		return
	}
	m.ProviderRequests.WithLabelValues(provider, outcome(ok)).Inc()
}

func (m *Metrics) RAGQuery(ok bool, d time.Duration) {
	if m == nil {
		return
	}
	m.RAGQueries.WithLabelValues(outcome(ok)).Inc()
	m.RAGDuration.Observe(d.Seconds())
}

func (m *Metrics) Verdict(v models.Verdict) {
	if m == nil {
		return
	}
	m.Verdicts.WithLabelValues(string(v)).Inc()
}

func outcome(ok bool) string {
	if ok {
		return OutcomeSuccess
	}
	return OutcomeFailure
}
