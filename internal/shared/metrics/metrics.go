package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	registry = prometheus.NewRegistry()

	operationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scoring_operations_total",
		Help: "Total scoring operations by operation and outcome",
	}, []string{"operation", "outcome"})

	operationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scoring_duration_ms",
		Help:    "Scoring operation duration in milliseconds",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 1000},
	}, []string{"operation"})

	healthScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "asset_health_score",
		Help:    "Distribution of persisted asset health scores",
		Buckets: prometheus.LinearBuckets(10, 10, 10),
	})
)

func init() {
	registry.MustRegister(operationsTotal, operationDuration, healthScore)
}

// ObserveOperation records the outcome and duration of a scoring operation.
func ObserveOperation(operation, outcome string, elapsed time.Duration) {
	operationsTotal.WithLabelValues(operation, outcome).Inc()
	operationDuration.WithLabelValues(operation).Observe(float64(elapsed.Microseconds()) / 1000.0)
}

// ObserveHealthScore records a persisted health score.
func ObserveHealthScore(score int) {
	healthScore.Observe(float64(score))
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
