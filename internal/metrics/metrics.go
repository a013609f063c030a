package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer is the global metrics instance.
// Counters are registered only, there is no exposition endpoint in the example programs.
var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Documents)
	prometheus.MustRegister(Observer.prometheus.Iterations)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// IncrementDocuments counts one processed document for the given label and process.
func (m *Metrics) IncrementDocuments(labels ...string) {
	m.prometheus.Documents.WithLabelValues(labels...).Inc()
}

// AddIterations counts training iterations for the given model and process.
func (m *Metrics) AddIterations(n float64, labels ...string) {
	m.prometheus.Iterations.WithLabelValues(labels...).Add(n)
}
