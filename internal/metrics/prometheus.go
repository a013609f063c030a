package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Documents  *prometheus.CounterVec
	Iterations *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Documents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "learn",
				Name:      "documents",
			}, []string{"label", "process"}),
		Iterations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "learn",
				Name:      "iterations",
			}, []string{"model", "process"}),
	}
}
