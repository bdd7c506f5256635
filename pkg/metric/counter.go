// Package metric wraps the prometheus counters the portfolio exports.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Incrementer counts labelled events.
type Incrementer interface {
	Increment(labels ...string)
}

// Counter is a labelled prometheus counter.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

func (c *Counter) Increment(labels ...string) {
	c.vec.WithLabelValues(labels...).Inc()
}

// NewCounter registers a counter vector with reg.
func NewCounter(reg prometheus.Registerer, name, help string, labels ...string) *Counter {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)
	reg.MustRegister(vec)

	return &Counter{Name: name, Help: help, vec: vec}
}

// Handler serves the metrics gathered by reg.
func Handler(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Noop discards increments; used when metrics are disabled.
type Noop struct{}

func (Noop) Increment(...string) {}
