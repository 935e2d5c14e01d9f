package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// CreateCounter creates a counter on the application registry.
func (m *Metrics) CreateCounter(name, help string, labels []string) Counter {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: help}, labels)
	return &counterVec{vec: register(m.registerer, vec)}
}

// CreateHistogram creates a histogram on the application registry.
// nil buckets use prometheus.DefBuckets.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) Histogram {
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: name, Help: help, Buckets: buckets}, labels)
	return &histogramVec{vec: register(m.registerer, vec)}
}

// CreateGauge creates a gauge on the application registry.
func (m *Metrics) CreateGauge(name, help string, labels []string) Gauge {
	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: help}, labels)
	return &gaugeVec{vec: register(m.registerer, vec)}
}

// CreateSummary creates a summary on the application registry.
func (m *Metrics) CreateSummary(name, help string, labels []string, objectives map[float64]float64) Summary {
	vec := prometheus.NewSummaryVec(prometheus.SummaryOpts{Name: name, Help: help, Objectives: objectives}, labels)
	return &summaryVec{vec: register(m.registerer, vec)}
}

// register registers c, or returns the collector already registered under
// the same descriptor. Several clients in one process share one set of
// operation metrics that way.
func register[C prometheus.Collector](r prometheus.Registerer, c C) C {
	err := r.Register(c)
	if err == nil {
		return c
	}
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(C); ok {
			return existing
		}
	}
	panic(err)
}
