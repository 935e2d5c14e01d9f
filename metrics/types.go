package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Counter is a cumulative metric that only increases.
type Counter interface {
	// WithLabelValues returns the child for the given label values. The
	// number of values must match the labels the counter was created with.
	WithLabelValues(lvs ...string) Counter
	Inc()
	// Add adds val, which must be >= 0.
	Add(val float64)
}

// Gauge is a metric that can go up and down.
type Gauge interface {
	WithLabelValues(lvs ...string) Gauge
	Set(val float64)
	Inc()
	Dec()
	Add(val float64)
	Sub(val float64)
	// SetToCurrentTime sets the gauge to the current Unix time in seconds.
	SetToCurrentTime()
}

// Histogram buckets observations such as request latencies.
type Histogram interface {
	WithLabelValues(lvs ...string) Observer
	Observe(val float64)
}

// Summary computes streaming quantiles on the client side.
type Summary interface {
	WithLabelValues(lvs ...string) Observer
	Observe(val float64)
}

// Observer is the labeled child of a Histogram or Summary.
type Observer interface {
	Observe(val float64)
}

type counterVec struct {
	vec *prometheus.CounterVec
}

func (c *counterVec) WithLabelValues(lvs ...string) Counter {
	return counter{c.vec.WithLabelValues(lvs...)}
}

func (c *counterVec) Inc()            { c.vec.WithLabelValues().Inc() }
func (c *counterVec) Add(val float64) { c.vec.WithLabelValues().Add(val) }

// counter is an already-labeled counter; further WithLabelValues calls are
// no-ops.
type counter struct {
	prometheus.Counter
}

func (c counter) WithLabelValues(...string) Counter { return c }

type gaugeVec struct {
	vec *prometheus.GaugeVec
}

func (g *gaugeVec) WithLabelValues(lvs ...string) Gauge {
	return gauge{g.vec.WithLabelValues(lvs...)}
}

func (g *gaugeVec) Set(val float64)   { g.vec.WithLabelValues().Set(val) }
func (g *gaugeVec) Inc()              { g.vec.WithLabelValues().Inc() }
func (g *gaugeVec) Dec()              { g.vec.WithLabelValues().Dec() }
func (g *gaugeVec) Add(val float64)   { g.vec.WithLabelValues().Add(val) }
func (g *gaugeVec) Sub(val float64)   { g.vec.WithLabelValues().Sub(val) }
func (g *gaugeVec) SetToCurrentTime() { g.vec.WithLabelValues().SetToCurrentTime() }

type gauge struct {
	prometheus.Gauge
}

func (g gauge) WithLabelValues(...string) Gauge { return g }

type histogramVec struct {
	vec *prometheus.HistogramVec
}

func (h *histogramVec) WithLabelValues(lvs ...string) Observer { return h.vec.WithLabelValues(lvs...) }
func (h *histogramVec) Observe(val float64)                    { h.vec.WithLabelValues().Observe(val) }

type summaryVec struct {
	vec *prometheus.SummaryVec
}

func (s *summaryVec) WithLabelValues(lvs ...string) Observer { return s.vec.WithLabelValues(lvs...) }
func (s *summaryVec) Observe(val float64)                    { s.vec.WithLabelValues().Observe(val) }
