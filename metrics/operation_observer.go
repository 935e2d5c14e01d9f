package metrics

import (
	"context"
	"errors"
	"strconv"

	"github.com/aalemi-dev/azure-rest-lab/observability"
)

// Outcome label values recorded by OperationObserver.
const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeCanceled = "canceled"
)

// operationBuckets covers Azure REST latencies from a fast 304 to a slow
// paged listing behind retries.
var operationBuckets = []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

// OperationObserver records client operations as Prometheus metrics:
//
//	<ns>_operations_total{component,operation,outcome,status_code}
//	<ns>_operation_duration_seconds{component,operation}
//	<ns>_response_size_bytes{component,operation}
//	<ns>_last_success_timestamp_seconds{component,operation}
//
// It implements observability.Observer and is safe for concurrent use.
type OperationObserver struct {
	total       Counter
	duration    Histogram
	size        Summary
	lastSuccess Gauge
}

// namespaced is implemented by *Metrics; other collectors get the default.
type namespaced interface {
	operationNamespace() string
}

func (m *Metrics) operationNamespace() string { return m.namespace }

// NewOperationObserver creates the operation metrics on collector. Creating
// a second observer on the same collector reuses the same metrics.
func NewOperationObserver(collector MetricsCollector) *OperationObserver {
	ns := "azure_client"
	if n, ok := collector.(namespaced); ok && n.operationNamespace() != "" {
		ns = n.operationNamespace()
	}

	labels := []string{"component", "operation"}
	return &OperationObserver{
		total: collector.CreateCounter(ns+"_operations_total",
			"Azure REST operations by outcome and HTTP status.",
			[]string{"component", "operation", "outcome", "status_code"}),
		duration: collector.CreateHistogram(ns+"_operation_duration_seconds",
			"Azure REST operation latency, retries included.",
			labels, operationBuckets),
		size: collector.CreateSummary(ns+"_response_size_bytes",
			"Azure REST response body size.",
			labels, map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001}),
		lastSuccess: collector.CreateGauge(ns+"_last_success_timestamp_seconds",
			"Unix time of the last successful operation.",
			labels),
	}
}

// ObserveOperation implements observability.Observer.
func (o *OperationObserver) ObserveOperation(ctx observability.OperationContext) {
	outcome := outcomeOf(ctx.Error)
	status := statusCodeOf(ctx.Metadata)

	o.total.WithLabelValues(ctx.Component, ctx.Operation, outcome, status).Inc()
	o.duration.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())
	if ctx.Size > 0 {
		o.size.WithLabelValues(ctx.Component, ctx.Operation).Observe(float64(ctx.Size))
	}
	if ctx.Error == nil {
		o.lastSuccess.WithLabelValues(ctx.Component, ctx.Operation).SetToCurrentTime()
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	default:
		return OutcomeError
	}
}

func statusCodeOf(md map[string]interface{}) string {
	switch v := md["status_code"].(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case string:
		return v
	default:
		return "none"
	}
}
