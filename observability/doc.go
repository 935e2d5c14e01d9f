// Package observability defines the hook every Azure client package in this
// module calls once per REST operation.
//
// # Overview
//
// Clients never depend on a metrics or tracing backend. They accept an
// optional Observer and hand it an OperationContext after each request:
//
//	client, _ := appconfiguration.NewClient(cfg, cred, appconfiguration.Options{
//	    Observer: myObserver,
//	})
//
// The metrics package ships an Observer that records Prometheus counters and
// latency histograms:
//
//	obs := metrics.NewOperationObserver(collector)
//
// Several observers can be combined:
//
//	observer := observability.Combine(metricsObserver, auditObserver)
//
// # OperationContext Fields
//
//   - Component:   client package ("appconfiguration", "locks")
//   - Operation:   REST operation name ("get_key_values")
//   - Resource:    store host or lock scope
//   - SubResource: key or lock name
//   - Duration:    wall time including retries
//   - Error:       nil on success
//   - Size:        response bytes, or items for list pages
//   - Metadata:    status code, HTTP method, page number
//
// # Thread Safety
//
// Observer implementations must be safe for concurrent use; clients call them
// from whatever goroutine issued the request.
package observability
