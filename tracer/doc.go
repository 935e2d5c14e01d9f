// Package tracer wraps OpenTelemetry for the Azure REST clients.
//
// Every client operation runs inside a client-kind span named
// "<component>.<operation>", and the pipeline's trace policy copies the
// span's W3C context onto the outgoing request as traceparent/tracestate
// headers, so Azure-side diagnostics can be joined with local traces.
//
// # Architecture
//
//   - Tracer interface: the contract clients depend on
//   - TracerClient struct: OpenTelemetry-backed implementation
//   - Span interface: End / SetAttributes / RecordError
//   - FXModule provides both *TracerClient and Tracer
//
// # Usage
//
//	tracerClient, err := tracer.NewClient(tracer.Config{
//		ServiceName:  "azrest",
//		AppEnv:       "development",
//		EnableExport: false,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	client, err := appconfiguration.NewClient(cfg, cred, appconfiguration.Options{
//		Tracer: tracerClient,
//	})
//
// # Export
//
// With EnableExport the provider batches spans to an OTLP/HTTP collector.
// Endpoint and Insecure override the defaults; otherwise the standard
// OTEL_EXPORTER_OTLP_* variables apply.
package tracer
