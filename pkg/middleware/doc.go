// Package middleware instruments the preview server and tree builds.
//
// This package includes:
//   - OpenTelemetry tracing for HTTP requests and tree builds
//   - Prometheus metrics for builds, requests and live reload clients
//
// # OpenTelemetry
//
// OpenTelemetry wraps a handler so that every request gets a server span
// named after its chi route:
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry())
//
// TraceBuild wraps a single tree build:
//
//	err := middleware.TraceBuild(ctx, "card", func(ctx context.Context) error {
//	    _, err := decoder.DecodeFile("trees/card.yaml")
//	    return err
//	})
//
// Spans go to the global tracer provider; configure one with
// otel.SetTracerProvider to export them.
//
// # Prometheus Metrics
//
//	reg := prometheus.NewRegistry()
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	r.Use(m.Handler)
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package middleware
