package metrics

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/aalemi-dev/azure-rest-lab/logger"
	"github.com/aalemi-dev/azure-rest-lab/observability"
)

// FXModule provides *Metrics, the MetricsCollector interface and an
// observability.Observer backed by OperationObserver, and runs both metrics
// servers for the lifetime of the application.
//
//	app := fx.New(
//	    fx.Supply(metrics.Config{ServiceName: "azrest"}),
//	    logger.FXModule,
//	    metrics.FXModule,
//	    appconfiguration.FXModule, // picks up the Observer
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		fx.Annotate(
			func(m *Metrics) MetricsCollector { return m },
			fx.As(new(MetricsCollector)),
		),
		NewOperationObserver,
		fx.Annotate(
			func(o *OperationObserver) observability.Observer { return o },
			fx.As(new(observability.Observer)),
		),
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// MetricsLifecycleParams groups the dependencies of RegisterMetricsLifecycle.
type MetricsLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Metrics   *Metrics
	Logger    logger.Logger `optional:"true"`
}

// RegisterMetricsLifecycle starts the configured servers on start and shuts
// them down on stop.
func RegisterMetricsLifecycle(p MetricsLifecycleParams) {
	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}

	servers := []struct {
		name   string
		server *http.Server
	}{
		{"system", p.Metrics.SystemServer},
		{"application", p.Metrics.ApplicationServer},
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for _, s := range servers {
				if s.server == nil {
					continue
				}
				name, srv := s.name, s.server
				go func() {
					log.Info("starting metrics server", nil, map[string]interface{}{
						"endpoint": name,
						"address":  srv.Addr,
					})
					if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						log.Error("metrics server failed", err, map[string]interface{}{"endpoint": name})
					}
				}()
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			for _, s := range servers {
				if s.server == nil {
					continue
				}
				log.Info("shutting down metrics server", nil, map[string]interface{}{"endpoint": s.name})
				if err := s.server.Shutdown(ctx); err != nil {
					log.Error("error shutting down metrics server", err, map[string]interface{}{"endpoint": s.name})
				}
			}
			return nil
		},
	})
}
