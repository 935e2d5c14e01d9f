package tracer

import (
	"context"

	"github.com/aalemi-dev/azure-rest-lab/logger"
	"go.uber.org/fx"
)

// FXModule provides *TracerClient and the Tracer interface from a
// tracer.Config, and shuts the provider down (flushing pending spans) when
// the application stops.
//
//	app := fx.New(
//	    fx.Supply(tracer.Config{ServiceName: "azrest"}),
//	    tracer.FXModule,
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
		fx.Annotate(
			func(t *TracerClient) Tracer { return t },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// TracerLifecycleParams groups the dependencies of RegisterTracerLifecycle.
type TracerLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Tracer    *TracerClient
	Logger    logger.Logger `optional:"true"`
}

// RegisterTracerLifecycle shuts the tracer provider down on stop.
func RegisterTracerLifecycle(p TracerLifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if p.Tracer.tracer == nil {
				return nil
			}
			if p.Logger != nil {
				p.Logger.Info("shutting down tracer", nil)
			}
			return p.Tracer.tracer.Shutdown(ctx)
		},
	})
}
