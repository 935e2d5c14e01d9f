package locks

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"go.uber.org/fx"

	"github.com/aalemi-dev/azure-rest-lab/logger"
	"github.com/aalemi-dev/azure-rest-lab/observability"
	"github.com/aalemi-dev/azure-rest-lab/tracer"
)

// FXModule provides *Client and the Locks interface. It needs a
// Config and an azcore.TokenCredential; a logger.Logger, an
// observability.Observer and a tracer.Tracer are picked up when present.
//
//	app := fx.New(
//	    fx.Supply(locks.Config{}),
//	    fx.Supply(credential.Config{Kind: credential.KindCLI}),
//	    credential.FXModule,
//	    locks.FXModule,
//	)
var FXModule = fx.Module("locks",
	fx.Provide(
		NewClientWithDI,
		fx.Annotate(
			func(c *Client) Locks { return c },
			fx.As(new(Locks)),
		),
	),
	fx.Invoke(RegisterLocksLifecycle),
)

// LocksParams groups the dependencies of NewClientWithDI.
type LocksParams struct {
	fx.In

	Config     Config
	Credential azcore.TokenCredential
	Logger     logger.Logger          `optional:"true"`
	Observer   observability.Observer `optional:"true"`
	Tracer     tracer.Tracer          `optional:"true"`
}

// NewClientWithDI builds a Client from injected dependencies.
func NewClientWithDI(p LocksParams) (*Client, error) {
	return NewClient(p.Config, p.Credential, Options{
		Logger:   p.Logger,
		Observer: p.Observer,
		Tracer:   p.Tracer,
	})
}

// LocksLifecycleParams groups the dependencies of
// RegisterLocksLifecycle.
type LocksLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *Client
	Logger    logger.Logger `optional:"true"`
}

// RegisterLocksLifecycle logs when the client becomes available
// and when the application stops. The HTTP transport needs no cleanup.
func RegisterLocksLifecycle(p LocksLifecycleParams) {
	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.InfoWithContext(ctx, "locks client initialized", nil, map[string]interface{}{
				"endpoint": p.Client.Endpoint(),
			})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.InfoWithContext(ctx, "locks client stopped", nil)
			return nil
		},
	})
}
