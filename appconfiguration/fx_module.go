package appconfiguration

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"go.uber.org/fx"

	"github.com/aalemi-dev/azure-rest-lab/logger"
	"github.com/aalemi-dev/azure-rest-lab/observability"
	"github.com/aalemi-dev/azure-rest-lab/tracer"
)

// FXModule provides *Client and the AppConfiguration interface. It needs a
// Config and an azcore.TokenCredential; a logger.Logger, an
// observability.Observer and a tracer.Tracer are picked up when present.
//
//	app := fx.New(
//	    fx.Supply(appconfiguration.Config{Config: pipeline.Config{Endpoint: "https://mystore.azconfig.io"}}),
//	    credential.FXModule,
//	    logger.FXModule,
//	    appconfiguration.FXModule,
//	    fx.Invoke(func(c appconfiguration.AppConfiguration) { ... }),
//	)
var FXModule = fx.Module("appconfiguration",
	fx.Provide(
		NewClientWithDI,
		fx.Annotate(
			func(c *Client) AppConfiguration { return c },
			fx.As(new(AppConfiguration)),
		),
	),
	fx.Invoke(RegisterAppConfigurationLifecycle),
)

// AppConfigurationParams groups the dependencies of NewClientWithDI.
type AppConfigurationParams struct {
	fx.In

	Config     Config
	Credential azcore.TokenCredential
	Logger     logger.Logger          `optional:"true"`
	Observer   observability.Observer `optional:"true"`
	Tracer     tracer.Tracer          `optional:"true"`
}

// NewClientWithDI builds a Client from injected dependencies.
func NewClientWithDI(p AppConfigurationParams) (*Client, error) {
	return NewClient(p.Config, p.Credential, Options{
		Logger:   p.Logger,
		Observer: p.Observer,
		Tracer:   p.Tracer,
	})
}

// AppConfigurationLifecycleParams groups the dependencies of
// RegisterAppConfigurationLifecycle.
type AppConfigurationLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *Client
	Logger    logger.Logger `optional:"true"`
}

// RegisterAppConfigurationLifecycle logs when the client becomes available
// and when the application stops. The HTTP transport needs no cleanup.
func RegisterAppConfigurationLifecycle(p AppConfigurationLifecycleParams) {
	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.InfoWithContext(ctx, "app configuration client initialized", nil, map[string]interface{}{
				"endpoint": p.Client.Endpoint(),
			})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.InfoWithContext(ctx, "app configuration client stopped", nil)
			return nil
		},
	})
}
