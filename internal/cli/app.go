package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/aalemi-dev/azure-rest-lab/appconfiguration"
	"github.com/aalemi-dev/azure-rest-lab/config"
	"github.com/aalemi-dev/azure-rest-lab/credential"
	"github.com/aalemi-dev/azure-rest-lab/locks"
	"github.com/aalemi-dev/azure-rest-lab/logger"
	"github.com/aalemi-dev/azure-rest-lab/metrics"
	"github.com/aalemi-dev/azure-rest-lab/tracer"
)

const stopTimeout = 5 * time.Second

// module contributes a service to the per-command fx application.
type module func(cfg *config.Config) fx.Option

func appConfigModule(cfg *config.Config) fx.Option {
	return fx.Options(fx.Supply(cfg.AppConfiguration), appconfiguration.FXModule)
}

func locksModule(cfg *config.Config) fx.Option {
	return fx.Options(fx.Supply(cfg.Locks), locks.FXModule)
}

func metricsModule(cfg *config.Config) fx.Option {
	return fx.Options(fx.Supply(cfg.Metrics), metrics.FXModule)
}

// resolveConfig loads the config file and applies the global flags.
// --endpoint applies to the services named in endpointFor.
func resolveConfig(cmd *cobra.Command, endpointFor ...string) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		if verbose, _ := flags.GetBool("verbose"); verbose {
			cfg.Logger.Level = logger.Debug
		}
	}
	if flags.Changed("endpoint") {
		endpoint, _ := flags.GetString("endpoint")
		for _, service := range endpointFor {
			switch service {
			case appconfiguration.Component:
				cfg.AppConfiguration.Endpoint = endpoint
			case locks.Component:
				cfg.Locks.Endpoint = endpoint
			}
		}
		if err := cfg.Validate(); err != nil {
			return nil, newUsageError(fmt.Sprintf("--endpoint: %v", err))
		}
	}
	return cfg, nil
}

// run starts an fx application holding the logger, the credential and the
// given modules, populates targets and calls fn. The application is
// stopped when fn returns.
func run(cmd *cobra.Command, service string, modules []module, targets []any, fn func(ctx context.Context) error) error {
	cfg, err := resolveConfig(cmd, service)
	if err != nil {
		return err
	}

	opts := []fx.Option{
		fx.NopLogger,
		fx.Supply(cfg.Logger, cfg.Credential),
		logger.FXModule,
		credential.FXModule,
	}
	if cfg.Tracer.EnableExport {
		opts = append(opts, fx.Supply(cfg.Tracer), tracer.FXModule)
	}
	for _, m := range modules {
		opts = append(opts, m(cfg))
	}
	opts = append(opts, fx.Populate(targets...))

	app := fx.New(opts...)
	if err := app.Err(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), stopTimeout)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	return fn(ctx)
}

// withAppConfig runs fn with an App Configuration client.
func withAppConfig(cmd *cobra.Command, fn func(ctx context.Context, c appconfiguration.AppConfiguration) error, extra ...module) error {
	var client appconfiguration.AppConfiguration
	modules := append([]module{appConfigModule}, extra...)
	return run(cmd, appconfiguration.Component, modules, []any{&client}, func(ctx context.Context) error {
		return fn(ctx, client)
	})
}

// withLocks runs fn with a locks client.
func withLocks(cmd *cobra.Command, fn func(ctx context.Context, c locks.Locks) error) error {
	var client locks.Locks
	return run(cmd, locks.Component, []module{locksModule}, []any{&client}, func(ctx context.Context) error {
		return fn(ctx, client)
	})
}
