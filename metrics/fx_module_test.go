package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aalemi-dev/azure-rest-lab/logger"
	"github.com/aalemi-dev/azure-rest-lab/metrics"
	"github.com/aalemi-dev/azure-rest-lab/observability"
)

func TestFXModule_ProvidesMetricsAndObserver(t *testing.T) {
	var (
		m         *metrics.Metrics
		collector metrics.MetricsCollector
		obs       observability.Observer
	)

	app := fxtest.New(t,
		metrics.FXModule,
		fx.Supply(metrics.Config{
			ServiceName:               "azrest-fx",
			SystemMetricsAddress:      metrics.Ptr(""),
			ApplicationMetricsAddress: metrics.Ptr("127.0.0.1:0"),
		}),
		fx.Populate(&m, &collector, &obs),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.NotNil(t, m)
	assert.NotNil(t, collector)
	assert.IsType(t, &metrics.OperationObserver{}, obs)
}

func TestRegisterMetricsLifecycle_LogsServers(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := &logger.LoggerClient{Zap: zap.New(core)}

	app := fxtest.New(t,
		fx.Supply(metrics.Config{
			SystemMetricsAddress:      metrics.Ptr("127.0.0.1:0"),
			ApplicationMetricsAddress: metrics.Ptr("127.0.0.1:0"),
		}),
		fx.Provide(metrics.NewMetrics),
		fx.Provide(func() logger.Logger { return log }),
		fx.Invoke(metrics.RegisterMetricsLifecycle),
	)

	app.RequireStart()
	app.RequireStop()

	assert.Equal(t, 2, logs.FilterMessage("shutting down metrics server").Len())
}

func TestRegisterMetricsLifecycle_NoServers(t *testing.T) {
	app := fxtest.New(t,
		fx.Supply(metrics.Config{
			SystemMetricsAddress:      metrics.Ptr(""),
			ApplicationMetricsAddress: metrics.Ptr(""),
		}),
		fx.Provide(metrics.NewMetrics),
		fx.Invoke(metrics.RegisterMetricsLifecycle),
	)

	assert.NotPanics(t, func() {
		app.RequireStart()
		app.RequireStop()
	})
}
