package logger_test

import (
	"context"
	"errors"

	"github.com/aalemi-dev/azure-rest-lab/logger"
)

func ExampleNewLoggerClient() {
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Info,
		ServiceName: "azrest",
	})

	log.Info("client ready", nil)
}

func ExampleLoggerClient_Error() {
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Info,
		ServiceName: "azrest",
	})

	err := errors.New("409 Conflict")
	log.Error("lock creation failed", err, map[string]interface{}{
		"scope": "/subscriptions/0000/resourceGroups/rg",
		"lock":  "do-not-delete",
	})
}

func ExampleLoggerClient_DebugWithContext() {
	log := logger.NewLoggerClient(logger.Config{
		Level:          logger.Debug,
		ServiceName:    "azrest",
		EnableTracing:  true,
		AzureSDKEvents: []string{"Request", "Response"},
	})

	// trace_id and span_id are attached when ctx carries a recording span.
	log.DebugWithContext(context.Background(), "fetching page", nil, map[string]interface{}{
		"operation": "get_key_values",
		"page":      2,
	})
}

func ExampleLoggerClient_Named() {
	base := logger.NewLoggerClient(logger.Config{Level: logger.Info, ServiceName: "azrest"})
	log := base.Named("locks")

	log.Info("listing locks", nil)
}
