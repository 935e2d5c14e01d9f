package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerClient is a wrapper around Uber's Zap logger.
//
// LoggerClient implements the Logger interface.
type LoggerClient struct {
	// Zap is the underlying zap.Logger instance, exposed for the rare case
	// where Zap-specific functionality is needed.
	Zap *zap.Logger

	// tracingEnabled makes the *WithContext methods attach trace/span IDs.
	tracingEnabled bool
}

// NewLoggerClient initializes and returns a new instance of the logger based on configuration.
//
// The logger is configured with:
//   - JSON (or console) encoding
//   - ISO8601 timestamp format
//   - Capital letter level encoding ("INFO", "ERROR")
//   - Process ID and service name as default fields
//   - Caller information with a configurable skip depth
//   - Output directed to stderr unless OutputPaths says otherwise
//
// If initialization fails, the function will call log.Fatal to terminate the application.
//
// Example:
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "azrest",
//	})
//	log.Info("store opened", nil, map[string]interface{}{"endpoint": endpoint})
func NewLoggerClient(cfg Config) *LoggerClient {

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.FullCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	encoding := cfg.Encoding
	if encoding != EncodingConsole {
		encoding = EncodingJSON
	}

	outputs := cfg.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: false,
		Sampling:          nil,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       outputs,
		ErrorOutputPaths: []string{
			"stderr",
		},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	callerSkip := cfg.CallerSkip
	if callerSkip <= 0 {
		callerSkip = 1
	}

	logger, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(callerSkip))

	if err != nil {
		log.Fatal(err)
	}

	client := &LoggerClient{
		Zap:            logger,
		tracingEnabled: cfg.EnableTracing,
	}

	if len(cfg.AzureSDKEvents) > 0 {
		BridgeAzureSDK(client, cfg.AzureSDKEvents...)
	}

	return client
}

// NewNop returns a logger that discards everything. Used by CLI quiet mode
// and by tests that do not assert on log output.
func NewNop() *LoggerClient {
	return &LoggerClient{Zap: zap.NewNop()}
}

// Named returns a child logger whose entries carry a "component" field.
func (l *LoggerClient) Named(component string) *LoggerClient {
	return &LoggerClient{
		Zap:            l.Zap.With(zap.String("component", component)),
		tracingEnabled: l.tracingEnabled,
	}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case Debug:
		return zap.DebugLevel
	case Warning:
		return zap.WarnLevel
	case Error:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
