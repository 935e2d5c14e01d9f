package logger

import (
	"context"
	"net/http"
	"testing"

	azlog "github.com/Azure/azure-sdk-for-go/sdk/azcore/log"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestAzureEvents(t *testing.T) {
	t.Run("selects known events case-insensitively", func(t *testing.T) {
		got := azureEvents([]string{"request", " Retry ", "bogus"})
		assert.Equal(t, []azlog.Event{azlog.EventRequest, azlog.EventRetryPolicy}, got)
	})

	t.Run("all expands to every event", func(t *testing.T) {
		got := azureEvents([]string{"ALL"})
		assert.Equal(t, knownAzureEvents, got)
	})

	t.Run("unknown only yields nothing", func(t *testing.T) {
		assert.Empty(t, azureEvents([]string{"nope"}))
	})
}

func TestBridgeAzureSDK_NoEventsDetaches(t *testing.T) {
	l, logs := newObservedLogger(0, false)
	BridgeAzureSDK(l)
	assert.Equal(t, 0, logs.Len())
	DisableAzureSDKBridge()
}

type okTransport struct{}

func (okTransport) Do(req *http.Request) (*http.Response, error) {
	return &http.Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: http.NoBody, Request: req}, nil
}

// sendThroughAzcore issues one request through an azcore pipeline so its
// logging policy emits events.
func sendThroughAzcore(t *testing.T) {
	t.Helper()
	pl := runtime.NewPipeline("logger-test", "v0.0.0", runtime.PipelineOptions{}, &policy.ClientOptions{Transport: okTransport{}})
	req, err := runtime.NewRequest(context.Background(), http.MethodGet, "https://example.com/ping")
	require.NoError(t, err)
	_, err = pl.Do(req)
	require.NoError(t, err)
}

func TestBridgeAzureSDK_ForwardsEvents(t *testing.T) {
	t.Cleanup(DisableAzureSDKBridge)

	l, logs := newObservedLogger(zapcore.DebugLevel, false)
	BridgeAzureSDK(l, "request")

	sendThroughAzcore(t)
	assert.NotZero(t, logs.FilterField(zap.String("event", string(azlog.EventRequest))).Len())
}

func TestLoggerLifecycle_StopKeepsOtherBridge(t *testing.T) {
	t.Cleanup(DisableAzureSDKBridge)

	first, _ := newObservedLogger(zapcore.DebugLevel, false)
	second, secondLogs := newObservedLogger(zapcore.DebugLevel, false)
	BridgeAzureSDK(first, "request")
	BridgeAzureSDK(second, "request")

	firstLC := fxtest.NewLifecycle(t)
	RegisterLoggerLifecycle(firstLC, first)
	firstLC.RequireStart()
	firstLC.RequireStop()

	sendThroughAzcore(t)
	forwarded := secondLogs.FilterField(zap.String("source", "azcore")).Len()
	assert.NotZero(t, forwarded, "stopping a logger that no longer owns the bridge keeps it attached")

	secondLC := fxtest.NewLifecycle(t)
	RegisterLoggerLifecycle(secondLC, second)
	secondLC.RequireStart()
	secondLC.RequireStop()

	sendThroughAzcore(t)
	assert.Equal(t, forwarded, secondLogs.FilterField(zap.String("source", "azcore")).Len(),
		"stopping the owner detaches the bridge")
}
