package logger

import (
	"strings"
	"sync"

	azlog "github.com/Azure/azure-sdk-for-go/sdk/azcore/log"
	"go.uber.org/zap"
)

// BridgeAzureSDK routes azcore's internal log events to l at debug level.
// Events are matched case-insensitively against azcore's event names
// ("Request", "Response", "ResponseError", "Retry", "LongRunningOperation");
// "all" enables every event.
//
// azcore keeps a single process-wide listener, so the last call wins and
// l becomes the bridge owner.
func BridgeAzureSDK(l *LoggerClient, events ...string) {
	bridgeMu.Lock()
	defer bridgeMu.Unlock()

	selected := azureEvents(events)
	if len(selected) == 0 {
		azlog.SetListener(nil)
		bridgeOwner = nil
		return
	}

	sdk := l.Zap.With(zap.String("source", "azcore"))
	azlog.SetEvents(selected...)
	azlog.SetListener(func(event azlog.Event, msg string) {
		sdk.Debug(msg, zap.String("event", string(event)))
	})
	bridgeOwner = l
}

// DisableAzureSDKBridge detaches the azcore listener whoever installed it.
func DisableAzureSDKBridge() {
	bridgeMu.Lock()
	defer bridgeMu.Unlock()
	azlog.SetListener(nil)
	bridgeOwner = nil
}

// releaseAzureSDKBridge detaches the listener only if l installed it, so
// stopping one logger leaves another logger's bridge in place.
func releaseAzureSDKBridge(l *LoggerClient) {
	bridgeMu.Lock()
	defer bridgeMu.Unlock()
	if bridgeOwner != l {
		return
	}
	azlog.SetListener(nil)
	bridgeOwner = nil
}

var (
	bridgeMu    sync.Mutex
	bridgeOwner *LoggerClient
)

var knownAzureEvents = []azlog.Event{
	azlog.EventRequest,
	azlog.EventResponse,
	azlog.EventResponseError,
	azlog.EventRetryPolicy,
	azlog.EventLRO,
}

func azureEvents(names []string) []azlog.Event {
	var out []azlog.Event
	for _, name := range names {
		name = strings.TrimSpace(name)
		if strings.EqualFold(name, "all") {
			return knownAzureEvents
		}
		for _, ev := range knownAzureEvents {
			if strings.EqualFold(name, string(ev)) {
				out = append(out, ev)
			}
		}
	}
	return out
}
