package metrics_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/azure-rest-lab/metrics"
	"github.com/aalemi-dev/azure-rest-lab/observability"
)

func newQuietMetrics(namespace string) *metrics.Metrics {
	return metrics.NewMetrics(metrics.Config{
		SystemMetricsAddress:      metrics.Ptr(""),
		ApplicationMetricsAddress: metrics.Ptr(""),
		ServiceName:               "azrest",
		Namespace:                 namespace,
	})
}

func TestOperationObserver_CountsOutcomes(t *testing.T) {
	m := newQuietMetrics("")
	obs := metrics.NewOperationObserver(m)

	var _ observability.Observer = obs

	obs.ObserveOperation(observability.OperationContext{
		Component: "appconfiguration",
		Operation: "get_key_value",
		Duration:  20 * time.Millisecond,
		Size:      128,
		Metadata:  map[string]interface{}{"status_code": 200},
	})
	obs.ObserveOperation(observability.OperationContext{
		Component: "appconfiguration",
		Operation: "get_key_value",
		Duration:  5 * time.Millisecond,
		Error:     errors.New("404 Not Found"),
		Metadata:  map[string]interface{}{"status_code": 404},
	})
	obs.ObserveOperation(observability.OperationContext{
		Component: "locks",
		Operation: "management_locks.list_by_scope",
		Error:     fmt.Errorf("sending request: %w", context.Canceled),
	})

	expected := `
# HELP azure_client_operations_total Azure REST operations by outcome and HTTP status.
# TYPE azure_client_operations_total counter
azure_client_operations_total{component="appconfiguration",operation="get_key_value",outcome="error",service="azrest",status_code="404"} 1
azure_client_operations_total{component="appconfiguration",operation="get_key_value",outcome="success",service="azrest",status_code="200"} 1
azure_client_operations_total{component="locks",operation="management_locks.list_by_scope",outcome="canceled",service="azrest",status_code="none"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.ApplicationRegistry, strings.NewReader(expected), "azure_client_operations_total"))

	count, err := testutil.GatherAndCount(m.ApplicationRegistry,
		"azure_client_operation_duration_seconds",
		"azure_client_response_size_bytes",
		"azure_client_last_success_timestamp_seconds",
	)
	require.NoError(t, err)
	// 2 duration series, 1 size series (only the 200 had a body), 1 last-success series
	assert.Equal(t, 4, count)
}

func TestOperationObserver_CustomNamespace(t *testing.T) {
	m := newQuietMetrics("azrest")
	obs := metrics.NewOperationObserver(m)

	obs.ObserveOperation(observability.OperationContext{Component: "locks", Operation: "operations.list"})

	count, err := testutil.GatherAndCount(m.ApplicationRegistry, "azrest_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestOperationObserver_SharedAcrossClients(t *testing.T) {
	m := newQuietMetrics("")

	assert.NotPanics(t, func() {
		a := metrics.NewOperationObserver(m)
		b := metrics.NewOperationObserver(m)
		a.ObserveOperation(observability.OperationContext{Component: "appconfiguration", Operation: "get_keys"})
		b.ObserveOperation(observability.OperationContext{Component: "appconfiguration", Operation: "get_keys"})
	})

	expected := `
# HELP azure_client_operations_total Azure REST operations by outcome and HTTP status.
# TYPE azure_client_operations_total counter
azure_client_operations_total{component="appconfiguration",operation="get_keys",outcome="success",service="azrest",status_code="none"} 2
`
	require.NoError(t, testutil.GatherAndCompare(m.ApplicationRegistry, strings.NewReader(expected), "azure_client_operations_total"))
}
