package pipeline

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/azure-rest-lab/credential"
	"github.com/aalemi-dev/azure-rest-lab/observability"
)

const testAPIVersion = "2024-01-01"

type recordingObserver struct {
	mu    sync.Mutex
	calls []observability.OperationContext
}

func (r *recordingObserver) ObserveOperation(ctx observability.OperationContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, ctx)
}

func (r *recordingObserver) last() observability.OperationContext {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[len(r.calls)-1]
}

// newTestClient points a Client at handler over plain HTTP with retries off.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts Options) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cred, err := credential.NewStaticTokenCredential("test-token")
	require.NoError(t, err)

	if opts.Transport == nil {
		opts.Transport = server.Client()
	}

	client, err := New("testsvc", server.URL, testAPIVersion, Config{
		AllowInsecureHTTP: true,
		Retry:             RetryConfig{MaxRetries: -1},
	}, cred, opts)
	require.NoError(t, err)
	return client, server
}
