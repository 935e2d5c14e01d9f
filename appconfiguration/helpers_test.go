package appconfiguration

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/azure-rest-lab/credential"
	"github.com/aalemi-dev/azure-rest-lab/observability"
	"github.com/aalemi-dev/azure-rest-lab/pipeline"
)

const testToken = "test-token"

type captured struct {
	method      string
	escapedPath string
	query       url.Values
	header      http.Header
	body        []byte
}

type fakeStore struct {
	mu   sync.Mutex
	reqs []captured
}

func (f *fakeStore) record(r *http.Request, body []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, captured{
		method:      r.Method,
		escapedPath: r.URL.EscapedPath(),
		query:       r.URL.Query(),
		header:      r.Header.Clone(),
		body:        body,
	})
}

func (f *fakeStore) last(t *testing.T) captured {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.reqs, "no request reached the server")
	return f.reqs[len(f.reqs)-1]
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reqs)
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []observability.OperationContext
}

func (r *recordingObserver) ObserveOperation(ctx observability.OperationContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, ctx)
}

// newTestClient serves handler from an httptest server and records every
// request it receives.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts Options) (*Client, *fakeStore, *httptest.Server) {
	t.Helper()

	store := &fakeStore{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		store.record(r, body)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	cred, err := credential.NewStaticTokenCredential(testToken)
	require.NoError(t, err)

	if opts.Transport == nil {
		opts.Transport = server.Client()
	}

	client, err := NewClient(Config{Config: pipeline.Config{
		Endpoint:          server.URL,
		AllowInsecureHTTP: true,
		Retry:             pipeline.RetryConfig{MaxRetries: -1},
	}}, cred, opts)
	require.NoError(t, err)
	return client, store, server
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
