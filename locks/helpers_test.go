package locks

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/azure-rest-lab/credential"
	"github.com/aalemi-dev/azure-rest-lab/pipeline"
)

type seen struct {
	method      string
	escapedPath string
	query       map[string][]string
	body        string
	auth        string
}

type fakeARM struct {
	mu   sync.Mutex
	reqs []seen
}

func (f *fakeARM) all() []seen {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]seen(nil), f.reqs...)
}

func (f *fakeARM) last(t *testing.T) seen {
	t.Helper()
	reqs := f.all()
	require.NotEmpty(t, reqs)
	return reqs[len(reqs)-1]
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *fakeARM, *httptest.Server) {
	t.Helper()

	arm := &fakeARM{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		arm.mu.Lock()
		arm.reqs = append(arm.reqs, seen{
			method:      r.Method,
			escapedPath: r.URL.EscapedPath(),
			query:       r.URL.Query(),
			body:        string(body),
			auth:        r.Header.Get("Authorization"),
		})
		arm.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	cred, err := credential.NewStaticTokenCredential("arm-token")
	require.NoError(t, err)

	c, err := NewClient(Config{Config: pipeline.Config{
		Endpoint:          server.URL,
		AllowInsecureHTTP: true,
		Retry:             pipeline.RetryConfig{MaxRetries: -1},
	}}, cred, Options{Transport: server.Client()})
	require.NoError(t, err)
	return c, arm, server
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

const lockBody = `{"id":"/subscriptions/sub1/resourceGroups/rg1/providers/Microsoft.Authorization/locks/no-delete",` +
	`"type":"Microsoft.Authorization/locks","name":"no-delete",` +
	`"properties":{"level":"CanNotDelete","notes":"keep","owners":[{"applicationId":"app-1"}]},` +
	`"systemData":{"createdBy":"me@example.com","createdByType":"User","createdAt":"2024-01-02T03:04:05Z"}}`

func strPtr(s string) *string { return &s }
