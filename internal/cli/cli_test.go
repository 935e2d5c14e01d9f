package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type request struct {
	method string
	path   string
	query  map[string][]string
	header http.Header
	body   string
}

type fakeAzure struct {
	mu      sync.Mutex
	reqs    []request
	handler http.HandlerFunc
}

func newFakeAzure(t *testing.T, handler http.HandlerFunc) (*fakeAzure, *httptest.Server) {
	t.Helper()
	f := &fakeAzure{handler: handler}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.reqs = append(f.reqs, request{
			method: r.Method,
			path:   r.URL.EscapedPath(),
			query:  r.URL.Query(),
			header: r.Header.Clone(),
			body:   string(body),
		})
		f.mu.Unlock()
		f.handler(w, r)
	}))
	t.Cleanup(server.Close)
	return f, server
}

func (f *fakeAzure) requests() []request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]request(nil), f.reqs...)
}

// writeConfig points both services at endpoint with a static token.
func writeConfig(t *testing.T, endpoint string) string {
	t.Helper()
	content := fmt.Sprintf(`
logger:
  level: error
credential:
  kind: static
  token: cli-token
appconfiguration:
  endpoint: %[1]q
  allow_insecure_http: true
  retry:
    max_retries: -1
locks:
  endpoint: %[1]q
  allow_insecure_http: true
  retry:
    max_retries: -1
metrics:
  system_metrics_address: ""
  application_metrics_address: ""
`, endpoint)
	path := filepath.Join(t.TempDir(), "azrest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestKVGet(t *testing.T) {
	fake, server := newFakeAzure(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"key":"app:color","label":"prod","value":"blue","etag":"e1"}`)
	})

	out, _, err := execute(t, "--config", writeConfig(t, server.URL), "kv", "get", "app:color", "--label", "prod")
	require.NoError(t, err)

	var kv map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &kv))
	assert.Equal(t, "blue", kv["value"])

	reqs := fake.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/kv/app:color", reqs[0].path)
	assert.Equal(t, []string{"prod"}, reqs[0].query["label"])
	assert.Equal(t, "Bearer cli-token", reqs[0].header.Get("Authorization"))
}

func TestKVSet_YAMLOutput(t *testing.T) {
	fake, server := newFakeAzure(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"key":"app","value":"42","content_type":"text/plain","tags":{"env":"dev"}}`)
	})

	out, _, err := execute(t, "--config", writeConfig(t, server.URL), "-o", "yaml",
		"kv", "set", "app", "42", "--content-type", "text/plain", "--tag", "env=dev", "--only-if-new")
	require.NoError(t, err)

	var kv map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &kv))
	assert.Equal(t, "42", kv["value"])
	assert.Equal(t, "text/plain", kv["content_type"])

	req := fake.requests()[0]
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "*", req.header.Get("If-None-Match"))
	assert.JSONEq(t, `{"value":"42","content_type":"text/plain","tags":{"env":"dev"}}`, req.body)
}

func TestKVSet_ConflictingFlags(t *testing.T) {
	_, _, err := execute(t, "kv", "set", "app", "1", "--if-match", "e1", "--only-if-new")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestKVList_Limit(t *testing.T) {
	fake, server := newFakeAzure(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"items":[{"key":"a"},{"key":"b"}],"@nextLink":"/kv?After=b"}`)
	})

	out, _, err := execute(t, "--config", writeConfig(t, server.URL),
		"kv", "list", "--key", "a*", "--select", "key,value", "--limit", "1")
	require.NoError(t, err)

	var items []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0]["key"])

	reqs := fake.requests()
	require.Len(t, reqs, 1, "second page not fetched")
	assert.Equal(t, []string{"key,value"}, reqs[0].query["$Select"])
}

func TestKVList_InvalidSelect(t *testing.T) {
	_, _, err := execute(t, "kv", "list", "--select", "colour")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestKVDelete_Missing(t *testing.T) {
	_, server := newFakeAzure(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	out, stderr, err := execute(t, "--config", writeConfig(t, server.URL), "kv", "delete", "gone")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "gone did not exist")
}

func TestKVLockUnlock(t *testing.T) {
	fake, server := newFakeAzure(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"key":"app","locked":true}`)
	})
	cfg := writeConfig(t, server.URL)

	_, _, err := execute(t, "--config", cfg, "kv", "lock", "app")
	require.NoError(t, err)
	_, _, err = execute(t, "--config", cfg, "kv", "unlock", "app")
	require.NoError(t, err)

	reqs := fake.requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, http.MethodPut, reqs[0].method)
	assert.Equal(t, http.MethodDelete, reqs[1].method)
	assert.Equal(t, "/locks/app", reqs[1].path)
}

func TestKVWatch(t *testing.T) {
	var (
		mu    sync.Mutex
		calls int
	)
	_, server := newFakeAzure(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		switch {
		case n == 1:
			w.Header().Set("ETag", "e1")
			writeJSON(w, http.StatusOK, `{"key":"app","value":"1","etag":"e1"}`)
		case n < 4:
			assert.Equal(t, "e1", r.Header.Get("If-None-Match"))
			w.WriteHeader(http.StatusNotModified)
		default:
			w.Header().Set("ETag", "e2")
			writeJSON(w, http.StatusOK, `{"key":"app","value":"2","etag":"e2"}`)
		}
	})

	out, _, err := execute(t, "--config", writeConfig(t, server.URL),
		"kv", "watch", "app", "--interval", "5ms", "--changes", "2")
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(out))
	var values []string
	for dec.More() {
		var kv map[string]any
		require.NoError(t, dec.Decode(&kv))
		values = append(values, kv["value"].(string))
	}
	assert.Equal(t, []string{"1", "2"}, values)
}

func TestListCommands(t *testing.T) {
	fake, server := newFakeAzure(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/keys":
			writeJSON(w, http.StatusOK, `{"items":[{"name":"a"}]}`)
		case "/labels":
			writeJSON(w, http.StatusOK, `{"items":[{"name":"prod"}]}`)
		case "/revisions":
			writeJSON(w, http.StatusOK, `{"items":[{"key":"a","value":"1"}]}`)
		}
	})
	cfg := writeConfig(t, server.URL)

	out, _, err := execute(t, "--config", cfg, "keys", "list", "--name", "a*")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"a"}]`, out)

	out, _, err = execute(t, "--config", cfg, "labels", "list", "--select", "name")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"prod"}]`, out)

	out, _, err = execute(t, "--config", cfg, "revisions", "list", "--key", "a")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":"a","value":"1"}]`, out)

	assert.Len(t, fake.requests(), 3)
}

func TestEndpointFlag(t *testing.T) {
	fake, server := newFakeAzure(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"key":"app"}`)
	})
	other := writeConfig(t, "http://127.0.0.1:1")

	_, _, err := execute(t, "--config", other, "--endpoint", server.URL, "kv", "get", "app")
	require.NoError(t, err)
	assert.Len(t, fake.requests(), 1)
}

func TestMissingEndpoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "azrest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("credential:\n  kind: static\n  token: x\n"), 0o600))

	_, _, err := execute(t, "--config", path, "kv", "get", "app")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint is required")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"kv", "get", "app", "--colour"}},
		{"bad output", []string{"-o", "xml", "kv", "get", "app"}},
		{"missing argument", []string{"kv", "get"}},
		{"no lock target", []string{"locks", "list"}},
		{"bad lock level", []string{"locks", "create", "x", "--subscription", "s", "--level", "Frozen"}},
		{"bad interval", []string{"kv", "watch", "app", "--interval", "0s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, ErrUsage)
		})
	}
}

func TestLocksCommands(t *testing.T) {
	lock := `{"name":"no-delete","type":"Microsoft.Authorization/locks","properties":{"level":"CanNotDelete","notes":"keep"}}`
	fake, server := newFakeAzure(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/operations"):
			writeJSON(w, http.StatusOK, `{"value":[{"name":"Microsoft.Authorization/locks/read"}]}`)
		case r.Method == http.MethodPut:
			writeJSON(w, http.StatusCreated, lock)
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case strings.HasSuffix(r.URL.Path, "/locks"):
			writeJSON(w, http.StatusOK, `{"value":[`+lock+`]}`)
		default:
			writeJSON(w, http.StatusOK, lock)
		}
	})
	cfg := writeConfig(t, server.URL)

	out, _, err := execute(t, "--config", cfg, "locks", "list", "--subscription", "sub1", "--resource-group", "rg1", "--filter", "atScope()")
	require.NoError(t, err)
	var listed []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	assert.Len(t, listed, 1)

	_, _, err = execute(t, "--config", cfg, "locks", "get", "no-delete", "--scope", "/subscriptions/sub1")
	require.NoError(t, err)

	_, _, err = execute(t, "--config", cfg, "locks", "create", "no-delete",
		"--subscription", "sub1", "--resource-group", "rg1",
		"--provider", "Microsoft.Storage", "--resource-type", "storageAccounts", "--resource-name", "acct",
		"--level", "ReadOnly", "--notes", "keep")
	require.NoError(t, err)

	_, stderr, err := execute(t, "--config", cfg, "locks", "delete", "no-delete", "--subscription", "sub1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "did not exist")

	out, _, err = execute(t, "--config", cfg, "locks", "operations")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Microsoft.Authorization/locks/read"}]`, out)

	reqs := fake.requests()
	require.Len(t, reqs, 5)
	assert.Equal(t, "/subscriptions/sub1/resourceGroups/rg1/providers/Microsoft.Authorization/locks", reqs[0].path)
	assert.Equal(t, []string{"atScope()"}, reqs[0].query["$filter"])
	assert.Equal(t, "/subscriptions/sub1/providers/Microsoft.Authorization/locks/no-delete", reqs[1].path)
	assert.Equal(t, "/subscriptions/sub1/resourcegroups/rg1/providers/Microsoft.Storage/storageAccounts/acct/providers/Microsoft.Authorization/locks/no-delete", reqs[2].path)
	assert.JSONEq(t, `{"properties":{"level":"ReadOnly","notes":"keep"}}`, reqs[2].body)
	assert.Equal(t, http.MethodDelete, reqs[3].method)
}
