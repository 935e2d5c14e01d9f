package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aalemi-dev/azure-rest-lab/credential"
	"github.com/aalemi-dev/azure-rest-lab/logger"
	"github.com/aalemi-dev/azure-rest-lab/tracer"
)

type listQuery struct {
	Name   string `schema:"name,omitempty"`
	After  string `schema:"After,omitempty"`
	Select CSV    `schema:"$Select,omitempty"`
}

func TestRequest_URL(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {}, Options{})

	t.Run("path, api-version and query", func(t *testing.T) {
		u := c.NewRequest("get_keys", http.MethodGet, "/kv/"+PathEscape("app/color")).
			Query("label", "prod").
			Query("empty", "").
			QueryStruct(listQuery{Name: "app*", Select: CSV{"key", "label"}}).
			URL()

		assert.Equal(t, c.Endpoint()+"/kv/app%2Fcolor?%24Select=key%2Clabel&api-version="+testAPIVersion+"&label=prod&name=app%2A", u)
	})

	t.Run("omitted optionals", func(t *testing.T) {
		u := c.NewRequest("get_keys", http.MethodGet, "/keys").QueryStruct(listQuery{}).URL()
		assert.Equal(t, c.Endpoint()+"/keys?api-version="+testAPIVersion, u)
	})

	t.Run("query struct error is deferred to Do", func(t *testing.T) {
		req := c.NewRequest("get_keys", http.MethodGet, "/keys").QueryStruct("not a struct")
		_, err := req.Do(context.Background(), http.StatusOK)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "get_keys: encoding query")
	})
}

func TestRequest_Do(t *testing.T) {
	type entity struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}

	var (
		gotAuth, gotContentType, gotIfMatch, gotDate string
		gotBody                                      entity
	)
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotIfMatch = r.Header.Get("If-Match")
		gotDate = r.Header.Get("Accept-Datetime")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Header().Set("ETag", `"abc"`)
		w.Header().Set("Last-Modified", "Fri, 02 Jan 2026 15:04:05 GMT")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(entity{Key: "k", Value: "stored"})
	}, Options{})

	when := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	resp, err := c.NewRequest("put_key_value", http.MethodPut, "/kv/k").
		Header("If-Match", `"xyz"`).
		Header("If-None-Match", "").
		HeaderTime("Accept-Datetime", when).
		HeaderTime("Ignored", time.Time{}).
		JSONBody(entity{Key: "k", Value: "v"}, "application/vnd.microsoft.appconfig.kv+json").
		Do(context.Background(), http.StatusOK)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "application/vnd.microsoft.appconfig.kv+json", gotContentType)
	assert.Equal(t, `"xyz"`, gotIfMatch)
	assert.Equal(t, "Fri, 02 Jan 2026 15:04:05 GMT", gotDate)
	assert.Equal(t, entity{Key: "k", Value: "v"}, gotBody)

	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, `"abc"`, resp.Header("ETag"))
	require.NotNil(t, resp.HeaderTime("Last-Modified"))
	assert.Nil(t, resp.HeaderTime("Missing"))
	assert.Positive(t, resp.Size())

	var out entity
	require.NoError(t, resp.Decode(&out))
	assert.Equal(t, "stored", out.Value)

	// The body is buffered so it can be decoded twice.
	var again entity
	require.NoError(t, resp.Decode(&again))
	assert.Equal(t, out, again)
}

func TestRequest_Do_ErrorTranslation(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/arm":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"error":{"code":"LockNotFound","message":"The lock 'x' could not be found."}}`)
		case "/problem":
			w.Header().Set("Content-Type", "application/problem+json")
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"type":"https://azconfig.io/errors/key-locked","title":"Modifing key 'k' is not allowed","name":"k","detail":"The key is read-only.","status":409}`)
		case "/header":
			w.Header().Set("x-ms-error-code", "ConditionNotMet")
			w.WriteHeader(http.StatusPreconditionFailed)
		case "/throttled":
			w.WriteHeader(http.StatusTooManyRequests)
		case "/teapot":
			w.WriteHeader(http.StatusTeapot)
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}, Options{})

	cases := []struct {
		path     string
		method   string
		sentinel error
		status   int
		code     string
		message  string
	}{
		{"/arm", http.MethodGet, ErrNotFound, 404, "LockNotFound", "The lock 'x' could not be found."},
		{"/problem", http.MethodPut, ErrConflict, 409, "key-locked", "The key is read-only."},
		{"/header", http.MethodHead, ErrPreconditionFailed, 412, "ConditionNotMet", "Precondition Failed"},
		{"/throttled", http.MethodGet, ErrThrottled, 429, "", "Too Many Requests"},
		{"/teapot", http.MethodGet, ErrUnexpectedStatus, 418, "", "I'm a teapot"},
		{"/other", http.MethodGet, ErrServerError, 502, "", "Bad Gateway"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			_, err := c.NewRequest("op", tc.method, tc.path).Do(context.Background(), http.StatusOK)
			require.Error(t, err)

			assert.ErrorIs(t, err, tc.sentinel)
			assert.Equal(t, tc.status, StatusCode(err))

			var re *ResponseError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, "op", re.Operation)
			assert.Equal(t, tc.code, re.ErrorCode)
			assert.Equal(t, tc.message, re.Message)
			assert.NotNil(t, re.RawResponse)

			var az *azcore.ResponseError
			require.ErrorAs(t, err, &az)
			assert.Equal(t, tc.status, az.StatusCode)
		})
	}
}

func TestResponseError_Error(t *testing.T) {
	re := &ResponseError{Operation: "get_key_value", StatusCode: 404, ErrorCode: "KeyNotFound", Message: "gone"}
	assert.Equal(t, "get_key_value: 404 Not Found (KeyNotFound): gone", re.Error())

	re = &ResponseError{Operation: "check_keys", StatusCode: 503, Message: "Service Unavailable"}
	assert.Equal(t, "check_keys: 503 Service Unavailable", re.Error())

	assert.Equal(t, 0, StatusCode(errors.New("plain")))
}

func TestRequest_Do_RefusesTokenOverHTTP(t *testing.T) {
	called := false
	_, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { called = true }, Options{})

	cred, err := credential.NewStaticTokenCredential("tok")
	require.NoError(t, err)
	c, err := New("testsvc", server.URL, testAPIVersion, Config{Retry: RetryConfig{MaxRetries: -1}}, cred, Options{Transport: server.Client()})
	require.NoError(t, err)

	_, err = c.NewRequest("op", http.MethodGet, "/").Do(context.Background(), http.StatusOK)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "op: sending request")
	assert.False(t, called, "no request should reach the server")
}

func TestRequest_Do_Fail(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not be sent")
	}, Options{})

	boom := errors.New("invalid lock")
	_, err := c.NewRequest("op", http.MethodPut, "/").Fail(boom).Fail(errors.New("second")).Do(context.Background(), http.StatusOK)
	assert.ErrorIs(t, err, boom)
}

func TestRequest_Do_CanceledContext(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {}, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.NewRequest("op", http.MethodGet, "/").Do(ctx, http.StatusOK)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRequest_Do_ObservesAndLogs(t *testing.T) {
	obs := &recordingObserver{}
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.LoggerClient{Zap: zap.New(core)}

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			_, _ = io.WriteString(w, `{"ok":true}`)
		}
	}, Options{Observer: obs, Logger: log})

	_, err := c.NewRequest("get_thing", http.MethodGet, "/thing").Resource("store", "thing").Do(context.Background(), http.StatusOK)
	require.NoError(t, err)

	call := obs.last()
	assert.Equal(t, "testsvc", call.Component)
	assert.Equal(t, "get_thing", call.Operation)
	assert.Equal(t, "store", call.Resource)
	assert.Equal(t, "thing", call.SubResource)
	assert.Equal(t, int64(len(`{"ok":true}`)), call.Size)
	assert.Equal(t, http.StatusOK, call.Metadata["status_code"])
	assert.Equal(t, http.MethodGet, call.Metadata["method"])
	assert.NoError(t, call.Error)

	// default resource is the endpoint host
	_, err = c.NewRequest("get_missing", http.MethodGet, "/missing").Do(context.Background(), http.StatusOK)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, c.Host(), obs.last().Resource)
	assert.Equal(t, http.StatusNotFound, obs.last().Metadata["status_code"])

	_, err = c.NewRequest("get_broken", http.MethodGet, "/broken").Do(context.Background(), http.StatusOK)
	require.ErrorIs(t, err, ErrServerError)

	failures := logs.FilterMessage("azure operation failed").All()
	require.Len(t, failures, 2)
	assert.Equal(t, zapcore.DebugLevel, failures[0].Level, "404 is logged at debug")
	assert.Equal(t, zapcore.ErrorLevel, failures[1].Level)
	assert.Equal(t, "get_broken", failures[1].ContextMap()["operation"])

	attempts := logs.FilterMessage("azure request attempt").All()
	assert.Len(t, attempts, 3)
}

func TestRequest_Do_PropagatesTraceContext(t *testing.T) {
	tr, err := tracer.NewClient(tracer.Config{ServiceName: "pipeline-test"})
	require.NoError(t, err)

	var traceparent string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		traceparent = r.Header.Get("traceparent")
	}, Options{Tracer: tr})

	_, err = c.NewRequest("op", http.MethodGet, "/").Do(context.Background(), http.StatusOK)
	require.NoError(t, err)
	assert.NotEmpty(t, traceparent)
}
