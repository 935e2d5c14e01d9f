package pipeline

import (
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"

	"github.com/aalemi-dev/azure-rest-lab/logger"
	"github.com/aalemi-dev/azure-rest-lab/tracer"
)

// tracePropagationPolicy writes the W3C trace context of the request's
// context onto every attempt.
type tracePropagationPolicy struct {
	tracer tracer.Tracer
}

func (p *tracePropagationPolicy) Do(req *policy.Request) (*http.Response, error) {
	raw := req.Raw()
	for name, value := range p.tracer.GetCarrier(raw.Context()) {
		raw.Header.Set(name, value)
	}
	return req.Next()
}

// attemptLogPolicy logs every attempt, retries included, at debug level.
type attemptLogPolicy struct {
	component string
	logger    logger.Logger
}

func (p *attemptLogPolicy) Do(req *policy.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := req.Next()

	raw := req.Raw()
	fields := map[string]interface{}{
		"component":   p.component,
		"method":      raw.Method,
		"host":        raw.URL.Host,
		"path":        raw.URL.Path,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if resp != nil {
		fields["status_code"] = resp.StatusCode
		if id := resp.Header.Get("x-ms-request-id"); id != "" {
			fields["request_id"] = id
		}
	}
	p.logger.DebugWithContext(raw.Context(), "azure request attempt", err, fields)

	return resp, err
}
