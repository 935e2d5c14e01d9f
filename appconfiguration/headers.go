package appconfiguration

import (
	"time"

	"github.com/aalemi-dev/azure-rest-lab/pipeline"
)

// Response headers.
const (
	headerSyncToken    = "Sync-Token"
	headerETag         = "ETag"
	headerLastModified = "Last-Modified"
)

// Request headers.
const (
	headerAcceptDatetime = "Accept-Datetime"
	headerIfMatch        = "If-Match"
	headerIfNoneMatch    = "If-None-Match"
	headerAccept         = "Accept"
)

// Media types of the 1.0 API.
const (
	mediaKeyValue     = "application/vnd.microsoft.appconfig.kv+json"
	mediaKeyValueSet  = "application/vnd.microsoft.appconfig.kvset+json"
	mediaKeySet       = "application/vnd.microsoft.appconfig.keyset+json"
	mediaLabelSet     = "application/vnd.microsoft.appconfig.labelset+json"
	mediaProblem      = "application/problem+json"
	acceptKeyValue    = mediaKeyValue + ", " + mediaProblem
	acceptKeyValueSet = mediaKeyValueSet + ", " + mediaProblem
	acceptKeySet      = mediaKeySet + ", " + mediaProblem
	acceptLabelSet    = mediaLabelSet + ", " + mediaProblem
)

// ResponseHeaders are the headers every App Configuration response may carry.
type ResponseHeaders struct {
	// SyncToken should be passed to later requests to read your own writes
	// across replicas.
	SyncToken string

	// ETag of the entity, set on single key-value responses.
	ETag string

	// LastModified of the entity, set on single key-value responses.
	LastModified *time.Time
}

func headersOf(resp *pipeline.Response) ResponseHeaders {
	return ResponseHeaders{
		SyncToken:    resp.Header(headerSyncToken),
		ETag:         resp.Header(headerETag),
		LastModified: resp.HeaderTime(headerLastModified),
	}
}

// CheckResponse is the result of the HEAD operations.
type CheckResponse struct {
	ResponseHeaders
}
