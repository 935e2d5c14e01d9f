package observability

import "time"

// Observer receives one event per completed client operation.
// Client packages (appconfiguration, locks, ...) call it after every request
// they send, successful or not, so applications can plug in metrics, tracing
// or audit logging without the clients knowing about any of it.
//
// Observers are optional. A nil Observer is never called.
type Observer interface {
	// ObserveOperation is called once the operation has finished.
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes a single REST operation issued by a client.
type OperationContext struct {
	// Component identifies the client package that sent the request.
	// Examples: "appconfiguration", "locks"
	Component string

	// Operation is the name of the REST operation.
	// Examples:
	//   App Configuration: "get_key_value", "put_key_value", "get_revisions"
	//   Locks:             "management_locks.create_or_update_by_scope"
	Operation string

	// Resource identifies the primary resource being operated on.
	// Examples:
	//   App Configuration: the store endpoint host ("mystore.azconfig.io")
	//   Locks:             the lock scope ("/subscriptions/0000/resourceGroups/rg")
	Resource string

	// SubResource provides additional resource context (optional).
	// Examples:
	//   App Configuration: key name ("app:color")
	//   Locks:             lock name ("do-not-delete")
	SubResource string

	// Duration is how long the operation took, including pipeline retries.
	Duration time.Duration

	// Error is the error returned by the operation, if any.
	Error error

	// Size is the number of response body bytes, or the number of items for
	// list pages (optional).
	Size int64

	// Metadata provides additional operation-specific information (optional).
	// Examples: {"status_code": 200, "method": "GET", "page": 2}
	Metadata map[string]interface{}
}
