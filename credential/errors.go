package credential

import "errors"

var (
	// ErrUnknownKind is returned for a Config.Kind this package does not support.
	ErrUnknownKind = errors.New("credential: unknown kind")

	// ErrMissingToken is returned when the static kind has no token.
	ErrMissingToken = errors.New("credential: static kind requires a token")

	// ErrMissingSecret is returned when client_secret is missing tenant, client or secret.
	ErrMissingSecret = errors.New("credential: client_secret kind requires tenant_id, client_id and client_secret")
)
