// Package credential turns configuration into an azcore.TokenCredential.
//
// The Azure clients in this module never acquire tokens themselves; the
// pipeline's bearer token policy asks the credential for a token per scope
// and caches it until shortly before it expires.
//
// Kinds: static, client_secret, managed_identity, cli, default.
package credential
