package credential

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

// staticTokenLifetime is the expiry reported for static tokens. The real
// expiry is unknown; azcore refreshes shortly before it, so it is kept long.
const staticTokenLifetime = 24 * time.Hour

// StaticTokenCredential returns the same bearer token for every scope.
type StaticTokenCredential struct {
	token string
	now   func() time.Time
}

// NewStaticTokenCredential creates a credential for a pre-issued token.
func NewStaticTokenCredential(token string) (*StaticTokenCredential, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	return &StaticTokenCredential{token: token, now: time.Now}, nil
}

// GetToken implements azcore.TokenCredential.
func (s *StaticTokenCredential) GetToken(ctx context.Context, _ policy.TokenRequestOptions) (azcore.AccessToken, error) {
	if err := ctx.Err(); err != nil {
		return azcore.AccessToken{}, err
	}
	return azcore.AccessToken{
		Token:     s.token,
		ExpiresOn: s.now().Add(staticTokenLifetime),
	}, nil
}
