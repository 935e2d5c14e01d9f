package credential

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"go.uber.org/fx"
)

// FXModule provides an azcore.TokenCredential built from a credential.Config.
var FXModule = fx.Module("credential",
	fx.Provide(NewCredential),
)

// Supply returns an option that injects an existing credential instead of
// building one from configuration.
func Supply(cred azcore.TokenCredential) fx.Option {
	return fx.Provide(func() azcore.TokenCredential { return cred })
}
