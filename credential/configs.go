package credential

// Supported credential kinds.
const (
	// KindStatic sends a fixed bearer token. Meant for emulators, tests and
	// tokens minted out of band (az account get-access-token).
	KindStatic = "static"

	// KindClientSecret authenticates a service principal with a secret.
	KindClientSecret = "client_secret"

	// KindManagedIdentity uses the host's managed identity, optionally a
	// user-assigned one selected by ClientID.
	KindManagedIdentity = "managed_identity"

	// KindCLI reuses the Azure CLI login.
	KindCLI = "cli"

	// KindDefault chains environment, workload identity, managed identity
	// and CLI credentials.
	KindDefault = "default"
)

// Cloud names accepted by Config.Cloud.
const (
	CloudPublic     = "public"
	CloudChina      = "china"
	CloudGovernment = "government"
)

// Config selects and configures a credential.
type Config struct {
	// Kind is one of "static", "client_secret", "managed_identity", "cli"
	// or "default" (the default).
	Kind string `yaml:"kind" split_words:"true" validate:"omitempty,oneof=static client_secret managed_identity cli default"`

	// Cloud selects the Entra ID authority: "public" (default), "china" or
	// "government".
	Cloud string `yaml:"cloud" split_words:"true" validate:"omitempty,oneof=public china government"`

	TenantID     string `yaml:"tenant_id" split_words:"true" validate:"required_if=Kind client_secret"`
	ClientID     string `yaml:"client_id" split_words:"true" validate:"required_if=Kind client_secret"`
	ClientSecret string `yaml:"client_secret" split_words:"true" validate:"required_if=Kind client_secret"`

	// Token is the bearer token used by the static kind.
	Token string `yaml:"token" split_words:"true" validate:"required_if=Kind static"`
}
