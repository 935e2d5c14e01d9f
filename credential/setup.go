package credential

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// NewCredential builds the azcore.TokenCredential described by cfg.
//
//	cred, err := credential.NewCredential(credential.Config{
//	    Kind:         credential.KindClientSecret,
//	    TenantID:     os.Getenv("AZURE_TENANT_ID"),
//	    ClientID:     os.Getenv("AZURE_CLIENT_ID"),
//	    ClientSecret: os.Getenv("AZURE_CLIENT_SECRET"),
//	})
func NewCredential(cfg Config) (azcore.TokenCredential, error) {
	clientOpts := policy.ClientOptions{Cloud: cloudConfiguration(cfg.Cloud)}

	switch cfg.Kind {
	case KindStatic:
		return NewStaticTokenCredential(cfg.Token)

	case KindClientSecret:
		if cfg.TenantID == "" || cfg.ClientID == "" || cfg.ClientSecret == "" {
			return nil, ErrMissingSecret
		}
		cred, err := azidentity.NewClientSecretCredential(cfg.TenantID, cfg.ClientID, cfg.ClientSecret,
			&azidentity.ClientSecretCredentialOptions{ClientOptions: clientOpts})
		if err != nil {
			return nil, fmt.Errorf("credential: client secret: %w", err)
		}
		return cred, nil

	case KindManagedIdentity:
		opts := &azidentity.ManagedIdentityCredentialOptions{ClientOptions: clientOpts}
		if cfg.ClientID != "" {
			opts.ID = azidentity.ClientID(cfg.ClientID)
		}
		cred, err := azidentity.NewManagedIdentityCredential(opts)
		if err != nil {
			return nil, fmt.Errorf("credential: managed identity: %w", err)
		}
		return cred, nil

	case KindCLI:
		cred, err := azidentity.NewAzureCLICredential(&azidentity.AzureCLICredentialOptions{TenantID: cfg.TenantID})
		if err != nil {
			return nil, fmt.Errorf("credential: azure cli: %w", err)
		}
		return cred, nil

	case KindDefault, "":
		cred, err := azidentity.NewDefaultAzureCredential(&azidentity.DefaultAzureCredentialOptions{
			ClientOptions: clientOpts,
			TenantID:      cfg.TenantID,
		})
		if err != nil {
			return nil, fmt.Errorf("credential: default chain: %w", err)
		}
		return cred, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
}

func cloudConfiguration(name string) cloud.Configuration {
	switch name {
	case CloudChina:
		return cloud.AzureChina
	case CloudGovernment:
		return cloud.AzureGovernment
	default:
		return cloud.AzurePublic
	}
}
