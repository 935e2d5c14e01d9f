package locks

import "github.com/aalemi-dev/azure-rest-lab/pipeline"

// Defaults of the public cloud resource manager.
const (
	DefaultEndpoint = "https://management.azure.com"
	APIVersion      = "2020-05-01"
)

// Config configures the locks client. An empty Endpoint targets
// DefaultEndpoint; sovereign clouds set their resource manager here, e.g.
// "https://management.chinacloudapi.cn".
type Config struct {
	pipeline.Config `yaml:",inline"`
}

// Options carries the optional collaborators of a Client.
type Options = pipeline.Options
