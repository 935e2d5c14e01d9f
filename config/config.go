package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/aalemi-dev/azure-rest-lab/appconfiguration"
	"github.com/aalemi-dev/azure-rest-lab/credential"
	"github.com/aalemi-dev/azure-rest-lab/locks"
	"github.com/aalemi-dev/azure-rest-lab/logger"
	"github.com/aalemi-dev/azure-rest-lab/metrics"
	"github.com/aalemi-dev/azure-rest-lab/tracer"
)

// EnvPrefix prefixes every environment override, e.g.
// AZREST_APPCONFIG_ENDPOINT or AZREST_LOGGER_LEVEL.
const EnvPrefix = "AZREST"

// DefaultServiceName fills the logger, tracer and metrics service names
// left empty.
const DefaultServiceName = "azrest"

// ErrInvalid wraps every validation failure of Load.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the configuration of an application using the clients.
//
//	logger:
//	  level: debug
//	credential:
//	  kind: cli
//	appconfiguration:
//	  endpoint: https://mystore.azconfig.io
//	  retry:
//	    max_retries: 5
//	    try_timeout: 10s
//	locks:
//	  endpoint: https://management.azure.com
type Config struct {
	Logger           logger.Config           `yaml:"logger"`
	Tracer           tracer.Config           `yaml:"tracer"`
	Metrics          metrics.Config          `yaml:"metrics"`
	Credential       credential.Config       `yaml:"credential"`
	AppConfiguration appconfiguration.Config `yaml:"appconfiguration"`
	Locks            locks.Config            `yaml:"locks"`
}

// sections maps each section to its environment prefix.
func (c *Config) sections() []struct {
	prefix string
	target any
} {
	return []struct {
		prefix string
		target any
	}{
		{EnvPrefix + "_LOGGER", &c.Logger},
		{EnvPrefix + "_TRACER", &c.Tracer},
		{EnvPrefix + "_METRICS", &c.Metrics},
		{EnvPrefix + "_CREDENTIAL", &c.Credential},
		{EnvPrefix + "_APPCONFIG", &c.AppConfiguration},
		{EnvPrefix + "_LOCKS", &c.Locks},
	}
}

// Load reads the YAML file at path, applies environment overrides, fills
// defaults and validates the result. An empty path skips the file.
// Unknown YAML keys are rejected.
func Load(path string) (*Config, error) {
	var data []byte
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		data = b
	}
	return Parse(data)
}

// Parse is Load for YAML already in memory.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}

	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: decoding yaml: %w", err)
		}
	}

	for _, s := range cfg.sections() {
		if err := envconfig.Process(s.prefix, s.target); err != nil {
			return nil, fmt.Errorf("config: environment %s_*: %w", s.prefix, err)
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Logger.Level == "" {
		c.Logger.Level = logger.Info
	}
	if c.Logger.ServiceName == "" {
		c.Logger.ServiceName = DefaultServiceName
	}
	if c.Tracer.ServiceName == "" {
		c.Tracer.ServiceName = DefaultServiceName
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = DefaultServiceName
	}
	if c.Credential.Kind == "" {
		c.Credential.Kind = credential.KindDefault
	}
}

var validate = validator.New()

// Validate checks every section against its validate tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %s", ErrInvalid, fe.Namespace(), tagWithParam(fe))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func tagWithParam(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
