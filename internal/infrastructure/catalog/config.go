package catalog

import "errors"

// ErrConfigMissingBaseURL indicates an adapter config without an upstream URL
var ErrConfigMissingBaseURL = errors.New("catalog: base URL is required")

// Default upstream endpoints
const (
	FakeStoreBaseURL = "https://fakestoreapi.com"
	DummyJSONBaseURL = "https://dummyjson.com"
	PlatziBaseURL    = "https://api.escuelajs.co/api/v1"
)

// defaultTimeoutSeconds is the default HTTP client timeout for adapters.
// There is no retry policy beyond this client-level timeout.
const defaultTimeoutSeconds = 10

// Config holds the connection settings for one upstream catalog
type Config struct {
	BaseURL        string
	TimeoutSeconds int
}

// Validate checks the config and applies defaults
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaultTimeoutSeconds
	}
	return nil
}

// NewConfig creates an adapter config for the given upstream URL
func NewConfig(baseURL string) *Config {
	return &Config{
		BaseURL:        baseURL,
		TimeoutSeconds: defaultTimeoutSeconds,
	}
}
