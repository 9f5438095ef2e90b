package httpclient

import (
	"fmt"
	"time"

	"github.com/isokit/isokit/logger"
)

const defaultTimeout = 30 * time.Second

// ClientConfig configures a Client. It is applied once at construction and
// never mutated afterwards, so a single client is safe for concurrent use.
type ClientConfig struct {
	// BaseURL is the base URL prepended to relative request paths.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Environment is the execution context the client runs in.
	// Defaults to EnvServer.
	Environment Environment `yaml:"environment" mapstructure:"environment"`

	// Timeout bounds each request. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to all requests. Per-call headers
	// override them on conflict.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Auth bundles the client-side credential mode and the server-side
	// cookie-derivation hook.
	Auth *AuthPolicy `yaml:"-" mapstructure:"-"`

	// Shaper converts call outcomes into the caller-facing shape.
	// Defaults to the standard shaper.
	Shaper Shaper `yaml:"-" mapstructure:"-"`

	// Logger receives structured pipeline logs. Nil disables logging.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`

	// OnClientError is the global error hook invoked in EnvClient.
	OnClientError func(shaped any) `yaml:"-" mapstructure:"-"`

	// OnServerError is the global error hook invoked in EnvServer. It also
	// receives the call's RequestContext.
	OnServerError func(shaped any, rc *RequestContext) `yaml:"-" mapstructure:"-"`

	// OnRedirect is the global observational redirect hook. It has no
	// influence on control flow.
	OnRedirect RedirectObserver `yaml:"-" mapstructure:"-"`

	// HandleServerRedirect is the authoritative redirect handler, consulted
	// only in EnvServer. When configured, the transport stops following
	// redirects so the handler sees them first. The handler must return
	// RedirectTerminate; returning anything else is a contract violation
	// surfaced as a *RedirectContractError in both dispatch modes.
	HandleServerRedirect RedirectHandlerFunc `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *ClientConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = EnvServer
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Shaper == nil {
		c.Shaper = defaultShaper.MustGet()
	}
}

// Validate checks that the configuration is valid.
func (c *ClientConfig) Validate() error {
	if !c.Environment.Valid() {
		return fmt.Errorf("httpclient: environment must be %q or %q (got: %q)", EnvServer, EnvClient, c.Environment)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	return nil
}
