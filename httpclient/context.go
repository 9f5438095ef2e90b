package httpclient

import "net/http"

// Environment identifies the execution context a client runs in. It is an
// explicit configuration value threaded through every call; the pipeline
// never infers it from ambient global state.
type Environment string

const (
	// EnvServer marks a client running in a server execution context.
	EnvServer Environment = "server"
	// EnvClient marks a client running in a client (browser-like) execution
	// context where the transport forwards ambient credentials.
	EnvClient Environment = "client"
)

// Valid reports whether the environment is a known value.
func (e Environment) Valid() bool {
	return e == EnvServer || e == EnvClient
}

// RequestContext is the immutable per-call record shared by every downstream
// collaborator (hooks, redirect handling, error shaping). It is constructed
// once before dispatch and never mutated afterwards.
type RequestContext struct {
	// ID is the generated per-call request ID, also sent as X-Request-Id.
	ID string
	// Env is the execution environment the call runs in.
	Env Environment
	// URL is the resolved absolute URL.
	URL string
	// Method is the HTTP method.
	Method string
	// Headers are the merged request headers.
	Headers map[string]string
	// Request is the outbound request handle.
	Request *http.Request
}
