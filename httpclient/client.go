package httpclient

import (
	"context"
	"net/http"

	"github.com/isokit/isokit/lazy"
)

// Client is a universal HTTP client. Its configuration is fixed at
// construction, so concurrent calls on one client are fully independent.
type Client struct {
	config ClientConfig
	// follow and manual share one transport and differ only in redirect
	// policy; the pipeline picks one per call.
	follow *http.Client
	manual *http.Client
}

// New creates a client from the given configuration.
func New(cfg ClientConfig) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	return &Client{
		config: cfg,
		follow: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		manual: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}

// NewLazy defers client construction until first use, for singletons whose
// configuration is assembled before the process is fully initialized.
func NewLazy(cfg ClientConfig) *lazy.Proxy[*Client] {
	return lazy.New(func() (*Client, error) {
		return New(cfg)
	})
}

// Config returns the client's configuration.
func (c *Client) Config() ClientConfig {
	return c.config
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.follow
}

// Close releases idle transport connections.
func (c *Client) Close() {
	c.follow.CloseIdleConnections()
}

// Request executes a call in throwing mode: it returns the parsed success
// payload and reports any non-2xx status as an *HTTPError. Transport
// failures surface as *TransportError.
func (c *Client) Request(ctx context.Context, path string, opts RequestOptions) (any, error) {
	return c.execute(ctx, path, opts, modeThrow)
}

// SafeRequest executes a call in safe mode: every HTTP status produces a
// shaped result and a nil error. Only transport, redirect-contract, and
// schema failures use the error return.
func (c *Client) SafeRequest(ctx context.Context, path string, opts RequestOptions) (any, error) {
	return c.execute(ctx, path, opts, modeSafe)
}

// Get performs a throwing GET request.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (any, error) {
	return c.Request(ctx, path, buildOptions(http.MethodGet, nil, opts))
}

// Post performs a throwing POST request with a body.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (any, error) {
	return c.Request(ctx, path, buildOptions(http.MethodPost, body, opts))
}

// Put performs a throwing PUT request with a body.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (any, error) {
	return c.Request(ctx, path, buildOptions(http.MethodPut, body, opts))
}

// Patch performs a throwing PATCH request with a body.
func (c *Client) Patch(ctx context.Context, path string, body any, opts ...RequestOption) (any, error) {
	return c.Request(ctx, path, buildOptions(http.MethodPatch, body, opts))
}

// Delete performs a throwing DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (any, error) {
	return c.Request(ctx, path, buildOptions(http.MethodDelete, nil, opts))
}

// SafeGet performs a safe GET request.
func (c *Client) SafeGet(ctx context.Context, path string, opts ...RequestOption) (any, error) {
	return c.SafeRequest(ctx, path, buildOptions(http.MethodGet, nil, opts))
}

// SafePost performs a safe POST request with a body.
func (c *Client) SafePost(ctx context.Context, path string, body any, opts ...RequestOption) (any, error) {
	return c.SafeRequest(ctx, path, buildOptions(http.MethodPost, body, opts))
}

// SafePut performs a safe PUT request with a body.
func (c *Client) SafePut(ctx context.Context, path string, body any, opts ...RequestOption) (any, error) {
	return c.SafeRequest(ctx, path, buildOptions(http.MethodPut, body, opts))
}

// SafePatch performs a safe PATCH request with a body.
func (c *Client) SafePatch(ctx context.Context, path string, body any, opts ...RequestOption) (any, error) {
	return c.SafeRequest(ctx, path, buildOptions(http.MethodPatch, body, opts))
}

// SafeDelete performs a safe DELETE request.
func (c *Client) SafeDelete(ctx context.Context, path string, opts ...RequestOption) (any, error) {
	return c.SafeRequest(ctx, path, buildOptions(http.MethodDelete, nil, opts))
}

// buildOptions binds a verb and body into RequestOptions and applies the
// per-call options.
func buildOptions(method string, body any, opts []RequestOption) RequestOptions {
	o := RequestOptions{Method: method, Body: body}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
