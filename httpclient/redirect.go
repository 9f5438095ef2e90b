package httpclient

import "net/http"

// RedirectContext describes a redirect response observed by the pipeline.
// It is built only for 3xx responses carrying a Location header.
type RedirectContext struct {
	// Location is the redirect target from the Location header.
	Location string
	// Status is the redirect status code.
	Status int
	// Request is the originating call's context.
	Request *RequestContext
}

// RedirectAction is the explicit result of an authoritative redirect handler.
type RedirectAction int

const (
	// RedirectContinue means the handler declined to take over the call.
	// The pipeline treats this as a contract violation: an authoritative
	// handler that is consulted must terminate the call.
	RedirectContinue RedirectAction = iota
	// RedirectTerminate means the handler took over the call; the pipeline
	// stops and surfaces a terminal redirect outcome.
	RedirectTerminate
)

// RedirectHandlerFunc is the authoritative server-side redirect handler.
type RedirectHandlerFunc func(rc *RedirectContext) RedirectAction

// RedirectObserver is a side-effect-only redirect callback with no influence
// on control flow.
type RedirectObserver func(rc *RedirectContext)

// redirectOutcome classifies what the redirect handler decided.
type redirectOutcome int

const (
	redirectNone redirectOutcome = iota
	redirectObserved
	redirectTerminated
)

// handleRedirect inspects a response for a redirect and runs the configured
// hooks. Observational hooks (per-call first, then global) always fire for a
// redirect. The authoritative handler runs only server-side; it must return
// RedirectTerminate, otherwise the call fails with *RedirectContractError.
func (c *Client) handleRedirect(resp *http.Response, rctx *RequestContext, opts RequestOptions) (redirectOutcome, *RedirectContext, error) {
	if resp.StatusCode < 300 || resp.StatusCode >= 400 {
		return redirectNone, nil, nil
	}
	location := resp.Header.Get("Location")
	if location == "" {
		return redirectNone, nil, nil
	}

	rc := &RedirectContext{
		Location: location,
		Status:   resp.StatusCode,
		Request:  rctx,
	}

	if opts.OnRedirect != nil {
		opts.OnRedirect(rc)
	}
	if c.config.OnRedirect != nil {
		c.config.OnRedirect(rc)
	}

	if rctx.Env == EnvServer && c.config.HandleServerRedirect != nil {
		if action := c.config.HandleServerRedirect(rc); action == RedirectTerminate {
			return redirectTerminated, rc, nil
		}
		return redirectNone, nil, &RedirectContractError{
			Location: rc.Location,
			Status:   rc.Status,
		}
	}

	return redirectObserved, rc, nil
}
