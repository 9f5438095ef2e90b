package httpclient

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/isokit/isokit/urlutil"
	"github.com/isokit/isokit/version"
)

// dispatchMode selects how a call reports HTTP-level failures.
type dispatchMode int

const (
	// modeThrow returns the success payload and reports non-2xx statuses as
	// *HTTPError.
	modeThrow dispatchMode = iota
	// modeSafe returns the shaped outcome for any HTTP status and reserves
	// the error return for transport and contract failures.
	modeSafe
)

// execute runs the whole request lifecycle for one call: URL resolution,
// header merge, dispatch, redirect handling, body parsing, and error or
// success shaping. It performs exactly one transport dispatch.
func (c *Client) execute(ctx context.Context, path string, opts RequestOptions, mode dispatchMode) (any, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	target := urlutil.BuildURL(c.config.BaseURL, path, opts.Params)
	headers := urlutil.MergeHeaders(c.config.Headers, opts.Headers)

	body, err := encodeBody(opts.Body)
	if err != nil {
		return nil, err
	}
	if opts.Body != nil && headers["Content-Type"] == "" {
		headers["Content-Type"] = "application/json"
	}

	// Manual redirect mode is engaged only when the server explicitly wants
	// to intercept redirects itself; everywhere else the transport follows.
	manual := c.config.Environment == EnvServer && c.config.HandleServerRedirect != nil

	ctx, span := startSpan(ctx, opts.Method, target, c.config.Environment)

	httpReq, err := http.NewRequestWithContext(ctx, opts.Method, target, body)
	if err != nil {
		endSpan(span, 0, err)
		return nil, err
	}
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}
	if httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", version.UserAgent())
	}

	id := uuid.NewString()
	httpReq.Header.Set("X-Request-Id", id)

	// Credentials travel only on client-side calls that did not opt out.
	// Server-side callers forward credentials explicitly, typically via
	// CookieHeader.
	if c.config.Environment == EnvClient && !opts.DisableAuth && c.config.Auth != nil {
		c.config.Auth.Credentials.apply(httpReq)
	}

	rctx := &RequestContext{
		ID:      id,
		Env:     c.config.Environment,
		URL:     httpReq.URL.String(),
		Method:  opts.Method,
		Headers: headers,
		Request: httpReq,
	}

	c.logDebug(rctx, "dispatching request", map[string]any{"redirect_mode": redirectModeName(manual)})

	transport := c.follow
	if manual {
		transport = c.manual
	}

	resp, err := transport.Do(httpReq)
	if err != nil {
		endSpan(span, 0, err)
		terr := &TransportError{URL: rctx.URL, Method: rctx.Method, Err: err}
		c.logWarn(rctx, "transport failure", map[string]any{"error": err.Error()})
		return nil, terr
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		endSpan(span, resp.StatusCode, err)
		return nil, &TransportError{URL: rctx.URL, Method: rctx.Method, Err: err}
	}
	endSpan(span, resp.StatusCode, nil)

	outcome, rc, err := c.handleRedirect(resp, rctx, opts)
	if err != nil {
		c.logWarn(rctx, "redirect contract violation", map[string]any{"status": resp.StatusCode})
		return nil, err
	}
	if outcome == redirectTerminated {
		c.logDebug(rctx, "redirect terminated by handler", map[string]any{"location": rc.Location})
		if mode == modeSafe {
			if rs, ok := c.config.Shaper.(RedirectShaper); ok {
				return rs.Redirect(rc), nil
			}
			return StandardShaper{}.Redirect(rc), nil
		}
		return nil, &RedirectError{Location: rc.Location, Status: rc.Status}
	}

	data := parseBody(resp.Header.Get("Content-Type"), raw)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logWarn(rctx, "request failed", map[string]any{"status": resp.StatusCode})
		return c.handleError(newErrorContext(resp, data, rctx), rctx, opts, mode)
	}

	if opts.Schema != nil {
		data, err = opts.Schema.Parse(data)
		if err != nil {
			return nil, err
		}
	}

	c.logDebug(rctx, "request succeeded", map[string]any{"status": resp.StatusCode})

	if mode == modeSafe {
		return c.config.Shaper.Success(data, resp), nil
	}
	return data, nil
}

func redirectModeName(manual bool) string {
	if manual {
		return "manual"
	}
	return "follow"
}

func (c *Client) logDebug(rctx *RequestContext, msg string, fields map[string]any) {
	if c.config.Logger == nil {
		return
	}
	c.config.Logger.Debug(msg, c.logFields(rctx, fields))
}

func (c *Client) logWarn(rctx *RequestContext, msg string, fields map[string]any) {
	if c.config.Logger == nil {
		return
	}
	c.config.Logger.Warn(msg, c.logFields(rctx, fields))
}

func (c *Client) logFields(rctx *RequestContext, fields map[string]any) map[string]any {
	all := map[string]any{
		"request_id":  rctx.ID,
		"method":      rctx.Method,
		"url":         rctx.URL,
		"environment": string(rctx.Env),
	}
	for k, v := range fields {
		all[k] = v
	}
	return all
}
