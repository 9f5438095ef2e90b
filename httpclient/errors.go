package httpclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorContext describes a non-2xx response. It is built once per failed
// call and consumed exactly once by the shaper's Error operation.
type ErrorContext struct {
	// Status is the HTTP status code.
	Status int
	// StatusText is the canonical reason phrase for Status.
	StatusText string
	// Message is the generated message, "HTTP <status>: <statusText>".
	Message string
	// Body is the parsed response body (nil when parsing failed).
	Body any
	// Raw is the raw response handle. Its body has been consumed.
	Raw *http.Response
	// URL is the resolved request URL.
	URL string
	// Method is the request method.
	Method string
}

// HTTPError is raised by throwing-mode calls for every non-2xx status. It
// carries the shaped-error fields so catching code can inspect them.
type HTTPError struct {
	// Status is the HTTP status code.
	Status int
	// StatusText is the canonical reason phrase.
	StatusText string
	// Message is the generated error message.
	Message string
	// Body is the parsed error response body.
	Body any
	// URL is the resolved request URL.
	URL string
	// Method is the request method.
	Method string
	// Shaped is the shaper's error shape for this outcome.
	Shaped any
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("httpclient: %s %s: %s", e.Method, e.URL, e.Message)
}

// RedirectError is returned by throwing-mode calls when an authoritative
// server redirect handler terminated the call.
type RedirectError struct {
	// Location is the redirect target.
	Location string
	// Status is the redirect status code.
	Status int
}

// Error implements the error interface.
func (e *RedirectError) Error() string {
	return fmt.Sprintf("httpclient: request terminated by redirect handler (HTTP %d -> %s)", e.Status, e.Location)
}

// RedirectContractError reports an authoritative redirect handler that was
// consulted but did not terminate the call. This is a caller-configuration
// bug and is fatal in both dispatch modes.
type RedirectContractError struct {
	// Location is the redirect target the handler was given.
	Location string
	// Status is the redirect status code.
	Status int
}

// Error implements the error interface.
func (e *RedirectContractError) Error() string {
	return fmt.Sprintf("httpclient: authoritative redirect handler did not terminate the call (HTTP %d -> %s)", e.Status, e.Location)
}

// TransportError wraps a transport-level failure (connection refused, DNS,
// timeout). It is never produced for HTTP statuses and surfaces in both
// dispatch modes.
type TransportError struct {
	// URL is the resolved request URL.
	URL string
	// Method is the request method.
	Method string
	// Err is the underlying transport error.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("httpclient: %s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *TransportError) Unwrap() error { return e.Err }

// AsHTTPError extracts an *HTTPError from an error chain.
func AsHTTPError(err error) (*HTTPError, bool) {
	var e *HTTPError
	ok := errors.As(err, &e)
	return e, ok
}

// IsRedirect reports whether an error marks a handler-terminated redirect.
func IsRedirect(err error) bool {
	var e *RedirectError
	return errors.As(err, &e)
}

// IsTransport reports whether an error is a transport-level failure.
func IsTransport(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}

// newErrorContext builds the ErrorContext for a failed response.
func newErrorContext(resp *http.Response, body any, rctx *RequestContext) *ErrorContext {
	statusText := http.StatusText(resp.StatusCode)
	return &ErrorContext{
		Status:     resp.StatusCode,
		StatusText: statusText,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, statusText),
		Body:       body,
		Raw:        resp,
		URL:        rctx.URL,
		Method:     rctx.Method,
	}
}

// handleError routes a non-2xx outcome: shape it, notify the global hook for
// the call's environment, apply the per-call override, then return the shaped
// error (safe mode) or an *HTTPError (throwing mode).
func (c *Client) handleError(ec *ErrorContext, rctx *RequestContext, opts RequestOptions, mode dispatchMode) (any, error) {
	shaped := c.config.Shaper.Error(ec)

	switch rctx.Env {
	case EnvServer:
		if c.config.OnServerError != nil {
			c.config.OnServerError(shaped, rctx)
		}
	case EnvClient:
		if c.config.OnClientError != nil {
			c.config.OnClientError(shaped)
		}
	}

	// The per-call override is the escape hatch: a present value supersedes
	// everything else in either dispatch mode.
	if opts.OnError != nil {
		if v, ok := opts.OnError(shaped, ec); ok {
			return v, nil
		}
	}

	if mode == modeSafe {
		return shaped, nil
	}
	return nil, &HTTPError{
		Status:     ec.Status,
		StatusText: ec.StatusText,
		Message:    ec.Message,
		Body:       ec.Body,
		URL:        ec.URL,
		Method:     ec.Method,
		Shaped:     shaped,
	}
}
