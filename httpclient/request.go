package httpclient

import "time"

// Schema validates and optionally transforms a parsed response body. It is
// invoked only on success outcomes; an error it returns propagates to the
// caller unchanged in both dispatch modes.
type Schema interface {
	Parse(v any) (any, error)
}

// SchemaFunc adapts a function to the Schema interface.
type SchemaFunc func(v any) (any, error)

// Parse implements Schema.
func (f SchemaFunc) Parse(v any) (any, error) { return f(v) }

// ErrorOverride is the per-call error override callback. It receives the
// shaped error and the error context; when it reports true, its value
// supersedes the call's outcome in either dispatch mode. The boolean makes
// "no override" and "override to a zero value" unambiguous.
type ErrorOverride func(shaped any, ec *ErrorContext) (any, bool)

// RequestOptions configure a single call. A zero value is a plain request
// with no body. Options are merged against the client configuration at call
// time and never mutated by the pipeline.
type RequestOptions struct {
	// Method is the HTTP method. Required for Request/SafeRequest; the verb
	// methods fill it in.
	Method string
	// Body is the request body. Accepts io.Reader, []byte, string,
	// json.RawMessage, or any JSON-encodable value.
	Body any
	// Params are query parameters appended to the URL. Nil values are
	// omitted.
	Params map[string]any
	// Headers are per-call headers; they override client defaults on
	// conflict.
	Headers map[string]string
	// OnError is the per-call error override.
	OnError ErrorOverride
	// OnRedirect is a per-call observational redirect hook, invoked before
	// the global one.
	OnRedirect RedirectObserver
	// Schema validates/transforms the parsed body on success.
	Schema Schema
	// DisableAuth suppresses client-side credential attachment for this
	// call.
	DisableAuth bool
	// Timeout overrides the client timeout for this call. Zero keeps the
	// client default.
	Timeout time.Duration
}

// RequestOption configures a single request.
type RequestOption func(*RequestOptions)

// WithBody sets the request body.
func WithBody(body any) RequestOption {
	return func(o *RequestOptions) { o.Body = body }
}

// WithHeader adds a per-call header.
func WithHeader(key, value string) RequestOption {
	return func(o *RequestOptions) {
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		o.Headers[key] = value
	}
}

// WithParam adds a query parameter. A nil value is omitted from the URL.
func WithParam(key string, value any) RequestOption {
	return func(o *RequestOptions) {
		if o.Params == nil {
			o.Params = make(map[string]any)
		}
		o.Params[key] = value
	}
}

// WithSchema sets the response schema validator.
func WithSchema(s Schema) RequestOption {
	return func(o *RequestOptions) { o.Schema = s }
}

// WithErrorOverride sets the per-call error override.
func WithErrorOverride(fn ErrorOverride) RequestOption {
	return func(o *RequestOptions) { o.OnError = fn }
}

// WithRedirectObserver sets the per-call redirect observer.
func WithRedirectObserver(fn RedirectObserver) RequestOption {
	return func(o *RequestOptions) { o.OnRedirect = fn }
}

// WithoutAuth disables client-side credential attachment for this call.
func WithoutAuth() RequestOption {
	return func(o *RequestOptions) { o.DisableAuth = true }
}

// WithTimeout overrides the client timeout for this call.
func WithTimeout(d time.Duration) RequestOption {
	return func(o *RequestOptions) { o.Timeout = d }
}
