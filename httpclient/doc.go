// Package httpclient provides a universal HTTP client that behaves the same
// in server and client execution environments, normalizing authentication,
// error shapes, and redirect handling across both.
//
// Every call runs through a single pipeline: the request is built from the
// per-call options merged with the client configuration, dispatched once, and
// the outcome is routed through environment-aware redirect handling, body
// parsing, and a pluggable Shaper that produces the caller-facing shape.
//
// Two dispatch surfaces are offered. The throwing verbs (Get, Post, ...)
// return the parsed success payload and report every non-2xx status as an
// *HTTPError. The safe verbs (SafeGet, SafePost, ...) never return an error
// for an HTTP status (they return the shaped result instead), but transport
// failures and schema-validation failures still surface as errors in both
// modes.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.ClientConfig{
//	    BaseURL:     "https://api.example.com",
//	    Environment: httpclient.EnvServer,
//	    Headers:     map[string]string{"X-Service": "billing"},
//	})
//
//	data, err := client.Get(ctx, "/users/123")
//
// # Safe Mode
//
//	res, err := client.SafeGet(ctx, "/users/123")
//	if err != nil {
//	    // transport failure
//	}
//	sr := res.(*httpclient.StandardResponse)
//	if !sr.OK {
//	    // shaped HTTP error, sr.Status and sr.Message populated
//	}
//
// # Typed Access
//
//	user, err := httpclient.Get[User](client, ctx, "/users/123")
package httpclient
