package httpclient

import (
	"net/http"

	"github.com/isokit/isokit/lazy"
)

// Shaper converts raw call outcomes into the caller-facing shape. It is a
// strategy injected at construction time, not a base type to embed: a shaper
// must produce a success shape and an error shape, and may additionally
// implement RedirectShaper to produce a distinct redirect shape.
type Shaper interface {
	// Success produces the caller-facing success shape from the parsed
	// (possibly schema-transformed) payload and the raw response.
	Success(data any, raw *http.Response) any
	// Error produces the caller-facing error shape. Implementations must
	// mark the shape as not-OK.
	Error(ec *ErrorContext) any
}

// RedirectShaper is the optional shaper capability for terminal redirects.
// Shapers without it never surface redirects as a distinct shaped variant.
type RedirectShaper interface {
	Redirect(rc *RedirectContext) any
}

// StandardResponse is the normalized tagged result produced by the standard
// shaper. Exactly one variant is live per call: success (OK=true, Data set),
// error (OK=false, Message set), or redirect (OK=false, Redirected=true).
type StandardResponse struct {
	// OK is true only for 2xx outcomes.
	OK bool `json:"ok"`
	// Status is the HTTP status code.
	Status int `json:"status"`
	// Data is the parsed success payload.
	Data any `json:"data,omitempty"`
	// Message is the generated error message ("HTTP <status>: <text>").
	Message string `json:"message,omitempty"`
	// ErrorBody is the parsed error response body, when one was present.
	ErrorBody any `json:"error,omitempty"`
	// Headers are the response headers (success variant).
	Headers map[string]string `json:"-"`
	// Redirected is true for the redirect variant.
	Redirected bool `json:"redirected,omitempty"`
	// Location is the redirect target (redirect variant).
	Location string `json:"location,omitempty"`
	// Raw is the raw response handle. Its body has been consumed.
	Raw *http.Response `json:"-"`
}

// StandardShaper is the built-in Shaper producing StandardResponse values.
// It implements all three capabilities.
type StandardShaper struct{}

var _ Shaper = StandardShaper{}
var _ RedirectShaper = StandardShaper{}

// defaultShaper defers construction of the shared standard shaper until the
// first client without an explicit Shaper is built.
var defaultShaper = lazy.New(func() (Shaper, error) {
	return StandardShaper{}, nil
})

// Success returns the success variant.
func (StandardShaper) Success(data any, raw *http.Response) any {
	return &StandardResponse{
		OK:      true,
		Status:  raw.StatusCode,
		Data:    data,
		Headers: flattenHeaders(raw.Header),
		Raw:     raw,
	}
}

// Error returns the error variant.
func (StandardShaper) Error(ec *ErrorContext) any {
	return &StandardResponse{
		OK:        false,
		Status:    ec.Status,
		Message:   ec.Message,
		ErrorBody: ec.Body,
		Raw:       ec.Raw,
	}
}

// Redirect returns the redirect variant.
func (StandardShaper) Redirect(rc *RedirectContext) any {
	return &StandardResponse{
		OK:         false,
		Redirected: true,
		Status:     rc.Status,
		Location:   rc.Location,
	}
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
