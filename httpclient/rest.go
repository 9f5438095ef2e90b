package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Get performs a throwing GET request and decodes the response into type T.
func Get[T any](c *Client, ctx context.Context, path string, opts ...RequestOption) (T, error) {
	return doTyped[T](c, ctx, http.MethodGet, path, nil, opts)
}

// Post performs a throwing POST request with a JSON body and decodes the
// response into type T.
func Post[T any](c *Client, ctx context.Context, path string, body any, opts ...RequestOption) (T, error) {
	return doTyped[T](c, ctx, http.MethodPost, path, body, opts)
}

// Put performs a throwing PUT request with a JSON body and decodes the
// response into type T.
func Put[T any](c *Client, ctx context.Context, path string, body any, opts ...RequestOption) (T, error) {
	return doTyped[T](c, ctx, http.MethodPut, path, body, opts)
}

// Patch performs a throwing PATCH request with a JSON body and decodes the
// response into type T.
func Patch[T any](c *Client, ctx context.Context, path string, body any, opts ...RequestOption) (T, error) {
	return doTyped[T](c, ctx, http.MethodPatch, path, body, opts)
}

// Delete performs a throwing DELETE request and decodes the response into
// type T.
func Delete[T any](c *Client, ctx context.Context, path string, opts ...RequestOption) (T, error) {
	return doTyped[T](c, ctx, http.MethodDelete, path, nil, opts)
}

// doTyped executes a typed request and re-decodes the parsed payload into T.
func doTyped[T any](c *Client, ctx context.Context, method, path string, body any, opts []RequestOption) (T, error) {
	var out T

	data, err := c.Request(ctx, path, buildOptions(method, body, opts))
	if err != nil {
		return out, err
	}
	if data == nil {
		return out, nil
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return out, fmt.Errorf("httpclient: encode payload for decode: %w", err)
	}
	if err := json.Unmarshal(encoded, &out); err != nil {
		return out, fmt.Errorf("httpclient: decode response: %w", err)
	}
	return out, nil
}
