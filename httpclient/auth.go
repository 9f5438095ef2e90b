package httpclient

import (
	"context"
	"net/http"
	"sort"
	"strings"
)

// AuthType identifies the credential mode applied to client-side requests.
type AuthType int

const (
	// AuthNone disables credential attachment.
	AuthNone AuthType = iota
	// AuthBearer uses Bearer token authentication.
	AuthBearer
	// AuthBasic uses HTTP Basic authentication.
	AuthBasic
	// AuthAPIKey uses API key authentication (header or query parameter).
	AuthAPIKey
	// AuthCustom uses a custom credential function.
	AuthCustom
)

// AuthConfig configures the client-side credential mode. Credentials are
// attached only when the client runs in EnvClient and the call has not
// disabled auth; server-side calls never forward transport credentials.
type AuthConfig struct {
	// Type is the credential mode.
	Type AuthType
	// Token is the bearer token (AuthBearer).
	Token string
	// Username is the basic auth username (AuthBasic).
	Username string
	// Password is the basic auth password (AuthBasic).
	Password string
	// Key is the API key value (AuthAPIKey).
	Key string
	// In specifies where to place the API key: "header" (default) or "query".
	In string
	// Name is the header or query parameter name. Defaults to "X-API-Key".
	Name string
	// Apply is a custom function to modify the request (AuthCustom).
	Apply func(*http.Request)
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// BasicAuth creates a basic auth config.
func BasicAuth(username, password string) *AuthConfig {
	return &AuthConfig{Type: AuthBasic, Username: username, Password: password}
}

// APIKeyAuth creates an API key auth config sent via the X-API-Key header.
func APIKeyAuth(key string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, In: "header", Name: "X-API-Key"}
}

// APIKeyAuthQuery creates an API key auth config sent via query parameter.
func APIKeyAuthQuery(key, paramName string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, In: "query", Name: paramName}
}

// CustomAuth creates a custom auth config with a request modifier function.
func CustomAuth(fn func(*http.Request)) *AuthConfig {
	return &AuthConfig{Type: AuthCustom, Apply: fn}
}

// apply attaches credentials to an outbound request.
func (a *AuthConfig) apply(req *http.Request) {
	if a == nil {
		return
	}
	switch a.Type {
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+a.Token)
	case AuthBasic:
		req.SetBasicAuth(a.Username, a.Password)
	case AuthAPIKey:
		name := a.Name
		if name == "" {
			name = "X-API-Key"
		}
		if a.In == "query" {
			q := req.URL.Query()
			q.Set(name, a.Key)
			req.URL.RawQuery = q.Encode()
		} else {
			req.Header.Set(name, a.Key)
		}
	case AuthCustom:
		if a.Apply != nil {
			a.Apply(req)
		}
	}
}

// CookieAccessor is a read-only view over an ambient cookie store.
type CookieAccessor interface {
	// Get returns the named cookie value, reporting whether it was present.
	Get(name string) (string, bool)
}

// CookieDeriver maps an ambient cookie store to the cookie name/value pairs
// that should accompany a server-side request. The pipeline never invokes it;
// it is a hook point for callers that forward credentials explicitly.
type CookieDeriver func(ctx context.Context, cookies CookieAccessor, url, method string) (map[string]string, error)

// AuthPolicy bundles the client-side credential mode with the server-side
// cookie-derivation hook.
type AuthPolicy struct {
	// Credentials is the credential mode applied to client-side requests.
	Credentials *AuthConfig
	// DeriveCookies derives cookies for server-side requests. Exposed via
	// Client.CookieHeader; the request pipeline itself never reads cookies.
	DeriveCookies CookieDeriver
}

// CookieHeader runs the configured cookie-derivation hook and formats the
// result as a Cookie header value. Returns the empty string when no deriver
// is configured or it derives nothing.
func (c *Client) CookieHeader(ctx context.Context, cookies CookieAccessor, url, method string) (string, error) {
	if c.config.Auth == nil || c.config.Auth.DeriveCookies == nil {
		return "", nil
	}
	derived, err := c.config.Auth.DeriveCookies(ctx, cookies, url, method)
	if err != nil {
		return "", err
	}
	if len(derived) == 0 {
		return "", nil
	}

	names := make([]string, 0, len(derived))
	for name := range derived {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+"="+derived[name])
	}
	return strings.Join(pairs, "; "), nil
}
