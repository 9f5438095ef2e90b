package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, cfg ClientConfig) *Client {
	t.Helper()
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func statusServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
}

func TestExecute_SafeModeNeverErrorsOnHTTPStatus(t *testing.T) {
	for _, status := range []int{400, 401, 404, 418, 429, 500, 502, 599} {
		t.Run(fmt.Sprintf("status_%d", status), func(t *testing.T) {
			srv := statusServer(t, status, `{"detail":"nope"}`)
			defer srv.Close()

			c := newTestClient(t, ClientConfig{BaseURL: srv.URL})

			res, err := c.SafeGet(context.Background(), "/thing")
			if err != nil {
				t.Fatalf("safe mode must not error for HTTP %d, got: %v", status, err)
			}
			sr, ok := res.(*StandardResponse)
			if !ok {
				t.Fatalf("expected *StandardResponse, got %T", res)
			}
			if sr.OK {
				t.Error("expected ok=false")
			}
			if sr.Status != status {
				t.Errorf("expected status %d, got %d", status, sr.Status)
			}
		})
	}
}

func TestExecute_ThrowingModeRaisesHTTPError(t *testing.T) {
	for _, status := range []int{400, 404, 500, 503} {
		t.Run(fmt.Sprintf("status_%d", status), func(t *testing.T) {
			srv := statusServer(t, status, `{"detail":"nope"}`)
			defer srv.Close()

			c := newTestClient(t, ClientConfig{BaseURL: srv.URL})

			_, err := c.Get(context.Background(), "/thing")
			if err == nil {
				t.Fatalf("expected error for HTTP %d", status)
			}
			httpErr, ok := AsHTTPError(err)
			if !ok {
				t.Fatalf("expected *HTTPError, got %T", err)
			}
			if httpErr.Status != status {
				t.Errorf("expected status %d, got %d", status, httpErr.Status)
			}
			want := fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
			if httpErr.Message != want {
				t.Errorf("expected message %q, got %q", want, httpErr.Message)
			}
			if httpErr.Shaped == nil {
				t.Error("expected shaped error attached")
			}
		})
	}
}

func TestExecute_ErrorBodyParsedIntoContext(t *testing.T) {
	srv := statusServer(t, 422, `{"field":"email"}`)
	defer srv.Close()

	c := newTestClient(t, ClientConfig{BaseURL: srv.URL})

	_, err := c.Get(context.Background(), "/thing")
	httpErr, ok := AsHTTPError(err)
	if !ok {
		t.Fatalf("expected *HTTPError, got %v", err)
	}
	body, ok := httpErr.Body.(map[string]any)
	if !ok {
		t.Fatalf("expected parsed body map, got %T", httpErr.Body)
	}
	if body["field"] != "email" {
		t.Errorf("expected parsed error body, got %v", body)
	}
}

func TestExecute_GlobalErrorHookPerEnvironment(t *testing.T) {
	srv := statusServer(t, 500, `{}`)
	defer srv.Close()

	t.Run("server hook receives request context", func(t *testing.T) {
		var hookRC *RequestContext
		clientHookCalled := false
		c := newTestClient(t, ClientConfig{
			BaseURL:     srv.URL,
			Environment: EnvServer,
			OnServerError: func(shaped any, rc *RequestContext) {
				hookRC = rc
			},
			OnClientError: func(shaped any) { clientHookCalled = true },
		})

		_, _ = c.SafeGet(context.Background(), "/thing")
		if hookRC == nil {
			t.Fatal("expected server error hook to fire")
		}
		if hookRC.Method != http.MethodGet {
			t.Errorf("expected GET in request context, got %s", hookRC.Method)
		}
		if clientHookCalled {
			t.Error("client hook must not fire in server environment")
		}
	})

	t.Run("client hook fires without request context", func(t *testing.T) {
		var shapedSeen any
		serverHookCalled := false
		c := newTestClient(t, ClientConfig{
			BaseURL:     srv.URL,
			Environment: EnvClient,
			OnClientError: func(shaped any) {
				shapedSeen = shaped
			},
			OnServerError: func(any, *RequestContext) { serverHookCalled = true },
		})

		_, _ = c.SafeGet(context.Background(), "/thing")
		if shapedSeen == nil {
			t.Fatal("expected client error hook to fire")
		}
		if serverHookCalled {
			t.Error("server hook must not fire in client environment")
		}
	})
}

func TestExecute_ErrorOverrideWinsInBothModes(t *testing.T) {
	srv := statusServer(t, 503, `{}`)
	defer srv.Close()

	c := newTestClient(t, ClientConfig{BaseURL: srv.URL})
	override := WithErrorOverride(func(shaped any, ec *ErrorContext) (any, bool) {
		return map[string]any{"fallback": true, "status": ec.Status}, true
	})

	data, err := c.Get(context.Background(), "/thing", override)
	if err != nil {
		t.Fatalf("override must suppress throwing-mode error, got: %v", err)
	}
	if m := data.(map[string]any); m["fallback"] != true || m["status"] != 503 {
		t.Errorf("unexpected override value: %v", data)
	}

	data, err = c.SafeGet(context.Background(), "/thing", override)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m := data.(map[string]any); m["fallback"] != true {
		t.Errorf("override must replace shaped error in safe mode, got %v", data)
	}
}

func TestExecute_ErrorOverrideToNilValue(t *testing.T) {
	srv := statusServer(t, 500, `{}`)
	defer srv.Close()

	c := newTestClient(t, ClientConfig{BaseURL: srv.URL})

	// Overriding to nil is still an override; the bool disambiguates.
	data, err := c.Get(context.Background(), "/thing",
		WithErrorOverride(func(any, *ErrorContext) (any, bool) { return nil, true }))
	if err != nil {
		t.Fatalf("expected nil override to win, got error: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil result, got %v", data)
	}

	// Declining the override keeps the error path intact.
	_, err = c.Get(context.Background(), "/thing",
		WithErrorOverride(func(any, *ErrorContext) (any, bool) { return nil, false }))
	if _, ok := AsHTTPError(err); !ok {
		t.Fatalf("expected *HTTPError when override declines, got %v", err)
	}
}

func TestExecute_SchemaTransformApplied(t *testing.T) {
	srv := statusServer(t, 200, `{"raw":"100"}`)
	defer srv.Close()

	c := newTestClient(t, ClientConfig{BaseURL: srv.URL})

	data, err := c.Get(context.Background(), "/thing",
		WithSchema(SchemaFunc(func(v any) (any, error) {
			m := v.(map[string]any)
			out := map[string]any{}
			for k, val := range m {
				out[k] = val
			}
			out["parsed"] = 100
			return out, nil
		})))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := data.(map[string]any)
	if m["raw"] != "100" || m["parsed"] != 100 {
		t.Errorf("expected transformed body, got %v", m)
	}
}

func TestExecute_SchemaErrorPropagates(t *testing.T) {
	srv := statusServer(t, 200, `{"raw":"100"}`)
	defer srv.Close()

	c := newTestClient(t, ClientConfig{BaseURL: srv.URL})
	schemaErr := errors.New("shape mismatch")
	schema := WithSchema(SchemaFunc(func(any) (any, error) { return nil, schemaErr }))

	if _, err := c.Get(context.Background(), "/thing", schema); !errors.Is(err, schemaErr) {
		t.Errorf("throwing mode: expected schema error unchanged, got %v", err)
	}
	if _, err := c.SafeGet(context.Background(), "/thing", schema); !errors.Is(err, schemaErr) {
		t.Errorf("safe mode: expected schema error unchanged, got %v", err)
	}
}

func TestExecute_MalformedJSONYieldsNilBody(t *testing.T) {
	srv := statusServer(t, 200, `{not json`)
	defer srv.Close()

	c := newTestClient(t, ClientConfig{BaseURL: srv.URL})

	data, err := c.Get(context.Background(), "/thing")
	if err != nil {
		t.Fatalf("parse failure must not error, got: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil body for unparseable JSON, got %v", data)
	}
}

func TestExecute_TransportErrorSurfacesInBothModes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := newTestClient(t, ClientConfig{BaseURL: srv.URL})

	_, err := c.Get(context.Background(), "/thing")
	if !IsTransport(err) {
		t.Errorf("throwing mode: expected transport error, got %v", err)
	}

	_, err = c.SafeGet(context.Background(), "/thing")
	if !IsTransport(err) {
		t.Errorf("safe mode must still surface transport failures, got %v", err)
	}
}

func TestExecute_ContextCancellation(t *testing.T) {
	srv := statusServer(t, 200, `{}`)
	defer srv.Close()

	c := newTestClient(t, ClientConfig{BaseURL: srv.URL})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Get(ctx, "/thing")
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
}

func TestExecute_SafeModeSuccessShape(t *testing.T) {
	srv := statusServer(t, 200, `{"name":"Alice"}`)
	defer srv.Close()

	c := newTestClient(t, ClientConfig{BaseURL: srv.URL})

	res, err := c.SafeGet(context.Background(), "/users/1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sr := res.(*StandardResponse)
	if !sr.OK || sr.Status != 200 {
		t.Errorf("expected ok=true status=200, got %+v", sr)
	}
	data := sr.Data.(map[string]any)
	if data["name"] != "Alice" {
		t.Errorf("expected data payload, got %v", sr.Data)
	}
	if sr.Headers["Content-Type"] != "application/json" {
		t.Errorf("expected response headers captured, got %v", sr.Headers)
	}
	if sr.Raw == nil {
		t.Error("expected raw response handle")
	}
}

func TestExecute_CredentialsOnlyClientSide(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(200)
	}))
	defer srv.Close()

	auth := &AuthPolicy{Credentials: BearerAuth("secret")}

	t.Run("client env attaches credentials", func(t *testing.T) {
		c := newTestClient(t, ClientConfig{BaseURL: srv.URL, Environment: EnvClient, Auth: auth})
		if _, err := c.Get(context.Background(), "/"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotAuth != "Bearer secret" {
			t.Errorf("expected bearer credentials, got %q", gotAuth)
		}
	})

	t.Run("disable auth suppresses credentials", func(t *testing.T) {
		c := newTestClient(t, ClientConfig{BaseURL: srv.URL, Environment: EnvClient, Auth: auth})
		if _, err := c.Get(context.Background(), "/", WithoutAuth()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotAuth != "" {
			t.Errorf("expected no credentials, got %q", gotAuth)
		}
	})

	t.Run("server env never forwards credentials", func(t *testing.T) {
		c := newTestClient(t, ClientConfig{BaseURL: srv.URL, Environment: EnvServer, Auth: auth})
		if _, err := c.Get(context.Background(), "/"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotAuth != "" {
			t.Errorf("server-side call must not carry transport credentials, got %q", gotAuth)
		}
	})
}

func TestExecute_AbsolutePathBypassesBaseURL(t *testing.T) {
	hit := false
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		w.WriteHeader(200)
	}))
	defer other.Close()

	c := newTestClient(t, ClientConfig{BaseURL: "https://unreachable.invalid"})

	if _, err := c.Get(context.Background(), other.URL+"/direct"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hit {
		t.Error("absolute path must be dispatched verbatim")
	}
}
