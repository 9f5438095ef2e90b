package httpclient

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"
)

func TestParseBody_JSON(t *testing.T) {
	v := parseBody("application/json", []byte(`{"a":1}`))
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", v)
	}
	if m["a"] != float64(1) {
		t.Errorf("unexpected value: %v", m)
	}
}

func TestParseBody_JSONWithCharset(t *testing.T) {
	v := parseBody("application/json; charset=utf-8", []byte(`[1,2]`))
	if _, ok := v.([]any); !ok {
		t.Errorf("expected array, got %T", v)
	}
}

func TestParseBody_VendorJSON(t *testing.T) {
	v := parseBody("application/vnd.api+json", []byte(`{"ok":true}`))
	if _, ok := v.(map[string]any); !ok {
		t.Errorf("content types mentioning json must parse as JSON, got %T", v)
	}
}

func TestParseBody_MalformedJSONYieldsNil(t *testing.T) {
	if v := parseBody("application/json", []byte(`{broken`)); v != nil {
		t.Errorf("expected nil for malformed JSON, got %v", v)
	}
}

func TestParseBody_Text(t *testing.T) {
	if v := parseBody("text/plain", []byte("hello")); v != "hello" {
		t.Errorf("expected text passthrough, got %v", v)
	}
}

func TestParseBody_Empty(t *testing.T) {
	if v := parseBody("application/json", nil); v != nil {
		t.Errorf("expected nil for empty body, got %v", v)
	}
}

func TestEncodeBody(t *testing.T) {
	tests := []struct {
		name string
		body any
		want string
	}{
		{"nil", nil, ""},
		{"string", "raw text", "raw text"},
		{"bytes", []byte("raw bytes"), "raw bytes"},
		{"raw message", json.RawMessage(`{"k":1}`), `{"k":1}`},
		{"reader", strings.NewReader("streamed"), "streamed"},
		{"struct", map[string]int{"n": 5}, `{"n":5}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := encodeBody(tc.body)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.body == nil {
				if r != nil {
					t.Error("expected nil reader for nil body")
				}
				return
			}
			var buf bytes.Buffer
			io.Copy(&buf, r)
			if buf.String() != tc.want {
				t.Errorf("expected %q, got %q", tc.want, buf.String())
			}
		})
	}
}

func TestEncodeBody_UnencodableValue(t *testing.T) {
	if _, err := encodeBody(func() {}); err == nil {
		t.Error("expected error for unencodable body")
	}
}
