package httpclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// encodeBody converts a body value into an io.Reader. Readers, byte slices,
// and strings pass through; everything else is JSON-encoded.
func encodeBody(body any) (io.Reader, error) {
	switch v := body.(type) {
	case nil:
		return nil, nil
	case io.Reader:
		return v, nil
	case []byte:
		return bytes.NewReader(v), nil
	case json.RawMessage:
		return bytes.NewReader(v), nil
	case string:
		return strings.NewReader(v), nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("httpclient: encode body: %w", err)
		}
		return bytes.NewReader(data), nil
	}
}

// parseBody sniffs the response content type and parses the body. JSON is
// attempted when the content type mentions json; anything else is treated as
// text. Parse failures yield a nil body rather than an error.
func parseBody(contentType string, data []byte) any {
	if len(data) == 0 {
		return nil
	}
	if strings.Contains(strings.ToLower(contentType), "json") {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil
		}
		return v
	}
	return string(data)
}
