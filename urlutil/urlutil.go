package urlutil

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// IsAbsolute reports whether path carries its own URL scheme.
func IsAbsolute(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// BuildURL resolves a request URL from a base URL, a path, and query
// parameters. An absolute path is used verbatim and the base URL is ignored.
// Parameters with nil values are omitted; remaining values are rendered with
// their natural string form (fmt.Sprint), so numbers and booleans encode as
// "1" and "true".
func BuildURL(baseURL, path string, params map[string]any) string {
	target := path
	if baseURL != "" && !IsAbsolute(path) {
		target = strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
	}

	if len(params) == 0 {
		return target
	}

	q := url.Values{}
	for k, v := range params {
		if v == nil {
			continue
		}
		q.Set(k, fmt.Sprint(v))
	}
	if len(q) == 0 {
		return target
	}

	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	return target + sep + q.Encode()
}

// MergeHeaders merges header maps left to right. Names are compared
// case-insensitively; a later source always overrides an earlier one.
func MergeHeaders(sources ...map[string]string) map[string]string {
	merged := make(map[string]string)
	for _, src := range sources {
		for k, v := range src {
			merged[http.CanonicalHeaderKey(k)] = v
		}
	}
	return merged
}
