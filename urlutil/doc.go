// Package urlutil provides URL construction and header merging helpers
// shared by the HTTP client.
package urlutil
