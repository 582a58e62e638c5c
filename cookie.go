package cookie

import (
	"net/http"
)

// Format returns the Set-Cookie header value for a cookie. It is the
// server-side counterpart of Jar.Set and never fails.
//
// Parameters:
//   - key: The cookie name.
//   - value: The raw cookie value.
//   - opts: The cookie attributes.
//
// Returns:
//   - string: The header value.
func Format(key, value string, opts Options) string {
	return Serialize(key, value, opts)
}

// SetHeader appends a Set-Cookie header built by Format to h.
func SetHeader(h http.Header, key, value string, opts Options) {
	h.Add("Set-Cookie", Format(key, value, opts))
}

// CookieWriter writes formatted cookies to an HTTP response.
type CookieWriter interface {
	WriteCookie(key, value string, opts Options)
}

// HeaderWriter implements CookieWriter on an http.ResponseWriter.
type HeaderWriter struct {
	writer http.ResponseWriter
}

// NewHeaderWriter returns a new HeaderWriter.
func NewHeaderWriter(w http.ResponseWriter) *HeaderWriter {
	return &HeaderWriter{writer: w}
}

// WriteCookie adds the cookie to the response headers. It must be called
// before the response header is written.
func (w *HeaderWriter) WriteCookie(key, value string, opts Options) {
	SetHeader(w.writer.Header(), key, value, opts)
}

// Kit bundles the client and server helpers.
type Kit struct {
	jar *Jar
}

// New creates a Kit whose client helpers use store.
//
// Parameters:
//   - store: The cookie store for Web, nil when none is available.
//   - opts: Options for the Jar.
//
// Returns:
//   - *Kit: The new Kit.
func New(store Store, opts ...JarOption) *Kit {
	return &Kit{jar: NewJar(store, opts...)}
}

// Web returns the client-side helpers.
func (k *Kit) Web() *Jar {
	return k.jar
}

// Server formats a cookie for a response header. See Format.
func (k *Kit) Server(key, value string, opts Options) string {
	return Format(key, value, opts)
}
