package cookie

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// Serialize formats a cookie as "key=value; Attr=...". The value is
// encoded with EncodeURIComponent, the key is written as is. Attributes
// are appended in a fixed order: Domain, Expires, Max-Age, Partitioned,
// Path, SameSite, Secure, HttpOnly.
//
// No validation is performed on the key or on attribute values.
//
// Parameters:
//   - key: The cookie name.
//   - value: The raw cookie value.
//   - opts: The cookie attributes.
//
// Returns:
//   - string: The formatted cookie.
func Serialize(key, value string, opts Options) string {
	var b strings.Builder
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(EncodeURIComponent(value))

	if domain, ok := opts.Domain(); ok {
		b.WriteString("; Domain=")
		b.WriteString(domain)
	}
	if expires, ok := opts.Expires(); ok {
		b.WriteString("; Expires=")
		b.WriteString(expires.UTC().Format(http.TimeFormat))
	}
	if maxAge, ok := opts.MaxAge(); ok {
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(maxAge))
	}
	if opts.Partitioned() {
		b.WriteString("; Partitioned")
	}
	if path, ok := opts.Path(); ok {
		b.WriteString("; Path=")
		b.WriteString(path)
	}
	if sameSite, ok := opts.SameSite(); ok {
		// Values without a wire name are dropped.
		if name, err := SameSiteToString(sameSite); err == nil {
			b.WriteString("; SameSite=")
			b.WriteString(name)
		}
	}
	if opts.Secure() {
		b.WriteString("; Secure")
	}
	if opts.HTTPOnly() {
		b.WriteString("; HttpOnly")
	}
	return b.String()
}

// pair returns the "key=encodedValue" prefix Serialize starts with.
func pair(key, value string) string {
	return key + "=" + EncodeURIComponent(value)
}

// EncodeURIComponent percent-encodes s the way ECMAScript's
// encodeURIComponent does: ASCII letters, digits and -_.!~*'() are kept,
// every other byte of the UTF-8 encoding becomes %XX.
func EncodeURIComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !uriUnreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if uriUnreserved(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', upperhex[c>>4], upperhex[c&15])
	}
	return string(buf)
}

// DecodeURIComponent reverses EncodeURIComponent. A '+' is kept as is.
// It returns an error for malformed escapes.
func DecodeURIComponent(s string) (string, error) {
	return url.PathUnescape(s)
}

func uriUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
