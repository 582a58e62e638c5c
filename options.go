package cookie

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	sameSiteNone   = "None"
	sameSiteLax    = "Lax"
	sameSiteStrict = "Strict"
)

// ErrInvalidSameSite indicates a SameSite value with no wire name.
var ErrInvalidSameSite = errors.New("cookie: invalid SameSite value")

// Options holds the optional attributes of a cookie. The zero value has no
// attributes. Options is immutable: every With* method returns a copy.
//
// If both MaxAge and Expires are set, both attributes are emitted. Browsers
// give Max-Age precedence.
type Options struct {
	domain      string
	expires     time.Time
	maxAge      int
	hasMaxAge   bool
	partitioned bool
	path        string
	sameSite    http.SameSite
	secure      bool
	httpOnly    bool
}

// NewOptions returns an empty Options.
func NewOptions() Options {
	return Options{}
}

// WithDomain sets the Domain attribute. An empty domain removes it.
//
// Parameters:
//   - domain: The domain to use.
//
// Returns:
//   - Options: The new Options.
func (o Options) WithDomain(domain string) Options {
	o.domain = domain
	return o
}

// WithExpires sets the Expires attribute. A zero time removes it.
//
// Parameters:
//   - t: The absolute expiry time.
//
// Returns:
//   - Options: The new Options.
func (o Options) WithExpires(t time.Time) Options {
	o.expires = t
	return o
}

// WithMaxAge sets the Max-Age attribute in seconds. Zero is a real value
// and asks the client to expire the cookie immediately.
//
// Parameters:
//   - seconds: The lifetime in seconds.
//
// Returns:
//   - Options: The new Options.
func (o Options) WithMaxAge(seconds int) Options {
	o.maxAge = seconds
	o.hasMaxAge = true
	return o
}

// WithoutMaxAge removes the Max-Age attribute.
func (o Options) WithoutMaxAge() Options {
	o.maxAge = 0
	o.hasMaxAge = false
	return o
}

// WithPartitioned toggles the Partitioned flag.
//
// Parameters:
//   - v: The flag value.
//
// Returns:
//   - Options: The new Options.
func (o Options) WithPartitioned(v bool) Options {
	o.partitioned = v
	return o
}

// WithPath sets the Path attribute. An empty path removes it.
//
// Parameters:
//   - path: The path to use.
//
// Returns:
//   - Options: The new Options.
func (o Options) WithPath(path string) Options {
	o.path = path
	return o
}

// WithSameSite sets the SameSite attribute. http.SameSiteDefaultMode
// removes it.
//
// Parameters:
//   - s: The http.SameSite value to use.
//
// Returns:
//   - Options: The new Options.
func (o Options) WithSameSite(s http.SameSite) Options {
	o.sameSite = s
	return o
}

// WithSecure toggles the Secure flag.
//
// Parameters:
//   - v: The flag value.
//
// Returns:
//   - Options: The new Options.
func (o Options) WithSecure(v bool) Options {
	o.secure = v
	return o
}

// WithHTTPOnly toggles the HttpOnly flag.
//
// Parameters:
//   - v: The flag value.
//
// Returns:
//   - Options: The new Options.
func (o Options) WithHTTPOnly(v bool) Options {
	o.httpOnly = v
	return o
}

// Domain returns the Domain attribute and whether it is set.
func (o Options) Domain() (string, bool) { return o.domain, o.domain != "" }

// Expires returns the Expires attribute and whether it is set.
func (o Options) Expires() (time.Time, bool) { return o.expires, !o.expires.IsZero() }

// MaxAge returns the Max-Age attribute and whether it is set.
func (o Options) MaxAge() (int, bool) { return o.maxAge, o.hasMaxAge }

// Partitioned reports whether the Partitioned flag is set.
func (o Options) Partitioned() bool { return o.partitioned }

// Path returns the Path attribute and whether it is set.
func (o Options) Path() (string, bool) { return o.path, o.path != "" }

// SameSite returns the SameSite attribute and whether it is set.
func (o Options) SameSite() (http.SameSite, bool) {
	return o.sameSite, o.sameSite != 0 && o.sameSite != http.SameSiteDefaultMode
}

// Secure reports whether the Secure flag is set.
func (o Options) Secure() bool { return o.secure }

// HTTPOnly reports whether the HttpOnly flag is set.
func (o Options) HTTPOnly() bool { return o.httpOnly }

// StringToSameSite converts a string to http.SameSite. Matching is
// case-insensitive. It returns an error wrapping ErrInvalidSameSite if the
// provided string is invalid.
//
// Parameters:
//   - s: The string to convert.
//
// Returns:
//   - http.SameSite: The http.SameSite value.
//   - error: The error if any.
func StringToSameSite(s string) (http.SameSite, error) {
	switch {
	case strings.EqualFold(s, sameSiteNone):
		return http.SameSiteNoneMode, nil
	case strings.EqualFold(s, sameSiteLax):
		return http.SameSiteLaxMode, nil
	case strings.EqualFold(s, sameSiteStrict):
		return http.SameSiteStrictMode, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSameSite, s)
	}
}

// MustStringToSameSite converts a string to http.SameSite and panics
// if the string is invalid.
func MustStringToSameSite(s string) http.SameSite {
	ss, err := StringToSameSite(s)
	if err != nil {
		panic(err)
	}
	return ss
}

// SameSiteToString converts an http.SameSite value to its attribute value
// as it appears on the wire ("Lax", "Strict" or "None").
//
// Parameters:
//   - s: The http.SameSite value.
//
// Returns:
//   - string: The wire name of the http.SameSite value.
//   - error: The error if any.
func SameSiteToString(s http.SameSite) (string, error) {
	switch s {
	case http.SameSiteNoneMode:
		return sameSiteNone, nil
	case http.SameSiteLaxMode:
		return sameSiteLax, nil
	case http.SameSiteStrictMode:
		return sameSiteStrict, nil
	default:
		return "", fmt.Errorf("%w: %v", ErrInvalidSameSite, s)
	}
}

// MustSameSiteToString converts an http.SameSite value to its wire name
// and panics if the value is invalid.
func MustSameSiteToString(s http.SameSite) string {
	str, err := SameSiteToString(s)
	if err != nil {
		panic(err)
	}
	return str
}
