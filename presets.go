package cookie

import (
	"net/http"
	"strings"
	"time"
)

const hostPrefix = "__Host-"

// Essential returns options for a first-party cookie such as a session
// identifier or auth token:
//
//	Secure, HttpOnly, Path="/", SameSite=Lax, no lifetime (session cookie).
func Essential() Options {
	return cookieDefaults().
		WithHTTPOnly(true).
		WithSameSite(http.SameSiteLaxMode)
}

// Analytics returns options for a client-readable analytics cookie:
//
//	Secure, Path="/", SameSite=None, Max-Age of 180 days.
func Analytics() Options {
	return cookieDefaults().
		WithSameSite(http.SameSiteNoneMode).
		WithMaxAge(durToSec(180 * 24 * time.Hour))
}

// ThirdParty returns options for cross-site cookies. Partitioned is
// opt-in via WithPartitioned.
//
//	Secure, Path="/", SameSite=None, Max-Age of 90 days.
func ThirdParty() Options {
	return cookieDefaults().
		WithSameSite(http.SameSiteNoneMode).
		WithMaxAge(durToSec(90 * 24 * time.Hour))
}

// WithTTL sets Max-Age from a duration, truncated to whole seconds.
// A non-positive ttl removes Max-Age, making a session cookie.
//
// Parameters:
//   - ttl: The lifetime.
//
// Returns:
//   - Options: The new Options.
func (o Options) WithTTL(ttl time.Duration) Options {
	secs := durToSec(ttl)
	if secs == 0 {
		return o.WithoutMaxAge()
	}
	return o.WithMaxAge(secs)
}

// HostPrefixed returns name with the "__Host-" prefix and options that
// satisfy its rules: Secure, Path="/" and no Domain.
//
// Parameters:
//   - name: The cookie name.
//   - opts: The options to adjust.
//
// Returns:
//   - string: The prefixed name.
//   - Options: The adjusted options.
func HostPrefixed(name string, opts Options) (string, Options) {
	if !strings.HasPrefix(name, hostPrefix) {
		name = hostPrefix + name
	}
	return name, opts.WithSecure(true).WithPath("/").WithDomain("")
}

// cookieDefaults sets the base values shared by the presets.
func cookieDefaults() Options {
	// Secure=true by default to avoid anti-patterns with SameSite=None.
	return NewOptions().WithPath("/").WithSecure(true)
}

// durToSec converts a duration to seconds.
func durToSec(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	// Clamp to MaxInt to avoid overflow for very large durations.
	const max = int(^uint(0) >> 1)
	secs := int(d / time.Second)
	if secs < 0 || secs > max {
		return max
	}
	return secs
}
