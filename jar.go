package cookie

import (
	"io"
	"log/slog"
	"strings"
)

// Store is the cookie store a Jar reads and writes. It mirrors a browser's
// document cookie: Read returns every visible cookie as one
// "k1=v1; k2=v2" line and Write assigns a single formatted cookie string,
// adding, replacing or expiring that one cookie.
type Store interface {
	Read() string
	Write(raw string)
}

var deleteOptions = NewOptions().WithMaxAge(0).WithSecure(false).WithPath("/")

// JarOption configures a Jar.
type JarOption func(*Jar)

// WithLogger sets the logger used for debug output. A nil logger is
// ignored.
func WithLogger(logger *slog.Logger) JarOption {
	return func(j *Jar) {
		if logger != nil {
			j.logger = logger
		}
	}
}

// Jar implements client-side cookie helpers on top of a Store.
//
// All failures are reported as false or absent results. A Jar with a nil
// Store behaves as an unavailable cookie jar. The store is read fresh on
// every call.
type Jar struct {
	store  Store
	logger *slog.Logger
}

// NewJar creates a Jar bound to store.
//
// Parameters:
//   - store: The cookie store, nil when no jar is available.
//   - opts: Optional settings.
//
// Returns:
//   - *Jar: The new Jar.
func NewJar(store Store, opts ...JarOption) *Jar {
	j := &Jar{
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Set writes a cookie and reports whether "key=encodedValue" shows up in
// the store afterwards. Attributes are not checked since stores do not echo
// them back.
//
// Parameters:
//   - key: The cookie name.
//   - value: The raw cookie value.
//   - opts: The cookie attributes.
//
// Returns:
//   - bool: True if the cookie is visible after the write.
func (j *Jar) Set(key, value string, opts Options) bool {
	if j.store == nil {
		j.logger.Debug("cookie jar unavailable", "op", "set", "key", key)
		return false
	}
	j.store.Write(Serialize(key, value, opts))
	if !strings.Contains(j.store.Read(), pair(key, value)) {
		j.logger.Debug("cookie write not reflected", "key", key)
		return false
	}
	return true
}

// Get returns the stored value of key as it appears in the store, without
// decoding. The first matching cookie wins.
//
// Parameters:
//   - key: The cookie name.
//
// Returns:
//   - string: The value.
//   - bool: False if the cookie is missing or the jar is unavailable.
func (j *Jar) Get(key string) (string, bool) {
	if j.store == nil {
		return "", false
	}
	prefix := key + "="
	for _, seg := range strings.Split(j.store.Read(), ";") {
		seg = strings.TrimSpace(seg)
		if v, ok := strings.CutPrefix(seg, prefix); ok {
			return v, true
		}
	}
	return "", false
}

// Delete expires key by overwriting it with an empty value, Max-Age=0,
// Path=/ and no Secure flag, and reports whether the key is gone
// afterwards. A key that is not present is reported as false and nothing
// is written.
//
// Only cookies set on path "/" that can be overwritten without Secure can be
// removed this way.
func (j *Jar) Delete(key string) bool {
	if _, ok := j.Get(key); !ok {
		return false
	}
	j.store.Write(Serialize(key, "", deleteOptions))
	if _, ok := j.Get(key); ok {
		j.logger.Debug("cookie delete not reflected", "key", key)
		return false
	}
	return true
}

// Update replaces an existing cookie. Attributes of the old cookie are not
// carried over. A key that is not present is reported as false.
func (j *Jar) Update(key, value string, opts Options) bool {
	if _, ok := j.Get(key); !ok {
		return false
	}
	return j.Set(key, value, opts)
}

// Keys returns the names of all cookies in the store, in store order.
// It returns nil when there are none.
func (j *Jar) Keys() []string {
	var keys []string
	j.each(func(k, _ string) {
		keys = append(keys, k)
	})
	return keys
}

// Values returns the values of all cookies in the store, in store order.
// It returns nil when there are none.
func (j *Jar) Values() []string {
	var values []string
	j.each(func(_, v string) {
		values = append(values, v)
	})
	return values
}

// each calls fn for every "k=v" segment of the snapshot. Segments with no
// '=' are skipped.
func (j *Jar) each(fn func(k, v string)) {
	if j.store == nil {
		return
	}
	snapshot := j.store.Read()
	if snapshot == "" {
		return
	}
	for _, seg := range strings.Split(snapshot, ";") {
		k, v, ok := strings.Cut(seg, "=")
		if !ok {
			j.logger.Debug("skipping cookie segment without '='", "segment", seg)
			continue
		}
		fn(strings.TrimSpace(k), strings.TrimSpace(v))
	}
}
