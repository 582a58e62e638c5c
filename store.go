package cookie

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/publicsuffix"
)

// MemoryStore is an in-memory Store with the assignment semantics of a
// browser's document cookie. Cookies are identified by name only; scoping
// attributes are accepted but not enforced. It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	names   []string
	values  map[string]string
	expires map[string]time.Time
	now     func() time.Time
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values:  make(map[string]string),
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Write applies one formatted cookie. Strings that do not parse as a
// Set-Cookie value are dropped without notice. A non-positive Max-Age or an
// Expires in the past removes the cookie.
func (s *MemoryStore) Write(raw string) {
	c, err := http.ParseSetCookie(raw)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	switch {
	case c.MaxAge < 0:
		s.remove(c.Name)
		return
	case c.MaxAge > 0:
		s.put(c.Name, c.Value, now.Add(time.Duration(c.MaxAge)*time.Second))
	case !c.Expires.IsZero():
		if !c.Expires.After(now) {
			s.remove(c.Name)
			return
		}
		s.put(c.Name, c.Value, c.Expires)
	default:
		s.put(c.Name, c.Value, time.Time{})
	}
}

// Read returns the live cookies as "k1=v1; k2=v2" in insertion order.
func (s *MemoryStore) Read() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	parts := make([]string, 0, len(s.names))
	for _, name := range s.names {
		if exp := s.expires[name]; !exp.IsZero() && !exp.After(now) {
			continue
		}
		parts = append(parts, name+"="+s.values[name])
	}
	return strings.Join(parts, "; ")
}

// Len returns the number of cookies held, including expired ones not yet
// overwritten.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.names)
}

func (s *MemoryStore) put(name, value string, expires time.Time) {
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = value
	if expires.IsZero() {
		delete(s.expires, name)
	} else {
		s.expires[name] = expires
	}
}

func (s *MemoryStore) remove(name string) {
	if _, ok := s.values[name]; !ok {
		return
	}
	delete(s.values, name)
	delete(s.expires, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
}

// URLStore adapts an http.CookieJar to Store, viewed from a single URL.
// Writes are treated as Set-Cookie headers received from that URL and
// reads return the cookies the jar would send to it.
type URLStore struct {
	jar http.CookieJar
	u   *url.URL
}

// NewURLStore creates a URLStore backed by a fresh net/http/cookiejar
// that uses the public suffix list.
//
// Parameters:
//   - rawURL: The URL the store acts on behalf of.
//
// Returns:
//   - *URLStore: The new store.
//   - error: The error if the URL is invalid.
func NewURLStore(rawURL string) (*URLStore, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("cookie: parse store url: %w", err)
	}
	jar, err := cookiejar.New(&cookiejar.Options{
		PublicSuffixList: publicsuffix.List,
	})
	if err != nil {
		return nil, fmt.Errorf("cookie: create jar: %w", err)
	}
	return NewURLStoreWithJar(jar, u), nil
}

// NewURLStoreWithJar wraps an existing jar, for example the one attached to
// an http.Client.
func NewURLStoreWithJar(jar http.CookieJar, u *url.URL) *URLStore {
	return &URLStore{jar: jar, u: u}
}

// Write parses raw as a Set-Cookie value and hands it to the jar.
// Unparsable input is dropped.
func (s *URLStore) Write(raw string) {
	c, err := http.ParseSetCookie(raw)
	if err != nil {
		return
	}
	s.jar.SetCookies(s.u, []*http.Cookie{c})
}

// Read returns the cookies the jar holds for the URL.
func (s *URLStore) Read() string {
	cookies := s.jar.Cookies(s.u)
	parts := make([]string, 0, len(cookies))
	for _, c := range cookies {
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; ")
}
