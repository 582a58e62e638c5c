package cookie

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func getCookieByName(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	resp := rec.Result()
	for _, c := range resp.Cookies() {
		if c != nil && c.Name == name {
			return c
		}
	}
	return nil
}

func TestSerialize_NoOptions(t *testing.T) {
	if got := Serialize("k", "v", NewOptions()); got != "k=v" {
		t.Fatalf("got %q", got)
	}
	if got := Serialize("k", "a b;c", Options{}); got != "k=a%20b%3Bc" {
		t.Fatalf("got %q", got)
	}
}

func TestSerialize_KeyNotEncoded(t *testing.T) {
	if got := Serialize("a b", "x", NewOptions()); got != "a b=x" {
		t.Fatalf("got %q", got)
	}
}

func TestSerialize_AllAttributesInOrder(t *testing.T) {
	opts := NewOptions().
		WithHTTPOnly(true).
		WithSecure(true).
		WithSameSite(http.SameSiteStrictMode).
		WithPath("/p").
		WithPartitioned(true).
		WithMaxAge(60).
		WithExpires(time.Date(2015, 10, 21, 7, 28, 0, 0, time.UTC)).
		WithDomain("example.com")

	want := "k=v; Domain=example.com; Expires=Wed, 21 Oct 2015 07:28:00 GMT; " +
		"Max-Age=60; Partitioned; Path=/p; SameSite=Strict; Secure; HttpOnly"
	if got := Serialize("k", "v", opts); got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestSerialize_DomainPathSameSiteOrder(t *testing.T) {
	opts := NewOptions().
		WithSameSite(http.SameSiteLaxMode).
		WithPath("/p").
		WithDomain("d")
	if got := Serialize("k", "v", opts); got != "k=v; Domain=d; Path=/p; SameSite=Lax" {
		t.Fatalf("got %q", got)
	}
}

func TestSerialize_ExpiresRenderedInGMT(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	opts := NewOptions().WithExpires(time.Date(2015, 10, 21, 9, 28, 0, 0, loc))
	if got := Serialize("k", "v", opts); got != "k=v; Expires=Wed, 21 Oct 2015 07:28:00 GMT" {
		t.Fatalf("got %q", got)
	}
}

func TestSerialize_MaxAgeZeroEmitted(t *testing.T) {
	got := Serialize("k", "v", NewOptions().WithMaxAge(0))
	if !strings.Contains(got, "; Max-Age=0") {
		t.Fatalf("Max-Age=0 dropped: %q", got)
	}
	if got := Serialize("k", "v", NewOptions().WithMaxAge(5).WithoutMaxAge()); got != "k=v" {
		t.Fatalf("WithoutMaxAge: %q", got)
	}
}

func TestSerialize_MaxAgeAndExpiresBothEmitted(t *testing.T) {
	opts := NewOptions().
		WithExpires(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)).
		WithMaxAge(10)
	got := Serialize("k", "v", opts)
	if !strings.Contains(got, "; Expires=") || !strings.Contains(got, "; Max-Age=10") {
		t.Fatalf("got %q", got)
	}
}

func TestSerialize_FalseFlagsOmitted(t *testing.T) {
	opts := NewOptions().WithSecure(false).WithHTTPOnly(false).WithPartitioned(false)
	got := Serialize("k", "v", opts)
	if got != "k=v" {
		t.Fatalf("got %q", got)
	}
	if strings.Contains(got, "Secure") {
		t.Fatalf("Secure present for false flag")
	}
}

func TestSerialize_UnknownSameSiteSkipped(t *testing.T) {
	if got := Serialize("k", "v", NewOptions().WithSameSite(http.SameSite(42))); got != "k=v" {
		t.Fatalf("got %q", got)
	}
	if got := Serialize("k", "v", NewOptions().WithSameSite(http.SameSiteDefaultMode)); got != "k=v" {
		t.Fatalf("default mode: %q", got)
	}
}

func TestSerialize_NoValidation(t *testing.T) {
	got := Serialize("k", "v", NewOptions().WithDomain("not a domain;;").WithPath("no-slash"))
	if got != "k=v; Domain=not a domain;;; Path=no-slash" {
		t.Fatalf("got %q", got)
	}
}

func TestEncodeURIComponent(t *testing.T) {
	cases := map[string]string{
		"":             "",
		"abcXYZ019":    "abcXYZ019",
		"-_.!~*'()":    "-_.!~*'()",
		"a b&c=d/é":    "a%20b%26c%3Dd%2F%C3%A9",
		"+;,\"\\%":     "%2B%3B%2C%22%5C%25",
		"日本":           "%E6%97%A5%E6%9C%AC",
		"?#[]@$":       "%3F%23%5B%5D%40%24",
		"line\nbreak": "line%0Abreak",
	}
	for in, want := range cases {
		if got := EncodeURIComponent(in); got != want {
			t.Fatalf("EncodeURIComponent(%q)=%q want %q", in, got, want)
		}
	}
}

func TestSerialize_ValueRoundTrip(t *testing.T) {
	values := []string{"1", "hello world", "a+b=c; d", "100%", "ünïcödé", "{\"json\":[1,2]}", "~!*()'"}
	for _, v := range values {
		s := Serialize("k", v, NewOptions())
		enc, ok := strings.CutPrefix(s, "k=")
		if !ok {
			t.Fatalf("missing prefix: %q", s)
		}
		dec, err := DecodeURIComponent(enc)
		if err != nil {
			t.Fatalf("decode %q: %v", enc, err)
		}
		if dec != v {
			t.Fatalf("round trip %q -> %q -> %q", v, enc, dec)
		}
	}
}

func TestDecodeURIComponent_Malformed(t *testing.T) {
	if _, err := DecodeURIComponent("%zz"); err == nil {
		t.Fatalf("expected error for malformed escape")
	}
}

func TestFormat_MatchesSerialize(t *testing.T) {
	opts := Essential().WithMaxAge(30)
	if Format("sid", "x y", opts) != Serialize("sid", "x y", opts) {
		t.Fatalf("Format differs from Serialize")
	}
	kit := New(nil)
	if kit.Server("sid", "x y", opts) != Serialize("sid", "x y", opts) {
		t.Fatalf("Kit.Server differs from Serialize")
	}
}

func TestHeaderWriter_WriteCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	var w CookieWriter = NewHeaderWriter(rec)
	w.WriteCookie("sess", "a b", Essential().WithMaxAge(60))
	w.WriteCookie("theme", "dark", NewOptions())

	headers := rec.Header().Values("Set-Cookie")
	if len(headers) != 2 {
		t.Fatalf("expected 2 Set-Cookie headers, got %d", len(headers))
	}
	if headers[0] != "sess=a%20b; Max-Age=60; Path=/; SameSite=Lax; Secure; HttpOnly" {
		t.Fatalf("unexpected header %q", headers[0])
	}

	c := getCookieByName(t, rec, "sess")
	if c == nil {
		t.Fatalf("cookie not set")
	}
	if c.Value != "a%20b" || c.MaxAge != 60 || !c.Secure || !c.HttpOnly ||
		c.SameSite != http.SameSiteLaxMode || c.Path != "/" {
		t.Fatalf("unexpected attributes: %+v", c)
	}
	if getCookieByName(t, rec, "theme") == nil {
		t.Fatalf("theme cookie not set")
	}
}

func TestSetHeader_DeletionCookie(t *testing.T) {
	h := http.Header{}
	SetHeader(h, "gone", "", NewOptions().WithMaxAge(0).WithPath("/"))
	if got := h.Get("Set-Cookie"); got != "gone=; Max-Age=0; Path=/" {
		t.Fatalf("got %q", got)
	}
}
