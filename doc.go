// Package cookie formats and parses HTTP cookie strings for both sides of
// a connection. It includes:
//
//   - Serialize/Format building "key=value; Attr=..." strings with a fixed
//     attribute order and encodeURIComponent-compatible value encoding.
//   - Immutable Options with a copy-on-write builder.
//   - Jar: set/get/delete/update/keys/values over a Store that behaves like
//     a browser's document cookie.
//   - MemoryStore and URLStore (net/http/cookiejar) Store implementations.
//   - SameSite converters, presets and YAML-decoded options.
//
// Notes:
//   - Jar operations never return errors; failures collapse to false or an
//     absent value.
//   - Jar.Set only checks that "key=value" is visible after the write.
//     Rejected attributes (such as a foreign Domain) go unnoticed.
//   - Jar.Delete always writes Path="/" without Secure, so it only removes
//     cookies that were set that way.
package cookie
