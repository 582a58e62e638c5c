package cookie

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// OptionsConfig is the declarative form of Options, for example a block
// of an application's YAML config:
//
//	path: /
//	sameSite: Lax
//	maxAge: 3600
//	secure: true
//	httpOnly: true
type OptionsConfig struct {
	Domain      string    `yaml:"domain,omitempty"`
	Expires     time.Time `yaml:"expires,omitempty"`
	MaxAge      *int      `yaml:"maxAge,omitempty"`
	Partitioned bool      `yaml:"partitioned,omitempty"`
	Path        string    `yaml:"path,omitempty"`
	SameSite    string    `yaml:"sameSite,omitempty"`
	Secure      bool      `yaml:"secure,omitempty"`
	HTTPOnly    bool      `yaml:"httpOnly,omitempty"`
}

// Options converts the config. An empty SameSite leaves the attribute
// unset; an unknown one returns an error wrapping ErrInvalidSameSite.
func (c OptionsConfig) Options() (Options, error) {
	opts := NewOptions().
		WithDomain(c.Domain).
		WithExpires(c.Expires).
		WithPartitioned(c.Partitioned).
		WithPath(c.Path).
		WithSecure(c.Secure).
		WithHTTPOnly(c.HTTPOnly)
	if c.MaxAge != nil {
		opts = opts.WithMaxAge(*c.MaxAge)
	}
	if c.SameSite != "" {
		ss, err := StringToSameSite(c.SameSite)
		if err != nil {
			return Options{}, err
		}
		opts = opts.WithSameSite(ss)
	}
	return opts, nil
}

// ParseOptionsYAML decodes a YAML document into Options.
//
// Parameters:
//   - data: The YAML document.
//
// Returns:
//   - Options: The decoded options.
//   - error: The error if the document or a value is invalid.
func ParseOptionsYAML(data []byte) (Options, error) {
	var cfg OptionsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Options{}, fmt.Errorf("cookie: decode options: %w", err)
	}
	return cfg.Options()
}
