// Package yaml loads the journal registry configuration.
package yaml

import (
	"bytes"
	"io"
	"strings"

	"github.com/fwojciec/pubtext"
	yaml "gopkg.in/yaml.v3"
)

// DefaultFallback names the publisher used for unknown journals when the
// configuration does not choose one.
const DefaultFallback = "trafilatura"

// FallbackNone disables the fallback publisher.
const FallbackNone = "none"

// Config is the registry file schema.
type Config struct {
	Normalize  bool            `yaml:"normalize"`
	RequireAll bool            `yaml:"require_all"`
	Fallback   string          `yaml:"fallback"`
	Journals   []JournalConfig `yaml:"journals"`
}

// JournalConfig binds one ISSN to a publisher by name.
type JournalConfig struct {
	ISSN       string `yaml:"issn"`
	Name       string `yaml:"name"`
	Publisher  string `yaml:"publisher"`
	RequireAll bool   `yaml:"require_all"`
}

// Load decodes a registry configuration. Unknown keys are EINVALID.
func Load(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, pubtext.Errorf(pubtext.EINVALID, "registry config: %v", err)
	}
	if cfg.Fallback == "" {
		cfg.Fallback = DefaultFallback
	}
	return &cfg, nil
}

// Parse decodes a registry configuration held in memory.
func Parse(data []byte) (*Config, error) {
	return Load(bytes.NewReader(data))
}

// Registry builds a journal registry from the configuration. All
// publishers are registered by name; journals and the fallback refer to
// them. Returns EINVALID for a journal that names an unknown publisher or
// a malformed ISSN.
func (c *Config) Registry(publishers []pubtext.Publisher, detector pubtext.PublisherDetector) (*pubtext.Registry, error) {
	byName := make(map[string]pubtext.Publisher, len(publishers))
	for _, p := range publishers {
		byName[p.Name()] = p
	}

	var fallback pubtext.Publisher
	if name := strings.ToLower(c.Fallback); name != FallbackNone {
		p, ok := byName[name]
		if !ok {
			return nil, pubtext.Errorf(pubtext.EINVALID, "registry config: unknown fallback publisher %q", c.Fallback)
		}
		fallback = p
	}

	r := pubtext.NewRegistry(detector, fallback)
	for _, p := range publishers {
		r.RegisterPublisher(p)
	}

	for i, jc := range c.Journals {
		p, ok := byName[jc.Publisher]
		if !ok {
			return nil, pubtext.Errorf(pubtext.EINVALID, "registry config: journal %d (%s): unknown publisher %q", i+1, jc.ISSN, jc.Publisher)
		}
		err := r.Register(&pubtext.Journal{
			ISSN:       jc.ISSN,
			Name:       jc.Name,
			Publisher:  p,
			RequireAll: jc.RequireAll,
		})
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Marshal encodes the configuration.
func Marshal(c *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
