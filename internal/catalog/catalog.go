// Package catalog holds the fixed registry of material profiles the advisor selects from.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/Veraticus/wastewise/internal/common"
	"github.com/Veraticus/wastewise/internal/model"
	"gopkg.in/yaml.v3"
)

// Catalog is an immutable, non-empty, ordered sequence of material profiles.
type Catalog struct {
	index    map[string]int
	profiles []model.MaterialProfile
}

// New validates profiles and builds a catalog from them.
// Any failure wraps common.ErrConfiguration and should abort startup.
func New(profiles []model.MaterialProfile) (*Catalog, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: catalog has no profiles", common.ErrConfiguration)
	}

	c := &Catalog{
		profiles: make([]model.MaterialProfile, len(profiles)),
		index:    make(map[string]int, len(profiles)),
	}

	for i := range profiles {
		if err := profiles[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: profile %d: %w", common.ErrConfiguration, i, err)
		}

		key := normalize(profiles[i].Material)
		if prev, dup := c.index[key]; dup {
			return nil, fmt.Errorf("%w: profile %d duplicates material %q from profile %d",
				common.ErrConfiguration, i, profiles[i].Material, prev)
		}

		c.index[key] = i
		c.profiles[i] = profiles[i].Clone()
	}

	return c, nil
}

// MustNew is New for built-in tables; it panics on a configuration error.
func MustNew(profiles []model.MaterialProfile) *Catalog {
	c, err := New(profiles)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of profiles.
func (c *Catalog) Len() int {
	return len(c.profiles)
}

// Profile returns a copy of the i-th profile.
func (c *Catalog) Profile(i int) model.MaterialProfile {
	return c.profiles[i].Clone()
}

// Profiles returns copies of all profiles in catalog order.
func (c *Catalog) Profiles() []model.MaterialProfile {
	out := make([]model.MaterialProfile, len(c.profiles))
	for i := range c.profiles {
		out[i] = c.profiles[i].Clone()
	}
	return out
}

// Materials returns material names in catalog order.
func (c *Catalog) Materials() []string {
	out := make([]string, len(c.profiles))
	for i := range c.profiles {
		out[i] = c.profiles[i].Material
	}
	return out
}

// Lookup finds a profile by material name, case-insensitively.
func (c *Catalog) Lookup(material string) (model.MaterialProfile, error) {
	i, ok := c.index[normalize(material)]
	if !ok {
		return model.MaterialProfile{}, fmt.Errorf("material %q: %w", material, common.ErrNotFound)
	}
	return c.profiles[i].Clone(), nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// fileFormat is the on-disk shape of a catalog.
type fileFormat struct {
	Profiles []model.MaterialProfile `yaml:"profiles"`
}

// Load reads a YAML catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // catalog path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read catalog: %w", common.ErrConfiguration, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc fileFormat
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse catalog: %w", common.ErrConfiguration, err)
	}

	for i := range doc.Profiles {
		p := &doc.Profiles[i]
		if cat, err := model.ParseCategory(string(p.Category)); err == nil {
			p.Category = cat
		}
		for j := range p.Actions {
			if kind, err := model.ParseActionKind(string(p.Actions[j].Kind)); err == nil {
				p.Actions[j].Kind = kind
			}
		}
	}

	return New(doc.Profiles)
}

// Marshal encodes the catalog in the same format Load reads.
func (c *Catalog) Marshal() ([]byte, error) {
	return yaml.Marshal(fileFormat{Profiles: c.Profiles()})
}
