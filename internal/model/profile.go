// Package model defines the core domain models used throughout the application.
package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Category is the waste category a material belongs to.
type Category string

// Category constants.
const (
	CategoryOrganic       Category = "Organic"
	CategoryRecyclable    Category = "Recyclable"
	CategoryHazardous     Category = "Hazardous"
	CategoryNonRecyclable Category = "Non-Recyclable"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryOrganic,
	CategoryRecyclable,
	CategoryHazardous,
	CategoryNonRecyclable,
}

// ErrInvalidProfile is wrapped by every profile validation failure.
var ErrInvalidProfile = errors.New("invalid material profile")

// ParseCategory resolves a category by its display name.
// "NonRecyclable" and "non_recyclable" are accepted as aliases.
func ParseCategory(s string) (Category, error) {
	normalized := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for _, c := range Categories {
		if strings.ToLower(strings.ReplaceAll(string(c), "-", "")) == normalized {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// MaterialProfile describes one classifiable material and what can be done with it.
// Profiles are immutable once placed in a catalog.
type MaterialProfile struct {
	EstimatedPrice *float64 `yaml:"estimated_price,omitempty" json:"estimated_price"`
	Category       Category `yaml:"category" json:"category"`
	Material       string   `yaml:"material" json:"material"`
	Actions        []Action `yaml:"actions" json:"actions"`
	Confidence     float64  `yaml:"confidence" json:"confidence"`
}

// Validate ensures the profile satisfies the catalog invariants.
func (p *MaterialProfile) Validate() error {
	if !p.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidProfile, p.Category)
	}

	if strings.TrimSpace(p.Material) == "" {
		return fmt.Errorf("%w: material name is required", ErrInvalidProfile)
	}

	if math.IsNaN(p.Confidence) || p.Confidence < 0 || p.Confidence > 100 {
		return fmt.Errorf("%w: %s: confidence must be between 0 and 100, got %.1f", ErrInvalidProfile, p.Material, p.Confidence)
	}

	if len(p.Actions) == 0 {
		return fmt.Errorf("%w: %s: at least one action is required", ErrInvalidProfile, p.Material)
	}

	for i := range p.Actions {
		if err := p.Actions[i].Validate(); err != nil {
			return fmt.Errorf("%w: %s: action %d: %w", ErrInvalidProfile, p.Material, i, err)
		}
	}

	if p.EstimatedPrice != nil && !isPositiveFinite(*p.EstimatedPrice) {
		return fmt.Errorf("%w: %s: estimated price must be positive, got %.2f", ErrInvalidProfile, p.Material, *p.EstimatedPrice)
	}

	hasSell := p.HasSell()
	if p.EstimatedPrice != nil && !hasSell {
		return fmt.Errorf("%w: %s: estimated price set without a sell action", ErrInvalidProfile, p.Material)
	}
	if p.EstimatedPrice == nil && hasSell {
		return fmt.Errorf("%w: %s: sell action requires an estimated price", ErrInvalidProfile, p.Material)
	}

	return nil
}

// HasSell reports whether any action sells the material.
func (p *MaterialProfile) HasSell() bool {
	for _, a := range p.Actions {
		if a.Kind == ActionSell {
			return true
		}
	}
	return false
}

// Price returns the estimated resale price per kg, if any.
func (p *MaterialProfile) Price() (float64, bool) {
	if p.EstimatedPrice == nil {
		return 0, false
	}
	return *p.EstimatedPrice, true
}

// Clone returns a deep copy so callers can't reach catalog-owned memory.
func (p MaterialProfile) Clone() MaterialProfile {
	out := p
	if p.EstimatedPrice != nil {
		price := *p.EstimatedPrice
		out.EstimatedPrice = &price
	}
	out.Actions = make([]Action, len(p.Actions))
	copy(out.Actions, p.Actions)
	return out
}

// PricePtr is a convenience for building profiles with a price.
func PricePtr(v float64) *float64 {
	return &v
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
