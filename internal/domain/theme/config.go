package theme

import "strings"

// Accessibility is the WCAG conformance target of a theme.
type Accessibility string

const (
	AccessibilityAA  Accessibility = "AA"
	AccessibilityAAA Accessibility = "AAA"
)

// Industries with dedicated typography. Any other value is accepted and uses
// the default font.
const (
	IndustryHealthcare = "healthcare"
	IndustryFinance    = "finance"
	IndustryEducation  = "education"
)

// FeatureDarkMode enables the prefers-color-scheme block in CSS output.
const FeatureDarkMode = "darkMode"

// Config is the caller-supplied description of a theme. Treat it as
// immutable; Normalize returns an adjusted copy.
type Config struct {
	Name          string            `json:"name" yaml:"name" toml:"name" validate:"required,theme_slug"`
	Brand         string            `json:"brand" yaml:"brand" toml:"brand"`
	Industry      string            `json:"industry,omitempty" yaml:"industry,omitempty" toml:"industry,omitempty"`
	Colors        map[string]string `json:"colors,omitempty" yaml:"colors,omitempty" toml:"colors,omitempty"`
	Accessibility Accessibility     `json:"accessibility,omitempty" yaml:"accessibility,omitempty" toml:"accessibility,omitempty" validate:"omitempty,oneof=AA AAA"`
	Features      []string          `json:"features,omitempty" yaml:"features,omitempty" toml:"features,omitempty"`
	Locales       []string          `json:"locales,omitempty" yaml:"locales,omitempty" toml:"locales,omitempty"`
}

// Normalize fills defaults (brand, accessibility, locales) and removes
// duplicate features and locales while keeping first occurrences.
func (c Config) Normalize() Config {
	out := Config{
		Name:          strings.TrimSpace(c.Name),
		Brand:         strings.TrimSpace(c.Brand),
		Industry:      strings.ToLower(strings.TrimSpace(c.Industry)),
		Accessibility: c.Accessibility,
		Features:      dedupe(c.Features),
		Locales:       dedupe(c.Locales),
	}
	if out.Brand == "" {
		out.Brand = out.Name
	}
	if out.Accessibility == "" {
		out.Accessibility = AccessibilityAA
	}
	if len(out.Locales) == 0 {
		out.Locales = []string{"en-US"}
	}
	if len(c.Colors) > 0 {
		out.Colors = make(map[string]string, len(c.Colors))
		for k, v := range c.Colors {
			out.Colors[k] = v
		}
	}
	return out
}

// HasFeature reports whether the feature flag is enabled.
func (c Config) HasFeature(name string) bool {
	for _, f := range c.Features {
		if f == name {
			return true
		}
	}
	return false
}

// Color returns the configured colour for role, unchanged, or fallback when
// it is blank.
func (c Config) Color(role, fallback string) string {
	if v := c.Colors[role]; strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
