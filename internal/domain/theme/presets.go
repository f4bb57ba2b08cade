package theme

import "sort"

// DefaultPresetName is the theme a fresh project starts with.
const DefaultPresetName = "xala-default"

var presets = map[string]Config{
	DefaultPresetName: {
		Name:          DefaultPresetName,
		Brand:         "Xala",
		Industry:      "technology",
		Colors:        map[string]string{"primary": "#2563eb", "secondary": "#7c3aed"},
		Accessibility: AccessibilityAAA,
		Features:      []string{FeatureDarkMode},
		Locales:       []string{"nb-NO", "en-US"},
	},
	"healthcare": {
		Name:          "healthcare",
		Brand:         "Healthcare",
		Industry:      IndustryHealthcare,
		Colors:        map[string]string{"primary": "#0891b2", "secondary": "#059669"},
		Accessibility: AccessibilityAAA,
		Locales:       []string{"nb-NO", "en-US"},
	},
	"finance": {
		Name:          "finance",
		Brand:         "Finance",
		Industry:      IndustryFinance,
		Colors:        map[string]string{"primary": "#1e40af", "secondary": "#0f766e"},
		Accessibility: AccessibilityAA,
		Features:      []string{FeatureDarkMode},
		Locales:       []string{"en-US"},
	},
	"education": {
		Name:          "education",
		Brand:         "Education",
		Industry:      IndustryEducation,
		Colors:        map[string]string{"primary": "#7c3aed", "secondary": "#ea580c"},
		Accessibility: AccessibilityAA,
		Locales:       []string{"nb-NO", "nn-NO", "en-US"},
	},
	"government": {
		Name:          "government",
		Brand:         "Government",
		Industry:      "government",
		Colors:        map[string]string{"primary": "#0062ba", "secondary": "#1e293b"},
		Accessibility: AccessibilityAAA,
		Features:      []string{FeatureDarkMode},
		Locales:       []string{"nb-NO", "nn-NO", "se-NO", "en-US"},
	},
	"enterprise": {
		Name:          "enterprise",
		Brand:         "Enterprise",
		Industry:      "enterprise",
		Colors:        map[string]string{"primary": "#334155", "secondary": "#0ea5e9"},
		Accessibility: AccessibilityAA,
		Features:      []string{FeatureDarkMode},
		Locales:       []string{"en-US"},
	},
}

// PresetNames lists built-in themes alphabetically.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a normalized copy of the named built-in theme.
func Preset(name string) (Config, bool) {
	cfg, ok := presets[name]
	if !ok {
		return Config{}, false
	}
	return cfg.Normalize(), true
}
