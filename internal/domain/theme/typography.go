package theme

const (
	fontFallback = "system-ui, -apple-system, 'Segoe UI', Roboto, sans-serif"
	fontDefault  = "Inter"
)

// SansFamily returns the primary typeface for an industry. Unknown industries
// get Inter.
func SansFamily(industry string) string {
	switch industry {
	case IndustryHealthcare:
		return "Source Sans Pro"
	case IndustryFinance:
		return "IBM Plex Sans"
	case IndustryEducation:
		return "Open Sans"
	default:
		return fontDefault
	}
}

func typography(industry string, level Accessibility) FontTokens {
	base := "1rem"
	normalLeading := "1.5"
	if level == AccessibilityAAA {
		base = "1.125rem"
		normalLeading = "1.6"
	}

	return FontTokens{
		Family: Group{
			{"sans", "'" + SansFamily(industry) + "', " + fontFallback},
			{"serif", "Georgia, Cambria, 'Times New Roman', serif"},
			{"mono", "'JetBrains Mono', Menlo, Consolas, monospace"},
		},
		Size: Group{
			{"xs", "0.75rem"},
			{"sm", "0.875rem"},
			{"base", base},
			{"lg", "1.25rem"},
			{"xl", "1.5rem"},
			{"2xl", "1.875rem"},
			{"3xl", "2.25rem"},
			{"4xl", "3rem"},
		},
		Weight: Group{
			{"light", "300"},
			{"normal", "400"},
			{"medium", "500"},
			{"semibold", "600"},
			{"bold", "700"},
		},
		LineHeight: Group{
			{"tight", "1.25"},
			{"normal", normalLeading},
			{"relaxed", "1.75"},
		},
	}
}
