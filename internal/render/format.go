package render

import (
	"fmt"
	"strings"
)

// Format identifies one generated artefact.
type Format string

const (
	FormatTheme    Format = "theme"
	FormatTokens   Format = "tokens"
	FormatCSS      Format = "css"
	FormatTailwind Format = "tailwind"
	FormatTypes    Format = "types"
	FormatDocs     Format = "docs"
)

var formats = []Format{FormatTheme, FormatTokens, FormatCSS, FormatTailwind, FormatTypes, FormatDocs}

var suffixes = map[Format]string{
	FormatTheme:    ".theme.ts",
	FormatTokens:   ".tokens.json",
	FormatCSS:      ".css",
	FormatTailwind: ".tailwind.js",
	FormatTypes:    ".types.ts",
	FormatDocs:     ".md",
}

// Formats lists every supported format in generation order.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(value string) (Format, error) {
	candidate := Format(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := suffixes[candidate]; ok {
		return candidate, nil
	}
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unknown format %q (expected one of %s)", value, strings.Join(names, ", "))
}

// Filename returns the output file name for a theme.
func (f Format) Filename(themeName string) string {
	return themeName + suffixes[f]
}

// Suffix returns the file extension chain of the format, e.g. ".tokens.json".
func (f Format) Suffix() string {
	return suffixes[f]
}
