// Package render turns a theme token set into source files. Every format is a
// pure function of a Document so each can be tested without touching disk.
package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"text/template"
	"time"

	"github.com/xala-technologies/xala-cli/internal/domain/theme"
	"github.com/xala-technologies/xala-cli/internal/palette"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(template.New("render").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl"))

// TokensSchema is the $schema advertised in the JSON token file.
const TokensSchema = "https://design-tokens.github.io/community-group/format/"

// TokensVersion is the $version of the JSON token file layout.
const TokensVersion = "1.0.0"

// Document is everything a format needs.
type Document struct {
	Config      theme.Config
	Tokens      theme.TokenSet
	GeneratedAt time.Time
}

// NewDocument normalizes cfg and builds its tokens.
func NewDocument(cfg theme.Config, generatedAt time.Time) Document {
	cfg = cfg.Normalize()
	return Document{Config: cfg, Tokens: theme.Build(cfg), GeneratedAt: generatedAt}
}

// Timestamp renders GeneratedAt for header lines.
func (d Document) Timestamp() string {
	return d.GeneratedAt.UTC().Format(time.RFC3339)
}

// DarkMode reports whether the dark colour-scheme block is emitted.
func (d Document) DarkMode() bool {
	return d.Config.HasFeature(theme.FeatureDarkMode)
}

// DarkOverrides are the variables redefined under prefers-color-scheme: dark.
func (d Document) DarkOverrides() theme.Group {
	neutral := d.Tokens.Color.Neutral
	return theme.Group{
		{Key: "--color-background-primary", Value: neutral.At(palette.Step900)},
		{Key: "--color-text-primary", Value: neutral.At(palette.Step50)},
		{Key: "--color-border-default", Value: neutral.At(palette.Step700)},
	}
}

// Shadows is the fixed elevation table.
func (d Document) Shadows() theme.Group {
	return theme.Shadows
}

// Transitions is the fixed motion table.
func (d Document) Transitions() theme.Group {
	return theme.Transitions
}

// Industry returns the configured industry or "general".
func (d Document) Industry() string {
	if d.Config.Industry == "" {
		return "general"
	}
	return d.Config.Industry
}

// Render produces the file contents for format.
func Render(format Format, doc Document) (string, error) {
	switch format {
	case FormatTokens:
		return renderTokens(doc)
	case FormatTheme, FormatCSS, FormatTailwind, FormatTypes, FormatDocs:
		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, string(format)+".tmpl", doc); err != nil {
			return "", fmt.Errorf("render %s: %w", format, err)
		}
		return buf.String(), nil
	default:
		return "", fmt.Errorf("render: unsupported format %q", format)
	}
}

type tokensFile struct {
	Schema      string `json:"$schema"`
	Version     string `json:"$version"`
	Description string `json:"$description"`
	theme.TokenSet
}

func renderTokens(doc Document) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	err := enc.Encode(tokensFile{
		Schema:      TokensSchema,
		Version:     TokensVersion,
		Description: fmt.Sprintf("Design tokens for the %s theme (%s)", doc.Config.Brand, doc.Config.Name),
		TokenSet:    doc.Tokens,
	})
	if err != nil {
		return "", fmt.Errorf("render tokens: %w", err)
	}
	return buf.String(), nil
}
