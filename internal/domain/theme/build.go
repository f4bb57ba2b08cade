package theme

import "github.com/xala-technologies/xala-cli/internal/palette"

// Base colours for scales the config does not drive.
const (
	DefaultPrimary   = "#2563eb"
	DefaultSecondary = "#7c3aed"
	DefaultNeutral   = "#64748b"
	DefaultSuccess   = "#16a34a"
	DefaultWarning   = "#d97706"
	DefaultError     = "#dc2626"
	DefaultInfo      = "#0284c7"
)

// semanticRef points a semantic token at one step of a named scale.
type semanticRef struct {
	key   string
	scale string
	step  palette.Step
}

// The semantic mapping is a fixed contract shared by every generated theme.
var (
	textRefs = []semanticRef{
		{"primary", ScaleNeutral, palette.Step900},
		{"secondary", ScaleNeutral, palette.Step600},
		{"muted", ScaleNeutral, palette.Step500},
		{"disabled", ScaleNeutral, palette.Step400},
		{"inverse", ScaleNeutral, palette.Step50},
		{"link", ScalePrimary, palette.Step600},
	}
	backgroundRefs = []semanticRef{
		{"primary", ScaleNeutral, palette.Step25},
		{"secondary", ScaleNeutral, palette.Step50},
		{"tertiary", ScaleNeutral, palette.Step100},
		{"inverse", ScaleNeutral, palette.Step900},
		{"brand", ScalePrimary, palette.Step500},
	}
	surfaceRefs = []semanticRef{
		{"default", ScaleNeutral, palette.Step25},
		{"raised", ScaleNeutral, palette.Step50},
		{"overlay", ScaleNeutral, palette.Step100},
		{"sunken", ScaleNeutral, palette.Step200},
	}
	borderRefs = []semanticRef{
		{"default", ScaleNeutral, palette.Step200},
		{"strong", ScaleNeutral, palette.Step300},
		{"subtle", ScaleNeutral, palette.Step100},
		{"focus", ScalePrimary, palette.Step500},
		{"error", ScaleError, palette.Step500},
	}
)

// spacing is an 8pt grid.
var spacing = Group{
	{"0", "0"},
	{"1", "8px"},
	{"2", "16px"},
	{"3", "24px"},
	{"4", "32px"},
	{"5", "40px"},
	{"6", "48px"},
	{"7", "56px"},
	{"8", "64px"},
	{"9", "72px"},
	{"10", "80px"},
}

var radius = Group{
	{"none", "0"},
	{"sm", "2px"},
	{"md", "4px"},
	{"lg", "8px"},
	{"xl", "12px"},
	{"full", "9999px"},
}

// Shadows and Transitions are emitted verbatim into the theme module.
var (
	Shadows = Group{
		{"sm", "0 1px 2px 0 rgb(0 0 0 / 0.05)"},
		{"md", "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)"},
		{"lg", "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)"},
		{"xl", "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)"},
	}
	Transitions = Group{
		{"fast", "150ms cubic-bezier(0.4, 0, 0.2, 1)"},
		{"normal", "250ms cubic-bezier(0.4, 0, 0.2, 1)"},
		{"slow", "350ms cubic-bezier(0.4, 0, 0.2, 1)"},
	}
)

// Build derives the token set for cfg. It is pure: the same config always
// yields an equal TokenSet.
func Build(cfg Config) TokenSet {
	cfg = cfg.Normalize()

	colors := ColorTokens{
		Primary:   palette.Derive(cfg.Color(ScalePrimary, DefaultPrimary)),
		Secondary: palette.Derive(cfg.Color(ScaleSecondary, DefaultSecondary)),
		Neutral:   palette.Derive(DefaultNeutral),
		Success:   palette.Derive(DefaultSuccess),
		Warning:   palette.Derive(DefaultWarning),
		Error:     palette.Derive(DefaultError),
		Info:      palette.Derive(DefaultInfo),
	}
	colors.Text = resolve(colors, textRefs)
	colors.Background = resolve(colors, backgroundRefs)
	colors.Surface = resolve(colors, surfaceRefs)
	colors.Border = resolve(colors, borderRefs)

	return TokenSet{
		Color:  colors,
		Space:  clone(spacing),
		Font:   typography(cfg.Industry, cfg.Accessibility),
		Radius: clone(radius),
	}
}

func resolve(colors ColorTokens, refs []semanticRef) Group {
	out := make(Group, len(refs))
	for i, ref := range refs {
		out[i] = Token{Key: ref.key, Value: colors.Scale(ref.scale).At(ref.step)}
	}
	return out
}

func clone(g Group) Group {
	out := make(Group, len(g))
	copy(out, g)
	return out
}
