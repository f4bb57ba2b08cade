package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/xala-technologies/xala-cli/internal/domain/theme"
	"github.com/xala-technologies/xala-cli/internal/palette"
)

// ColourSet pairs a fill colour with a readable foreground.
type ColourSet struct {
	Base   lipgloss.Color
	OnBase lipgloss.Color
}

// Palette holds one ColourSet per theme scale.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Neutral   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Error     ColourSet
	Info      ColourSet
}

// Slot selects a ColourSet from a Palette.
type Slot int

const (
	SlotPrimary Slot = iota
	SlotSecondary
	SlotNeutral
	SlotSuccess
	SlotWarning
	SlotError
	SlotInfo
)

// Set returns the ColourSet for slot. Unknown slots get Neutral.
func (p Palette) Set(slot Slot) ColourSet {
	switch slot {
	case SlotPrimary:
		return p.Primary
	case SlotSecondary:
		return p.Secondary
	case SlotSuccess:
		return p.Success
	case SlotWarning:
		return p.Warning
	case SlotError:
		return p.Error
	case SlotInfo:
		return p.Info
	default:
		return p.Neutral
	}
}

// Theme is the terminal styling derived from a token set.
type Theme struct {
	Palette Palette
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
}

// FromTokens maps the colour tokens of a theme onto terminal colours.
func FromTokens(colors theme.ColorTokens) Theme {
	text, _ := colors.Text.Get("primary")
	muted, _ := colors.Text.Get("muted")
	border, _ := colors.Border.Get("strong")
	return Theme{
		Palette: Palette{
			Primary:   colourSet(colors.Primary),
			Secondary: colourSet(colors.Secondary),
			Neutral:   colourSet(colors.Neutral),
			Success:   colourSet(colors.Success),
			Warning:   colourSet(colors.Warning),
			Error:     colourSet(colors.Error),
			Info:      colourSet(colors.Info),
		},
		Text:   lipgloss.Color(text),
		Muted:  lipgloss.Color(muted),
		Border: lipgloss.Color(border),
	}
}

// DefaultTheme is derived from the default preset.
func DefaultTheme() Theme {
	cfg, _ := theme.Preset(theme.DefaultPresetName)
	return FromTokens(theme.Build(cfg).Color)
}

func colourSet(s palette.Scale) ColourSet {
	base := s.At(palette.Step500)
	return ColourSet{Base: lipgloss.Color(base), OnBase: onColour(base)}
}

func onColour(fill string) lipgloss.Color {
	if palette.IsLight(fill) {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}
