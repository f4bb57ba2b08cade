// Package tui holds the interactive forms of the CLI.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/xala-technologies/xala-cli/internal/domain/theme"
	"github.com/xala-technologies/xala-cli/internal/infrastructure/workspace"
	"github.com/xala-technologies/xala-cli/internal/palette"
)

// ErrAborted is returned when the user cancels a form.
var ErrAborted = errors.New("aborted")

const otherIndustry = "other"

// RunThemeInit asks for the fields of a new theme, starting from prefill.
// Fields already set in prefill are offered as defaults.
func RunThemeInit(prefill theme.Config, accessible bool) (theme.Config, error) {
	cfg := prefill
	if cfg.Accessibility == "" {
		cfg.Accessibility = theme.AccessibilityAA
	}
	primary := cfg.Color("primary", theme.DefaultPrimary)
	secondary := cfg.Color("secondary", theme.DefaultSecondary)
	industry := cfg.Industry
	if industry == "" {
		industry = otherIndustry
	}
	accessibility := string(cfg.Accessibility)
	darkMode := cfg.HasFeature(theme.FeatureDarkMode)
	locales := strings.Join(cfg.Locales, ", ")

	identity := huh.NewGroup(
		huh.NewInput().
			Title("Theme name").
			Description("Lower-case letters, digits and dashes; used in file names").
			Placeholder("acme").
			Value(&cfg.Name).
			Validate(ValidateName),
		huh.NewInput().
			Title("Brand").
			Placeholder("Acme").
			Value(&cfg.Brand),
		huh.NewSelect[string]().
			Title("Industry").
			Description("Selects the typeface").
			Options(IndustryOptions(industry)...).
			Value(&industry),
	)

	colours := huh.NewGroup(
		huh.NewInput().
			Title("Primary colour").
			Placeholder(theme.DefaultPrimary).
			Value(&primary).
			Validate(ValidateColour),
		huh.NewInput().
			Title("Secondary colour").
			Placeholder(theme.DefaultSecondary).
			Value(&secondary).
			Validate(ValidateColour),
	)

	options := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Accessibility target").
			Options(
				huh.NewOption("WCAG 2.2 AA", string(theme.AccessibilityAA)),
				huh.NewOption("WCAG 2.2 AAA (larger base text)", string(theme.AccessibilityAAA)),
			).
			Value(&accessibility),
		huh.NewConfirm().
			Title("Emit a dark-mode block?").
			Value(&darkMode),
		huh.NewInput().
			Title("Locales").
			Description("Comma separated").
			Placeholder("nb-NO, en-US").
			Value(&locales),
	)

	if err := runForm(accessible, identity, colours, options); err != nil {
		return theme.Config{}, err
	}

	return Assemble(cfg, industry, primary, secondary, accessibility, darkMode, locales), nil
}

// Assemble folds the raw form answers into cfg.
func Assemble(cfg theme.Config, industry, primary, secondary, accessibility string, darkMode bool, locales string) theme.Config {
	cfg.Name = workspace.Slug(cfg.Name)
	if industry == otherIndustry {
		industry = ""
	}
	cfg.Industry = industry
	cfg.Colors = map[string]string{
		"primary":   strings.TrimSpace(primary),
		"secondary": strings.TrimSpace(secondary),
	}
	cfg.Accessibility = theme.Accessibility(accessibility)

	features := make([]string, 0, len(cfg.Features)+1)
	for _, f := range cfg.Features {
		if f != theme.FeatureDarkMode {
			features = append(features, f)
		}
	}
	if darkMode {
		features = append(features, theme.FeatureDarkMode)
	}
	cfg.Features = features

	cfg.Locales = nil
	for _, l := range strings.Split(locales, ",") {
		if l = strings.TrimSpace(l); l != "" {
			cfg.Locales = append(cfg.Locales, l)
		}
	}
	return cfg.Normalize()
}

// IndustryOptions lists the industries with dedicated typography plus a
// catch-all. A selected industry outside that list gets its own option.
func IndustryOptions(selected string) []huh.Option[string] {
	industries := []string{theme.IndustryHealthcare, theme.IndustryFinance, theme.IndustryEducation}
	options := make([]huh.Option[string], 0, len(industries)+2)
	known := selected == "" || selected == otherIndustry
	for _, industry := range industries {
		label := fmt.Sprintf("%s (%s)", industry, theme.SansFamily(industry))
		options = append(options, huh.NewOption(label, industry))
		known = known || industry == selected
	}
	if !known {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", selected, theme.SansFamily(selected)), selected))
	}
	return append(options, huh.NewOption(fmt.Sprintf("other (%s)", theme.SansFamily("")), otherIndustry))
}

// ValidateName rejects names that do not slug cleanly.
func ValidateName(v string) error {
	if workspace.Slug(v) == "" {
		return errors.New("name is required")
	}
	return nil
}

// ValidateColour accepts hex and CSS colour names.
func ValidateColour(v string) error {
	if _, ok := palette.Parse(v); !ok {
		return fmt.Errorf("%q is not a hex colour or CSS colour name", v)
	}
	return nil
}

func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
