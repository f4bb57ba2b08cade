package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/xala-technologies/xala-cli/internal/domain/theme"
	"github.com/xala-technologies/xala-cli/internal/infrastructure/themefile"
)

// themeSourceDir holds theme definitions written by theme init.
const themeSourceDir = "themes"

func newThemeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Generate, compare, preview and scaffold themes",
	}

	cmd.AddCommand(newThemeGenerateCmd(app))
	cmd.AddCommand(newThemeDiffCmd(app))
	cmd.AddCommand(newThemeListCmd(app))
	cmd.AddCommand(newThemePreviewCmd(app))
	cmd.AddCommand(newThemeInitCmd(app))

	return cmd
}

// themeFlags describe a theme on the command line. Set flags override the
// preset or file they are combined with.
type themeFlags struct {
	preset        string
	name          string
	brand         string
	industry      string
	primary       string
	secondary     string
	accessibility string
	features      []string
	locales       []string
}

func (f *themeFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.preset, "preset", "", "Start from a built-in theme ("+strings.Join(theme.PresetNames(), ", ")+")")
	flags.StringVar(&f.name, "name", "", "Theme name used in file names")
	flags.StringVar(&f.brand, "brand", "", "Brand display name")
	flags.StringVar(&f.industry, "industry", "", "Industry (healthcare, finance, education, ...)")
	flags.StringVar(&f.primary, "primary", "", "Primary brand colour")
	flags.StringVar(&f.secondary, "secondary", "", "Secondary brand colour")
	flags.StringVar(&f.accessibility, "accessibility", "", "WCAG target: AA or AAA")
	flags.StringSliceVar(&f.features, "feature", nil, "Feature flag, repeatable (e.g. darkMode)")
	flags.StringSliceVar(&f.locales, "locale", nil, "Locale, repeatable (e.g. nb-NO)")
}

// apply overlays the flags that were set on cfg.
func (f *themeFlags) apply(cfg theme.Config, changed func(string) bool) theme.Config {
	if changed("name") {
		cfg.Name = f.name
	}
	if changed("brand") {
		cfg.Brand = f.brand
	}
	if changed("industry") {
		cfg.Industry = f.industry
	}
	if changed("primary") || changed("secondary") {
		colors := make(map[string]string, len(cfg.Colors)+2)
		for k, v := range cfg.Colors {
			colors[k] = v
		}
		if changed("primary") {
			colors["primary"] = f.primary
		}
		if changed("secondary") {
			colors["secondary"] = f.secondary
		}
		cfg.Colors = colors
	}
	if changed("accessibility") {
		cfg.Accessibility = theme.Accessibility(strings.ToUpper(f.accessibility))
	}
	if changed("feature") {
		cfg.Features = append([]string(nil), f.features...)
	}
	if changed("locale") {
		cfg.Locales = append([]string(nil), f.locales...)
	}
	return cfg
}

// base picks the starting config: the named preset, a bare config when
// --name is given, or the project's ui.theme. ui.theme names either a preset
// or a definition under themes/.
func (f *themeFlags) base(ctx context.Context, app *AppContext, changed func(string) bool) (theme.Config, error) {
	if f.preset != "" {
		return lookupPreset(f.preset)
	}
	if changed("name") {
		return theme.Config{}, nil
	}

	project, err := app.Store.Read(ctx)
	if err != nil {
		return theme.Config{}, err
	}
	name := project.UI.Theme
	if cfg, ok := theme.Preset(name); ok {
		return cfg, nil
	}
	for _, ext := range themefile.Extensions() {
		path := app.path(filepath.Join(themeSourceDir, name+ext))
		if exists, _ := app.FS.Exists(path); exists {
			return app.Themes.Load(ctx, path)
		}
	}
	return lookupPreset(name)
}

func lookupPreset(name string) (theme.Config, error) {
	cfg, ok := theme.Preset(name)
	if !ok {
		return theme.Config{}, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(theme.PresetNames(), ", "))
	}
	return cfg, nil
}
