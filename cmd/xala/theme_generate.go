package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	themeapp "github.com/xala-technologies/xala-cli/internal/application/theme"
	"github.com/xala-technologies/xala-cli/internal/domain/theme"
	"github.com/xala-technologies/xala-cli/internal/ports"
	"github.com/xala-technologies/xala-cli/internal/render"
	"github.com/xala-technologies/xala-cli/internal/tui"
	"github.com/xala-technologies/xala-cli/internal/ui/components"
)

type generateOptions struct {
	theme    themeFlags
	formats  []string
	outDir   string
	noRecord bool
}

func newThemeGenerateCmd(app *AppContext) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [theme-file...]",
		Short: "Write theme, token, CSS, Tailwind, type and documentation files",
		Long: "Generate theme artefacts from YAML, JSON or TOML theme files, a preset, or flags.\n" +
			"Several files are generated concurrently into the same output directory.",
		Example: "  xala theme generate themes/acme.yaml\n" +
			"  xala theme generate --preset healthcare --name clinic --primary '#0e7490'\n" +
			"  xala theme generate --name acme --format css --format tokens --out build/themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme.generate")
			err := runGenerate(ctx, logger, app, cmd, args, opts)
			if err != nil {
				logger.Error(ctx, "generate command failed", "error", err)
			}
			return err
		},
	}

	opts.theme.register(cmd.Flags())
	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", nil, "Output format, repeatable: theme, tokens, css, tailwind, types, docs (default build.formats)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Output directory (default build.themeDir)")
	cmd.Flags().BoolVar(&opts.noRecord, "no-record", false, "Do not store the theme name in ui.theme")

	return cmd
}

func runGenerate(ctx context.Context, logger ports.Logger, app *AppContext, cmd *cobra.Command, args []string, opts *generateOptions) error {
	project, err := app.Store.Config(ctx)
	if err != nil {
		return newCommandError("generate", "loading project config", err, "Fix or delete "+app.relative(app.Store.Path())+" and try again.")
	}

	themes, err := collectThemes(ctx, app, cmd, args, &opts.theme)
	if err != nil {
		return newCommandError("generate", "resolving theme definitions", err, "Pass theme files, --preset, or at least --name.")
	}

	formatNames := opts.formats
	if len(formatNames) == 0 {
		formatNames = project.Build.Formats
	}
	formats, err := parseFormats(formatNames)
	if err != nil {
		return newCommandError("generate", "parsing --format", err, "Use one of: theme, tokens, css, tailwind, types, docs.")
	}

	outDir := opts.outDir
	if outDir == "" {
		outDir = project.Build.ThemeDir
	}
	outDir = app.path(outDir)

	logger.Info(ctx, "generating themes", "count", len(themes), "out_dir", outDir, "formats", len(formats))
	var results []themeapp.Result
	generate := func(ctx context.Context) error {
		var err error
		results, err = generateAll(ctx, app.Generator, themes, outDir, formats)
		return err
	}
	if app.IsInteractive() {
		err = tui.RunWithSpinner(ctx, cmd.ErrOrStderr(), "Generating themes...", false, generate)
	} else {
		err = generate(ctx)
	}
	if errors.Is(err, tui.ErrAborted) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
		return nil
	}
	if err != nil {
		return newCommandError("generate", "writing theme files", err, "Check that the output directory is writable.")
	}

	out := cmd.OutOrStdout()
	for _, result := range results {
		items := make([]string, 0, len(result.Files))
		for _, file := range result.Files {
			items = append(items, app.relative(file.Path))
		}
		alert := components.NewAlert(fmt.Sprintf("Generated theme %q", result.Theme), components.SlotSuccess).WithItems(items...)
		fmt.Fprintln(out, alert.View())
	}

	if opts.noRecord {
		return nil
	}
	last := results[len(results)-1].Theme
	if err := app.Store.Update(ctx, map[string]any{"ui": map[string]any{"theme": last}}); err != nil {
		return newCommandError("generate", "recording ui.theme", err, "Check that "+app.relative(app.Store.Path())+" is writable, or pass --no-record.")
	}
	logger.Success(ctx, "themes generated", "count", len(results), "ui_theme", last)
	return nil
}

// collectThemes loads every file argument, or builds a single theme from
// flags. Theme names must be unique because outputs share a directory.
func collectThemes(ctx context.Context, app *AppContext, cmd *cobra.Command, args []string, flags *themeFlags) ([]theme.Config, error) {
	changed := cmd.Flags().Changed

	var themes []theme.Config
	if len(args) == 0 {
		base, err := flags.base(ctx, app, changed)
		if err != nil {
			return nil, err
		}
		themes = append(themes, flags.apply(base, changed))
	}
	for _, arg := range args {
		cfg, err := app.Themes.Load(ctx, app.path(arg))
		if err != nil {
			return nil, err
		}
		themes = append(themes, flags.apply(cfg, changed))
	}

	seen := make(map[string]struct{}, len(themes))
	for _, cfg := range themes {
		if err := theme.Validate(cfg); err != nil {
			return nil, err
		}
		if _, dup := seen[cfg.Name]; dup {
			return nil, fmt.Errorf("theme %q is given more than once", cfg.Name)
		}
		seen[cfg.Name] = struct{}{}
	}
	return themes, nil
}

func parseFormats(names []string) ([]render.Format, error) {
	if len(names) == 0 {
		return render.Formats(), nil
	}
	formats := make([]render.Format, 0, len(names))
	for _, name := range names {
		format, err := render.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, format)
	}
	return formats, nil
}

// generateAll runs one generation per theme concurrently. Results keep the
// order of themes.
func generateAll(ctx context.Context, gen *themeapp.Generator, themes []theme.Config, outDir string, formats []render.Format) ([]themeapp.Result, error) {
	results := make([]themeapp.Result, len(themes))
	g, gctx := errgroup.WithContext(ctx)
	for i, cfg := range themes {
		g.Go(func() error {
			result, err := gen.Generate(gctx, cfg, outDir, formats...)
			results[i] = result
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
