package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	themeapp "github.com/xala-technologies/xala-cli/internal/application/theme"
	"github.com/xala-technologies/xala-cli/internal/ports"
	"github.com/xala-technologies/xala-cli/internal/ui/components"
)

var errThemeDrift = errors.New("generated files are out of date")

type diffOptions struct {
	theme   themeFlags
	formats []string
	outDir  string
	quiet   bool
}

func newThemeDiffCmd(app *AppContext) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff [theme-file...]",
		Short: "Show how generated files differ from their theme definitions",
		Long: "Render themes in memory and compare them with the files in the output directory.\n" +
			"Nothing is written. The command fails when any file is missing or out of date.",
		Example: "  xala theme diff themes/acme.yaml\n  xala theme diff --quiet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme.diff")
			return runDiff(ctx, logger, app, cmd, args, opts)
		},
	}

	opts.theme.register(cmd.Flags())
	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", nil, "Output format to compare, repeatable (default build.formats)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Directory holding generated files (default build.themeDir)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "List drifted files without printing diffs")

	return cmd
}

func runDiff(ctx context.Context, logger ports.Logger, app *AppContext, cmd *cobra.Command, args []string, opts *diffOptions) error {
	project, err := app.Store.Read(ctx)
	if err != nil {
		return newCommandError("diff", "loading project config", err, "Fix or delete "+app.relative(app.Store.Path())+" and try again.")
	}

	themes, err := collectThemes(ctx, app, cmd, args, &opts.theme)
	if err != nil {
		return newCommandError("diff", "resolving theme definitions", err, "Pass theme files, --preset, or at least --name.")
	}

	formatNames := opts.formats
	if len(formatNames) == 0 {
		formatNames = project.Build.Formats
	}
	formats, err := parseFormats(formatNames)
	if err != nil {
		return newCommandError("diff", "parsing --format", err, "Use one of: theme, tokens, css, tailwind, types, docs.")
	}

	outDir := opts.outDir
	if outDir == "" {
		outDir = project.Build.ThemeDir
	}
	outDir = app.path(outDir)

	out := cmd.OutOrStdout()
	var drifted []themeapp.Drift
	for _, cfg := range themes {
		drifts, err := app.Generator.Check(ctx, cfg, outDir, formats...)
		if err != nil {
			return newCommandError("diff", fmt.Sprintf("checking theme %q", cfg.Name), err, "Check that the output directory is readable.")
		}
		drifted = append(drifted, drifts...)
	}

	if len(drifted) == 0 {
		fmt.Fprintln(out, components.NewAlert("Generated files are up to date", components.SlotSuccess).View())
		return nil
	}

	items := make([]string, 0, len(drifted))
	for _, d := range drifted {
		state := fmt.Sprintf("+%d -%d", d.Added, d.Removed)
		if d.Missing {
			state = "missing"
		}
		items = append(items, fmt.Sprintf("%s (%s)", app.relative(d.Path), state))
	}
	fmt.Fprintln(out, components.NewAlert(fmt.Sprintf("%d file(s) out of date", len(drifted)), components.SlotWarning).WithItems(items...).View())

	if !opts.quiet {
		for _, d := range drifted {
			fmt.Fprintln(out)
			fmt.Fprint(out, d.Diff)
		}
	}

	logger.Warn(ctx, "theme drift detected", "files", len(drifted))
	return newCommandError("diff", app.relative(outDir), errThemeDrift, "Run 'xala theme generate' to refresh the files.")
}
