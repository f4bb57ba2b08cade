package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xala-technologies/xala-cli/internal/domain/theme"
	"github.com/xala-technologies/xala-cli/internal/ui/components"
)

type previewOptions struct {
	theme   themeFlags
	width   int
	showHex bool
}

func newThemePreviewCmd(app *AppContext) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview [theme-file]",
		Short: "Show colour scales, typography and spacing in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme.preview")

			cfgs, err := collectThemes(ctx, app, cmd, args, &opts.theme)
			if err != nil {
				return newCommandError("preview", "resolving theme definition", err, "Pass a theme file, --preset, or --name.")
			}
			cfg := cfgs[0].Normalize()
			logger.Debug(ctx, "previewing theme", "theme", cfg.Name)

			fmt.Fprintln(cmd.OutOrStdout(), renderPreview(cfg, opts.width, opts.showHex))
			return nil
		},
	}

	opts.theme.register(cmd.Flags())
	cmd.Flags().IntVar(&opts.width, "width", 0, "Maximum table width (0 = unlimited)")
	cmd.Flags().BoolVar(&opts.showHex, "hex", true, "Print hex values under each swatch")

	return cmd
}

func renderPreview(cfg theme.Config, width int, showHex bool) string {
	tokens := theme.Build(cfg)
	ctx := components.DefaultContext().
		WithTheme(components.FromTokens(tokens.Color)).
		WithWidth(width)

	industry := cfg.Industry
	if industry == "" {
		industry = "general"
	}

	swatches := components.VStack()
	for _, named := range tokens.Color.Scales() {
		swatches.Add(components.NewScaleSwatch(named.Name, named.Scale).WithHex(showHex))
	}

	tables := components.HStack(
		components.NewTokenTable("font.size", tokens.Font.Size),
		components.NewTokenTable("space", tokens.Space),
		components.NewTokenTable("radius", tokens.Radius),
	).WithGap(2)

	semantic := components.HStack().WithGap(2)
	for _, group := range tokens.Color.Semantic() {
		semantic.Add(components.NewTokenTable(group.Name, group.Group).WithChips(true))
	}

	subtitle := fmt.Sprintf("%s · %s · %s · WCAG %s", cfg.Name, industry, theme.SansFamily(cfg.Industry), cfg.Accessibility)
	return components.VStack(
		components.NewHeader(cfg.Brand).WithSubtitle(subtitle),
		swatches,
		semantic,
		tables,
	).WithGap(1).ViewWithContext(ctx)
}
