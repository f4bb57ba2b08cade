package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/xala-technologies/xala-cli/internal/domain/theme"
	"github.com/xala-technologies/xala-cli/internal/tui"
)

type initThemeOptions struct {
	theme      themeFlags
	force      bool
	yes        bool
	accessible bool
}

func newThemeInitCmd(app *AppContext) *cobra.Command {
	opts := &initThemeOptions{}

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a new theme definition file",
		Long: "Create a theme definition (YAML, JSON or TOML by extension, default themes/<name>.yaml).\n" +
			"On a terminal a form asks for the fields; flags pre-fill it. Use --yes to skip the form.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme.init")
			changed := cmd.Flags().Changed

			cfg := theme.Config{}
			if opts.theme.preset != "" {
				preset, err := lookupPreset(opts.theme.preset)
				if err != nil {
					return newCommandError("init", "resolving --preset", err, "Run 'xala theme list' to see the presets.")
				}
				cfg = preset
			}
			cfg = opts.theme.apply(cfg, changed)

			if !opts.yes && app.IsInteractive() {
				answered, err := tui.RunThemeInit(cfg, opts.accessible)
				if errors.Is(err, tui.ErrAborted) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
					return nil
				}
				if err != nil {
					return newCommandError("init", "running the theme form", err, "Pass the fields as flags with --yes instead.")
				}
				cfg = answered
			}

			cfg = cfg.Normalize()
			if err := theme.Validate(cfg); err != nil {
				return newCommandError("init", "validating the theme", err, "Pass --name with lower-case letters, digits and dashes.")
			}

			path := filepath.Join(themeSourceDir, cfg.Name+".yaml")
			if len(args) == 1 {
				path = args[0]
			}
			path = app.path(path)

			exists, err := app.FS.Exists(path)
			if err != nil {
				return newCommandError("init", "checking "+app.relative(path), err, "Check directory permissions.")
			}
			if exists && !opts.force {
				return newCommandError("init", "writing "+app.relative(path), fmt.Errorf("file already exists"), "Pass --force to overwrite it or choose another path.")
			}

			if err := app.Themes.Save(ctx, path, cfg); err != nil {
				return newCommandError("init", "writing "+app.relative(path), err, "Use a .yaml, .yml, .json or .toml path in a writable directory.")
			}
			logger.Success(ctx, "theme definition created", "theme", cfg.Name, "path", path)

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\nNext: xala theme generate %s\n", app.relative(path), app.relative(path))
			return nil
		},
	}

	opts.theme.register(cmd.Flags())
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing file")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip the interactive form")
	cmd.Flags().BoolVar(&opts.accessible, "accessible", false, "Use the screen-reader friendly form")

	return cmd
}
