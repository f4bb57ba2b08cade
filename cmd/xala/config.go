package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/xala-technologies/xala-cli/internal/config"
	"github.com/xala-technologies/xala-cli/internal/ui/components"
)

var errInvalidConfig = errors.New("project config is invalid")

func newConfigCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit xala.config.json",
	}

	cmd.AddCommand(newConfigInitCmd(app))
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigGetCmd(app))
	cmd.AddCommand(newConfigSetCmd(app))
	cmd.AddCommand(newConfigValidateCmd(app))

	return cmd
}

func newConfigInitCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the project config, or migrate an existing one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := app.CommandContext(cmd, "command.config.init")

			cfg, err := app.Store.Load(ctx)
			if err != nil {
				return newCommandError("init", "loading "+app.relative(app.Store.Path()), err, "Fix the JSON syntax or delete the file to start over.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Project %q ready at %s (ui %s, theme %s, platform %s)\n",
				cfg.Name, app.relative(app.Store.Path()), cfg.UI.Version, cfg.UI.Theme, cfg.UI.Platform)
			return nil
		},
	}
}

func newConfigShowCmd(app *AppContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the project config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := app.CommandContext(cmd, "command.config.show")

			cfg, err := app.Store.Read(ctx)
			if err != nil {
				return newCommandError("show", "loading project config", err, "Fix the JSON syntax or delete the file to start over.")
			}

			out := cmd.OutOrStdout()
			switch strings.ToLower(output) {
			case "json":
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(cfg)
			case "yaml":
				encoder := yaml.NewEncoder(out)
				encoder.SetIndent(2)
				if err := encoder.Encode(cfg); err != nil {
					return err
				}
				return encoder.Close()
			default:
				return newCommandError("show", "choosing the output format", fmt.Errorf("unknown format %q", output), "Use --output json or --output yaml.")
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format: json or yaml")
	return cmd
}

func newConfigGetCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Short:   "Print one value by dotted key",
		Example: "  xala config get ui.theme\n  xala config get integrations.xaheen",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := app.CommandContext(cmd, "command.config.get")

			value, err := app.Store.Get(ctx, args[0])
			if err != nil {
				return newCommandError("get", fmt.Sprintf("reading %q", args[0]), err, "Run 'xala config show' to see the available keys.")
			}

			out := cmd.OutOrStdout()
			switch v := value.(type) {
			case map[string]any, []any:
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(v)
			default:
				_, err := fmt.Fprintln(out, v)
				return err
			}
		},
	}
}

func newConfigSetCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one value by dotted key",
		Long: "Set a value by dotted key. The value is read as YAML, so true, 3000 and [css, tokens]\n" +
			"become a boolean, a number and a list. The config is not validated; run 'xala config validate'.",
		Example: "  xala config set ui.platform nextjs\n  xala config set development.port 4000\n  xala config set integrations.xaheen.enabled true",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.config.set")

			if err := app.Store.Set(ctx, args[0], args[1]); err != nil {
				return newCommandError("set", fmt.Sprintf("updating %q", args[0]), err, "Check the key and the value type with 'xala config show'.")
			}
			logger.Success(ctx, "config updated", "key", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
			return nil
		},
	}
}

func newConfigValidateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Report every problem in the project config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := app.CommandContext(cmd, "command.config.validate")

			result, err := app.Store.Validate(ctx)
			if err != nil {
				return newCommandError("validate", "loading project config", err, "Fix the JSON syntax or delete the file to start over.")
			}

			out := cmd.OutOrStdout()
			if result.Valid {
				fmt.Fprintln(out, components.NewAlert(app.relative(app.Store.Path())+" is valid", components.SlotSuccess).View())
				return nil
			}

			title := fmt.Sprintf("%d problem(s) in %s", len(result.Errors), app.relative(app.Store.Path()))
			fmt.Fprintln(out, components.NewAlert(title, components.SlotError).WithItems(result.Messages()...).View())
			return newCommandError("validate", app.relative(app.Store.Path()), errInvalidConfig,
				"Supported platforms: "+strings.Join(config.SupportedPlatforms, ", ")+". Fix the fields above with 'xala config set'.")
		},
	}
}
