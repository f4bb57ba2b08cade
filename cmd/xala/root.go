package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xala-technologies/xala-cli/internal/infrastructure/logging"
	"github.com/xala-technologies/xala-cli/internal/logger"
	"github.com/xala-technologies/xala-cli/internal/ports"
)

type rootFlags struct {
	verbose    bool
	logLevel   string
	logFormat  string
	configPath string
}

func newRootCmd(app *AppContext) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "xala",
		Short:         "Xala UI System theme and project tooling",
		Long:          "Generate design-token artefacts from theme definitions and manage xala.config.json.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.configure(flags, cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "auto", "Log format: text, json or auto (text on a terminal)")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Project config file (default xala.config.json)")

	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func buildLogger(flags *rootFlags, w io.Writer) (ports.Logger, error) {
	level := strings.ToLower(flags.logLevel)
	if flags.verbose {
		level = "debug"
	}

	format := strings.ToLower(flags.logFormat)
	if format == "" || format == "auto" {
		format = "json"
		if isTerminal(w) {
			format = "text"
		}
	}

	switch format {
	case "text":
		log, err := logging.New(logging.Options{
			Writer:    w,
			Level:     level,
			Layer:     "cli",
			Component: "xala",
		})
		if err != nil {
			return nil, err
		}
		return log, nil
	case "json":
		log, err := logger.New(logger.Options{
			Writer:    w,
			Level:     level,
			Component: "xala",
		})
		if err != nil {
			return nil, err
		}
		return log, nil
	default:
		return nil, fmt.Errorf("unknown log format %q", flags.logFormat)
	}
}
