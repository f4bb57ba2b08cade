package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xala-technologies/xala-cli/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Xala CLI %s\ncommit: %s\nbuilt: %s\nui system: %s\n", version, commit, date, config.CurrentUIVersion)
			return nil
		},
	}

	return cmd
}
