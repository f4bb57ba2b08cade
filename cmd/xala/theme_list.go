package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xala-technologies/xala-cli/internal/domain/theme"
)

type listOptions struct {
	jsonOutput bool
	dir        string
}

type presetSummary struct {
	Name          string              `json:"name"`
	Brand         string              `json:"brand"`
	Industry      string              `json:"industry"`
	Font          string              `json:"font"`
	Primary       string              `json:"primary"`
	Accessibility theme.Accessibility `json:"accessibility"`
	Features      []string            `json:"features"`
}

type themeListing struct {
	Presets   []presetSummary `json:"presets"`
	Directory string          `json:"directory"`
	Generated []string        `json:"generated"`
}

func newThemeListCmd(app *AppContext) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in presets and generated themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme.list")

			dir := opts.dir
			if dir == "" {
				project, err := app.Store.Read(ctx)
				if err != nil {
					return newCommandError("list", "loading project config", err, "Fix or delete "+app.relative(app.Store.Path())+" and try again.")
				}
				dir = project.Build.ThemeDir
			}

			generated, err := app.Generator.Discover(app.path(dir))
			if err != nil {
				return newCommandError("list", "scanning "+dir, err, "Check that the directory is readable.")
			}
			logger.Debug(ctx, "themes discovered", "dir", dir, "count", len(generated))

			listing := themeListing{Presets: presetSummaries(), Directory: dir, Generated: generated}
			if opts.jsonOutput {
				return renderListJSON(cmd, listing)
			}
			return renderListTable(cmd, listing)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "Directory to scan for generated themes (default build.themeDir)")

	return cmd
}

func presetSummaries() []presetSummary {
	names := theme.PresetNames()
	out := make([]presetSummary, 0, len(names))
	for _, name := range names {
		cfg, _ := theme.Preset(name)
		out = append(out, presetSummary{
			Name:          cfg.Name,
			Brand:         cfg.Brand,
			Industry:      cfg.Industry,
			Font:          theme.SansFamily(cfg.Industry),
			Primary:       cfg.Color("primary", theme.DefaultPrimary),
			Accessibility: cfg.Accessibility,
			Features:      cfg.Features,
		})
	}
	return out
}

func renderListJSON(cmd *cobra.Command, listing themeListing) error {
	if listing.Generated == nil {
		listing.Generated = []string{}
	}
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(listing)
}

func renderListTable(cmd *cobra.Command, listing themeListing) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Presets:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  NAME\tINDUSTRY\tFONT\tPRIMARY\tWCAG\tFEATURES")
	for _, p := range listing.Presets {
		features := strings.Join(p.Features, ",")
		if features == "" {
			features = "-"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n", p.Name, p.Industry, p.Font, p.Primary, p.Accessibility, features)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nGenerated in %s:\n", listing.Directory)
	if len(listing.Generated) == 0 {
		fmt.Fprintln(out, "  (none yet, run 'xala theme generate')")
		return nil
	}
	for _, name := range listing.Generated {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}
