package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/senate-rosters/internal/export"
	"github.com/pdiddy/senate-rosters/internal/hierarchy"
	"github.com/pdiddy/senate-rosters/internal/members"
	"github.com/pdiddy/senate-rosters/internal/merge"
	"github.com/pdiddy/senate-rosters/internal/preview"
)

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Show the flattened member table",
	Long: `Members prints one row per committee or subcommittee member, sorted by
file, committee name, subcommittee name and last name. Direct committee
members have no subcommittee. Without --format only the first rows are
shown; with --format the whole table is written to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := members.Load(cmd.Context(), sourceOptions())
		if err != nil {
			return err
		}
		return showTable(cmd, "Members DF preview:", export.Members(rows), rows)
	},
}

var hierarchyCmd = &cobra.Command{
	Use:   "hierarchy",
	Short: "Show the committee/subcommittee hierarchy map",
	Long: `Hierarchy prints one row per committee (subcommittee code MAIN) and one per
subcommittee, deduplicated and sorted by file, committee code and
subcommittee code.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := hierarchy.Build(cmd.Context(), sourceOptions())
		if err != nil {
			return err
		}
		return showTable(cmd, "Hierarchy map preview:", export.Hierarchy(rows), rows)
	},
}

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Show members joined with the hierarchy map",
	Long: `Merge joins every member row onto its hierarchy row. Direct committee
members join the MAIN row; members whose subcommittee is missing from the
hierarchy keep empty hierarchy columns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := merge.Members(cmd.Context(), sourceOptions())
		if err != nil {
			return err
		}
		return showTable(cmd, "Merged members with hierarchy preview:", export.Merged(rows), rows)
	},
}

func init() {
	for _, c := range []*cobra.Command{membersCmd, hierarchyCmd, mergeCmd} {
		c.Flags().String("format", "", "write the full table to stdout: csv, json, or yaml")
		rootCmd.AddCommand(c)
	}
}

// showTable previews t, or dumps it in full when --format is set.
func showTable(cmd *cobra.Command, title string, t export.Table, rows any) error {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		return preview.Head(os.Stdout, title, t, cfg.PreviewRows)
	}

	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	if err := export.Write(os.Stdout, f, t, rows); err != nil {
		return fmt.Errorf("writing %s: %w", t.Name, err)
	}
	return nil
}
