package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/senate-rosters/internal/export"
	"github.com/pdiddy/senate-rosters/internal/hierarchy"
	"github.com/pdiddy/senate-rosters/internal/members"
	"github.com/pdiddy/senate-rosters/internal/merge"
	"github.com/pdiddy/senate-rosters/internal/preview"
	"github.com/pdiddy/senate-rosters/internal/source"
	"github.com/pdiddy/senate-rosters/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Preview every table and export the merged CSV",
	Long: `Run loads the member table, the hierarchy map and the merged table, prints
the first rows of each, and writes the merged table to
committee_members_with_hierarchy.csv (or the configured output). Each table
is recomputed from the roster files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(cmd.Context(), sourceOptions(), cfg, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runPipeline previews the three tables and exports the merged one.
func runPipeline(ctx context.Context, opts source.Options, c types.Config, w io.Writer) error {
	memberRows, err := members.Load(ctx, opts)
	if err != nil {
		return err
	}
	if err := preview.Head(w, "Members DF preview:", export.Members(memberRows), c.PreviewRows); err != nil {
		return err
	}

	hierarchyRows, err := hierarchy.Build(ctx, opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := preview.Head(w, "Hierarchy map preview:", export.Hierarchy(hierarchyRows), c.PreviewRows); err != nil {
		return err
	}

	merged, err := merge.Members(ctx, opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := preview.Head(w, "Merged members with hierarchy preview:", export.Merged(merged), c.PreviewRows); err != nil {
		return err
	}

	if err := export.WriteFile(opts.Fs, c.Output, export.FormatCSV, export.Merged(merged), merged); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n[INFO] Exported %s to %s\n", export.MergedTable, c.Output)

	if c.SQLitePath != "" {
		if err := writeSQLite(ctx, c.SQLitePath, memberRows, hierarchyRows, merged); err != nil {
			return err
		}
		fmt.Fprintf(w, "[INFO] Wrote %s, %s and %s to %s\n",
			export.MembersTable, export.HierarchyTable, export.MergedTable, c.SQLitePath)
	}

	opts.Log().Info("pipeline finished",
		zap.Int("members", len(memberRows)),
		zap.Int("hierarchy", len(hierarchyRows)),
		zap.Int("merged", len(merged)))
	return nil
}

// writeSQLite stores all three tables in the database at path.
func writeSQLite(ctx context.Context, path string, m []types.MemberRow, h []types.HierarchyRow, merged []types.MergedRow) error {
	store, err := export.OpenStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.WriteTables(ctx, export.Members(m), export.Hierarchy(h), export.Merged(merged))
}
