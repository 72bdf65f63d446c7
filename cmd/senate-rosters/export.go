package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/senate-rosters/internal/export"
	"github.com/pdiddy/senate-rosters/internal/hierarchy"
	"github.com/pdiddy/senate-rosters/internal/members"
	"github.com/pdiddy/senate-rosters/internal/merge"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the merged table to CSV and optional extra formats",
	Long: `Export writes the merged member/hierarchy table to the CSV output file.
--json and --yaml write the same rows in those formats. --sqlite writes the
member, hierarchy and merged tables into a SQLite database, replacing any
previous contents of those tables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		opts := sourceOptions()

		merged, err := merge.Members(ctx, opts)
		if err != nil {
			return err
		}
		table := export.Merged(merged)

		outputs := map[export.Format]string{export.FormatCSV: cfg.Output}
		if p, _ := cmd.Flags().GetString("json"); p != "" {
			outputs[export.FormatJSON] = p
		}
		if p, _ := cmd.Flags().GetString("yaml"); p != "" {
			outputs[export.FormatYAML] = p
		}
		for _, f := range []export.Format{export.FormatCSV, export.FormatJSON, export.FormatYAML} {
			path, ok := outputs[f]
			if !ok {
				continue
			}
			if err := export.WriteFile(opts.Fs, path, f, table, merged); err != nil {
				return err
			}
			logger.Info("exported table", zap.String("table", table.Name), zap.String("file", path), zap.Int("rows", table.Len()))
		}

		if cfg.SQLitePath != "" {
			// Member and hierarchy tables are recomputed from source.
			memberRows, err := members.Load(ctx, opts)
			if err != nil {
				return err
			}
			hierarchyRows, err := hierarchy.Build(ctx, opts)
			if err != nil {
				return err
			}
			if err := writeSQLite(ctx, cfg.SQLitePath, memberRows, hierarchyRows, merged); err != nil {
				return err
			}
			logger.Info("wrote SQLite database", zap.String("file", cfg.SQLitePath))
		}

		fmt.Fprintf(os.Stdout, "[INFO] Exported %s to %s\n", export.MergedTable, cfg.Output)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "", "merged CSV path (default: committee_members_with_hierarchy.csv)")
	exportCmd.Flags().String("sqlite", "", "also write all tables to this SQLite database")
	exportCmd.Flags().String("json", "", "also write the merged table as JSON to this path")
	exportCmd.Flags().String("yaml", "", "also write the merged table as YAML to this path")

	_ = viper.BindPFlag("output", exportCmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("sqlite_path", exportCmd.Flags().Lookup("sqlite"))

	rootCmd.AddCommand(exportCmd)
}
