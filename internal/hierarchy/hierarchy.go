// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package hierarchy derives the committee/subcommittee table from roster
// documents. Each committee contributes a synthetic MAIN row standing for
// direct membership, followed by one row per subcommittee.
package hierarchy

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/pdiddy/senate-rosters/internal/source"
	"github.com/pdiddy/senate-rosters/pkg/types"
)

// Build scans the roster files selected by opts and returns the
// deduplicated hierarchy rows sorted by file scope id, committee code and
// subcommittee code. Malformed files are skipped with a warning.
func Build(ctx context.Context, opts source.Options) ([]types.HierarchyRow, error) {
	var rows []types.HierarchyRow
	summary, err := source.Scan(ctx, opts, func(doc types.Document) {
		rows = append(rows, Rows(doc)...)
	})
	if err != nil {
		return nil, fmt.Errorf("building committee hierarchy: %w", err)
	}

	rows = Finish(rows)

	opts.Log().Debug("built committee hierarchy",
		zap.Int("files", summary.Parsed),
		zap.Int("rows", len(rows)))
	return rows, nil
}

// Rows returns the hierarchy rows of a single document in document order.
func Rows(doc types.Document) []types.HierarchyRow {
	var rows []types.HierarchyRow
	for _, c := range doc.Committees {
		rows = append(rows, types.HierarchyRow{
			FileScopeID:      doc.FileScopeID,
			CommitteeCode:    c.Code,
			CommitteeName:    c.Name,
			SubcommitteeCode: types.MainSubcommitteeCode,
			SubcommitteeName: types.MainSubcommitteeName,
			Level:            types.LevelMainCommittee,
		})
		for _, sub := range c.Subcommittees {
			rows = append(rows, types.HierarchyRow{
				FileScopeID:      doc.FileScopeID,
				CommitteeCode:    c.Code,
				CommitteeName:    c.Name,
				SubcommitteeCode: sub.Code,
				SubcommitteeName: sub.Name,
				Level:            types.LevelSubcommittee,
			})
		}
	}
	return rows
}

// Finish drops exact duplicate rows, keeping the first occurrence, and
// stably sorts the remainder. The returned slice shares rows' backing array.
func Finish(rows []types.HierarchyRow) []types.HierarchyRow {
	seen := make(map[types.HierarchyRow]struct{}, len(rows))
	out := rows[:0]
	for _, r := range rows {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}

	slices.SortStableFunc(out, Compare)
	return out
}

// Compare orders hierarchy rows by file scope id, committee code and
// subcommittee code.
func Compare(a, b types.HierarchyRow) int {
	if c := cmp.Compare(a.FileScopeID, b.FileScopeID); c != 0 {
		return c
	}
	if c := cmp.Compare(a.CommitteeCode, b.CommitteeCode); c != 0 {
		return c
	}
	return cmp.Compare(a.SubcommitteeCode, b.SubcommitteeCode)
}
