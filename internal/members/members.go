// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package members flattens committee roster documents into one row per
// (committee-or-subcommittee, member) pairing.
package members

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/senate-rosters/internal/source"
	"github.com/pdiddy/senate-rosters/internal/tables"
	"github.com/pdiddy/senate-rosters/pkg/types"
)

// Load scans the roster files selected by opts and returns the member rows,
// sorted by file scope id, committee name, subcommittee name and last name.
// Malformed files are skipped with a warning.
func Load(ctx context.Context, opts source.Options) ([]types.MemberRow, error) {
	var rows []types.MemberRow
	summary, err := source.Scan(ctx, opts, func(doc types.Document) {
		rows = append(rows, Rows(doc)...)
	})
	if err != nil {
		return nil, fmt.Errorf("loading committee members: %w", err)
	}

	Finish(rows)

	opts.Log().Debug("loaded committee members",
		zap.Int("files", summary.Parsed),
		zap.Int("rows", len(rows)))
	return rows, nil
}

// Rows returns the unsorted member rows of a single document. Direct
// committee members come first with nil subcommittee fields, then each
// subcommittee's members. FullName is left for Finish.
func Rows(doc types.Document) []types.MemberRow {
	sourceFile := filepath.Base(doc.Path)

	var rows []types.MemberRow
	for _, c := range doc.Committees {
		base := types.MemberRow{
			FileScopeID:   doc.FileScopeID,
			CommitteeName: c.Name,
			CommitteeCode: c.Code,
			MajorityParty: c.MajorityParty,
			SourceFile:    sourceFile,
		}

		for _, m := range c.Members {
			rows = append(rows, withMember(base, m))
		}

		for _, sub := range c.Subcommittees {
			subBase := base
			subBase.SubcommitteeName = tables.Ptr(sub.Name)
			subBase.SubcommitteeCode = tables.Ptr(sub.Code)
			for _, m := range sub.Members {
				rows = append(rows, withMember(subBase, m))
			}
		}
	}
	return rows
}

// Finish fills FullName on every row and sorts the table in place.
func Finish(rows []types.MemberRow) {
	for i := range rows {
		rows[i].FullName = FullName(rows[i].MemberFirst, rows[i].MemberLast)
	}
	tables.SortMembers(rows)
}

// FullName joins the trimmed first and last names with a single space.
func FullName(first, last string) string {
	return strings.TrimSpace(first) + " " + strings.TrimSpace(last)
}

func withMember(row types.MemberRow, m types.Member) types.MemberRow {
	row.MemberFirst = m.First
	row.MemberLast = m.Last
	row.State = m.State
	row.Party = m.Party
	row.Position = m.Position
	return row
}
