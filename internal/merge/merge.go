// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge joins member rows onto the committee hierarchy, producing
// the analysis-ready table the export writes.
package merge

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/pdiddy/senate-rosters/internal/hierarchy"
	"github.com/pdiddy/senate-rosters/internal/members"
	"github.com/pdiddy/senate-rosters/internal/source"
	"github.com/pdiddy/senate-rosters/internal/tables"
	"github.com/pdiddy/senate-rosters/pkg/types"
)

// key identifies the hierarchy row a member row belongs to.
type key struct {
	fileScopeID      string
	committeeCode    string
	subcommitteeCode string
}

// Members recomputes the member and hierarchy tables from the roster files
// selected by opts and joins them.
func Members(ctx context.Context, opts source.Options) ([]types.MergedRow, error) {
	memberRows, err := members.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	hierarchyRows, err := hierarchy.Build(ctx, opts)
	if err != nil {
		return nil, err
	}

	merged := Join(memberRows, hierarchyRows)

	unmatched := 0
	for _, r := range merged {
		if r.Level == nil {
			unmatched++
		}
	}
	opts.Log().Debug("merged members with hierarchy",
		zap.Int("rows", len(merged)),
		zap.Int("unmatched", unmatched))

	return merged, nil
}

// FillMainSubcommittee returns a copy of rows in which every nil
// subcommittee code is replaced by the MAIN sentinel, so that direct
// committee members match the synthetic main-committee hierarchy row.
// Subcommittee names are left untouched.
func FillMainSubcommittee(rows []types.MemberRow) []types.MemberRow {
	out := slices.Clone(rows)
	for i := range out {
		if out[i].SubcommitteeCode == nil {
			out[i].SubcommitteeCode = tables.Ptr(types.MainSubcommitteeCode)
		}
	}
	return out
}

// Join left-joins memberRows with hierarchyRows on (file scope id,
// committee code, subcommittee code) after filling MAIN codes. A member row
// yields one output row per matching hierarchy row, in hierarchy order, or a
// single row with nil hierarchy fields when nothing matches. The result is
// stably sorted by file scope id, committee name, subcommittee name and last
// name. Neither input is modified.
func Join(memberRows []types.MemberRow, hierarchyRows []types.HierarchyRow) []types.MergedRow {
	index := make(map[key][]types.HierarchyRow, len(hierarchyRows))
	for _, h := range hierarchyRows {
		k := key{h.FileScopeID, h.CommitteeCode, h.SubcommitteeCode}
		index[k] = append(index[k], h)
	}

	filled := FillMainSubcommittee(memberRows)
	merged := make([]types.MergedRow, 0, len(filled))
	for _, m := range filled {
		matches := index[key{m.FileScopeID, m.CommitteeCode, *m.SubcommitteeCode}]
		if len(matches) == 0 {
			merged = append(merged, types.MergedRow{MemberRow: m})
			continue
		}
		for _, h := range matches {
			merged = append(merged, types.MergedRow{
				MemberRow:                 m,
				HierarchyCommitteeName:    tables.Ptr(h.CommitteeName),
				HierarchySubcommitteeName: tables.Ptr(h.SubcommitteeName),
				Level:                     tables.Ptr(h.Level),
			})
		}
	}

	slices.SortStableFunc(merged, func(a, b types.MergedRow) int {
		return tables.CompareMembers(a.MemberRow, b.MemberRow)
	})
	return merged
}
