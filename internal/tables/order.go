// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tables holds the ordering helpers shared by the row-producing
// stages. Missing values sort after every present value, the way a pandas
// sort_values call orders NaN by default.
package tables

import (
	"cmp"
	"slices"

	"github.com/pdiddy/senate-rosters/pkg/types"
)

// CompareNullable orders two optional strings with nil last.
func CompareNullable(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}

// CompareMembers orders member rows by file scope id, committee name,
// subcommittee name and member last name.
func CompareMembers(a, b types.MemberRow) int {
	if c := cmp.Compare(a.FileScopeID, b.FileScopeID); c != 0 {
		return c
	}
	if c := cmp.Compare(a.CommitteeName, b.CommitteeName); c != 0 {
		return c
	}
	if c := CompareNullable(a.SubcommitteeName, b.SubcommitteeName); c != 0 {
		return c
	}
	return cmp.Compare(a.MemberLast, b.MemberLast)
}

// SortMembers stably sorts member rows with CompareMembers.
func SortMembers(rows []types.MemberRow) {
	slices.SortStableFunc(rows, CompareMembers)
}

// Ptr returns a pointer to a copy of s.
func Ptr[T any](v T) *T {
	return &v
}
