// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes the roster tables as CSV, JSON, YAML, or into a
// SQLite database. Column names and order follow the merged output
// contract: member fields first, then hierarchy fields, with
// hierarchy-origin duplicates suffixed "_hierarchy".
package export

import (
	"github.com/pdiddy/senate-rosters/pkg/types"
)

// Table names used as SQLite table names and preview titles.
const (
	MembersTable   = "committee_members"
	HierarchyTable = "committee_hierarchy_map"
	MergedTable    = "members_with_hierarchy"
)

// MemberColumns is the column order of a member table.
var MemberColumns = []string{
	"file_committee_abbrev",
	"committee_name",
	"committee_code",
	"subcommittee_name",
	"subcommittee_code",
	"member_first",
	"member_last",
	"state",
	"party",
	"position",
	"majority_party",
	"source_file",
	"full_name",
}

// HierarchyColumns is the column order of a hierarchy table.
var HierarchyColumns = []string{
	"file_committee_abbrev",
	"committee_code",
	"committee_name",
	"subcommittee_code",
	"subcommittee_name",
	"level",
}

// MergedColumns is the column order of the merged table.
var MergedColumns = append(append([]string{}, MemberColumns...),
	"committee_name_hierarchy",
	"subcommittee_name_hierarchy",
	"level",
)

// Table is a named grid of optional string cells. A nil cell is a missing
// value: an empty CSV field, a SQL NULL.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]*string
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Members converts member rows to a Table.
func Members(rows []types.MemberRow) Table {
	t := Table{Name: MembersTable, Columns: MemberColumns, Rows: make([][]*string, len(rows))}
	for i, r := range rows {
		t.Rows[i] = memberCells(r)
	}
	return t
}

// Hierarchy converts hierarchy rows to a Table.
func Hierarchy(rows []types.HierarchyRow) Table {
	t := Table{Name: HierarchyTable, Columns: HierarchyColumns, Rows: make([][]*string, len(rows))}
	for i, r := range rows {
		level := string(r.Level)
		t.Rows[i] = []*string{
			&r.FileScopeID,
			&r.CommitteeCode,
			&r.CommitteeName,
			&r.SubcommitteeCode,
			&r.SubcommitteeName,
			&level,
		}
	}
	return t
}

// Merged converts merged rows to a Table.
func Merged(rows []types.MergedRow) Table {
	t := Table{Name: MergedTable, Columns: MergedColumns, Rows: make([][]*string, len(rows))}
	for i, r := range rows {
		var level *string
		if r.Level != nil {
			s := string(*r.Level)
			level = &s
		}
		t.Rows[i] = append(memberCells(r.MemberRow),
			r.HierarchyCommitteeName,
			r.HierarchySubcommitteeName,
			level,
		)
	}
	return t
}

func memberCells(r types.MemberRow) []*string {
	return []*string{
		&r.FileScopeID,
		&r.CommitteeName,
		&r.CommitteeCode,
		r.SubcommitteeName,
		r.SubcommitteeCode,
		&r.MemberFirst,
		&r.MemberLast,
		&r.State,
		&r.Party,
		&r.Position,
		&r.MajorityParty,
		&r.SourceFile,
		&r.FullName,
	}
}
