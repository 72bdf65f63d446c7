// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the row records shared by the roster pipeline stages
// and the configuration they read.
package types

const (
	// MainSubcommitteeCode is the sentinel subcommittee code of the synthetic
	// hierarchy row that stands for direct committee membership.
	MainSubcommitteeCode = "MAIN"

	// MainSubcommitteeName is the subcommittee name of that synthetic row.
	MainSubcommitteeName = "Main Committee"
)

// Level labels a hierarchy row as the committee itself or one of its
// subcommittees.
type Level string

const (
	LevelMainCommittee Level = "Main Committee"
	LevelSubcommittee  Level = "Subcommittee"
)

// Committee is one <committees> element of a roster document.
type Committee struct {
	Name          string
	Code          string
	MajorityParty string
	Members       []Member
	Subcommittees []Subcommittee
}

// Subcommittee is nested directly under a Committee. Subcommittees do not
// nest further.
type Subcommittee struct {
	Name    string
	Code    string
	Members []Member
}

// Member is a single roster entry.
type Member struct {
	First    string
	Last     string
	State    string
	Party    string
	Position string
}

// Document is a parsed roster file.
type Document struct {
	// Path is the file the document was read from.
	Path string

	// FileScopeID is the committee abbreviation embedded in the file name
	// (e.g. "SSBK" for committee_memberships_SSBK.xml).
	FileScopeID string

	Committees []Committee
}

// MemberRow is one (committee-or-subcommittee, member) pairing.
// SubcommitteeName and SubcommitteeCode are nil for direct committee members.
type MemberRow struct {
	FileScopeID      string  `json:"file_committee_abbrev" yaml:"file_committee_abbrev"`
	CommitteeName    string  `json:"committee_name" yaml:"committee_name"`
	CommitteeCode    string  `json:"committee_code" yaml:"committee_code"`
	SubcommitteeName *string `json:"subcommittee_name" yaml:"subcommittee_name"`
	SubcommitteeCode *string `json:"subcommittee_code" yaml:"subcommittee_code"`
	MemberFirst      string  `json:"member_first" yaml:"member_first"`
	MemberLast       string  `json:"member_last" yaml:"member_last"`
	State            string  `json:"state" yaml:"state"`
	Party            string  `json:"party" yaml:"party"`
	Position         string  `json:"position" yaml:"position"`
	MajorityParty    string  `json:"majority_party" yaml:"majority_party"`
	SourceFile       string  `json:"source_file" yaml:"source_file"`
	FullName         string  `json:"full_name" yaml:"full_name"`
}

// HierarchyRow is one (committee, subcommittee-or-MAIN) pair.
type HierarchyRow struct {
	FileScopeID      string `json:"file_committee_abbrev" yaml:"file_committee_abbrev"`
	CommitteeCode    string `json:"committee_code" yaml:"committee_code"`
	CommitteeName    string `json:"committee_name" yaml:"committee_name"`
	SubcommitteeCode string `json:"subcommittee_code" yaml:"subcommittee_code"`
	SubcommitteeName string `json:"subcommittee_name" yaml:"subcommittee_name"`
	Level            Level  `json:"level" yaml:"level"`
}

// MergedRow is a MemberRow left-joined with its HierarchyRow. The hierarchy
// fields are nil when no hierarchy row matched.
type MergedRow struct {
	MemberRow `yaml:",inline"`

	HierarchyCommitteeName    *string `json:"committee_name_hierarchy" yaml:"committee_name_hierarchy"`
	HierarchySubcommitteeName *string `json:"subcommittee_name_hierarchy" yaml:"subcommittee_name_hierarchy"`
	Level                     *Level  `json:"level" yaml:"level"`
}
