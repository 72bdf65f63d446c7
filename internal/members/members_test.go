// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package members

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/senate-rosters/internal/source/sourcetest"
	"github.com/pdiddy/senate-rosters/internal/tables"
	"github.com/pdiddy/senate-rosters/pkg/types"
)

func TestFullName(t *testing.T) {
	tests := []struct {
		first, last string
		want        string
	}{
		{first: "Jane", last: "Doe", want: "Jane Doe"},
		{first: "  Jane\t", last: " Doe\n", want: "Jane Doe"},
		{first: "", last: "Doe", want: " Doe"},
		{first: "Mary Ann", last: "Smith Jones", want: "Mary Ann Smith Jones"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FullName(tt.first, tt.last))
		})
	}
}

func TestLoad_Banking(t *testing.T) {
	fs := afero.NewMemMapFs()
	sourcetest.WriteRoster(t, fs, "SSBK", sourcetest.Banking)

	rows, err := Load(context.Background(), sourcetest.Options(fs))
	require.NoError(t, err)

	want := []types.MemberRow{
		{
			FileScopeID:      "SSBK",
			CommitteeName:    "Banking",
			CommitteeCode:    "SSBK",
			SubcommitteeName: tables.Ptr("Housing"),
			SubcommitteeCode: tables.Ptr("SSBK01"),
			MemberFirst:      "Tom",
			MemberLast:       "Lee ",
			State:            "UT",
			Party:            "D",
			Position:         "Ranking",
			MajorityParty:    "R",
			SourceFile:       "committee_memberships_SSBK.xml",
			FullName:         "Tom Lee",
		},
		{
			FileScopeID:   "SSBK",
			CommitteeName: "Banking",
			CommitteeCode: "SSBK",
			MemberFirst:   " Jane ",
			MemberLast:    "Doe",
			State:         "OH",
			Party:         "R",
			Position:      "Chairman",
			MajorityParty: "R",
			SourceFile:    "committee_memberships_SSBK.xml",
			FullName:      "Jane Doe",
		},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_SortsAcrossFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	sourcetest.WriteRoster(t, fs, "SSBK", sourcetest.Banking)
	sourcetest.WriteRoster(t, fs, "SSAF", sourcetest.Agriculture)

	rows, err := Load(context.Background(), sourcetest.Options(fs))
	require.NoError(t, err)

	var got []string
	for _, r := range rows {
		got = append(got, r.FileScopeID+" "+r.FullName)
	}
	assert.Equal(t, []string{
		"SSAF Bo Baker",
		"SSAF Amy Adams",
		"SSAF Zed Young",
		"SSBK Tom Lee",
		"SSBK Jane Doe",
	}, got)
}

func TestLoad_OneRowPerMemberElement(t *testing.T) {
	fs := afero.NewMemMapFs()
	sourcetest.WriteRoster(t, fs, "SSAF", sourcetest.Agriculture)

	rows, err := Load(context.Background(), sourcetest.Options(fs))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	direct := 0
	for _, r := range rows {
		assert.Equal(t, "D", r.MajorityParty, "majority party carried on %s", r.FullName)
		assert.Equal(t, "committee_memberships_SSAF.xml", r.SourceFile)
		if r.SubcommitteeCode == nil {
			assert.Nil(t, r.SubcommitteeName)
			direct++
		}
	}
	assert.Equal(t, 2, direct)
}

func TestLoad_SkipsMalformedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	sourcetest.WriteRoster(t, fs, "SSBK", sourcetest.Banking)
	sourcetest.WriteRoster(t, fs, "SSAF", sourcetest.Agriculture)
	sourcetest.WriteRoster(t, fs, "SSRA", sourcetest.Malformed)

	core, logs := observer.New(zap.WarnLevel)
	opts := sourcetest.Options(fs)
	opts.Logger = zap.New(core)

	rows, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Len(t, rows, 5)
	for _, r := range rows {
		assert.NotEqual(t, "SSRA", r.FileScopeID)
	}
	assert.Equal(t, 1, logs.FilterMessage("skipping invalid XML file").Len())
}

func TestLoad_NoFiles(t *testing.T) {
	rows, err := Load(context.Background(), sourcetest.Options(afero.NewMemMapFs()))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRows_CommitteeWithoutMembers(t *testing.T) {
	doc := types.Document{
		Path:        "/rosters/committee_memberships_SPAG.xml",
		FileScopeID: "SPAG",
		Committees: []types.Committee{
			{Name: "Aging", Code: "SPAG", Subcommittees: []types.Subcommittee{{Name: "Empty", Code: "SPAG01"}}},
		},
	}
	assert.Empty(t, Rows(doc))
}
