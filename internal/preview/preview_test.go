// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/senate-rosters/internal/export"
	"github.com/pdiddy/senate-rosters/internal/tables"
	"github.com/pdiddy/senate-rosters/pkg/types"
)

func TestHead(t *testing.T) {
	rows := []types.MemberRow{
		{FileScopeID: "SSBK", MemberLast: "Lee", SubcommitteeName: tables.Ptr("Housing"), FullName: "Tom Lee"},
		{FileScopeID: "SSBK", MemberLast: "Doe", FullName: "Jane Doe"},
		{FileScopeID: "SSBK", MemberLast: "Roe", FullName: "Ann Roe"},
	}

	var buf bytes.Buffer
	require.NoError(t, Head(&buf, "Members DF preview:", export.Members(rows), 2))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Members DF preview:\n"))
	assert.Contains(t, out, "file_committee_abbrev")
	assert.Contains(t, out, "Tom Lee")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, missing)
	assert.NotContains(t, out, "Ann Roe")
}

func TestHead_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Head(&buf, "Hierarchy map preview:", export.Hierarchy(nil), DefaultRows))
	assert.Contains(t, buf.String(), "Empty table")
	assert.Contains(t, buf.String(), "subcommittee_code")
}
