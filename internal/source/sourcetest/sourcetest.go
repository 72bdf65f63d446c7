// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sourcetest provides roster fixtures for tests of the pipeline
// stages.
package sourcetest

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/senate-rosters/internal/source"
)

// Dir is the fixture directory used on in-memory filesystems.
const Dir = "/rosters"

// Banking is a committee with one direct member and one subcommittee
// member.
const Banking = `<?xml version="1.0" encoding="UTF-8"?>
<committee_membership>
  <committees>
    <committee_name>Banking</committee_name>
    <committee_code>SSBK</committee_code>
    <majority_party>R</majority_party>
    <members>
      <member>
        <name><first> Jane </first><last>Doe</last></name>
        <state>OH</state>
        <party>R</party>
        <position>Chairman</position>
      </member>
    </members>
    <subcommittee>
      <subcommittee_name>Housing</subcommittee_name>
      <committee_code>SSBK01</committee_code>
      <members>
        <member>
          <name><first>Tom</first><last>Lee </last></name>
          <state>UT</state>
          <party>D</party>
          <position>Ranking</position>
        </member>
      </members>
    </subcommittee>
  </committees>
</committee_membership>
`

// Agriculture has two direct members, two subcommittees (one of them
// listed twice), and a subcommittee with no members element.
const Agriculture = `<?xml version="1.0" encoding="UTF-8"?>
<committee_membership>
  <committees>
    <committee_name>Agriculture</committee_name>
    <committee_code>SSAF</committee_code>
    <majority_party>D</majority_party>
    <members>
      <member>
        <name><first>Zed</first><last>Young</last></name>
        <state>IA</state>
        <party>R</party>
        <position>Member</position>
      </member>
      <member>
        <name><first>Amy</first><last>Adams</last></name>
        <state>MN</state>
        <party>D</party>
        <position>Chairman</position>
      </member>
    </members>
    <subcommittee>
      <subcommittee_name>Rural Development</subcommittee_name>
      <committee_code>SSAF14</committee_code>
      <members>
        <member>
          <name><first>Bo</first><last>Baker</last></name>
          <state>GA</state>
          <party>R</party>
          <position>Member</position>
        </member>
      </members>
    </subcommittee>
    <subcommittee>
      <subcommittee_name>Commodities</subcommittee_name>
      <committee_code>SSAF13</committee_code>
    </subcommittee>
    <subcommittee>
      <subcommittee_name>Rural Development</subcommittee_name>
      <committee_code>SSAF14</committee_code>
    </subcommittee>
  </committees>
</committee_membership>
`

// Malformed is not well-formed XML.
const Malformed = `<committee_membership><committees><committee_name>Broken</committee_name>`

// WriteRoster writes content as the roster file for abbrev under Dir and
// returns its path.
func WriteRoster(t *testing.T, fs afero.Fs, abbrev, content string) string {
	t.Helper()
	require.NoError(t, fs.MkdirAll(Dir, 0o755))
	path := filepath.Join(Dir, source.FilePrefix+abbrev+source.FileSuffix)
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	return path
}

// Options returns source options reading Dir on fs.
func Options(fs afero.Fs) source.Options {
	return source.Options{Fs: fs, Dir: Dir}
}
