// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"

	"github.com/pdiddy/senate-rosters/pkg/types"
)

// committeeElement is the element name of one committee in a roster file.
const committeeElement = "committees"

// ParseError reports a roster document that is not well-formed XML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing roster XML: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Roster XML structures. Subcommittees reuse the committee_code element for
// their own code.
type committeeXML struct {
	Name          string            `xml:"committee_name"`
	Code          string            `xml:"committee_code"`
	MajorityParty string            `xml:"majority_party"`
	Members       []memberXML       `xml:"members>member"`
	Subcommittees []subcommitteeXML `xml:"subcommittee"`
}

type subcommitteeXML struct {
	Name    string      `xml:"subcommittee_name"`
	Code    string      `xml:"committee_code"`
	Members []memberXML `xml:"members>member"`
}

type memberXML struct {
	First    string `xml:"name>first"`
	Last     string `xml:"name>last"`
	State    string `xml:"state"`
	Party    string `xml:"party"`
	Position string `xml:"position"`
}

// Parse decodes a roster document and returns its committees in document
// order. Committee elements are collected from any depth below the root.
// The whole document is read so that a syntax error after the last
// committee still rejects the file; every decoding failure is returned as a
// *ParseError. Missing optional elements decode as empty strings or empty
// slices.
func Parse(r io.Reader) ([]types.Committee, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var (
		committees []types.Committee
		depth      int
		sawRoot    bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 && sawRoot {
				return nil, &ParseError{Err: fmt.Errorf("junk after document element <%s>", t.Name.Local)}
			}
			if depth > 0 && t.Name.Local == committeeElement {
				var c committeeXML
				if err := dec.DecodeElement(&c, &t); err != nil {
					return nil, &ParseError{Err: err}
				}
				committees = append(committees, c.toCommittee())
				continue
			}
			sawRoot = true
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return nil, &ParseError{Err: errors.New("text outside document element")}
			}
		}
	}

	if !sawRoot {
		return nil, &ParseError{Err: errors.New("no element found")}
	}
	return committees, nil
}

func (c committeeXML) toCommittee() types.Committee {
	out := types.Committee{
		Name:          c.Name,
		Code:          c.Code,
		MajorityParty: c.MajorityParty,
		Members:       toMembers(c.Members),
	}
	for _, s := range c.Subcommittees {
		out.Subcommittees = append(out.Subcommittees, types.Subcommittee{
			Name:    s.Name,
			Code:    s.Code,
			Members: toMembers(s.Members),
		})
	}
	return out
}

func toMembers(in []memberXML) []types.Member {
	if len(in) == 0 {
		return nil
	}
	out := make([]types.Member, len(in))
	for i, m := range in {
		out[i] = types.Member(m)
	}
	return out
}
