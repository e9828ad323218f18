// Package metstest reads serialized METS documents back into plain structs
// for assertions, resolving the mets and xlink namespaces the way a METS
// consumer would.
package metstest

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/require"
)

// Document mirrors mets:mets.
type Document struct {
	XMLName   xml.Name  `xml:"http://www.loc.gov/METS/ mets"`
	Groups    []Group   `xml:"http://www.loc.gov/METS/ fileSec>fileGrp"`
	StructMap StructMap `xml:"http://www.loc.gov/METS/ structMap"`
}

// StructMap mirrors mets:structMap and its root div.
type StructMap struct {
	Type string `xml:"TYPE,attr"`
	Div  Div    `xml:"http://www.loc.gov/METS/ div"`
}

// Group mirrors mets:fileGrp.
type Group struct {
	Use   string `xml:"USE,attr"`
	Files []File `xml:"http://www.loc.gov/METS/ file"`
}

// File mirrors mets:file with its single FLocat.
type File struct {
	ID     string `xml:"ID,attr"`
	FLocat struct {
		Href    string `xml:"http://www.w3.org/1999/xlink href,attr"`
		LocType string `xml:"LOCTYPE,attr"`
	} `xml:"http://www.loc.gov/METS/ FLocat"`
}

// Div mirrors mets:div.
type Div struct {
	Type  string `xml:"TYPE,attr"`
	Fptrs []struct {
		FileID string `xml:"FILEID,attr"`
	} `xml:"http://www.loc.gov/METS/ fptr"`
	Divs []Div `xml:"http://www.loc.gov/METS/ div"`
}

// Parse unmarshals data, failing the test on malformed XML.
func Parse(t testing.TB, data []byte) Document {
	t.Helper()
	var doc Document
	require.NoError(t, xml.Unmarshal(data, &doc))
	return doc
}

// Root returns the structMap's top-level div.
func (d Document) Root() Div {
	return d.StructMap.Div
}

// Uses returns the USE attribute of every file group, in document order.
func (d Document) Uses() []string {
	uses := make([]string, 0, len(d.Groups))
	for _, g := range d.Groups {
		uses = append(uses, g.Use)
	}
	return uses
}

// FileIDs returns the IDs of the group's files.
func (g Group) FileIDs() []string {
	ids := make([]string, 0, len(g.Files))
	for _, f := range g.Files {
		ids = append(ids, f.ID)
	}
	return ids
}

// FileIDs returns the FILEID of every fptr directly under the div.
func (d Div) FileIDs() []string {
	ids := make([]string, 0, len(d.Fptrs))
	for _, f := range d.Fptrs {
		ids = append(ids, f.FileID)
	}
	return ids
}

// Child returns the nested div of the given TYPE, or nil.
func (d Div) Child(divType string) *Div {
	for i := range d.Divs {
		if d.Divs[i].Type == divType {
			return &d.Divs[i]
		}
	}
	return nil
}
