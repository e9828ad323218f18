package mets

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Element and attribute names carry their prefixes literally; the
// prefixes are bound once on the root element.

// Document is the root mets:mets element.
type Document struct {
	XMLName    xml.Name  `xml:"mets:mets"`
	XMLNSMets  string    `xml:"xmlns:mets,attr"`
	XMLNSXLink string    `xml:"xmlns:xlink,attr"`
	FileSec    FileSec   `xml:"mets:fileSec"`
	StructMap  StructMap `xml:"mets:structMap"`
}

// FileSec holds the file groups in insertion order.
type FileSec struct {
	Groups []FileGrp `xml:"mets:fileGrp"`
}

// FileGrp groups the files of one content model.
type FileGrp struct {
	Use   string `xml:"USE,attr"`
	Files []File `xml:"mets:file"`
}

// File is one repository object.
type File struct {
	ID     string `xml:"ID,attr"`
	FLocat FLocat `xml:"mets:FLocat"`
}

// FLocat points at the object's ARK.
type FLocat struct {
	Href    string `xml:"xlink:href,attr"`
	LocType string `xml:"LOCTYPE,attr"`
}

// StructMap is the logical structure map.
type StructMap struct {
	Type string `xml:"TYPE,attr"`
	Div  Div    `xml:"mets:div"`
}

// Div is a structural division. The root division has no TYPE.
type Div struct {
	Type  string `xml:"TYPE,attr,omitempty"`
	Fptrs []Fptr `xml:"mets:fptr"`
	Divs  []Div  `xml:"mets:div"`
}

// Fptr references a File by ID.
type Fptr struct {
	FileID string `xml:"FILEID,attr"`
}

// Marshal renders doc as tab-indented XML without an XML declaration.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode METS document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode METS document: %w", err)
	}
	return buf.Bytes(), nil
}
