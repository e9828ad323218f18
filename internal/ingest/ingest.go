package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vvka-141/metsgen/pkg/metsgen"
)

// valueItem is a Drupal scalar field item: {"value": ...}.
type valueItem struct {
	Value string `json:"value"`
}

// reference is a Drupal entity reference item. Only the URL is used.
type reference struct {
	URL string `json:"url"`
}

// references decodes field_member_of in any of its shapes into a flat
// list of URLs.
type references []string

// UnmarshalJSON implements json.Unmarshaler.
func (r *references) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = nil
		return nil
	}

	switch data[0] {
	case '"':
		var url string
		if err := json.Unmarshal(data, &url); err != nil {
			return err
		}
		if url == "" {
			*r = nil
			return nil
		}
		*r = references{url}
	case '{':
		var ref reference
		if err := json.Unmarshal(data, &ref); err != nil {
			return err
		}
		*r = references{ref.URL}
	case '[':
		var refs []reference
		if err := json.Unmarshal(data, &refs); err != nil {
			return err
		}
		urls := make(references, 0, len(refs))
		for _, ref := range refs {
			urls = append(urls, ref.URL)
		}
		*r = urls
	default:
		return fmt.Errorf("unexpected JSON value %.20q", data)
	}
	return nil
}

// nodeDocument is the subset of a node document that is read.
type nodeDocument struct {
	UUID          []valueItem `json:"uuid"`
	FieldModel    []reference `json:"field_model"`
	FieldMemberOf references  `json:"field_member_of"`
}

// taxonomyTerm is the subset of a model taxonomy term that is read.
type taxonomyTerm struct {
	FieldExternalURI []struct {
		URI string `json:"uri"`
	} `json:"field_external_uri"`
}

// ParseNode decodes a single node document. source names the document in
// error messages.
func ParseNode(data []byte, source string) (metsgen.ObjectRecord, error) {
	if !json.Valid(data) {
		return metsgen.ObjectRecord{}, &InputError{Source: source, Message: "not valid JSON"}
	}
	if err := validate(nodeSchema, data, source); err != nil {
		return metsgen.ObjectRecord{}, err
	}

	var doc nodeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return metsgen.ObjectRecord{}, &InputError{Source: source, Message: err.Error()}
	}

	// The schema guarantees both arrays are non-empty.
	return metsgen.ObjectRecord{
		UUID:     doc.UUID[0].Value,
		ModelURL: doc.FieldModel[0].URL,
		MemberOf: []string(doc.FieldMemberOf),
	}, nil
}

// ParseMembers decodes a members document. The repository returns a list
// when a node has several members and a bare node when it has one; both,
// along with null and an empty body, are normalized to a slice in source
// order.
func ParseMembers(data []byte, source string) ([]metsgen.ObjectRecord, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	switch data[0] {
	case '{':
		record, err := ParseNode(data, source)
		if err != nil {
			return nil, err
		}
		return []metsgen.ObjectRecord{record}, nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, &InputError{Source: source, Message: err.Error()}
		}
		records := make([]metsgen.ObjectRecord, 0, len(items))
		for i, item := range items {
			record, err := ParseNode(item, fmt.Sprintf("%s[%d]", source, i))
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		}
		return records, nil
	default:
		return nil, &InputError{Source: source, Message: "expected a node object or a list of nodes"}
	}
}

// ParseModelURI extracts the first field_external_uri value from a model
// taxonomy term document.
func ParseModelURI(data []byte, source string) (string, error) {
	if !json.Valid(data) {
		return "", &InputError{Source: source, Message: "not valid JSON"}
	}
	if err := validate(taxonomySchema, data, source); err != nil {
		return "", err
	}

	var term taxonomyTerm
	if err := json.Unmarshal(data, &term); err != nil {
		return "", &InputError{Source: source, Field: "field_external_uri", Message: err.Error()}
	}
	return term.FieldExternalURI[0].URI, nil
}
