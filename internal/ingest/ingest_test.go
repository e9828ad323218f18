package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/metsgen/pkg/metsgen"
)

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestParseNode_DrupalDocument(t *testing.T) {
	record, err := ParseNode(readTestdata(t, "node.json"), "node.json")
	require.NoError(t, err)

	assert.Equal(t, "9a6e2c74-0c0b-4c55-9b4b-2f5a6f1f2c3d", record.UUID)
	assert.Equal(t, "/taxonomy/term/24", record.ModelURL)
	assert.Equal(t, []string{"/node/3", "/node/7"}, record.MemberOf)
}

func TestParseNode_MemberOfShapes(t *testing.T) {
	tests := []struct {
		name     string
		memberOf string
		want     []string
	}{
		{"absent", ``, nil},
		{"null", `, "field_member_of": null`, nil},
		{"empty list", `, "field_member_of": []`, []string{}},
		{"bare string", `, "field_member_of": "/node/3"`, []string{"/node/3"}},
		{"empty string", `, "field_member_of": ""`, nil},
		{"single reference", `, "field_member_of": {"target_id": 3, "url": "/node/3"}`, []string{"/node/3"}},
		{"list", `, "field_member_of": [{"url": "/node/3"}, {"url": "/node/4"}]`, []string{"/node/3", "/node/4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `{"uuid": [{"value": "abc-123"}], "field_model": [{"url": "/taxonomy/term/1"}]` + tt.memberOf + `}`
			record, err := ParseNode([]byte(doc), "node.json")
			require.NoError(t, err)
			assert.Equal(t, tt.want, record.MemberOf)
		})
	}
}

func TestParseNode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"uuid": [`},
		{"missing uuid", `{"field_model": [{"url": "/taxonomy/term/1"}]}`},
		{"empty uuid list", `{"uuid": [], "field_model": [{"url": "/taxonomy/term/1"}]}`},
		{"missing model", `{"uuid": [{"value": "abc"}]}`},
		{"model without url", `{"uuid": [{"value": "abc"}], "field_model": [{"target_id": 1}]}`},
		{"uuid is a string", `{"uuid": "abc", "field_model": [{"url": "/taxonomy/term/1"}]}`},
		{"member_of is a number", `{"uuid": [{"value": "abc"}], "field_model": [{"url": "/t/1"}], "field_member_of": 3}`},
		{"not an object", `[1, 2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNode([]byte(tt.doc), "node.json")
			require.Error(t, err)
			assert.True(t, errors.Is(err, metsgen.ErrMalformedInput), "got %v", err)

			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, "node.json", inputErr.Source)
		})
	}
}

func TestParseNode_UUIDPassesThroughUnvalidated(t *testing.T) {
	doc := `{"uuid": [{"value": "not a uuid at all"}], "field_model": [{"url": "/taxonomy/term/1"}]}`
	record, err := ParseNode([]byte(doc), "node.json")
	require.NoError(t, err)
	assert.Equal(t, "not a uuid at all", record.UUID)
}

func TestParseMembers_List(t *testing.T) {
	records, err := ParseMembers(readTestdata(t, "members.json"), "members.json")
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, "page-0001", records[0].UUID)
	assert.Equal(t, "page-0002", records[1].UUID)
	assert.Equal(t, "page-0003", records[2].UUID)
	for _, r := range records {
		assert.Equal(t, "/taxonomy/term/31", r.ModelURL)
	}
}

func TestParseMembers_BareObjectEqualsOneElementList(t *testing.T) {
	member := `{"uuid": [{"value": "child-1"}], "field_model": [{"url": "/taxonomy/term/9"}]}`

	bare, err := ParseMembers([]byte(member), "members.json")
	require.NoError(t, err)
	list, err := ParseMembers([]byte("["+member+"]"), "members.json")
	require.NoError(t, err)

	assert.Equal(t, list, bare)
	require.Len(t, bare, 1)
	assert.Equal(t, "child-1", bare[0].UUID)
}

func TestParseMembers_Empty(t *testing.T) {
	for _, body := range []string{"", "  \n", "null", "[]"} {
		records, err := ParseMembers([]byte(body), "members.json")
		require.NoError(t, err, "body %q", body)
		assert.Empty(t, records, "body %q", body)
	}
}

func TestParseMembers_Malformed(t *testing.T) {
	_, err := ParseMembers([]byte(`"just a string"`), "members.json")
	assert.ErrorIs(t, err, metsgen.ErrMalformedInput)

	_, err = ParseMembers([]byte(`[{"uuid": [{"value": "ok"}], "field_model": [{"url": "/t/1"}]}, {"uuid": []}]`), "members.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "members.json[1]")
}

func TestParseModelURI(t *testing.T) {
	doc := `{
		"tid": [{"value": 24}],
		"name": [{"value": "Page"}],
		"field_external_uri": [{"uri": "http://id.loc.gov/ontologies/bibframe/part", "title": "", "options": []}]
	}`
	uri, err := ParseModelURI([]byte(doc), "/taxonomy/term/24")
	require.NoError(t, err)
	assert.Equal(t, "http://id.loc.gov/ontologies/bibframe/part", uri)
}

func TestParseModelURI_FirstValueWins(t *testing.T) {
	doc := `{"field_external_uri": [{"uri": "first"}, {"uri": "second"}]}`
	uri, err := ParseModelURI([]byte(doc), "term")
	require.NoError(t, err)
	assert.Equal(t, "first", uri)
}

func TestParseModelURI_Malformed(t *testing.T) {
	for _, doc := range []string{`{}`, `{"field_external_uri": []}`, `<html></html>`} {
		_, err := ParseModelURI([]byte(doc), "term")
		assert.ErrorIs(t, err, metsgen.ErrMalformedInput, "doc %q", doc)
	}
}

func TestInputError_Message(t *testing.T) {
	err := &InputError{Source: "node.json", Field: "uuid", Message: "missing"}
	assert.Equal(t, "malformed input in node.json [field: uuid]: missing", err.Error())

	err = &InputError{Source: "node.json", Message: "not valid JSON"}
	assert.Equal(t, "malformed input in node.json: not valid JSON", err.Error())
}
