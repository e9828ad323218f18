package ingest

import (
	_ "embed"
	"fmt"

	"github.com/kaptinlin/jsonschema"
)

//go:embed schema/node.schema.json
var nodeSchemaJSON []byte

//go:embed schema/taxonomy.schema.json
var taxonomySchemaJSON []byte

var (
	nodeSchema     = mustCompile("node", nodeSchemaJSON)
	taxonomySchema = mustCompile("taxonomy", taxonomySchemaJSON)
)

func mustCompile(name string, data []byte) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile(data)
	if err != nil {
		panic(fmt.Sprintf("compile embedded %s schema: %v", name, err))
	}
	return schema
}

// validate checks data against schema. fmt prints the keyword map in
// sorted key order, so messages are stable.
func validate(schema *jsonschema.Schema, data []byte, source string) error {
	result := schema.ValidateJSON(data)
	if result.IsValid() {
		return nil
	}
	return &InputError{
		Source:  source,
		Message: fmt.Sprintf("schema validation failed: %v", result.Errors),
	}
}
