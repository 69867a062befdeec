package argsfile

import (
	"github.com/invopop/jsonschema"
)

const schemaID = "https://github.com/cardinalby/go-cli-parser/schemas/args.json"

// Schema returns JSON Schema of the YAML/JSON definitions file
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(&File{})
	schema.ID = schemaID
	schema.Title = "Argument definitions"
	schema.Description = "Definitions registered with the parser in the listed order"
	return schema
}
