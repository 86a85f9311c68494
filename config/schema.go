package config

//go:generate go run ../tools/schema-generator -o ../schema/p4mux.schema.json

import (
	"encoding/json"
	"path"
	"reflect"

	"github.com/invopop/jsonschema"
)

// GenerateSchema reflects the JSON Schema of the config file. Nothing is
// required and unknown keys are rejected, which is what `config validate`
// relies on to catch typos.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		RequiredFromJSONSchemaTags: true,
		FieldNameTag:               "toml",
		// config.Config and logging.Config would otherwise share a definition.
		Namer: func(t reflect.Type) string {
			if t.PkgPath() == "" {
				return t.Name()
			}
			return path.Base(t.PkgPath()) + "." + t.Name()
		},
	}

	schema := r.Reflect(&Config{})
	schema.Title = "p4mux configuration"
	schema.Description = "Schema for ~/.p4mux.conf"

	return json.MarshalIndent(schema, "", "  ")
}
