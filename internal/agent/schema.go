package agent

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema derives the JSON Schema for T as the plain map the
// framework's tool contract expects. Inline (no $ref) and closed
// (additionalProperties: false) so the model sees the full shape.
func GenerateSchema[T any]() map[string]interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)

	data, err := json.Marshal(schema)
	if err != nil {
		panic(err) // reflection of a static type; cannot fail at runtime
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		panic(err)
	}
	return m
}
