package llm

// Type names follow JSON Schema.
const (
	TypeObject  = "object"
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
)

// Property describes one field of a structured response.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// Schema declares the object shape a model must answer with.
type Schema struct {
	Name       string
	Properties map[string]Property
	// Required keeps declaration order; providers and validators rely on it.
	Required []string
}

// JSONSchema renders the schema as a JSON Schema object.
func (s Schema) JSONSchema() map[string]any {
	props := make(map[string]any, len(s.Properties))
	for name, p := range s.Properties {
		props[name] = p
	}
	return map[string]any{
		"type":                 TypeObject,
		"properties":           props,
		"required":             s.Required,
		"additionalProperties": false,
	}
}
