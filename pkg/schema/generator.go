package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// JSONSchema represents a JSON Schema document
type JSONSchema struct {
	Schema      string                 `json:"$schema,omitempty"`
	ID          string                 `json:"$id,omitempty"`
	Title       string                 `json:"title,omitempty"`
	Description string                 `json:"description,omitempty"`
	Type        string                 `json:"type"`
	Required    []string               `json:"required,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty"`
	Items       *JSONSchema            `json:"items,omitempty"`
	Enum        []any                  `json:"enum,omitempty"`
	Default     any                    `json:"default,omitempty"`
	Pattern     string                 `json:"pattern,omitempty"`
	Minimum     *int                   `json:"minimum,omitempty"`
	MinLength   *int                   `json:"minLength,omitempty"`
	MinItems    *int                   `json:"minItems,omitempty"`

	AdditionalProperties *bool `json:"additionalProperties,omitempty"`
}

const schemaRef = "https://json-schema.org/draft/2020-12/schema"

// Generator builds JSON schemas from Go structs. Property names come from the
// configured struct tag and constraints from the `schema` tag, for example
// `schema:"required,minLength=1,enum=a|b"`.
type Generator struct {
	tagKey string
	baseID string
}

type Option func(*Generator)

// WithTagKey selects the struct tag that names properties. Defaults to "json".
func WithTagKey(key string) Option {
	return func(g *Generator) { g.tagKey = key }
}

// WithBaseID prefixes the $id of generated root schemas.
func WithBaseID(base string) Option {
	return func(g *Generator) { g.baseID = strings.TrimSuffix(base, "/") }
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{tagKey: "json"}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateSchema generates a JSON schema for a struct type.
func (g *Generator) GenerateSchema(t reflect.Type) (*JSONSchema, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("root type must be a struct, got %s", t.Kind())
	}

	root, err := g.generateStructSchema(t)
	if err != nil {
		return nil, err
	}
	root.Schema = schemaRef
	root.Title = t.Name()
	if g.baseID != "" {
		root.ID = fmt.Sprintf("%s/%s.json", g.baseID, strings.ToLower(t.Name()))
	}
	return root, nil
}

func (g *Generator) generateSchemaForType(t reflect.Type) (*JSONSchema, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		return g.generateStructSchema(t)
	case reflect.Slice, reflect.Array:
		items, err := g.generateSchemaForType(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("failed to generate schema for array items: %w", err)
		}
		return &JSONSchema{Type: "array", Items: items}, nil
	case reflect.String:
		return &JSONSchema{Type: "string"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &JSONSchema{Type: "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return &JSONSchema{Type: "number"}, nil
	case reflect.Bool:
		return &JSONSchema{Type: "boolean"}, nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", t.Kind())
	}
}

func (g *Generator) generateStructSchema(t reflect.Type) (*JSONSchema, error) {
	closed := false
	schema := &JSONSchema{
		Type:                 "object",
		Properties:           make(map[string]*JSONSchema),
		AdditionalProperties: &closed,
	}

	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := g.fieldName(field)
		if name == "" {
			continue
		}

		fieldSchema, err := g.generateSchemaForType(field.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to generate schema for field %s: %w", field.Name, err)
		}
		fieldSchema.Description = field.Tag.Get("description")

		required, err := applyTag(field.Tag.Get("schema"), fieldSchema)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}

		schema.Properties[name] = fieldSchema
		if required {
			schema.Required = append(schema.Required, name)
		}
	}

	return schema, nil
}

// applyTag copies schema tag constraints onto s and reports whether the field is required.
func applyTag(tag string, s *JSONSchema) (bool, error) {
	if tag == "" {
		return false, nil
	}

	required := false
	for part := range strings.SplitSeq(tag, ",") {
		part = strings.TrimSpace(part)
		key, value, _ := strings.Cut(part, "=")

		switch key {
		case "required":
			required = true
		case "enum":
			for e := range strings.SplitSeq(value, "|") {
				s.Enum = append(s.Enum, e)
			}
		case "default":
			s.Default = value
		case "pattern":
			s.Pattern = value
		case "minimum", "minLength", "minItems":
			n, err := strconv.Atoi(value)
			if err != nil {
				return false, fmt.Errorf("invalid %s %q", key, value)
			}
			switch key {
			case "minimum":
				s.Minimum = &n
			case "minLength":
				s.MinLength = &n
			default:
				s.MinItems = &n
			}
		case "":
		default:
			return false, fmt.Errorf("unknown schema constraint %q", key)
		}
	}
	return required, nil
}

func (g *Generator) fieldName(field reflect.StructField) string {
	tag := field.Tag.Get(g.tagKey)
	if tag == "-" {
		return ""
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return strings.ToLower(field.Name[:1]) + field.Name[1:]
	}
	return name
}

// GenerateJSONSchema generates the indented schema document for the type of v.
func (g *Generator) GenerateJSONSchema(v any) ([]byte, error) {
	schema, err := g.GenerateSchema(reflect.TypeOf(v))
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}
	return data, nil
}
