package generator

import "google.golang.org/genai"

// Kind is the JSON type of a schema node.
type Kind string

const (
	KindObject  Kind = "object"
	KindArray   Kind = "array"
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
)

// Schema declares the response shape sent with a Request.
type Schema struct {
	Kind        Kind
	Description string
	Properties  map[string]*Schema
	// Required also fixes property order in the generated output.
	Required []string
	Items    *Schema
	MinItems int
	MaxItems int
}

func Object(properties map[string]*Schema, required ...string) *Schema {
	return &Schema{Kind: KindObject, Properties: properties, Required: required}
}

// StringArray declares an array of strings holding between min and max items.
func StringArray(description string, minItems, maxItems int) *Schema {
	return &Schema{
		Kind:        KindArray,
		Description: description,
		Items:       &Schema{Kind: KindString},
		MinItems:    minItems,
		MaxItems:    maxItems,
	}
}

func Array(items *Schema, description string) *Schema {
	return &Schema{Kind: KindArray, Description: description, Items: items}
}

func String(description string) *Schema {
	return &Schema{Kind: KindString, Description: description}
}

func Number(description string) *Schema {
	return &Schema{Kind: KindNumber, Description: description}
}

func Integer(description string) *Schema {
	return &Schema{Kind: KindInteger, Description: description}
}

// toGenai converts the declared shape into the Gemini response schema.
func (s *Schema) toGenai() *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        genaiType(s.Kind),
		Description: s.Description,
		Items:       s.Items.toGenai(),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = prop.toGenai()
		}
		out.Required = append([]string(nil), s.Required...)
		out.PropertyOrdering = append([]string(nil), s.Required...)
	}
	if s.MinItems > 0 {
		n := int64(s.MinItems)
		out.MinItems = &n
	}
	if s.MaxItems > 0 {
		n := int64(s.MaxItems)
		out.MaxItems = &n
	}
	return out
}

func genaiType(k Kind) genai.Type {
	switch k {
	case KindObject:
		return genai.TypeObject
	case KindArray:
		return genai.TypeArray
	case KindNumber:
		return genai.TypeNumber
	case KindInteger:
		return genai.TypeInteger
	default:
		return genai.TypeString
	}
}
