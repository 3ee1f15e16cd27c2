package openapi

import "errors"

// Document wraps a raw OpenAPI payload and its origin. Exposing this type
// instead of kin-openapi structs keeps the public API decoupled from the
// parsing library.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("openapi: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}
	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Operation models the subset of OpenAPI operation metadata the field
// importer consumes. Responses are deliberately absent: only request bodies
// describe what a user would fill in.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	RequestBody Schema
}

// Schema represents a request body or nested property within an operation.
type Schema struct {
	Ref         string
	Type        string
	Format      string
	Title       string
	Description string
	Default     any
	Enum        []any
	Required    []string
	Properties  map[string]Schema
	Items       *Schema
}

// Clone creates a deep copy of the schema tree to avoid accidental mutation.
// Cycles can only arise through the Items pointer; a schema already being
// cloned higher up the tree keeps its original pointer so the copy
// terminates.
func (s Schema) Clone() Schema {
	return s.clone(map[*Schema]bool{})
}

func (s Schema) clone(visited map[*Schema]bool) Schema {
	cloned := s
	if len(s.Required) > 0 {
		cloned.Required = append([]string(nil), s.Required...)
	}
	if len(s.Enum) > 0 {
		cloned.Enum = append([]any(nil), s.Enum...)
	}
	if len(s.Properties) > 0 {
		cloned.Properties = make(map[string]Schema, len(s.Properties))
		for k, v := range s.Properties {
			cloned.Properties[k] = v.clone(visited)
		}
	}
	if s.Items != nil && !visited[s.Items] {
		visited[s.Items] = true
		items := s.Items.clone(visited)
		cloned.Items = &items
	}
	return cloned
}

// Empty reports whether the schema carries no usable shape.
func (s Schema) Empty() bool {
	return s.Type == "" && s.Ref == "" && len(s.Properties) == 0 && s.Items == nil
}
