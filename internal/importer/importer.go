package importer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goliatone/go-formbuilder/pkg/field"
	pkgopenapi "github.com/goliatone/go-formbuilder/pkg/openapi"
)

// Options configures the schema-to-field conversion. They are assembled by
// the public wrapper in pkg/importer.
type Options struct {
	Labeler func(string) string
	IDs     field.IDFunc
}

func defaultOptions() Options {
	return Options{
		Labeler: DefaultLabeler,
		IDs:     field.NewID,
	}
}

// Builder converts OpenAPI operations into seed form fields.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	if options.IDs != nil {
		opts.IDs = options.IDs
	}
	return &Builder{opts: opts}
}

// Fields maps the operation's request body onto an ordered field list. The
// mapping mirrors what a user would otherwise build by hand: enums become
// dropdowns, booleans become a yes/no choice, enum arrays become checkbox
// groups, nested objects flatten into a section followed by their property
// fields, and everything else becomes a free-text question.
func (b *Builder) Fields(op pkgopenapi.Operation) ([]field.Field, error) {
	if op.ID == "" {
		return nil, errors.New("importer: operation id is required")
	}
	if op.RequestBody.Empty() {
		return nil, fmt.Errorf("importer: operation %q has no request body schema", op.ID)
	}
	return b.fieldsFromSchema("", op.RequestBody, false, true)
}

func (b *Builder) fieldsFromSchema(name string, schema pkgopenapi.Schema, required, root bool) ([]field.Field, error) {
	switch {
	case len(schema.Enum) > 0:
		return []field.Field{b.choiceField(field.TypeDropdown, name, schema, required, schema.Enum)}, nil
	case schema.Type == "boolean":
		return []field.Field{b.choiceField(field.TypeMultipleChoice, name, schema, required, []any{"Yes", "No"})}, nil
	case schema.Type == "array":
		return b.fieldsFromArray(name, schema, required)
	case schema.Type == "object" || schema.Type == "":
		return b.fieldsFromObject(name, schema, root)
	default:
		return []field.Field{b.textField(name, schema, required)}, nil
	}
}

func (b *Builder) fieldsFromObject(name string, schema pkgopenapi.Schema, root bool) ([]field.Field, error) {
	if len(schema.Properties) == 0 {
		if root {
			return nil, errors.New("importer: request body has no properties")
		}
		return []field.Field{b.textField(name, schema, false)}, nil
	}

	requiredSet := make(map[string]struct{}, len(schema.Required))
	for _, item := range schema.Required {
		requiredSet[item] = struct{}{}
	}

	propNames := make([]string, 0, len(schema.Properties))
	for propName := range schema.Properties {
		propNames = append(propNames, propName)
	}
	sort.Strings(propNames)

	var fields []field.Field
	if !root {
		// Nested objects flatten into a section heading their properties.
		section := field.New(field.TypeSection, b.opts.IDs)
		section.Question = b.question(name, schema)
		section = section.WithDescription(schema.Description)
		fields = append(fields, section)
	}

	for _, propName := range propNames {
		converted, err := b.fieldsFromSchema(propName, schema.Properties[propName], b.isRequired(requiredSet, propName), false)
		if err != nil {
			return nil, err
		}
		fields = append(fields, converted...)
	}
	return fields, nil
}

func (b *Builder) fieldsFromArray(name string, schema pkgopenapi.Schema, required bool) ([]field.Field, error) {
	if schema.Items == nil {
		return nil, fmt.Errorf("importer: array field %q missing items", name)
	}
	items := *schema.Items
	if len(items.Enum) > 0 {
		// Multi-pick over a fixed vocabulary maps onto a checkbox group.
		return []field.Field{b.choiceField(field.TypeCheckbox, name, schema, required, items.Enum)}, nil
	}
	if items.Type == "object" {
		return b.fieldsFromObject(name, items, false)
	}
	return []field.Field{b.textField(name, schema, required)}, nil
}

func (b *Builder) choiceField(kind field.Type, name string, schema pkgopenapi.Schema, required bool, values []any) field.Field {
	options := make([]field.Option, 0, len(values))
	for _, value := range values {
		options = append(options, field.Option{
			ID:    b.opts.IDs(),
			Value: fmt.Sprintf("%v", value),
		})
	}
	f := field.New(kind, b.opts.IDs)
	f = f.WithBody(field.Choice{Kind: kind, Options: options, Required: required})
	f.Question = b.question(name, schema)
	return f
}

func (b *Builder) textField(name string, schema pkgopenapi.Schema, required bool) field.Field {
	f := field.New(field.TypeFreeText, b.opts.IDs)
	f = f.WithBody(field.FreeText{Required: required})
	f.Question = b.question(name, schema)
	return f
}

func (b *Builder) question(name string, schema pkgopenapi.Schema) string {
	if schema.Title != "" {
		return schema.Title
	}
	return b.opts.Labeler(name)
}

func (b *Builder) isRequired(set map[string]struct{}, name string) bool {
	_, ok := set[name]
	return ok
}
