// Package formbuilder assembles ordered lists of typed form fields through
// interactive editing sessions: field variants with option lists, a shared
// pick-up/drop reorder protocol, rich-text questions kept in lockstep with
// their sanitized HTML, and an importer that seeds fields from OpenAPI
// request bodies. The root package re-exports the common types and hides the
// internal loader and parser implementations behind constructors.
package formbuilder

import (
	internalloader "github.com/goliatone/go-formbuilder/internal/openapi/loader"
	internalparser "github.com/goliatone/go-formbuilder/internal/openapi/parser"
	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/field"
	"github.com/goliatone/go-formbuilder/pkg/importer"
	pkgopenapi "github.com/goliatone/go-formbuilder/pkg/openapi"
)

// Field is one question or content block in a form.
type Field = field.Field

// FieldType is the variant tag selecting a field's behaviour and shape.
type FieldType = field.Type

// Record is the flat wire shape consumers accept.
type Record = field.Record

// Collection holds the ordered committed fields of one form.
type Collection = builder.Collection

// Session is the transient editing state for one field.
type Session = builder.Session

// NewCollection constructs an empty field collection.
func NewCollection(options ...builder.Option) *builder.Collection {
	return builder.New(options...)
}

// NewImporter constructs an OpenAPI field importer.
func NewImporter(options ...importer.Option) *importer.Importer {
	return importer.New(options...)
}

// NewLoader constructs a document loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	cfg := pkgopenapi.NewLoaderOptions(options...)
	return internalloader.New(cfg)
}

// NewParser constructs a document parser backed by the internal
// implementation.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	cfg := pkgopenapi.NewParserOptions(options...)
	return internalparser.New(cfg)
}
