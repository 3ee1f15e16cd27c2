// Package importer turns OpenAPI request bodies into seed form fields, so a
// form does not have to start from scratch when a schema for the data
// already exists. The conversion lives in internal/importer; this package
// wires it to a document loader and parser.
package importer

import (
	"context"
	"errors"
	"fmt"
	"sort"

	internalimporter "github.com/goliatone/go-formbuilder/internal/importer"
	internalloader "github.com/goliatone/go-formbuilder/internal/openapi/loader"
	internalparser "github.com/goliatone/go-formbuilder/internal/openapi/parser"
	"github.com/goliatone/go-formbuilder/pkg/field"
	pkgopenapi "github.com/goliatone/go-formbuilder/pkg/openapi"
)

// Importer loads an OpenAPI document and maps one of its operations onto an
// ordered list of form fields.
type Importer struct {
	loader  pkgopenapi.Loader
	parser  pkgopenapi.Parser
	builder *internalimporter.Builder
	cfg     internalimporter.Options
}

// Option configures the importer.
type Option func(*Importer)

// WithLoader replaces the default document loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(i *Importer) {
		if loader != nil {
			i.loader = loader
		}
	}
}

// WithParser replaces the default document parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(i *Importer) {
		if parser != nil {
			i.parser = parser
		}
	}
}

// WithLabeler overrides how property names become question labels.
func WithLabeler(labeler func(string) string) Option {
	return func(i *Importer) {
		i.cfg.Labeler = labeler
	}
}

// WithIDFunc overrides the identifier generator for imported fields.
func WithIDFunc(ids field.IDFunc) Option {
	return func(i *Importer) {
		i.cfg.IDs = ids
	}
}

// New constructs an Importer with offline defaults: filesystem loading and
// eager reference resolution.
func New(options ...Option) *Importer {
	i := &Importer{
		loader: internalloader.New(pkgopenapi.NewLoaderOptions()),
		parser: internalparser.New(pkgopenapi.NewParserOptions()),
	}
	for _, opt := range options {
		if opt != nil {
			opt(i)
		}
	}
	i.builder = internalimporter.New(i.cfg)
	return i
}

// Fields loads the document behind src and converts the identified
// operation's request body into seed fields.
func (i *Importer) Fields(ctx context.Context, src pkgopenapi.Source, operationID string) ([]field.Field, error) {
	if operationID == "" {
		return nil, errors.New("importer: operation id is required")
	}
	operations, err := i.operations(ctx, src)
	if err != nil {
		return nil, err
	}
	op, ok := operations[operationID]
	if !ok {
		return nil, fmt.Errorf("importer: operation %q not found in %s", operationID, src.Location())
	}
	return i.builder.Fields(op)
}

// OperationIDs lists the operations available in the document behind src,
// sorted for stable presentation.
func (i *Importer) OperationIDs(ctx context.Context, src pkgopenapi.Source) ([]string, error) {
	operations, err := i.operations(ctx, src)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(operations))
	for id := range operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (i *Importer) operations(ctx context.Context, src pkgopenapi.Source) (map[string]pkgopenapi.Operation, error) {
	if src == nil {
		return nil, errors.New("importer: source is required")
	}
	doc, err := i.loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return i.parser.Operations(ctx, doc)
}
