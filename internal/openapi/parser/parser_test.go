package parser_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-formbuilder/internal/openapi/parser"
	pkgopenapi "github.com/goliatone/go-formbuilder/pkg/openapi"
)

const petstoreDoc = `
openapi: 3.0.0
info:
  title: Pet Intake
  version: 1.0.0
paths:
  /pets:
    post:
      operationId: createPet
      summary: Register a pet
      requestBody:
        content:
          application/json:
            schema:
              type: object
              required: [name]
              properties:
                name:
                  type: string
                species:
                  type: string
                  enum: [cat, dog]
      responses:
        "201":
          description: created
  /pets/{id}:
    get:
      responses:
        "200":
          description: ok
`

func parseDoc(t *testing.T, payload string) map[string]pkgopenapi.Operation {
	t.Helper()

	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("petstore.yaml"), []byte(payload))
	ops, err := parser.New(pkgopenapi.ParserOptions{}).Operations(context.Background(), doc)
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	return ops
}

func TestParser_ExtractsRequestBody(t *testing.T) {
	ops := parseDoc(t, petstoreDoc)

	op, ok := ops["createPet"]
	if !ok {
		t.Fatalf("missing createPet, got %v", keys(ops))
	}
	if op.Method != "POST" || op.Path != "/pets" {
		t.Fatalf("unexpected method/path: %s %s", op.Method, op.Path)
	}
	if op.Summary != "Register a pet" {
		t.Fatalf("unexpected summary %q", op.Summary)
	}

	body := op.RequestBody
	if body.Type != "object" {
		t.Fatalf("expected object body, got %q", body.Type)
	}
	if len(body.Required) != 1 || body.Required[0] != "name" {
		t.Fatalf("unexpected required list %v", body.Required)
	}
	species, ok := body.Properties["species"]
	if !ok {
		t.Fatalf("missing species property")
	}
	if len(species.Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %v", species.Enum)
	}
}

func TestParser_SynthesizesIDForAnonymousOperations(t *testing.T) {
	ops := parseDoc(t, petstoreDoc)

	op, ok := ops["get:/pets/{id}"]
	if !ok {
		t.Fatalf("missing synthesized operation id, got %v", keys(ops))
	}
	if !op.RequestBody.Empty() {
		t.Fatalf("GET without request body must yield an empty schema")
	}
}

func TestParser_TerminatesOnRecursiveSchemas(t *testing.T) {
	const recursiveDoc = `
openapi: 3.0.0
info:
  title: Linked Nodes
  version: 1.0.0
paths:
  /nodes:
    post:
      operationId: createNode
      requestBody:
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/Node'
      responses:
        "201":
          description: created
components:
  schemas:
    Node:
      type: object
      properties:
        label:
          type: string
        next:
          $ref: '#/components/schemas/Node'
`
	ops := parseDoc(t, recursiveDoc)

	body := ops["createNode"].RequestBody
	if body.Type != "object" {
		t.Fatalf("expected object body, got %q", body.Type)
	}
	next, ok := body.Properties["next"]
	if !ok {
		t.Fatalf("missing next property")
	}
	if next.Ref == "" {
		t.Fatalf("recursive property must terminate at its reference")
	}
	if len(next.Properties) != 0 {
		t.Fatalf("recursive property must not expand, got %v", next.Properties)
	}
}

func TestParser_RejectsEmptyDocuments(t *testing.T) {
	p := parser.New(pkgopenapi.ParserOptions{})

	if _, err := p.Operations(context.Background(), pkgopenapi.Document{}); err == nil {
		t.Fatalf("expected error for empty payload")
	}

	noPaths := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("empty.yaml"), []byte("openapi: 3.0.0\ninfo: {title: t, version: v}\npaths: {}\n"))
	if _, err := p.Operations(context.Background(), noPaths); err == nil {
		t.Fatalf("expected error for document without paths")
	}
}

func keys(ops map[string]pkgopenapi.Operation) []string {
	out := make([]string, 0, len(ops))
	for k := range ops {
		out = append(out, k)
	}
	return out
}
