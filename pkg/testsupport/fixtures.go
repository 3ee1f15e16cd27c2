// Package testsupport provides fixture helpers shared by contract tests:
// deterministic id sequences, JSON golden files gated on UPDATE_GOLDENS, and
// go-cmp diffs.
package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/field"
)

// SequentialIDs returns an IDFunc producing prefix-1, prefix-2, ... so tests
// can assert on identifiers without seeding UUIDs.
func SequentialIDs(prefix string) field.IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// MustLoadRecords loads a JSON golden file into a wire record list.
func MustLoadRecords(t *testing.T, path string) []field.Record {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load golden: %v", err)
	}
	var out []field.Record
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	return out
}

// WriteRecords writes a record-list golden when UPDATE_GOLDENS is enabled.
func WriteRecords(t *testing.T, path string, records []field.Record) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden diffs two values, returning an empty string when they match.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}
