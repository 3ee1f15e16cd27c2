package field_test

import (
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/field"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func TestAddOption_PlaceholderNumberingIsPositional(t *testing.T) {
	ids := testsupport.SequentialIDs("id")
	f := field.New(field.TypeDropdown, ids)
	f = f.UpdateOption(f.Options()[0].ID, "Renamed")

	f = f.AddOption(ids, "")
	f = f.AddOption(ids, "   ")
	opts := f.Options()
	if len(opts) != 4 {
		t.Fatalf("expected 4 options, got %d", len(opts))
	}
	if opts[2].Value != "Option 3" || opts[3].Value != "Option 4" {
		t.Fatalf("placeholders must number by position, got %q and %q", opts[2].Value, opts[3].Value)
	}
}

func TestAddOption_TrimsValue(t *testing.T) {
	ids := testsupport.SequentialIDs("id")
	f := field.New(field.TypeCheckbox, ids)
	f = f.AddOption(ids, "  Cheese  ")
	opts := f.Options()
	if opts[len(opts)-1].Value != "Cheese" {
		t.Fatalf("expected trimmed value, got %q", opts[len(opts)-1].Value)
	}
}

func TestAddOtherOption_NeverDeduplicates(t *testing.T) {
	ids := testsupport.SequentialIDs("id")
	f := field.New(field.TypeMultipleChoice, ids)
	f = f.AddOtherOption(ids)
	f = f.AddOtherOption(ids)
	opts := f.Options()
	if len(opts) != 4 {
		t.Fatalf("expected 4 options, got %d", len(opts))
	}
	if opts[2].Value != field.OtherOptionValue || opts[3].Value != field.OtherOptionValue {
		t.Fatalf("expected two Other options, got %q and %q", opts[2].Value, opts[3].Value)
	}
	if opts[2].ID == opts[3].ID {
		t.Fatalf("duplicate Other options still need distinct ids")
	}
}

func TestUpdateOption_UnknownIDIsNoop(t *testing.T) {
	ids := testsupport.SequentialIDs("id")
	f := field.New(field.TypeDropdown, ids)
	want := f.Options()

	f = f.UpdateOption("missing", "whatever")
	if diff := testsupport.CompareGolden(want, f.Options()); diff != "" {
		t.Fatalf("update with unknown id must not change anything (-want +got):\n%s", diff)
	}
}

func TestDeleteOption_DownToZeroThenReAdd(t *testing.T) {
	ids := testsupport.SequentialIDs("id")
	f := field.New(field.TypeCheckbox, ids)
	for _, opt := range f.Options() {
		f = f.DeleteOption(opt.ID)
	}
	if len(f.Options()) != 0 {
		t.Fatalf("expected empty option list, got %v", f.Options())
	}

	f = f.DeleteOption("missing")
	if len(f.Options()) != 0 {
		t.Fatalf("delete on empty list must be a no-op")
	}

	f = f.AddOption(ids, "")
	opts := f.Options()
	if len(opts) != 1 || opts[0].Value != "Option 1" {
		t.Fatalf("re-adding after emptying must restart at Option 1, got %v", opts)
	}
}

func TestOptionEditor_NoopForNonChoiceVariants(t *testing.T) {
	ids := testsupport.SequentialIDs("id")
	f := field.New(field.TypeSection, ids)
	f = f.AddOption(ids, "x")
	f = f.AddOtherOption(ids)
	if f.Options() != nil {
		t.Fatalf("section must never gain options, got %v", f.Options())
	}
}

func TestMoveOption_UsesPostRemovalIndexSpace(t *testing.T) {
	ids := testsupport.SequentialIDs("id")
	f := field.New(field.TypeRanking, ids)
	f = f.AddOption(ids, "Option 3")
	f = f.AddOption(ids, "Option 4")

	moved := f.MoveOption(0, 2)
	got := values(moved.Options())
	want := []string{"Option 2", "Option 3", "Option 1", "Option 4"}
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("downward move (-want +got):\n%s", diff)
	}

	moved = f.MoveOption(3, 1)
	got = values(moved.Options())
	want = []string{"Option 1", "Option 4", "Option 2", "Option 3"}
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("upward move (-want +got):\n%s", diff)
	}
}

func values(opts []field.Option) []string {
	out := make([]string, 0, len(opts))
	for _, opt := range opts {
		out = append(out, opt.Value)
	}
	return out
}
