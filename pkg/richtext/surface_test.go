package richtext_test

import (
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/richtext"
)

func TestSanitize_StripsScriptButKeepsFormatting(t *testing.T) {
	got := richtext.Sanitize(`<b>Hi</b><script>alert("x")</script><em>there</em>`)
	want := `<b>Hi</b><em>there</em>`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSanitize_StripsAttributes(t *testing.T) {
	got := richtext.Sanitize(`<span onclick="steal()">safe</span>`)
	want := `<span>safe</span>`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSanitize_MalformedDegradesToStripped(t *testing.T) {
	got := richtext.Sanitize(`<b><i>unclosed`)
	if got == "" {
		t.Fatalf("malformed input should still keep recoverable text")
	}
	if text := richtext.Text(got); text != "unclosed" {
		t.Fatalf("expected text %q, got %q", "unclosed", text)
	}
}

func TestText_ExtractsNestedContent(t *testing.T) {
	got := richtext.Text(`<p><b>Hello</b> <i>world</i></p>`)
	if got != "Hello world" {
		t.Fatalf("expected %q, got %q", "Hello world", got)
	}
}

func TestSurface_CommandsKeepTextStable(t *testing.T) {
	s := richtext.NewSurface()
	s.SetContent("Describe your role")

	commands := []richtext.Command{
		richtext.CommandBold,
		richtext.CommandItalic,
		richtext.CommandUnderline,
		richtext.CommandStrikethrough,
		richtext.CommandClearFormatting,
	}
	for _, cmd := range commands {
		s.Apply(cmd)
		if got := s.Text(); got != "Describe your role" {
			t.Fatalf("%s: text drifted to %q", cmd, got)
		}
		if got := richtext.Text(s.HTML()); got != s.Text() {
			t.Fatalf("%s: HTML and text views disagree: %q vs %q", cmd, got, s.Text())
		}
	}
}

func TestSurface_BoldToggles(t *testing.T) {
	s := richtext.NewSurface()
	s.SetContent("Question")

	s.Apply(richtext.CommandBold)
	if got := s.HTML(); got != "<b>Question</b>" {
		t.Fatalf("expected bold wrap, got %q", got)
	}
	s.Apply(richtext.CommandBold)
	if got := s.HTML(); got != "Question" {
		t.Fatalf("expected bold removed, got %q", got)
	}
}

func TestSurface_BoldWrapsPartiallyFormattedContent(t *testing.T) {
	s := richtext.NewSurface()
	s.SetContent("<b>a</b> x <b>c</b>")

	// The leading tag closes before the end, so this is not a full wrap and
	// the command must add one instead of splicing the two spans together.
	s.Apply(richtext.CommandBold)
	if got := s.HTML(); got != "<b><b>a</b> x <b>c</b></b>" {
		t.Fatalf("expected full wrap around partial formatting, got %q", got)
	}
	if got := s.Text(); got != "a x c" {
		t.Fatalf("text drifted to %q", got)
	}

	// Now the outer pair is a genuine wrap and the toggle removes it again.
	s.Apply(richtext.CommandBold)
	if got := s.HTML(); got != "<b>a</b> x <b>c</b>" {
		t.Fatalf("expected the full wrap removed, got %q", got)
	}
}

func TestSurface_ClearFormattingFlattens(t *testing.T) {
	s := richtext.NewSurface()
	s.SetContent("<b><i>styled</i></b>")
	s.Apply(richtext.CommandClearFormatting)
	if got := s.HTML(); got != "styled" {
		t.Fatalf("expected plain content, got %q", got)
	}
}

func TestSurface_SeedPrecedence(t *testing.T) {
	s := richtext.NewSurface()

	s.Seed("<b>Rich</b>", "Rich", "Question")
	if got := s.HTML(); got != "<b>Rich</b>" {
		t.Fatalf("formatted content must win, got %q", got)
	}

	s.Seed("", "Plain prompt", "Question")
	if got := s.Text(); got != "Plain prompt" {
		t.Fatalf("plain question must seed the surface, got %q", got)
	}

	s.Seed("", "Question", "Question")
	if !s.Empty() {
		t.Fatalf("placeholder question must leave the surface empty, got %q", s.HTML())
	}

	s.Seed("", "", "Question")
	if !s.Empty() {
		t.Fatalf("no content must leave the surface empty, got %q", s.HTML())
	}
}

func TestSurface_SetContentSanitizes(t *testing.T) {
	s := richtext.NewSurface()
	s.SetContent(`<b>ok</b><script>alert(1)</script>`)
	if got := s.HTML(); got != "<b>ok</b>" {
		t.Fatalf("expected sanitized content, got %q", got)
	}
}

func TestSurface_ApplyOnEmptyIsNoop(t *testing.T) {
	s := richtext.NewSurface()
	s.Apply(richtext.CommandBold)
	if !s.Empty() {
		t.Fatalf("formatting an empty surface must do nothing, got %q", s.HTML())
	}
}
