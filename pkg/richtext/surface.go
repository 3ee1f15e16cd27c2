package richtext

import (
	stdhtml "html"
	"strings"
)

// Command is one of the inline formatting actions the surface supports.
type Command string

const (
	CommandBold            Command = "bold"
	CommandItalic          Command = "italic"
	CommandStrikethrough   Command = "strikethrough"
	CommandUnderline       Command = "underline"
	CommandClearFormatting Command = "clear-formatting"
)

var commandTags = map[Command]string{
	CommandBold:          "b",
	CommandItalic:        "i",
	CommandStrikethrough: "s",
	CommandUnderline:     "u",
}

// Surface is the structured editing area behind a field's question. It owns
// the sanitized HTML content; HTML and Text always describe the same state,
// with no separate synchronization step.
type Surface struct {
	html string
}

// NewSurface returns an empty surface.
func NewSurface() *Surface {
	return &Surface{}
}

// Seed loads the surface's initial content when an editing session opens:
// the stored formatted question wins, otherwise the plain question unless it
// still equals the generic placeholder, otherwise the surface stays empty so
// the placeholder prompt shows.
func (s *Surface) Seed(formatted, plain, placeholder string) {
	switch {
	case formatted != "":
		s.SetContent(formatted)
	case plain != "" && plain != placeholder:
		s.SetContent(stdhtml.EscapeString(plain))
	default:
		s.html = ""
	}
}

// SetContent replaces the surface content with sanitized raw HTML, as typed
// or pasted input events report it.
func (s *Surface) SetContent(raw string) {
	s.html = Sanitize(raw)
}

// Apply executes a formatting command against the current text. The wrapping
// commands toggle: applying one to content already carrying that formatting
// removes it again. Clear-formatting reduces the content to its plain text.
// Unknown commands leave the surface untouched.
func (s *Surface) Apply(cmd Command) {
	if cmd == CommandClearFormatting {
		s.html = Sanitize(stdhtml.EscapeString(s.Text()))
		return
	}
	tag, ok := commandTags[cmd]
	if !ok {
		return
	}
	if s.html == "" {
		return
	}
	open, closing := "<"+tag+">", "</"+tag+">"
	if wrapped(s.html, open, closing) {
		s.html = Sanitize(strings.TrimSuffix(strings.TrimPrefix(s.html, open), closing))
		return
	}
	s.html = Sanitize(open + s.html + closing)
}

// wrapped reports whether the leading open tag and the trailing closing tag
// form one pair around the whole content. A prefix/suffix check alone is not
// enough: in "<b>a</b> x <b>c</b>" the leading tag closes before the end, so
// stripping the outer pair would splice two separate spans together.
func wrapped(html, open, closing string) bool {
	if !strings.HasPrefix(html, open) || !strings.HasSuffix(html, closing) {
		return false
	}
	inner := html[len(open) : len(html)-len(closing)]
	depth := 0
	for i := 0; i < len(inner); {
		switch {
		case strings.HasPrefix(inner[i:], open):
			depth++
			i += len(open)
		case strings.HasPrefix(inner[i:], closing):
			depth--
			if depth < 0 {
				return false
			}
			i += len(closing)
		default:
			i++
		}
	}
	return true
}

// HTML returns the sanitized markup, safe to store and re-render.
func (s *Surface) HTML() string {
	return s.html
}

// Text returns the plain-text content of the surface.
func (s *Surface) Text() string {
	return Text(s.html)
}

// Empty reports whether the surface has no content.
func (s *Surface) Empty() bool {
	return s.html == ""
}
