package builder

import (
	stdhtml "html"

	"github.com/goliatone/go-formbuilder/pkg/field"
	"github.com/goliatone/go-formbuilder/pkg/reorder"
	"github.com/goliatone/go-formbuilder/pkg/richtext"
)

// Session is the transient editing state for one field. It works on a
// detached copy seeded from the collection and holds no reference back;
// state only moves forward, as explicit Update messages through the sink.
// After Commit, Discard, or Delete the session is closed and every operation
// becomes a no-op.
type Session struct {
	ids     field.IDFunc
	sink    Sink
	working field.Field
	surface *richtext.Surface
	drag    *reorder.Controller
	closed  bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionIDFunc overrides the identifier generator used for fresh option
// and duplicate ids.
func WithSessionIDFunc(ids field.IDFunc) SessionOption {
	return func(s *Session) {
		if ids != nil {
			s.ids = ids
		}
	}
}

// NewSession opens a session over a copy of f. The question surface is
// seeded from the stored formatted question when present, from the plain
// question unless it still reads as the generic placeholder, and left empty
// otherwise. A nil sink discards updates.
func NewSession(f field.Field, sink Sink, options ...SessionOption) *Session {
	s := &Session{
		ids:     field.NewID,
		sink:    sink,
		working: f.Clone(),
		surface: richtext.NewSurface(),
		drag:    reorder.NewController(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	s.surface.Seed(s.working.FormattedQuestion, s.working.Question, field.QuestionPlaceholder)
	if !s.surface.Empty() {
		s.syncQuestion()
	}
	return s
}

// Field returns a snapshot of the working copy.
func (s *Session) Field() field.Field {
	return s.working.Clone()
}

// Closed reports whether the session has ended.
func (s *Session) Closed() bool {
	return s.closed
}

// SetType retags the working copy through the transition rules and re-seeds
// the question surface when the transition replaced the question text.
func (s *Session) SetType(t field.Type) {
	if s.closed {
		return
	}
	before := s.working.Question
	s.working = s.working.WithType(t, s.ids)
	if s.working.Question != before {
		s.surface.Seed(s.working.FormattedQuestion, s.working.Question, field.QuestionPlaceholder)
	}
	if !s.surface.Empty() {
		s.syncQuestion()
	}
	s.mirror()
}

// SetQuestion replaces the surface content with plain text.
func (s *Session) SetQuestion(plain string) {
	if s.closed {
		return
	}
	s.surface.SetContent(stdhtml.EscapeString(plain))
	s.syncQuestion()
}

// SetQuestionHTML replaces the surface content with raw HTML from the
// editing surface; it is sanitized before it touches the working copy.
func (s *Session) SetQuestionHTML(raw string) {
	if s.closed {
		return
	}
	s.surface.SetContent(raw)
	s.syncQuestion()
}

// Format applies an inline formatting command to the question surface.
func (s *Session) Format(cmd richtext.Command) {
	if s.closed {
		return
	}
	s.surface.Apply(cmd)
	s.syncQuestion()
}

// ToggleRequired flips the required flag; inert for section and image.
func (s *Session) ToggleRequired() {
	if s.closed {
		return
	}
	s.working = s.working.ToggleRequired()
}

// SetDescription sets the section body text or image caption.
func (s *Session) SetDescription(text string) {
	if s.closed {
		return
	}
	s.working = s.working.WithDescription(text)
}

// SetImageURL sets the image reference.
func (s *Session) SetImageURL(url string) {
	if s.closed {
		return
	}
	s.working = s.working.WithImageURL(url)
}

// AddOption appends an option, using the positional placeholder when value
// is empty.
func (s *Session) AddOption(value string) {
	if s.closed {
		return
	}
	s.working = s.working.AddOption(s.ids, value)
	s.mirror()
}

// AddOtherOption appends an "Other" option unconditionally.
func (s *Session) AddOtherOption() {
	if s.closed {
		return
	}
	s.working = s.working.AddOtherOption(s.ids)
	s.mirror()
}

// UpdateOption replaces an option value; unknown ids are a no-op.
func (s *Session) UpdateOption(id, value string) {
	if s.closed {
		return
	}
	s.working = s.working.UpdateOption(id, value)
	s.mirror()
}

// DeleteOption removes an option; unknown ids are a no-op.
func (s *Session) DeleteOption(id string) {
	if s.closed {
		return
	}
	s.working = s.working.DeleteOption(id)
	s.mirror()
}

// OptionDrag exposes the session's option drag controller, scoped to this
// field's option list only.
func (s *Session) OptionDrag() *reorder.Controller {
	return s.drag
}

// DropOption completes the active option drag at index j and applies the
// move to the working copy's option list.
func (s *Session) DropOption(j int) {
	if s.closed {
		s.drag.Cancel()
		return
	}
	if from, to, ok := s.drag.Drop(j); ok {
		s.working = s.working.MoveOption(from, to)
		s.mirror()
	}
}

// Commit finalizes the rich-text state into the working copy, pushes it to
// the sink as the committed field, closes the session, and returns the final
// field.
func (s *Session) Commit() field.Field {
	if s.closed {
		return s.working.Clone()
	}
	if !s.surface.Empty() {
		s.syncQuestion()
	}
	s.closed = true
	s.emit(Update{Kind: UpdateCommit, Field: s.working.Clone()})
	return s.working.Clone()
}

// Discard closes the session without touching the collection.
func (s *Session) Discard() {
	s.closed = true
}

// Duplicate builds an independent field from the current working copy with a
// fresh field id and entirely fresh option ids. The working copy and the
// session stay untouched; the caller decides where the copy goes.
func (s *Session) Duplicate() field.Field {
	return s.working.Duplicate(s.ids)
}

// Delete asks the sink to remove the field and closes the session. The
// removal itself is the collection's job.
func (s *Session) Delete() {
	if s.closed {
		return
	}
	s.closed = true
	s.emit(Update{Kind: UpdateDelete, Field: s.working.Clone()})
}

// syncQuestion re-derives both question representations from the surface.
// The formatted variant is stored only when it carries markup beyond the
// escaped plain text, keeping it optional on unformatted questions.
func (s *Session) syncQuestion() {
	text := s.surface.Text()
	html := s.surface.HTML()
	s.working.Question = text
	if html == "" || html == stdhtml.EscapeString(text) {
		s.working.FormattedQuestion = ""
	} else {
		s.working.FormattedQuestion = html
	}
}

// mirror forwards the working copy as a live update. The sink decides
// whether the variant warrants applying it before commit.
func (s *Session) mirror() {
	s.emit(Update{Kind: UpdateLive, Field: s.working.Clone()})
}

func (s *Session) emit(u Update) {
	if s.sink != nil {
		s.sink.ApplyUpdate(u)
	}
}
