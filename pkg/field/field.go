package field

import "strings"

// Type enumerates the supported field variants.
type Type string

const (
	TypeMultipleChoice Type = "multiple_choice"
	TypeDropdown       Type = "dropdown"
	TypeFreeText       Type = "free_text"
	TypeCheckbox       Type = "checkbox"
	TypeSection        Type = "section"
	TypeImage          Type = "image"
	TypeRanking        Type = "ranking"
)

// Types lists every variant in presentation order.
func Types() []Type {
	return []Type{
		TypeMultipleChoice,
		TypeDropdown,
		TypeFreeText,
		TypeCheckbox,
		TypeSection,
		TypeImage,
		TypeRanking,
	}
}

// Valid reports whether t is one of the supported variants.
func (t Type) Valid() bool {
	switch t {
	case TypeMultipleChoice, TypeDropdown, TypeFreeText, TypeCheckbox,
		TypeSection, TypeImage, TypeRanking:
		return true
	}
	return false
}

// HasOptions reports whether the variant carries an ordered option list.
func (t Type) HasOptions() bool {
	switch t {
	case TypeMultipleChoice, TypeDropdown, TypeCheckbox, TypeRanking:
		return true
	}
	return false
}

// Static reports whether the variant is a content block rather than an
// answerable question. Static variants never report required.
func (t Type) Static() bool {
	return t == TypeSection || t == TypeImage
}

// Default titles applied by type transitions, the generic question
// placeholder, and the fixed "Other" option value.
const (
	DefaultSectionTitle = "Section Title"
	DefaultImageTitle   = "Image Question"
	QuestionPlaceholder = "Question"
	OtherOptionValue    = "Other"
)

// Option is one selectable or rankable choice within an option-bearing field.
// The id is assigned at creation and stays stable across edits and reorders.
type Option struct {
	ID    string `json:"id" yaml:"id"`
	Value string `json:"value" yaml:"value"`
}

// Body is the closed variant payload attached to a Field. Exactly one of the
// concrete payload types below backs every Field.
type Body interface {
	Type() Type
	clone() Body
}

// Choice backs the four option-bearing variants. Kind selects which one.
type Choice struct {
	Kind     Type
	Options  []Option
	Required bool
}

// Type implements Body.
func (c Choice) Type() Type { return c.Kind }

func (c Choice) clone() Body {
	c.Options = cloneOptions(c.Options)
	return c
}

// FreeText backs the free_text variant.
type FreeText struct {
	Required bool
}

// Type implements Body.
func (FreeText) Type() Type { return TypeFreeText }

func (t FreeText) clone() Body { return t }

// Section backs the section variant. Body holds the block text shown under
// the section title.
type Section struct {
	Body string
}

// Type implements Body.
func (Section) Type() Type { return TypeSection }

func (s Section) clone() Body { return s }

// Image backs the image variant.
type Image struct {
	URL     string
	Caption string
}

// Type implements Body.
func (Image) Type() Type { return TypeImage }

func (i Image) clone() Body { return i }

// Field is one question or content block in a form. The zero value is not
// usable; construct fields with New or Decode.
type Field struct {
	ID                string
	Question          string
	FormattedQuestion string

	body Body
}

// New creates a field of the requested type with a fresh id and the variant's
// default payload. Option-bearing types start with the two default options.
// The question is left empty (image excepted) so editing surfaces show their
// placeholder prompt.
func New(t Type, ids IDFunc) Field {
	ids = ensureIDs(ids)
	f := Field{ID: ids(), body: FreeText{}}
	return f.WithType(t, ids)
}

// Type returns the field's variant tag.
func (f Field) Type() Type {
	if f.body == nil {
		return TypeFreeText
	}
	return f.body.Type()
}

// Body returns the variant payload with a defensive copy of any option list.
func (f Field) Body() Body {
	if f.body == nil {
		return FreeText{}
	}
	return f.body.clone()
}

// WithBody returns a copy of the field carrying the supplied payload.
func (f Field) WithBody(body Body) Field {
	if body == nil {
		body = FreeText{}
	}
	f.body = body.clone()
	return f
}

// Required reports whether the field must be answered. Static variants
// (section, image) always report false.
func (f Field) Required() bool {
	switch body := f.body.(type) {
	case Choice:
		return body.Required
	case FreeText:
		return body.Required
	default:
		return false
	}
}

// ToggleRequired flips the required flag. It is inert for static variants.
func (f Field) ToggleRequired() Field {
	switch body := f.body.(type) {
	case Choice:
		body.Required = !body.Required
		f.body = body
	case FreeText:
		body.Required = !body.Required
		f.body = body
	}
	return f
}

// Options returns a copy of the option list, or nil for variants without one.
func (f Field) Options() []Option {
	body, ok := f.body.(Choice)
	if !ok {
		return nil
	}
	return cloneOptions(body.Options)
}

// Description returns the section body text or image caption, and the empty
// string for every other variant.
func (f Field) Description() string {
	switch body := f.body.(type) {
	case Section:
		return body.Body
	case Image:
		return body.Caption
	default:
		return ""
	}
}

// WithDescription sets the section body text or image caption. It is a no-op
// for variants that carry neither.
func (f Field) WithDescription(text string) Field {
	switch body := f.body.(type) {
	case Section:
		body.Body = text
		f.body = body
	case Image:
		body.Caption = text
		f.body = body
	}
	return f
}

// ImageURL returns the image reference, empty for non-image variants.
func (f Field) ImageURL() string {
	if body, ok := f.body.(Image); ok {
		return body.URL
	}
	return ""
}

// WithImageURL sets the image reference. No-op for non-image variants.
func (f Field) WithImageURL(url string) Field {
	if body, ok := f.body.(Image); ok {
		body.URL = strings.TrimSpace(url)
		f.body = body
	}
	return f
}

// WithQuestion sets the plain question text and clears any stored rich
// representation, which only the editing session maintains.
func (f Field) WithQuestion(text string) Field {
	f.Question = text
	f.FormattedQuestion = ""
	return f
}

// Clone returns a deep copy sharing no option storage with the receiver.
func (f Field) Clone() Field {
	if f.body != nil {
		f.body = f.body.clone()
	}
	return f
}

// Duplicate returns an independent copy with a fresh field id and fresh
// option ids. Two fields never share option identity.
func (f Field) Duplicate(ids IDFunc) Field {
	ids = ensureIDs(ids)
	out := f.Clone()
	out.ID = ids()
	if body, ok := out.body.(Choice); ok {
		for i := range body.Options {
			body.Options[i].ID = ids()
		}
		out.body = body
	}
	return out
}

func cloneOptions(in []Option) []Option {
	if in == nil {
		return nil
	}
	return append([]Option(nil), in...)
}
