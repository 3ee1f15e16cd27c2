package field

import "fmt"

// Record is the flat wire shape consumers of the builder accept. It mirrors
// the Field model with every variant payload flattened into optional
// attributes. The camelCase keys are the wire contract, so the YAML tags
// must spell them out; yaml.v3 would otherwise lowercase the field names
// and silently drop formattedQuestion and imageUrl.
type Record struct {
	ID                string   `json:"id" yaml:"id"`
	Type              Type     `json:"type" yaml:"type"`
	Question          string   `json:"question" yaml:"question"`
	FormattedQuestion string   `json:"formattedQuestion,omitempty" yaml:"formattedQuestion,omitempty"`
	Required          bool     `json:"required" yaml:"required"`
	Options           []Option `json:"options,omitempty" yaml:"options,omitempty"`
	Description       string   `json:"description,omitempty" yaml:"description,omitempty"`
	ImageURL          string   `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
}

// Encode flattens a field into its wire record.
func Encode(f Field) Record {
	return Record{
		ID:                f.ID,
		Type:              f.Type(),
		Question:          f.Question,
		FormattedQuestion: f.FormattedQuestion,
		Required:          f.Required(),
		Options:           f.Options(),
		Description:       f.Description(),
		ImageURL:          f.ImageURL(),
	}
}

// EncodeAll flattens an ordered field list.
func EncodeAll(fields []Field) []Record {
	if len(fields) == 0 {
		return nil
	}
	out := make([]Record, 0, len(fields))
	for _, f := range fields {
		out = append(out, Encode(f))
	}
	return out
}

// Decode rebuilds a field from its wire record. Attributes that do not apply
// to the record's variant are discarded: a section never keeps options, a
// static variant never keeps required, and only images keep a reference.
// Records produced by Encode round-trip losslessly.
func Decode(r Record) (Field, error) {
	if r.ID == "" {
		return Field{}, fmt.Errorf("field: record is missing an id")
	}
	if !r.Type.Valid() {
		return Field{}, fmt.Errorf("field: unknown type %q", r.Type)
	}

	f := Field{
		ID:                r.ID,
		Question:          r.Question,
		FormattedQuestion: r.FormattedQuestion,
	}

	switch {
	case r.Type.HasOptions():
		f.body = Choice{
			Kind:     r.Type,
			Options:  cloneOptions(r.Options),
			Required: r.Required,
		}
	case r.Type == TypeFreeText:
		f.body = FreeText{Required: r.Required}
	case r.Type == TypeSection:
		f.body = Section{Body: r.Description}
	case r.Type == TypeImage:
		f.body = Image{URL: r.ImageURL, Caption: r.Description}
	}
	return f, nil
}

// DecodeAll rebuilds an ordered field list, failing on the first bad record.
func DecodeAll(records []Record) ([]Field, error) {
	if len(records) == 0 {
		return nil, nil
	}
	out := make([]Field, 0, len(records))
	for i, r := range records {
		f, err := Decode(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, f)
	}
	return out, nil
}
