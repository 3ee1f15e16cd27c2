package field

// WithType retags the field as the target variant, reshaping the payload
// according to the transition rules. The rules are checked in order and the
// first match wins:
//
//  1. target is option-bearing and the field has no options: seed the two
//     default options with fresh ids
//  2. target is option-bearing and options exist: retag, options untouched
//  3. target is section and options exist: drop the options and reset the
//     question to the default section title
//  4. target is image: reset the question to the default image title,
//     keeping any caption or previously set reference
//  5. otherwise: retag only
//
// Every (field, target) pair produces a defined result and reapplying the
// current type is a no-op: once options exist rule 1 cannot fire again, so
// there is no id churn.
func (f Field) WithType(target Type, ids IDFunc) Field {
	if !target.Valid() {
		return f
	}

	switch {
	case target.HasOptions() && len(f.optionsRef()) == 0:
		ids = ensureIDs(ids)
		f.body = Choice{
			Kind:     target,
			Options:  defaultOptions(ids),
			Required: f.Required(),
		}
	case target.HasOptions():
		body := f.body.(Choice)
		body.Kind = target
		f.body = body
	case target == TypeSection && len(f.optionsRef()) > 0:
		f.body = Section{Body: f.Description()}
		f.Question = DefaultSectionTitle
		f.FormattedQuestion = ""
	case target == TypeImage:
		f.body = Image{URL: f.ImageURL(), Caption: f.Description()}
		f.Question = DefaultImageTitle
		f.FormattedQuestion = ""
	default:
		switch target {
		case TypeFreeText:
			f.body = FreeText{Required: f.Required()}
		case TypeSection:
			f.body = Section{Body: f.Description()}
		}
	}
	return f
}

// optionsRef exposes the backing option slice without copying; transition
// guards only need its length.
func (f Field) optionsRef() []Option {
	if body, ok := f.body.(Choice); ok {
		return body.Options
	}
	return nil
}

func defaultOptions(ids IDFunc) []Option {
	return []Option{
		{ID: ids(), Value: "Option 1"},
		{ID: ids(), Value: "Option 2"},
	}
}
