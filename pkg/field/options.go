package field

import (
	"fmt"
	"strings"
)

// Option editor operations. Every operation returns the updated field and is
// a silent no-op when the variant carries no options or the target id is
// unknown; the caller only ever issues ids it just rendered, so a missing id
// means another event got there first and there is nothing left to do.

// AddOption appends an option. A value that is empty after trimming appends
// the positional placeholder "Option N" where N is the new length; the
// numbering ignores existing option values entirely.
func (f Field) AddOption(ids IDFunc, value string) Field {
	body, ok := f.body.(Choice)
	if !ok {
		return f
	}
	ids = ensureIDs(ids)
	value = strings.TrimSpace(value)
	if value == "" {
		value = fmt.Sprintf("Option %d", len(body.Options)+1)
	}
	body.Options = append(cloneOptions(body.Options), Option{ID: ids(), Value: value})
	f.body = body
	return f
}

// AddOtherOption appends an "Other" option unconditionally, duplicates
// included.
func (f Field) AddOtherOption(ids IDFunc) Field {
	body, ok := f.body.(Choice)
	if !ok {
		return f
	}
	ids = ensureIDs(ids)
	body.Options = append(cloneOptions(body.Options), Option{ID: ids(), Value: OtherOptionValue})
	f.body = body
	return f
}

// UpdateOption replaces the value of the option with the matching id.
func (f Field) UpdateOption(id, value string) Field {
	body, ok := f.body.(Choice)
	if !ok {
		return f
	}
	for i, opt := range body.Options {
		if opt.ID == id {
			options := cloneOptions(body.Options)
			options[i].Value = value
			body.Options = options
			f.body = body
			return f
		}
	}
	return f
}

// DeleteOption removes the option with the matching id. Deleting the last
// option is allowed; this layer enforces no minimum count.
func (f Field) DeleteOption(id string) Field {
	body, ok := f.body.(Choice)
	if !ok {
		return f
	}
	for i, opt := range body.Options {
		if opt.ID == id {
			options := cloneOptions(body.Options)
			body.Options = append(options[:i], options[i+1:]...)
			f.body = body
			return f
		}
	}
	return f
}

// MoveOption relocates the option at index from so it occupies index to of
// the shortened list, matching the drop semantics of package reorder. Out of
// range indices leave the field unchanged.
func (f Field) MoveOption(from, to int) Field {
	body, ok := f.body.(Choice)
	if !ok {
		return f
	}
	if from < 0 || from >= len(body.Options) || from == to {
		return f
	}
	options := cloneOptions(body.Options)
	moved := options[from]
	options = append(options[:from], options[from+1:]...)
	if to < 0 {
		to = 0
	}
	if to > len(options) {
		to = len(options)
	}
	options = append(options[:to], append([]Option{moved}, options[to:]...)...)
	body.Options = options
	f.body = body
	return f
}
