package field

import "github.com/google/uuid"

// IDFunc produces opaque unique identifiers for fields and options. The
// default implementation returns UUID strings; tests inject deterministic
// sequences instead.
type IDFunc func() string

// NewID is the default IDFunc.
func NewID() string {
	return uuid.NewString()
}

func ensureIDs(ids IDFunc) IDFunc {
	if ids == nil {
		return NewID
	}
	return ids
}
