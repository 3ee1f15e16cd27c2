package builder

import (
	"github.com/goliatone/go-formbuilder/pkg/field"
	"github.com/goliatone/go-formbuilder/pkg/reorder"
)

// Collection is the ordered list of committed fields for one form. It owns
// field identity: ids are assigned on Add, never reused, and stay unique
// across the whole collection. All state is in memory and owned by the
// caller; there is no persistence behind it.
type Collection struct {
	ids    field.IDFunc
	fields []field.Field
	drag   *reorder.Controller
}

// Option configures a Collection.
type Option func(*Collection)

// WithIDFunc overrides the identifier generator, primarily for tests that
// need deterministic ids.
func WithIDFunc(ids field.IDFunc) Option {
	return func(c *Collection) {
		if ids != nil {
			c.ids = ids
		}
	}
}

// WithFields seeds the collection with pre-built fields, e.g. from an
// importer or a decoded seed document.
func WithFields(fields []field.Field) Option {
	return func(c *Collection) {
		c.fields = append(c.fields[:0], fields...)
		for i := range c.fields {
			c.fields[i] = c.fields[i].Clone()
		}
	}
}

// New constructs an empty Collection.
func New(options ...Option) *Collection {
	c := &Collection{
		ids:  field.NewID,
		drag: reorder.NewController(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Len returns the number of committed fields.
func (c *Collection) Len() int {
	return len(c.fields)
}

// Fields returns a deep copy of the ordered field list.
func (c *Collection) Fields() []field.Field {
	out := make([]field.Field, 0, len(c.fields))
	for _, f := range c.fields {
		out = append(out, f.Clone())
	}
	return out
}

// Records returns the ordered field list in its wire shape.
func (c *Collection) Records() []field.Record {
	return field.EncodeAll(c.fields)
}

// Field looks up a committed field by id.
func (c *Collection) Field(id string) (field.Field, bool) {
	for _, f := range c.fields {
		if f.ID == id {
			return f.Clone(), true
		}
	}
	return field.Field{}, false
}

// Add appends a new field of the requested type and returns the updated
// list. Option-bearing types arrive with their two default options.
func (c *Collection) Add(t field.Type) []field.Field {
	c.fields = append(c.fields, field.New(t, c.ids))
	return c.Fields()
}

// Edit opens an editing session seeded with a copy of the identified field.
// The session pushes changes back through ApplyUpdate; the collection is
// otherwise untouched until commit. ok is false for unknown ids.
func (c *Collection) Edit(id string) (*Session, bool) {
	f, ok := c.Field(id)
	if !ok {
		return nil, false
	}
	return NewSession(f, c, WithSessionIDFunc(c.ids)), true
}

// Commit finalizes the session into the collection and returns the updated
// list. A nil or already closed session changes nothing.
func (c *Collection) Commit(s *Session) []field.Field {
	if s != nil {
		s.Commit()
	}
	return c.Fields()
}

// Delete removes the identified field. Unknown ids are a no-op: the field
// was already gone and there is nothing to do.
func (c *Collection) Delete(id string) []field.Field {
	for i, f := range c.fields {
		if f.ID == id {
			c.fields = append(c.fields[:i], c.fields[i+1:]...)
			break
		}
	}
	return c.Fields()
}

// Duplicate inserts an independent copy of the identified field directly
// after it, with a fresh field id and fresh option ids.
func (c *Collection) Duplicate(id string) []field.Field {
	for i, f := range c.fields {
		if f.ID == id {
			dup := f.Duplicate(c.ids)
			c.fields = append(c.fields, field.Field{})
			copy(c.fields[i+2:], c.fields[i+1:])
			c.fields[i+1] = dup
			break
		}
	}
	return c.Fields()
}

// Reorder moves the field at index from to index to of the shortened list,
// using the drop semantics of package reorder.
func (c *Collection) Reorder(from, to int) []field.Field {
	c.fields = reorder.Move(c.fields, from, to)
	return c.Fields()
}

// Drag exposes the field-level drag controller. It is independent from every
// session's option drag controller; the two never interact.
func (c *Collection) Drag() *reorder.Controller {
	return c.drag
}

// DropDragged completes the active field drag at index j and applies the
// resulting move. Without an active drag, or dropped on itself, the order is
// unchanged and the drag state still resets.
func (c *Collection) DropDragged(j int) []field.Field {
	if from, to, ok := c.drag.Drop(j); ok {
		return c.Reorder(from, to)
	}
	return c.Fields()
}

// ApplyUpdate implements Sink. Live updates apply immediately only for
// ranking fields; other variants surface on commit alone. Updates for ids no
// longer present fall through silently.
func (c *Collection) ApplyUpdate(u Update) {
	switch u.Kind {
	case UpdateLive:
		if u.Field.Type() != field.TypeRanking {
			return
		}
		c.replace(u.Field)
	case UpdateCommit:
		c.replace(u.Field)
	case UpdateDelete:
		c.Delete(u.Field.ID)
	}
}

func (c *Collection) replace(f field.Field) {
	for i := range c.fields {
		if c.fields[i].ID == f.ID {
			c.fields[i] = f.Clone()
			return
		}
	}
}
