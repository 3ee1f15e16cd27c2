package builder

import "github.com/goliatone/go-formbuilder/pkg/field"

// UpdateKind distinguishes the messages a session sends to its sink.
type UpdateKind string

const (
	// UpdateLive mirrors an in-flight working copy whose externally visible
	// state cannot wait for commit. Sessions emit it on every option
	// mutation; the sink decides which variants warrant applying it.
	UpdateLive UpdateKind = "live"
	// UpdateCommit replaces the committed field with the final working copy.
	UpdateCommit UpdateKind = "commit"
	// UpdateDelete asks the sink to remove the field entirely.
	UpdateDelete UpdateKind = "delete"
)

// Update is one explicit message from a session to the field owner.
type Update struct {
	Kind  UpdateKind
	Field field.Field
}

// Sink receives session updates. Collection implements it; tests substitute
// recorders.
type Sink interface {
	ApplyUpdate(Update)
}
