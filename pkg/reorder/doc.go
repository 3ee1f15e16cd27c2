// Package reorder implements the two-phase pick-up/drop protocol used to
// move one element of an ordered sequence to a new position. The Controller
// tracks a single drag interaction; Move performs the relocation. The field
// list and each field's option list run independent Controller instances
// that never interact.
package reorder
