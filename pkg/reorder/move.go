package reorder

// Move relocates the element at index from so it lands at index to of the
// already-shortened sequence: the element is removed first and then inserted
// using the post-removal index space. Moving downward therefore places the
// element immediately after the one it was dropped on, while moving upward
// places it immediately before. That asymmetry matches where the element is
// visually released and is part of the protocol's contract.
//
// The input slice is not modified. Out-of-range from indices and self-moves
// return the sequence unchanged.
func Move[T any](items []T, from, to int) []T {
	if from < 0 || from >= len(items) || from == to {
		return items
	}

	out := make([]T, 0, len(items))
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)

	if to < 0 {
		to = 0
	}
	if to > len(out) {
		to = len(out)
	}

	out = append(out, *new(T))
	copy(out[to+1:], out[to:])
	out[to] = items[from]
	return out
}
