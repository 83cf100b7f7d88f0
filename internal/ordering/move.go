// Package ordering reorders display sequences by moving one element from a
// source index to a target index, shifting the elements in between.
package ordering

// Move returns a copy of items with the element at from relocated to to.
// Out-of-range indexes or from == to yield an unchanged copy.
func Move[T any](items []T, from, to int) []T {
	out := make([]T, len(items))
	copy(out, items)
	if from == to || from < 0 || to < 0 || from >= len(out) || to >= len(out) {
		return out
	}
	v := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = v
	return out
}

// Valid reports whether a move between the two indexes would change a
// sequence of length n.
func Valid(n, from, to int) bool {
	return from != to && from >= 0 && to >= 0 && from < n && to < n
}
