package entity

import "slices"

// Clone copies s into a fresh non-nil slice.
func Clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// Prepend inserts item at position 0, keeping most-recent-first order.
func Prepend[T any](s []T, item T) []T {
	return slices.Insert(s, 0, item)
}

// RemoveFirst removes the first element matching pred.
// It reports false and leaves s untouched when nothing matches.
func RemoveFirst[T any](s []T, pred func(T) bool) ([]T, bool) {
	i := slices.IndexFunc(s, pred)
	if i < 0 {
		return s, false
	}
	return slices.Delete(s, i, i+1), true
}

// Find returns a pointer to the first element matching pred, or nil.
func Find[T any](s []T, pred func(T) bool) *T {
	i := slices.IndexFunc(s, pred)
	if i < 0 {
		return nil
	}
	return &s[i]
}
