package util

import "time"

// Overlaps reports whether the interval [newStart, newEnd) conflicts with
// [existingStart, existingEnd). Intervals are half-open: a shift that ends
// exactly when the next one starts does not conflict.
func Overlaps(existingStart, existingEnd, newStart, newEnd time.Time) bool {
	return newStart.Before(existingEnd) && newEnd.After(existingStart)
}
