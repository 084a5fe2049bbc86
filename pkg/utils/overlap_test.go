package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 4, 1, hour, minute, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		existingStart, existingEnd time.Time
		newStart, newEnd           time.Time
		want                       bool
	}{
		{"adjacent after", at(9, 0), at(17, 0), at(17, 0), at(20, 0), false},
		{"adjacent before", at(17, 0), at(20, 0), at(9, 0), at(17, 0), false},
		{"one minute overlap", at(9, 0), at(17, 0), at(16, 59), at(20, 0), true},
		{"contained", at(9, 0), at(17, 0), at(10, 0), at(12, 0), true},
		{"containing", at(10, 0), at(12, 0), at(9, 0), at(17, 0), true},
		{"identical", at(9, 0), at(17, 0), at(9, 0), at(17, 0), true},
		{"disjoint", at(9, 0), at(12, 0), at(13, 0), at(17, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.existingStart, tc.existingEnd, tc.newStart, tc.newEnd))
		})
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	a1, a2 := at(8, 0), at(14, 30)
	b1, b2 := at(14, 0), at(22, 0)

	assert.Equal(t,
		Overlaps(a1, a2, b1, b2),
		Overlaps(b1, b2, a1, a2))
}
