// Package counter tallies how often each element occurs in a sequence.
// It offers two equivalent ways to build a tally, ranks tallies by
// frequency, and provides utility functions for combining them.
package counter

import (
	"golang.org/x/exp/maps"
)

// Count counts occurrences of each element of the slice
// and returns a map of elements to their counts.
// A missing key reads as 0, so each element is incremented in place.
func Count[S ~[]E, E comparable](seq S) map[E]int {
	c := make(map[E]int)

	for _, v := range seq {
		c[v]++
	}

	return c
}

// CountLookup is like Count, but looks up each element's current count
// with an explicit presence check before storing count+1.
// It always returns the same content as Count.
func CountLookup[S ~[]E, E comparable](seq S) map[E]int {
	c := make(map[E]int)

	for _, v := range seq {
		n, ok := c[v]
		if !ok {
			n = 0
		}
		c[v] = n + 1
	}

	return c
}

// combine copies a into a fresh counter, then merges each count of b
// into it using f.
func combine[M ~map[E]int, E comparable](a, b M, f func(a, b int) int) M {
	out := make(M, len(a)+len(b))
	maps.Copy(out, a)

	for el, cnt := range b {
		out[el] = f(out[el], cnt)
	}

	return out
}

// Add adds counter a and b together and returns a copy.
func Add[M ~map[E]int, E comparable](a, b M) M {
	return combine(a, b, func(l, r int) int { return l + r })
}

// Subtract subtracts the counter b from a and returns a copy.
// Elements whose difference is zero are kept with a count of 0.
func Subtract[M ~map[E]int, E comparable](a, b M) M {
	return combine(a, b, func(l, r int) int { return l - r })
}

// Total sums up all counts in the counter.
func Total[M ~map[E]int, E comparable](ctr M) int {
	sum := 0

	for _, cnt := range ctr {
		sum += cnt
	}

	return sum
}

// Equal reports whether a and b hold the same counts.
// A nil counter is equal to an empty one.
func Equal[M ~map[E]int, E comparable](a, b M) bool {
	return maps.Equal(a, b)
}
