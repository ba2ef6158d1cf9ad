package counter

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// Entry represents an element-count pair.
type Entry[E comparable] struct {
	Element E
	Count   int
}

// rankHeap is a heap of entries. With desc set it pops the most frequent
// entry first, otherwise the least frequent. Equal counts pop in
// ascending element order either way.
type rankHeap[E constraints.Ordered] struct {
	entries []Entry[E]
	desc    bool
}

var _ heap.Interface = (*rankHeap[rune])(nil)

func (h *rankHeap[_]) Len() int {
	return len(h.entries)
}

func (h *rankHeap[E]) Less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if a.Count != b.Count {
		// yes, the sign flips for desc
		// see container/heap PriorityQueue example
		return (a.Count > b.Count) == h.desc
	}
	return a.Element < b.Element
}

func (h *rankHeap[_]) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

func (h *rankHeap[E]) Push(x any) {
	h.entries = append(h.entries, x.(Entry[E]))
}

func (h *rankHeap[E]) Pop() any {
	x := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return x
}

// heapk heapifies the element-count pairs in the counter,
// then pops off k elements and returns them.
func heapk[M ~map[E]int, E constraints.Ordered](ctr M, k int, desc bool) []Entry[E] {
	if k == 0 {
		return []Entry[E]{}
	} else if k > len(ctr) {
		panic("k is larger than number of elements in ctr")
	} else if k < 0 {
		panic("k is negative")
	}

	h := &rankHeap[E]{
		entries: make([]Entry[E], 0, len(ctr)),
		desc:    desc,
	}
	for el, cnt := range ctr {
		h.entries = append(h.entries, Entry[E]{Element: el, Count: cnt})
	}

	heap.Init(h)

	out := make([]Entry[E], k)
	for i := range out {
		out[i] = heap.Pop(h).(Entry[E])
	}

	return out
}

// TopK returns the k most-frequent elements from the counter.
// The returned entries are in descending order of frequency.
// Elements with the same count are returned in ascending order.
func TopK[M ~map[E]int, E constraints.Ordered](ctr M, k int) []Entry[E] {
	return heapk(ctr, k, true)
}

// BottomK returns the k least-frequent elements from the counter.
// The returned entries are in ascending order of frequency.
// Elements with the same count are returned in ascending order.
func BottomK[M ~map[E]int, E constraints.Ordered](ctr M, k int) []Entry[E] {
	return heapk(ctr, k, false)
}

// Ranked returns every entry of the counter, ordered as TopK orders them.
func Ranked[M ~map[E]int, E constraints.Ordered](ctr M) []Entry[E] {
	return TopK(ctr, len(ctr))
}
