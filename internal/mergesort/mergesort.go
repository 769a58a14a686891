package mergesort

import "slices"

// Stats counts the work done by one sort call.
// Moves counts writes back into the sequence during merges.
type Stats struct {
	Comparisons int `json:"comparisons"`
	Moves       int `json:"moves"`
	MaxDepth    int `json:"max_depth"`
}

// sorter carries the scratch space shared by every level of one sort call.
// pos is nil unless the caller asked for the permutation.
type sorter struct {
	keys       []int
	scratch    []int
	pos        []int
	posScratch []int
	stats      *Stats
}

func newSorter(keys, pos []int, stats *Stats) *sorter {
	s := &sorter{
		keys:    keys,
		scratch: make([]int, len(keys)),
		stats:   stats,
	}
	if pos != nil {
		s.pos = pos
		s.posScratch = make([]int, len(pos))
	}
	return s
}

// Sort sorts xs in place in non-decreasing order.
// Equal elements keep their relative input order.
func Sort(xs []int) {
	if len(xs) <= 1 {
		return
	}
	newSorter(xs, nil, nil).sort(0, len(xs), 1)
}

// SortWithStats is Sort with instrumentation.
// For len(xs) <= 1 it returns the zero Stats.
func SortWithStats(xs []int) Stats {
	var stats Stats
	if len(xs) <= 1 {
		return stats
	}
	newSorter(xs, nil, &stats).sort(0, len(xs), 1)
	return stats
}

// Order returns the positions of xs in stable sorted order without modifying
// xs: xs[p[0]] <= xs[p[1]] <= ..., and equal values appear in ascending
// position.
func Order(xs []int) []int {
	pos := make([]int, len(xs))
	for i := range pos {
		pos[i] = i
	}
	if len(xs) <= 1 {
		return pos
	}
	keys := slices.Clone(xs)
	newSorter(keys, pos, nil).sort(0, len(keys), 1)
	return pos
}

// IsSorted reports whether xs is in non-decreasing order.
func IsSorted(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return false
		}
	}
	return true
}

func (s *sorter) sort(lo, hi, depth int) {
	if hi-lo <= 1 {
		return
	}
	if s.stats != nil && depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}

	mid := lo + (hi-lo)/2
	s.sort(lo, mid, depth+1)
	s.sort(mid, hi, depth+1)
	s.merge(lo, mid, hi)
}

// merge combines the sorted runs [lo,mid) and [mid,hi) back into keys.
func (s *sorter) merge(lo, mid, hi int) {
	copy(s.scratch[lo:hi], s.keys[lo:hi])
	if s.pos != nil {
		copy(s.posScratch[lo:hi], s.pos[lo:hi])
	}

	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if s.stats != nil {
			s.stats.Comparisons++
		}
		// Take the right head only when it is strictly smaller; ties go left.
		if s.scratch[j] < s.scratch[i] {
			s.put(k, j)
			j++
		} else {
			s.put(k, i)
			i++
		}
		k++
	}

	for ; i < mid; i, k = i+1, k+1 {
		s.put(k, i)
	}
	for ; j < hi; j, k = j+1, k+1 {
		s.put(k, j)
	}
}

func (s *sorter) put(k, from int) {
	s.keys[k] = s.scratch[from]
	if s.pos != nil {
		s.pos[k] = s.posScratch[from]
	}
	if s.stats != nil {
		s.stats.Moves++
	}
}
