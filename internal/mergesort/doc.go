// Package mergesort sorts integer sequences in place with a top-down merge sort.
//
// The split point is mid = len/2, so the left half never holds more elements
// than the right. The merge takes from the left run only when its head is
// strictly less than the right head, which keeps equal elements in their
// input order. Sequences of length 0 or 1 are returned without a single
// comparison.
//
// Each call allocates one scratch buffer the length of the input and reuses
// it at every level of recursion. Recursion depth is ceil(log2 n).
//
// # Usage
//
//	xs := []int{5, 2, 4, 2, 1}
//	mergesort.Sort(xs) // xs == [1 2 2 4 5]
//
//	stats := mergesort.SortWithStats(xs)
//	fmt.Println(stats.Comparisons, stats.Moves, stats.MaxDepth)
//
// Order exposes the stable permutation itself, which is the only way to
// observe stability when the elements are plain integers:
//
//	mergesort.Order([]int{3, 1, 3}) // [1 0 2]
package mergesort
