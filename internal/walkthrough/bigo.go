package walkthrough

// LinearSearch returns the first index of target in xs, or -1. It looks at
// every element in the worst case: O(n).
func LinearSearch(xs []int, target int) int {
	for i, x := range xs {
		if x == target {
			return i
		}
	}
	return -1
}

// BinarySearch returns an index of target in xs, or -1. xs must be sorted
// in non-decreasing order. Each comparison halves the range: O(log n).
func BinarySearch(xs []int, target int) int {
	lo, hi := 0, len(xs)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case xs[mid] == target:
			return mid
		case xs[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}

// Fibonacci returns the nth Fibonacci number by plain recursion, which makes
// O(2^n) calls. n <= 1 returns n.
func Fibonacci(n int) int {
	v, _ := fibonacci(n)
	return v
}

// fibonacci also reports how many calls the recursion made.
func fibonacci(n int) (value, calls int) {
	if n <= 1 {
		return n, 1
	}
	a, ca := fibonacci(n - 1)
	b, cb := fibonacci(n - 2)
	return a + b, ca + cb + 1
}
