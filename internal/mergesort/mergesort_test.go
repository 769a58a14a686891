package mergesort

import (
	"math/bits"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"nil", nil, nil},
		{"empty", []int{}, []int{}},
		{"single", []int{7}, []int{7}},
		{"two ascending", []int{1, 2}, []int{1, 2}},
		{"two descending", []int{2, 1}, []int{1, 2}},
		{"odd length", []int{5, 2, 4, 2, 1}, []int{1, 2, 2, 4, 5}},
		{"already sorted", []int{1, 2, 3, 4, 5, 6}, []int{1, 2, 3, 4, 5, 6}},
		{"reversed", []int{6, 5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5, 6}},
		{"all equal", []int{3, 3, 3, 3}, []int{3, 3, 3, 3}},
		{"negatives", []int{0, -1, 5, -10, 3}, []int{-10, -1, 0, 3, 5}},
		{"extremes", []int{1 << 62, -(1 << 62), 0}, []int{-(1 << 62), 0, 1 << 62}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Clone(tt.in)
			Sort(got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSort_RandomPermutations(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for n := 0; n < 200; n++ {
		in := make([]int, n)
		for i := range in {
			in[i] = rng.IntN(50) - 25
		}
		want := slices.Clone(in)
		slices.Sort(want)

		got := slices.Clone(in)
		Sort(got)

		require.Equal(t, want, got, "n=%d input=%v", n, in)
		require.True(t, IsSorted(got))
	}
}

func TestSort_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	xs := make([]int, 97)
	for i := range xs {
		xs[i] = rng.IntN(1000)
	}

	Sort(xs)
	once := slices.Clone(xs)
	Sort(xs)

	assert.Equal(t, once, xs)
}

func TestSortWithStats_Boundary(t *testing.T) {
	assert.Equal(t, Stats{}, SortWithStats(nil))
	assert.Equal(t, Stats{}, SortWithStats([]int{}))
	assert.Equal(t, Stats{}, SortWithStats([]int{42}))
}

func TestSortWithStats_Exact(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want Stats
	}{
		{"pair", []int{2, 1}, Stats{Comparisons: 1, Moves: 2, MaxDepth: 1}},
		{"sorted four", []int{1, 2, 3, 4}, Stats{Comparisons: 4, Moves: 8, MaxDepth: 2}},
		{"reversed four", []int{4, 3, 2, 1}, Stats{Comparisons: 4, Moves: 8, MaxDepth: 2}},
		{"three", []int{3, 1, 2}, Stats{Comparisons: 3, Moves: 5, MaxDepth: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := slices.Clone(tt.in)
			assert.Equal(t, tt.want, SortWithStats(xs))
			assert.True(t, IsSorted(xs))
		})
	}
}

func TestSortWithStats_ComplexityBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))

	for _, n := range []int{2, 3, 5, 8, 13, 64, 100, 1000, 4096, 5000} {
		xs := make([]int, n)
		for i := range xs {
			xs[i] = rng.Int()
		}

		stats := SortWithStats(xs)
		levels := bits.Len(uint(n - 1)) // ceil(log2 n)

		assert.Equal(t, levels, stats.MaxDepth, "n=%d", n)
		assert.LessOrEqual(t, stats.Moves, n*levels, "n=%d", n)
		assert.LessOrEqual(t, stats.Comparisons, stats.Moves, "n=%d", n)
		assert.True(t, IsSorted(xs))
	}
}

func TestOrder_Stable(t *testing.T) {
	in := []int{3, 1, 3, 2, 1, 3}
	snapshot := slices.Clone(in)

	got := Order(in)

	assert.Equal(t, []int{1, 4, 3, 0, 2, 5}, got)
	assert.Equal(t, snapshot, in, "Order must not modify its input")
}

func TestOrder_RandomStability(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))

	for n := 0; n < 100; n++ {
		in := make([]int, n)
		for i := range in {
			in[i] = rng.IntN(5)
		}

		perm := Order(in)
		require.Len(t, perm, n)

		seen := make([]bool, n)
		for k, p := range perm {
			require.False(t, seen[p], "position %d appears twice", p)
			seen[p] = true
			if k == 0 {
				continue
			}
			prev := perm[k-1]
			require.LessOrEqual(t, in[prev], in[p])
			if in[prev] == in[p] {
				require.Less(t, prev, p, "equal keys must keep input order")
			}
		}
	}
}

func TestOrder_Boundary(t *testing.T) {
	assert.Equal(t, []int{}, Order(nil))
	assert.Equal(t, []int{0}, Order([]int{9}))
}

func TestIsSorted(t *testing.T) {
	assert.True(t, IsSorted(nil))
	assert.True(t, IsSorted([]int{1}))
	assert.True(t, IsSorted([]int{1, 1, 2}))
	assert.False(t, IsSorted([]int{2, 1}))
}
