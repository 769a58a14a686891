package dynarray

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

// DefaultCapacity is the capacity of a new Array.
const DefaultCapacity = 10

// NotFound is returned by IndexOf when no element matches.
const NotFound = -1

const (
	opInsert   = "insert"
	opRemoveAt = "remove_at"
	opGet      = "get"
)

// Array is a growable sequence of integers.
//
// The zero value is an empty array ready to use; its first write allocates
// DefaultCapacity slots.
type Array struct {
	buf  []int
	size int
}

// New returns an empty array with DefaultCapacity slots.
func New() *Array {
	return &Array{buf: make([]int, DefaultCapacity)}
}

// NewWithCapacity returns an empty array with the given number of slots.
func NewWithCapacity(capacity int) (*Array, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return &Array{buf: make([]int, capacity)}, nil
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return a.size
}

// Cap returns the number of allocated slots.
func (a *Array) Cap() int {
	return len(a.buf)
}

// Add appends v, doubling the capacity first if the array is full.
func (a *Array) Add(v int) {
	if a.size == len(a.buf) {
		a.grow()
	}
	a.buf[a.size] = v
	a.size++
}

// Insert places v at index, shifting the elements at [index, Len()) one
// position to the right. Inserting at Len() appends.
func (a *Array) Insert(index, v int) error {
	if index < 0 || index > a.size {
		return &BoundsError{Op: opInsert, Index: index, Size: a.size}
	}
	if a.size == len(a.buf) {
		a.grow()
	}
	// copy handles the overlap as a right shift, last element first.
	copy(a.buf[index+1:a.size+1], a.buf[index:a.size])
	a.buf[index] = v
	a.size++
	return nil
}

// RemoveAt deletes the element at index, shifting the elements after it one
// position to the left, and returns the removed value.
func (a *Array) RemoveAt(index int) (int, error) {
	if index < 0 || index >= a.size {
		return 0, &BoundsError{Op: opRemoveAt, Index: index, Size: a.size}
	}
	removed := a.buf[index]
	copy(a.buf[index:a.size-1], a.buf[index+1:a.size])
	a.size--
	a.buf[a.size] = 0
	return removed, nil
}

// Get returns the element at index.
func (a *Array) Get(index int) (int, error) {
	if index < 0 || index >= a.size {
		return 0, &BoundsError{Op: opGet, Index: index, Size: a.size}
	}
	return a.buf[index], nil
}

// IndexOf returns the lowest position holding v, or NotFound.
func (a *Array) IndexOf(v int) int {
	for i := 0; i < a.size; i++ {
		if a.buf[i] == v {
			return i
		}
	}
	return NotFound
}

// Contains reports whether v is present.
func (a *Array) Contains(v int) bool {
	return a.IndexOf(v) != NotFound
}

// Values returns a copy of the elements in order.
// The result never aliases the array's buffer.
func (a *Array) Values() []int {
	return slices.Clone(a.buf[:a.size])
}

// All yields (position, element) pairs in order.
// The array must not be modified while iterating.
func (a *Array) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.buf[i]) {
				return
			}
		}
	}
}

// Display writes one element per line, in order.
func (a *Array) Display(w io.Writer) error {
	for i := 0; i < a.size; i++ {
		if _, err := fmt.Fprintln(w, a.buf[i]); err != nil {
			return err
		}
	}
	return nil
}

// String renders the elements as [1 2 3].
func (a *Array) String() string {
	return fmt.Sprint(a.buf[:a.size])
}

// grow replaces the buffer with one of twice the capacity.
func (a *Array) grow() {
	next := 2 * len(a.buf)
	if next == 0 {
		next = DefaultCapacity
	}
	buf := make([]int, next)
	copy(buf, a.buf[:a.size])
	a.buf = buf
}
