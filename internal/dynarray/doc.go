// Package dynarray provides Array, a growable, index-addressable container
// of integers.
//
// An Array owns a contiguous backing buffer and a logical size. Positions
// [0, Len()) hold the elements; positions [Len(), Cap()) are filler and are
// never observable. When a write would exceed the buffer, the capacity
// doubles and every element is copied into a fresh buffer, which keeps Add
// amortized O(1).
//
// # Bounds
//
// Insert accepts 0 <= index <= Len() and RemoveAt and Get accept
// 0 <= index < Len(). Anything else returns a *BoundsError that matches
// ErrOutOfBounds under errors.Is, and leaves the array untouched. IndexOf
// never fails: absence is reported as NotFound.
//
// # Concurrency
//
// An Array is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
package dynarray
