// Package walkthrough prints short lessons on primitive array operations:
// initialization, access, iteration, insertion, deletion, linear search,
// the growable container and merge sort. A second group shows how cost
// grows with input size using LinearSearch, BinarySearch and Fibonacci.
//
// Lessons only call the public APIs of dynarray and mergesort and write
// plain text; their output is for reading, not parsing.
package walkthrough
