package walkthrough

import (
	"fmt"
	"io"
	"slices"

	"github.com/roach88/arraykit/internal/dynarray"
	"github.com/roach88/arraykit/internal/mergesort"
)

// Lesson is one named walkthrough section.
type Lesson struct {
	Name  string
	Title string
	run   func(p *printer)
}

// Run writes the lesson, title first.
func (l Lesson) Run(w io.Writer) error {
	p := &printer{w: w}
	p.printf("== %s ==\n", l.Title)
	l.run(p)
	p.println()
	return p.err
}

var lessons = []Lesson{
	{Name: "initialization", Title: "Initialization", run: initialization},
	{Name: "access", Title: "Accessing elements", run: access},
	{Name: "iteration", Title: "Iteration", run: iteration},
	{Name: "insertion", Title: "Insertion", run: insertion},
	{Name: "deletion", Title: "Deletion", run: deletion},
	{Name: "search", Title: "Linear search", run: search},
	{Name: "container", Title: "Growable array", run: container},
	{Name: "mergesort", Title: "Merge sort", run: mergeSort},
	{Name: "linear-search", Title: "Linear search is O(n)", run: linearSearch},
	{Name: "binary-search", Title: "Binary search is O(log n)", run: binarySearch},
	{Name: "fibonacci", Title: "Recursive Fibonacci is O(2^n)", run: fibonacciLesson},
}

// Lessons returns every lesson in teaching order.
func Lessons() []Lesson {
	return slices.Clone(lessons)
}

// Names returns the lesson names in teaching order.
func Names() []string {
	names := make([]string, len(lessons))
	for i, l := range lessons {
		names[i] = l.Name
	}
	return names
}

// Find looks up a lesson by name.
func Find(name string) (Lesson, bool) {
	for _, l := range lessons {
		if l.Name == name {
			return l, true
		}
	}
	return Lesson{}, false
}

// Run writes the named lessons in the given order, or every lesson when no
// names are given.
func Run(w io.Writer, names ...string) error {
	selected := lessons
	if len(names) > 0 {
		selected = make([]Lesson, 0, len(names))
		for _, name := range names {
			l, ok := Find(name)
			if !ok {
				return fmt.Errorf("unknown lesson %q (available: %v)", name, Names())
			}
			selected = append(selected, l)
		}
	}

	for _, l := range selected {
		if err := l.Run(w); err != nil {
			return fmt.Errorf("lesson %s: %w", l.Name, err)
		}
	}
	return nil
}

// printer keeps the first write error so lessons can print freely.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}

func (p *printer) display(a *dynarray.Array) {
	if p.err != nil {
		return
	}
	p.err = a.Display(p.w)
}

func fixed() [5]int {
	return [5]int{1, 2, 3, 4, 5}
}

func growable(vs ...int) *dynarray.Array {
	a := dynarray.New()
	for _, v := range vs {
		a.Add(v)
	}
	return a
}

func initialization(p *printer) {
	arr := fixed()
	p.printf("fixed-size array: %v (len %d)\n", arr, len(arr))

	a := growable(1, 2, 3, 4, 5)
	p.printf("growable array:   %v (len %d, cap %d)\n", a, a.Len(), a.Cap())
}

func access(p *printer) {
	arr := fixed()
	p.printf("The first element is: %d\n", arr[0])
	p.printf("The third element is: %d\n", arr[2])

	a := growable(arr[:]...)
	if _, err := a.Get(7); err != nil {
		p.printf("Get(7): %v\n", err)
	}
}

func iteration(p *printer) {
	a := growable(1, 2, 3, 4, 5)
	for i, v := range a.All() {
		p.printf("[%d] %d\n", i, v)
	}
}

func insertion(p *printer) {
	a := growable(1, 2, 3, 4, 5)
	p.printf("before:          %v (cap %d)\n", a, a.Cap())

	for v := 6; v <= 11; v++ {
		a.Add(v)
	}
	p.printf("after 6 appends: %v (cap %d)\n", a, a.Cap())

	if err := a.Insert(0, 0); err != nil {
		p.printf("insert failed: %v\n", err)
		return
	}
	p.printf("insert 0 at 0:   %v\n", a)
}

func deletion(p *printer) {
	a := growable(1, 2, 3, 4, 5)

	// Removing index 2 shifts every later element one slot left.
	removed, err := a.RemoveAt(2)
	if err != nil {
		p.printf("remove failed: %v\n", err)
		return
	}
	p.printf("removed %d\n", removed)
	p.printf("Array after deletion: %v\n", a)
}

func search(p *printer) {
	arr := fixed()

	found := false
	for i := range arr {
		if arr[i] == 3 {
			found = true
			break
		}
	}
	p.printf("Found: %t\n", found)

	a := growable(arr[:]...)
	p.printf("IndexOf(3) = %d, IndexOf(9) = %d\n", a.IndexOf(3), a.IndexOf(9))
	p.printf("Contains(9) = %t\n", a.Contains(9))
}

func container(p *printer) {
	a := dynarray.New()
	a.Add(1)
	a.Add(2)
	a.Add(3)
	p.display(a)

	if err := a.Insert(1, 4); err != nil {
		p.printf("insert failed: %v\n", err)
		return
	}
	p.println("--")
	p.display(a)

	if _, err := a.RemoveAt(1); err != nil {
		p.printf("remove failed: %v\n", err)
		return
	}
	p.println("--")
	p.display(a)

	p.println("--")
	p.println(a.IndexOf(3))
}

func mergeSort(p *printer) {
	xs := []int{38, 27, 43, 3, 9, 82, 10}
	p.printf("input:  %v\n", xs)

	stats := mergesort.SortWithStats(xs)
	p.printf("sorted: %v\n", xs)
	p.printf("comparisons=%d moves=%d depth=%d\n", stats.Comparisons, stats.Moves, stats.MaxDepth)
}

func linearSearch(p *printer) {
	xs := []int{38, 27, 43, 3, 9, 82, 10}
	p.printf("input: %v\n", xs)
	for _, target := range []int{43, 5} {
		p.printf("LinearSearch(%d) = %d\n", target, LinearSearch(xs, target))
	}
}

func binarySearch(p *printer) {
	xs := []int{38, 27, 43, 3, 9, 82, 10}
	mergesort.Sort(xs)
	p.printf("sorted: %v\n", xs)
	for _, target := range []int{3, 27, 82, 5} {
		p.printf("BinarySearch(%d) = %d\n", target, BinarySearch(xs, target))
	}
}

func fibonacciLesson(p *printer) {
	for _, n := range []int{0, 1, 5, 10, 20} {
		v, calls := fibonacci(n)
		p.printf("fib(%d) = %d (%d calls)\n", n, v, calls)
	}
}
