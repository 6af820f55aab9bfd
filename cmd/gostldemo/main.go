// Command gostldemo exercises the container family end to end as a
// runnable program rather than a _test.go file.
package main

import (
	"fmt"

	"github.com/student/gostl/algo"
	"github.com/student/gostl/container"
)

func main() {
	ts := container.TreeSetFromSlice([]int{3, 1, 4, 1, 5, 9, 2, 6})
	fmt.Print("TreeSet forward: ")
	for it := ts.Begin(); !it.EqualTo(ts.End()); it = it.NextT() {
		fmt.Printf("%d ", it.Value())
	}
	fmt.Println()

	lb := ts.LowerBound(4)
	ub := ts.UpperBound(4)
	fmt.Printf("lower_bound(4)=%d upper_bound(4)=%d\n", lb.Value(), ub.Value())

	hm := container.NewHashMap[string, int]()
	hm.Insert("a", 1)
	hm.Insert("b", 2)
	_, inserted := hm.Insert("a", 3)
	v, _ := hm.At("a")
	fmt.Printf("HashMap size=%d at(a)=%d second-insert-a-inserted=%v\n", hm.Len(), v, inserted)

	var found []int
	algo.ForEach(ts.Begin(), ts.End(), func(v int) {
		if v%2 == 0 {
			found = append(found, v)
		}
	})
	fmt.Printf("even elements: %v\n", found)
}
