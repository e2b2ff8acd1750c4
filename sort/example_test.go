package sort_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/ajroetker/go-algos/sort"
)

func ExampleMerge() {
	data := []int{9, 3, 5, 7, 8, 7, 99, 30, 23, 15, 12}
	sort.Merge(data, func(a, b int) bool { return a < b })
	fmt.Println(data)
	// Output: [3 5 7 7 8 9 12 15 23 30 99]
}

func ExampleQuickRand() {
	rng := rand.New(rand.NewPCG(1, 2))
	data := []string{"pear", "fig", "apple", "kiwi"}
	sort.QuickRand(data, func(a, b string) bool { return a < b }, rng)
	fmt.Println(data)
	// Output: [apple fig kiwi pear]
}

func ExampleLookup() {
	alg, err := sort.Lookup[int]("heap")
	if err != nil {
		panic(err)
	}
	data := []int{3, 1, 2}
	alg.Sort(data, func(a, b int) bool { return a > b })
	fmt.Println(alg.Name, alg.Stable, data)
	// Output: heap false [3 2 1]
}
