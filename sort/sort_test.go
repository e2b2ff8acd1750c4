// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func intLess(a, b int) bool { return a < b }

// tagged carries a sort key plus its input position, to observe stability.
type tagged struct {
	Key int
	Tag string
}

func taggedLess(a, b tagged) bool { return a.Key < b.Key }

// permutations returns every ordering of 0..n-1.
func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	var out [][]int
	for _, p := range permutations(n - 1) {
		for i := 0; i <= len(p); i++ {
			q := make([]int, 0, n)
			q = append(q, p[:i]...)
			q = append(q, n-1)
			q = append(q, p[i:]...)
			out = append(out, q)
		}
	}
	return out
}

// TestSortScenario sorts the shared reference input with every algorithm.
func TestSortScenario(t *testing.T) {
	want := []int{3, 5, 7, 7, 8, 9, 12, 15, 23, 30, 99}
	for _, alg := range Algorithms[int]() {
		t.Run(alg.Name, func(t *testing.T) {
			data := []int{9, 3, 5, 7, 8, 7, 99, 30, 23, 15, 12}
			alg.Sort(data, intLess)
			if diff := cmp.Diff(want, data); diff != "" {
				t.Errorf("%s: unexpected result (-want +got):\n%s", alg.Name, diff)
			}
		})
	}
}

// TestSortEmpty tests sorting nil and empty slices
func TestSortEmpty(t *testing.T) {
	for _, alg := range Algorithms[int]() {
		var nilSlice []int
		alg.Sort(nilSlice, intLess)
		if nilSlice != nil {
			t.Errorf("%s(nil) = %v, want nil", alg.Name, nilSlice)
		}

		empty := []int{}
		alg.Sort(empty, intLess)
		if len(empty) != 0 {
			t.Errorf("%s([]) = %v, want []", alg.Name, empty)
		}
	}
}

// TestSortSingle tests sorting single element slices
func TestSortSingle(t *testing.T) {
	for _, alg := range Algorithms[int]() {
		data := []int{5}
		alg.Sort(data, intLess)
		if data[0] != 5 {
			t.Errorf("%s([5]) = %v, want [5]", alg.Name, data)
		}
	}
}

// TestSortAllSame tests sorting with all identical elements
func TestSortAllSame(t *testing.T) {
	for _, alg := range Algorithms[int]() {
		data := []int{4, 4, 4, 4}
		alg.Sort(data, intLess)
		if diff := cmp.Diff([]int{4, 4, 4, 4}, data); diff != "" {
			t.Errorf("%s: unexpected result (-want +got):\n%s", alg.Name, diff)
		}
	}
}

// TestSortAllPermutations sorts every ordering of small inputs, including
// the short lengths where window and partition bounds are tightest.
func TestSortAllPermutations(t *testing.T) {
	for _, alg := range Algorithms[int]() {
		for n := 0; n <= 6; n++ {
			want := make([]int, n)
			for i := range want {
				want[i] = i
			}
			for _, p := range permutations(n) {
				data := slices.Clone(p)
				alg.Sort(data, intLess)
				if !slices.Equal(data, want) {
					t.Errorf("%s(%v) = %v, want %v", alg.Name, p, data, want)
				}
			}
		}
	}
}

// TestSortRandom tests order and permutation properties on random data
func TestSortRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000}
	for _, alg := range Algorithms[int]() {
		for _, n := range sizes {
			data := make([]int, n)
			for i := range data {
				data[i] = rng.IntN(100) - 50
			}
			want := slices.Clone(data)
			slices.Sort(want)

			alg.Sort(data, intLess)
			if !IsSorted(data, intLess) {
				t.Errorf("%s(random, n=%d) produced unsorted result", alg.Name, n)
			}
			if diff := cmp.Diff(want, data); diff != "" {
				t.Errorf("%s(random, n=%d) is not a permutation of its input (-want +got):\n%s", alg.Name, n, diff)
			}
		}
	}
}

// TestSortIdempotent sorts already sorted and reversed inputs
func TestSortIdempotent(t *testing.T) {
	for _, alg := range Algorithms[int]() {
		sorted := []int{1, 2, 2, 3, 5, 8, 13, 21, 34}
		data := slices.Clone(sorted)
		alg.Sort(data, intLess)
		if diff := cmp.Diff(sorted, data); diff != "" {
			t.Errorf("%s(sorted) changed its input (-want +got):\n%s", alg.Name, diff)
		}

		reversed := slices.Clone(sorted)
		slices.Reverse(reversed)
		alg.Sort(reversed, intLess)
		if diff := cmp.Diff(sorted, reversed); diff != "" {
			t.Errorf("%s(reversed) unexpected result (-want +got):\n%s", alg.Name, diff)
		}
	}
}

// TestSortDescending checks that the predicate, not the element type, drives the order
func TestSortDescending(t *testing.T) {
	greater := func(a, b int) bool { return a > b }
	want := []int{99, 30, 23, 15, 12, 9, 8, 7, 7, 5, 3}
	for _, alg := range Algorithms[int]() {
		data := []int{9, 3, 5, 7, 8, 7, 99, 30, 23, 15, 12}
		alg.Sort(data, greater)
		if diff := cmp.Diff(want, data); diff != "" {
			t.Errorf("%s(desc): unexpected result (-want +got):\n%s", alg.Name, diff)
		}
	}
}

// TestSortStrings exercises a non-numeric element type
func TestSortStrings(t *testing.T) {
	byLen := func(a, b string) bool { return len(a) < len(b) }
	for _, alg := range Algorithms[string]() {
		data := []string{"ccc", "a", "dddd", "bb", ""}
		alg.Sort(data, byLen)
		if diff := cmp.Diff([]string{"", "a", "bb", "ccc", "dddd"}, data); diff != "" {
			t.Errorf("%s: unexpected result (-want +got):\n%s", alg.Name, diff)
		}
	}
}

// TestSortStable checks that stable algorithms keep equal keys in input order
func TestSortStable(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for _, alg := range Algorithms[tagged]() {
		if !alg.Stable {
			continue
		}
		t.Run(alg.Name, func(t *testing.T) {
			data := []tagged{{4, "a"}, {2, "x"}, {4, "b"}, {1, "y"}, {4, "c"}, {2, "z"}}
			alg.Sort(data, taggedLess)
			want := []tagged{{1, "y"}, {2, "x"}, {2, "z"}, {4, "a"}, {4, "b"}, {4, "c"}}
			if diff := cmp.Diff(want, data); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}

			for _, n := range []int{10, 100, 500} {
				data := make([]tagged, n)
				for i := range data {
					data[i] = tagged{Key: rng.IntN(8), Tag: fmt.Sprintf("%04d", i)}
				}
				want := slices.Clone(data)
				slices.SortStableFunc(want, func(a, b tagged) int { return a.Key - b.Key })

				alg.Sort(data, taggedLess)
				if diff := cmp.Diff(want, data); diff != "" {
					t.Errorf("n=%d: order of equal keys changed (-want +got):\n%s", n, diff)
				}
			}
		})
	}
}

// TestSortDeterministic checks that non-randomized algorithms give identical
// output for identical input, equal keys included.
func TestSortDeterministic(t *testing.T) {
	input := make([]tagged, 200)
	for i := range input {
		input[i] = tagged{Key: i % 5, Tag: fmt.Sprint(i)}
	}
	for _, alg := range Algorithms[tagged]() {
		if alg.Randomized {
			continue
		}
		first := slices.Clone(input)
		second := slices.Clone(input)
		alg.Sort(first, taggedLess)
		alg.Sort(second, taggedLess)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%s: runs disagree (-first +second):\n%s", alg.Name, diff)
		}
	}
}

// TestQuickRandSeeded checks that a seeded generator reproduces quicksort's output
func TestQuickRandSeeded(t *testing.T) {
	input := make([]tagged, 300)
	for i := range input {
		input[i] = tagged{Key: i % 7, Tag: fmt.Sprint(i)}
	}

	first := slices.Clone(input)
	second := slices.Clone(input)
	QuickRand(first, taggedLess, rand.New(rand.NewPCG(42, 42)))
	NewQuick[tagged](rand.New(rand.NewPCG(42, 42)))(second, taggedLess)

	if !IsSorted(first, taggedLess) {
		t.Fatalf("QuickRand produced unsorted result")
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed, different output (-first +second):\n%s", diff)
	}
}

// TestQuickSortedLarge sorts large presorted input, where random pivots keep
// the work near n log n.
func TestQuickSortedLarge(t *testing.T) {
	n := 200000
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	Quick(data, intLess)
	if !IsSorted(data, intLess) {
		t.Errorf("Quick(sorted, n=%d) produced unsorted result", n)
	}
}

// TestQuickAllEqual checks that equal keys still sort. Every element lands
// on the same side of the pivot, so the cost is exactly n(n-1)/2
// comparisons whatever pivots are drawn.
func TestQuickAllEqual(t *testing.T) {
	for _, n := range []int{2, 100, 3000} {
		data := make([]int, n)
		for i := range data {
			data[i] = 1
		}
		var calls int
		counting := func(a, b int) bool {
			calls++
			return a < b
		}
		QuickRand(data, counting, rand.New(rand.NewPCG(uint64(n), 3)))
		if !IsSorted(data, intLess) {
			t.Errorf("Quick(equal, n=%d) produced unsorted result", n)
		}
		if want := n * (n - 1) / 2; calls != want {
			t.Errorf("Quick(equal, n=%d) made %d comparisons, want %d", n, calls, want)
		}
	}
}

// TestSortCountsComparisons checks the early exits of the adaptive algorithms
func TestSortCountsComparisons(t *testing.T) {
	sorted := make([]int, 100)
	for i := range sorted {
		sorted[i] = i
	}

	tests := []struct {
		name string
		fn   Func[int]
		max  int
	}{
		{NameCocktail, Cocktail[int], len(sorted) - 1},
		{NameInsertion, Insertion[int], len(sorted) - 1},
		{NameMerge, Merge[int], len(sorted) - 1},
	}
	for _, tt := range tests {
		calls := 0
		counting := func(a, b int) bool {
			calls++
			return a < b
		}
		tt.fn(slices.Clone(sorted), counting)
		if calls > tt.max {
			t.Errorf("%s(sorted) made %d comparisons, want at most %d", tt.name, calls, tt.max)
		}
	}
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		data []int
		want bool
	}{
		{nil, true},
		{[]int{1}, true},
		{[]int{1, 1, 2}, true},
		{[]int{2, 1}, false},
		{[]int{1, 3, 2, 4}, false},
	}
	for _, tt := range tests {
		if got := IsSorted(tt.data, intLess); got != tt.want {
			t.Errorf("IsSorted(%v) = %v, want %v", tt.data, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		alg, err := Lookup[int](name)
		if err != nil {
			t.Fatalf("Lookup(%q) error: %v", name, err)
		}
		if alg.Name != name {
			t.Errorf("Lookup(%q).Name = %q", name, alg.Name)
		}
	}

	_, err := Lookup[int]("bogo")
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Lookup(bogo) error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestNames(t *testing.T) {
	want := []string{NameSelection, NameBubble, NameCocktail, NameInsertion, NameMerge, NameQuick, NameHeap}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}
