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

import "math/rand/v2"

// Quick sorts data with randomized quicksort.
//
// Every call uses its own generator seeded from the runtime's global source,
// so concurrent calls on different slices do not share state. Use QuickRand
// for reproducible pivot choices. Not stable.
func Quick[T any](data []T, less Less[T]) {
	if len(data) <= 1 {
		return
	}
	QuickRand(data, less, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewQuick returns a Func that sorts with QuickRand using rng.
// The returned Func must not be called concurrently.
func NewQuick[T any](rng *rand.Rand) Func[T] {
	return func(data []T, less Less[T]) {
		QuickRand(data, less, rng)
	}
}

// QuickRand sorts data with quicksort, drawing pivot positions from rng.
//
// The pivot is picked uniformly from the current range, which makes the
// quadratic worst case unlikely for distinct keys, including sorted input.
// Input dominated by equal keys is still quadratic: the partition sends every
// element equal to the pivot to the same side, so an all-equal slice costs
// n(n-1)/2 comparisons.
// The smaller side of each partition is handled recursively and the larger
// one iteratively, keeping the stack O(log n) deep.
func QuickRand[T any](data []T, less Less[T], rng *rand.Rand) {
	for len(data) > 1 {
		p := partition(data, less, rng)
		left, right := data[:p], data[p+1:]
		if len(left) < len(right) {
			QuickRand(left, less, rng)
			data = right
		} else {
			QuickRand(right, less, rng)
			data = left
		}
	}
}

// partition moves a random pivot to its final position and returns that
// index. On return data[:p] orders before the pivot and data[p+1:] does not.
// data must not be empty.
func partition[T any](data []T, less Less[T], rng *rand.Rand) int {
	last := len(data) - 1
	r := rng.IntN(len(data))
	data[r], data[last] = data[last], data[r]

	pivot := data[last]
	p := 0
	for j := 0; j < last; j++ {
		if less(data[j], pivot) {
			data[p], data[j] = data[j], data[p]
			p++
		}
	}
	data[p], data[last] = data[last], data[p]
	return p
}
