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

// Cocktail sorts data with cocktail shaker sort, a bidirectional bubble sort.
//
// A forward pass carries the largest element of the window [lo, hi] to hi,
// then a backward pass carries the smallest to lo, and the window shrinks from
// both ends. Sorting stops as soon as a forward pass makes no swap, so sorted
// input costs a single pass. Stable, O(1) extra space.
func Cocktail[T any](data []T, less Less[T]) {
	if len(data) < 2 {
		return
	}

	lo, hi := 0, len(data)-1
	for lo < hi {
		swapped := false
		for i := lo; i < hi; i++ {
			if less(data[i+1], data[i]) {
				data[i], data[i+1] = data[i+1], data[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
		hi--

		for i := hi - 1; i >= lo; i-- {
			if less(data[i+1], data[i]) {
				data[i], data[i+1] = data[i+1], data[i]
			}
		}
		lo++
	}
}
