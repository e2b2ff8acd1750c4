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

// Merge sorts data with top-down merge sort.
//
// The slice is split at its midpoint, both halves are sorted recursively and
// then merged through an auxiliary buffer. One buffer of len(data) elements is
// allocated per call and shared by every level of the recursion. Ties take the
// left element first, which makes the sort stable. Θ(n log n) time, O(n) extra
// space, O(log n) recursion depth.
func Merge[T any](data []T, less Less[T]) {
	if len(data) <= 1 {
		return
	}
	buf := make([]T, len(data))
	mergeSort(data, buf, less)
}

// mergeSort sorts data using buf, which must be at least as long as data.
func mergeSort[T any](data, buf []T, less Less[T]) {
	n := len(data)
	if n <= 1 {
		return
	}

	mid := n / 2
	mergeSort(data[:mid], buf[:mid], less)
	mergeSort(data[mid:], buf[mid:], less)

	// Already in order across the split.
	if !less(data[mid], data[mid-1]) {
		return
	}

	combine(data[:mid], data[mid:], buf[:n], less)
	copy(data, buf[:n])
}

// combine merges the sorted runs left and right into out.
// len(out) must equal len(left)+len(right).
func combine[T any](left, right, out []T, less Less[T]) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			out[k] = right[j]
			j++
		} else {
			out[k] = left[i]
			i++
		}
		k++
	}
	k += copy(out[k:], left[i:])
	copy(out[k:], right[j:])
}
