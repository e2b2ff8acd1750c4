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

// Heap sorts data with heapsort.
//
// A max-heap (per less) is built in place by sifting down from the last
// internal node to the root. The root is then repeatedly swapped with the
// last element of the shrinking heap and sifted back down. Θ(n log n) time,
// O(1) extra space. Not stable.
func Heap[T any](data []T, less Less[T]) {
	n := len(data)
	if n <= 1 {
		return
	}

	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n, less)
	}

	for end := n - 1; end > 0; end-- {
		data[0], data[end] = data[end], data[0]
		siftDown(data, 0, end, less)
	}
}

// siftDown restores the heap property for the subtree rooted at root within
// data[:n]. Children of node k are 2k+1 and 2k+2.
func siftDown[T any](data []T, root, n int, less Less[T]) {
	for {
		largest := root
		left := 2*root + 1
		right := left + 1

		if left < n && less(data[largest], data[left]) {
			largest = left
		}
		if right < n && less(data[largest], data[right]) {
			largest = right
		}
		if largest == root {
			return
		}

		data[root], data[largest] = data[largest], data[root]
		root = largest
	}
}
