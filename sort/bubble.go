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

// Bubble sorts data with bubble sort.
//
// Each pass swaps adjacent out-of-order neighbours and leaves the largest
// remaining element at the end of the scanned range, which then shrinks by
// one. There is no early exit. Stable, O(1) extra space.
func Bubble[T any](data []T, less Less[T]) {
	for end := len(data) - 1; end > 0; end-- {
		for j := 0; j < end; j++ {
			if less(data[j+1], data[j]) {
				data[j], data[j+1] = data[j+1], data[j]
			}
		}
	}
}
