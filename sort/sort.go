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
	"github.com/pkg/errors"
)

// Less reports whether a must be ordered before b.
type Less[T any] func(a, b T) bool

// Func is the shape shared by every sorting algorithm in this package.
type Func[T any] func(data []T, less Less[T])

// Algorithm names.
const (
	NameSelection = "selection"
	NameBubble    = "bubble"
	NameCocktail  = "cocktail"
	NameInsertion = "insertion"
	NameMerge     = "merge"
	NameQuick     = "quick"
	NameHeap      = "heap"
)

// ErrUnknownAlgorithm is returned by Lookup for names not in the catalogue.
var ErrUnknownAlgorithm = errors.New("unknown sorting algorithm")

// Algorithm describes one entry of the catalogue.
type Algorithm[T any] struct {
	Name string

	// Stable is true when equivalent elements keep their input order.
	Stable bool

	// Randomized is true when the output order of equivalent elements may
	// change between runs.
	Randomized bool

	Sort Func[T]
}

// Algorithms returns the catalogue in a fixed order.
func Algorithms[T any]() []Algorithm[T] {
	return []Algorithm[T]{
		{Name: NameSelection, Sort: Selection[T]},
		{Name: NameBubble, Stable: true, Sort: Bubble[T]},
		{Name: NameCocktail, Stable: true, Sort: Cocktail[T]},
		{Name: NameInsertion, Stable: true, Sort: Insertion[T]},
		{Name: NameMerge, Stable: true, Sort: Merge[T]},
		{Name: NameQuick, Randomized: true, Sort: Quick[T]},
		{Name: NameHeap, Sort: Heap[T]},
	}
}

// Names returns the algorithm names in catalogue order.
func Names() []string {
	algs := Algorithms[struct{}]()
	names := make([]string, len(algs))
	for i, alg := range algs {
		names[i] = alg.Name
	}
	return names
}

// Lookup finds an algorithm by name.
func Lookup[T any](name string) (Algorithm[T], error) {
	for _, alg := range Algorithms[T]() {
		if alg.Name == name {
			return alg, nil
		}
	}
	return Algorithm[T]{}, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// IsSorted reports whether data is ordered according to less.
func IsSorted[T any](data []T, less Less[T]) bool {
	for i := len(data) - 1; i > 0; i-- {
		if less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}
