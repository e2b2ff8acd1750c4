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

// Package bench generates sorting workloads, times the algorithms of package
// sort against them and checks the results.
package bench

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Workload names an input distribution.
type Workload string

const (
	Random    Workload = "random"
	Sorted    Workload = "sorted"
	Reversed  Workload = "reversed"
	Equal     Workload = "equal"
	FewUnique Workload = "few-unique"
	Sawtooth  Workload = "sawtooth"
)

// ErrUnknownWorkload is returned by ParseWorkload for unknown names.
var ErrUnknownWorkload = errors.New("unknown workload")

// Workloads returns every workload in a fixed order.
func Workloads() []Workload {
	return []Workload{Random, Sorted, Reversed, Equal, FewUnique, Sawtooth}
}

// ParseWorkload maps a name to its Workload.
func ParseWorkload(s string) (Workload, error) {
	w := Workload(s)
	if !lo.Contains(Workloads(), w) {
		return "", errors.Wrapf(ErrUnknownWorkload, "%q", s)
	}
	return w, nil
}

// Generate returns n keys drawn from the distribution w.
func Generate(w Workload, n int, rng *rand.Rand) []int {
	switch w {
	case Sorted:
		return lo.Range(n)
	case Reversed:
		return lo.RangeFrom(n-1, -n)
	case Equal:
		return lo.Times(n, func(int) int { return 7 })
	case FewUnique:
		return lo.Times(n, func(int) int { return rng.IntN(4) })
	case Sawtooth:
		period := max(n/8, 1)
		return lo.Times(n, func(i int) int { return i % period })
	default:
		return lo.Times(n, func(int) int { return rng.IntN(max(n, 1)*4) - n*2 })
	}
}

// Item is a benchmark element: a sort key tagged with its input position.
type Item struct {
	Key int
	Pos int
}

// ItemLess orders items by key only, leaving positions to expose stability.
func ItemLess(a, b Item) bool {
	return a.Key < b.Key
}

// Tag turns keys into items carrying their input positions.
func Tag(keys []int) []Item {
	return lo.Map(keys, func(k int, i int) Item {
		return Item{Key: k, Pos: i}
	})
}
