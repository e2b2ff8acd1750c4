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

package bench

import (
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ajroetker/go-algos/contrib/workerpool"
	"github.com/ajroetker/go-algos/sort"
)

// Verification failures.
var (
	ErrNotSorted      = errors.New("output is not sorted")
	ErrNotPermutation = errors.New("output is not a permutation of the input")
	ErrNotStable      = errors.New("equal keys changed relative order")
	ErrNotIdempotent  = errors.New("sorting sorted output changed it")
)

// Property names reported by VerifyAll.
const (
	PropScenario    = "scenario"
	PropBoundary    = "boundary"
	PropExhaustive  = "exhaustive"
	PropWorkloads   = "workloads"
	PropIdempotence = "idempotence"
	PropStability   = "stability"
)

// Check is the outcome of one property for one algorithm.
type Check struct {
	Algorithm string
	Property  string
	Skipped   bool
	Err       error
}

// Verify checks that output is input sorted by alg. input must be as built
// by Tag: positions 0..len-1 in order. Stability is checked only for
// algorithms that claim it.
func Verify(alg sort.Algorithm[Item], input, output []Item) error {
	if len(input) != len(output) {
		return errors.Wrapf(ErrNotPermutation, "length %d, want %d", len(output), len(input))
	}

	seen := make([]bool, len(input))
	for i, it := range output {
		if it.Pos < 0 || it.Pos >= len(input) || seen[it.Pos] || input[it.Pos] != it {
			return errors.Wrapf(ErrNotPermutation, "unexpected element %+v at index %d", it, i)
		}
		seen[it.Pos] = true
	}

	for i := 1; i < len(output); i++ {
		if ItemLess(output[i], output[i-1]) {
			return errors.Wrapf(ErrNotSorted, "key %d at index %d follows %d", output[i].Key, i, output[i-1].Key)
		}
		if alg.Stable && output[i].Key == output[i-1].Key && output[i].Pos < output[i-1].Pos {
			return errors.Wrapf(ErrNotStable, "key %d: input position %d placed after %d", output[i].Key, output[i-1].Pos, output[i].Pos)
		}
	}
	return nil
}

// sortChecked sorts a copy of input with fn and verifies the result.
func sortChecked(alg sort.Algorithm[Item], fn sort.Func[Item], input []Item) ([]Item, error) {
	output := slices.Clone(input)
	fn(output, ItemLess)
	return output, Verify(alg, input, output)
}

// VerifyAll checks every property for every configured algorithm. The
// returned error is non-nil only for an invalid configuration; failed
// properties are reported through Check.Err.
func VerifyAll(cfg Config, log logrus.FieldLogger) ([]Check, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	algs, err := cfg.algorithms()
	if err != nil {
		return nil, err
	}

	props := []string{PropScenario, PropBoundary, PropExhaustive, PropWorkloads, PropIdempotence, PropStability}
	checks := make([]Check, len(algs)*len(props))
	for i := range checks {
		checks[i] = Check{
			Algorithm: algs[i/len(props)].Name,
			Property:  props[i%len(props)],
		}
	}

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	pool.ParallelForAtomic(len(checks), func(i int) {
		alg := algs[i/len(props)]
		c := &checks[i]
		// Each check owns its generators.
		rng := rand.New(rand.NewPCG(cfg.Seed, uint64(i)))
		fn := alg.Sort
		if alg.Randomized {
			fn = sort.NewQuick[Item](rand.New(rand.NewPCG(cfg.Seed, ^uint64(i))))
		}

		c.Skipped, c.Err = runProperty(c.Property, alg, fn, cfg, rng)

		entry := log.WithFields(logrus.Fields{"algorithm": c.Algorithm, "property": c.Property})
		switch {
		case c.Err != nil:
			entry.WithError(c.Err).Warn("Property failed.")
		case c.Skipped:
			entry.Debug("Property skipped.")
		default:
			entry.Debug("Property holds.")
		}
	})
	return checks, nil
}

func runProperty(prop string, alg sort.Algorithm[Item], fn sort.Func[Item], cfg Config, rng *rand.Rand) (skipped bool, err error) {
	switch prop {
	case PropScenario:
		return false, checkScenario(alg, fn)
	case PropBoundary:
		for _, n := range []int{0, 1} {
			if _, err := sortChecked(alg, fn, Tag(make([]int, n))); err != nil {
				return false, errors.Wrapf(err, "length %d", n)
			}
		}
		return false, nil
	case PropExhaustive:
		return false, checkExhaustive(alg, fn, 6)
	case PropWorkloads:
		for _, w := range cfg.Workloads {
			for _, n := range cfg.Sizes {
				for trial := 0; trial < cfg.Trials; trial++ {
					if _, err := sortChecked(alg, fn, Tag(Generate(w, n, rng))); err != nil {
						return false, errors.Wrapf(err, "workload %s, size %d, trial %d", w, n, trial)
					}
				}
			}
		}
		return false, nil
	case PropIdempotence:
		return false, checkIdempotent(alg, fn, rng)
	case PropStability:
		if !alg.Stable {
			return true, nil
		}
		// Long runs of equal keys.
		_, err := sortChecked(alg, fn, Tag(Generate(FewUnique, 200, rng)))
		return false, err
	}
	return false, errors.Errorf("unknown property %q", prop)
}

// scenario is the reference input shared by every algorithm.
var (
	scenarioInput = []int{9, 3, 5, 7, 8, 7, 99, 30, 23, 15, 12}
	scenarioWant  = []int{3, 5, 7, 7, 8, 9, 12, 15, 23, 30, 99}
)

func checkScenario(alg sort.Algorithm[Item], fn sort.Func[Item]) error {
	output, err := sortChecked(alg, fn, Tag(scenarioInput))
	if err != nil {
		return err
	}
	for i, it := range output {
		if it.Key != scenarioWant[i] {
			return errors.Wrapf(ErrNotSorted, "index %d: got %d, want %d", i, it.Key, scenarioWant[i])
		}
	}
	return nil
}

// checkExhaustive sorts every ordering of 0..n-1 for each length up to maxLen.
// Short lengths are where window and partition arithmetic goes wrong.
func checkExhaustive(alg sort.Algorithm[Item], fn sort.Func[Item], maxLen int) error {
	for n := 0; n <= maxLen; n++ {
		keys := make([]int, n)
		for i := range keys {
			keys[i] = i
		}
		var err error
		permute(keys, 0, func(p []int) bool {
			if _, err = sortChecked(alg, fn, Tag(p)); err != nil {
				err = errors.Wrapf(err, "input %v", p)
				return false
			}
			return true
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// permute calls visit with every ordering of keys[k:]. visit returning
// false stops the walk.
func permute(keys []int, k int, visit func([]int) bool) bool {
	if k >= len(keys)-1 {
		return visit(keys)
	}
	for i := k; i < len(keys); i++ {
		keys[k], keys[i] = keys[i], keys[k]
		ok := permute(keys, k+1, visit)
		keys[k], keys[i] = keys[i], keys[k]
		if !ok {
			return false
		}
	}
	return true
}

// checkIdempotent sorts random data, then sorts the result again. The second
// pass must leave keys unchanged, and positions too when alg is stable.
func checkIdempotent(alg sort.Algorithm[Item], fn sort.Func[Item], rng *rand.Rand) error {
	once, err := sortChecked(alg, fn, Tag(Generate(FewUnique, 257, rng)))
	if err != nil {
		return err
	}
	twice := slices.Clone(once)
	fn(twice, ItemLess)
	for i := range once {
		if once[i].Key != twice[i].Key || (alg.Stable && once[i] != twice[i]) {
			return errors.Wrapf(ErrNotIdempotent, "index %d: %+v became %+v", i, once[i], twice[i])
		}
	}
	return nil
}
