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
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ajroetker/go-algos/contrib/workerpool"
	"github.com/ajroetker/go-algos/sort"
)

// Result is the outcome of sorting one generated input once.
type Result struct {
	Algorithm   string
	Workload    Workload
	Size        int
	Trial       int
	Elapsed     time.Duration
	Comparisons int64

	// Err is set when the output failed verification.
	Err error
}

type trial struct {
	alg      sort.Algorithm[Item]
	workload int
	size     int
	index    int
}

// Run sorts every (algorithm, workload, size, trial) combination of cfg and
// verifies each output. Trials run concurrently on cfg.Workers goroutines;
// results come back in the order of the configuration, independent of
// scheduling. For a given workload, size and trial every algorithm sees the
// same input.
func Run(cfg Config, log logrus.FieldLogger) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	algs, err := cfg.algorithms()
	if err != nil {
		return nil, err
	}

	var trials []trial
	for _, alg := range algs {
		for wi := range cfg.Workloads {
			for _, n := range cfg.Sizes {
				for t := 0; t < cfg.Trials; t++ {
					trials = append(trials, trial{alg: alg, workload: wi, size: n, index: t})
				}
			}
		}
	}

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()
	log.WithFields(logrus.Fields{
		"trials":  len(trials),
		"workers": pool.NumWorkers(),
		"seed":    cfg.Seed,
	}).Info("Running benchmark.")

	results := make([]Result, len(trials))
	pool.ParallelForAtomic(len(trials), func(i int) {
		results[i] = runTrial(cfg, trials[i])
		r := results[i]
		entry := log.WithFields(logrus.Fields{
			"algorithm": r.Algorithm,
			"workload":  r.Workload,
			"size":      r.Size,
			"trial":     r.Trial,
		})
		if r.Err != nil {
			entry.WithError(r.Err).Warn("Verification failed.")
			return
		}
		entry.WithField("elapsed", r.Elapsed).Debug("Trial done.")
	})
	return results, nil
}

// trialStream identifies the input of a trial, shared by all algorithms.
func trialStream(workload, size, index int) uint64 {
	return uint64(workload)<<56 ^ uint64(size)<<20 ^ uint64(index)
}

func runTrial(cfg Config, t trial) Result {
	w := cfg.Workloads[t.workload]
	stream := trialStream(t.workload, t.size, t.index)
	input := Tag(Generate(w, t.size, rand.New(rand.NewPCG(cfg.Seed, stream))))

	fn := t.alg.Sort
	if t.alg.Randomized {
		fn = sort.NewQuick[Item](rand.New(rand.NewPCG(^cfg.Seed, stream)))
	}

	var comparisons int64
	counting := func(a, b Item) bool {
		comparisons++
		return ItemLess(a, b)
	}

	output := slices.Clone(input)
	start := time.Now()
	fn(output, counting)
	elapsed := time.Since(start)

	return Result{
		Algorithm:   t.alg.Name,
		Workload:    w,
		Size:        t.size,
		Trial:       t.index,
		Elapsed:     elapsed,
		Comparisons: comparisons,
		Err:         Verify(t.alg, input, output),
	}
}

// Summary aggregates the trials of one (algorithm, workload, size).
type Summary struct {
	Algorithm   string
	Workload    Workload
	Size        int
	Trials      int
	Failures    int
	Min         time.Duration
	Mean        time.Duration
	Comparisons int64 // mean per trial
}

// Summarize groups results by algorithm, workload and size, keeping the
// order in which each group first appears.
func Summarize(results []Result) []Summary {
	type key struct {
		alg  string
		w    Workload
		size int
	}
	index := make(map[key]int)
	var out []Summary
	var total []time.Duration
	var comps []int64

	for _, r := range results {
		k := key{r.Algorithm, r.Workload, r.Size}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Summary{Algorithm: r.Algorithm, Workload: r.Workload, Size: r.Size, Min: r.Elapsed})
			total = append(total, 0)
			comps = append(comps, 0)
		}
		s := &out[i]
		s.Trials++
		if r.Err != nil {
			s.Failures++
		}
		s.Min = min(s.Min, r.Elapsed)
		total[i] += r.Elapsed
		comps[i] += r.Comparisons
	}

	for i := range out {
		out[i].Mean = total[i] / time.Duration(out[i].Trials)
		out[i].Comparisons = comps[i] / int64(out[i].Trials)
	}
	return out
}

// Failed returns the results that did not verify.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
