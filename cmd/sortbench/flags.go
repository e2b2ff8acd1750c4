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

package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-algos/internal/bench"
	"github.com/ajroetker/go-algos/sort"
)

// benchFlags binds the flags shared by run and verify to a bench.Config.
type benchFlags struct {
	algorithms []string
	workloads  []string
	sizes      []int
	trials     int
	seed       uint64
	workers    int
}

func (f *benchFlags) register(fs *pflag.FlagSet, defaults bench.Config) {
	fs.StringSliceVarP(&f.algorithms, "algorithms", "a", []string{"all"}, "Algorithms to use ("+strings.Join(sort.Names(), ",")+") or 'all'")
	fs.StringSliceVarP(&f.workloads, "workloads", "w", []string{"all"}, "Workloads to use ("+strings.Join(workloadNames(), ",")+") or 'all'")
	fs.IntSliceVarP(&f.sizes, "sizes", "s", defaults.Sizes, "Input sizes (quick is quadratic on equal and few-unique workloads)")
	fs.IntVarP(&f.trials, "trials", "t", defaults.Trials, "Trials per algorithm, workload and size")
	fs.Uint64Var(&f.seed, "seed", defaults.Seed, "Base random seed")
	fs.IntVar(&f.workers, "workers", defaults.Workers, "Concurrent trials (<= 0 means GOMAXPROCS)")
}

// config builds a bench.Config from the environment, then the flags that
// were set explicitly.
func (f *benchFlags) config(fs *pflag.FlagSet) (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	cfg.Algorithms = expandAll(f.algorithms, sort.Names())
	workloads, err := parseWorkloads(expandAll(f.workloads, workloadNames()))
	if err != nil {
		return cfg, err
	}
	cfg.Workloads = workloads
	cfg.Sizes = f.sizes
	cfg.Trials = f.trials
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	return cfg, cfg.Validate()
}

func workloadNames() []string {
	return lo.Map(bench.Workloads(), func(w bench.Workload, _ int) string { return string(w) })
}

// expandAll trims names and replaces a lone "all" with every name.
func expandAll(names, all []string) []string {
	names = lo.Compact(lo.Map(names, func(s string, _ int) string { return strings.TrimSpace(s) }))
	if len(names) == 1 && names[0] == "all" {
		return all
	}
	return names
}

func parseWorkloads(names []string) ([]bench.Workload, error) {
	workloads := make([]bench.Workload, 0, len(names))
	for _, name := range names {
		w, err := bench.ParseWorkload(name)
		if err != nil {
			return nil, errors.Wrap(err, "--workloads")
		}
		workloads = append(workloads, w)
	}
	return workloads, nil
}
