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
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/ajroetker/go-algos/sort"
)

// Environment variables read by ApplyEnv.
const (
	EnvSeed    = "SORTBENCH_SEED"
	EnvWorkers = "SORTBENCH_WORKERS"
)

// Config selects what Run and VerifyAll exercise.
type Config struct {
	Algorithms []string
	Workloads  []Workload
	Sizes      []int
	Trials     int

	// Seed is the base seed; every trial derives its own generators from it.
	Seed uint64

	// Workers is the number of concurrent trials. <= 0 means GOMAXPROCS.
	Workers int
}

// DefaultConfig covers every algorithm and workload at modest sizes.
func DefaultConfig() Config {
	return Config{
		Algorithms: sort.Names(),
		Workloads:  Workloads(),
		Sizes:      []int{100, 1000},
		Trials:     3,
		Seed:       1,
	}
}

// ApplyEnv overrides Seed and Workers from the environment. Empty
// variables are ignored.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "parsing %s", EnvSeed)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "parsing %s", EnvWorkers)
		}
		c.Workers = workers
	}
	return nil
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if len(c.Algorithms) == 0 {
		return errors.New("no algorithms selected")
	}
	for _, name := range c.Algorithms {
		if _, err := sort.Lookup[Item](name); err != nil {
			return err
		}
	}
	if len(c.Workloads) == 0 {
		return errors.New("no workloads selected")
	}
	for _, w := range c.Workloads {
		if _, err := ParseWorkload(string(w)); err != nil {
			return err
		}
	}
	if len(c.Sizes) == 0 {
		return errors.New("no sizes selected")
	}
	if n, ok := lo.Find(c.Sizes, func(n int) bool { return n < 0 }); ok {
		return errors.Errorf("negative size %d", n)
	}
	if c.Trials < 1 {
		return errors.Errorf("trials must be positive, got %d", c.Trials)
	}
	return nil
}

// algorithms resolves the configured names, dropping duplicates.
func (c Config) algorithms() ([]sort.Algorithm[Item], error) {
	var algs []sort.Algorithm[Item]
	for _, name := range lo.Uniq(c.Algorithms) {
		alg, err := sort.Lookup[Item](name)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}
	return algs, nil
}
