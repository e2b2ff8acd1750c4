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

// Command sortbench times and checks the algorithms of package sort.
//
// Usage:
//
//	sortbench list
//	sortbench run -a merge,quick,heap -w random,sorted -s 1000,100000 -t 5
//	sortbench verify
//	sortbench sort -a heap --desc 5 3 9 1
//	sortbench sort -- -4 2 -7
//	echo "9 3 5" | sortbench sort
//
// Quicksort is quadratic on the equal and few-unique workloads, so
// "run -a quick -w equal" at sizes in the hundreds of thousands takes minutes.
//
// SORTBENCH_SEED, SORTBENCH_WORKERS and SORTBENCH_LOG_LEVEL provide defaults
// for --seed, --workers and --log-level.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// EnvLogLevel provides the default for --log-level.
const EnvLogLevel = "SORTBENCH_LOG_LEVEL"

// errFailed signals that the command already reported its failures.
var errFailed = errors.New("checks failed")

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	log := logrus.New()
	log.SetOutput(stderr)

	var level string
	root := &cobra.Command{
		Use:           "sortbench",
		Short:         "Benchmark and verify in-place sorting algorithms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(level)
			if err != nil {
				return errors.Wrap(err, "--log-level")
			}
			log.SetLevel(lvl)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	defaultLevel := os.Getenv(EnvLogLevel)
	if defaultLevel == "" {
		defaultLevel = logrus.WarnLevel.String()
	}
	root.PersistentFlags().StringVar(&level, "log-level", defaultLevel, "Log level (panic, fatal, error, warn, info, debug, trace)")

	root.AddCommand(
		newListCmd(),
		newRunCmd(log),
		newVerifyCmd(log),
		newSortCmd(),
	)
	return root
}
