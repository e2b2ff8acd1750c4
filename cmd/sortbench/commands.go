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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-algos/internal/bench"
	"github.com/ajroetker/go-algos/internal/platform"
	"github.com/ajroetker/go-algos/sort"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			bench.WriteAlgorithms(cmd.OutOrStdout())
		},
	}
}

func newRunCmd(log logrus.FieldLogger) *cobra.Command {
	var flags benchFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time algorithms over generated workloads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd.Flags())
			if err != nil {
				return err
			}
			results, err := bench.Run(cfg, log)
			if err != nil {
				return err
			}
			bench.WriteTable(cmd.OutOrStdout(), bench.Summarize(results), platform.Describe())
			if failed := bench.Failed(results); len(failed) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d trials failed verification\n", len(failed), len(results))
				return errFailed
			}
			return nil
		},
	}
	flags.register(cmd.Flags(), bench.DefaultConfig())
	return cmd
}

func newVerifyCmd(log logrus.FieldLogger) *cobra.Command {
	var flags benchFlags
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check ordering, permutation, stability and idempotence properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd.Flags())
			if err != nil {
				return err
			}
			checks, err := bench.VerifyAll(cfg, log)
			if err != nil {
				return err
			}
			bench.WriteChecks(cmd.OutOrStdout(), checks)
			if n := bench.CountFailures(checks); n > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d checks failed\n", n, len(checks))
				return errFailed
			}
			return nil
		},
	}
	flags.register(cmd.Flags(), bench.DefaultConfig())
	return cmd
}

func newSortCmd() *cobra.Command {
	var (
		algorithm string
		desc      bool
	)
	cmd := &cobra.Command{
		Use:   "sort [numbers...]",
		Short: "Sort integers given as arguments or on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := sort.Lookup[int](algorithm)
			if err != nil {
				return err
			}
			fields := args
			if len(fields) == 0 {
				if fields, err = readFields(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			data, err := parseInts(fields)
			if err != nil {
				return err
			}

			less := func(a, b int) bool { return a < b }
			if desc {
				less = func(a, b int) bool { return a > b }
			}
			alg.Sort(data, less)

			out := make([]string, len(data))
			for i, v := range data {
				out[i] = strconv.Itoa(v)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))
			return nil
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", sort.NameMerge, "Algorithm to use ("+strings.Join(sort.Names(), ",")+")")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort in descending order")
	return cmd
}

func readFields(r io.Reader) ([]string, error) {
	var fields []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		fields = append(fields, scanner.Text())
	}
	return fields, errors.Wrap(scanner.Err(), "reading input")
}

func parseInts(fields []string) ([]int, error) {
	data := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		data[i] = v
	}
	return data, nil
}
