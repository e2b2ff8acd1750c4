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
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/ajroetker/go-algos/internal/platform"
	"github.com/ajroetker/go-algos/sort"
)

// WriteTable renders benchmark summaries as a table preceded by a host line.
func WriteTable(w io.Writer, summaries []Summary, host platform.Host) {
	fmt.Fprintf(w, "Host: %s\n", host)

	table := newTable(w)
	table.SetHeader([]string{"Algorithm", "Workload", "Size", "Trials", "Min", "Mean", "Comparisons", "Status"})
	for _, s := range summaries {
		status := color.GreenString("ok")
		if s.Failures > 0 {
			status = color.RedString("%d failed", s.Failures)
		}
		table.Append([]string{
			s.Algorithm,
			string(s.Workload),
			humanize.Comma(int64(s.Size)),
			strconv.Itoa(s.Trials),
			s.Min.String(),
			s.Mean.String(),
			humanize.Comma(s.Comparisons),
			status,
		})
	}
	table.Render()
}

// WriteChecks renders VerifyAll results.
func WriteChecks(w io.Writer, checks []Check) {
	table := newTable(w)
	table.SetHeader([]string{"Algorithm", "Property", "Result", "Detail"})
	for _, c := range checks {
		result, detail := color.GreenString("PASS"), ""
		switch {
		case c.Err != nil:
			result, detail = color.RedString("FAIL"), c.Err.Error()
		case c.Skipped:
			result, detail = color.YellowString("SKIP"), "not stable"
		}
		table.Append([]string{c.Algorithm, c.Property, result, detail})
	}
	table.Render()
}

// WriteAlgorithms renders the algorithm catalogue.
func WriteAlgorithms(w io.Writer) {
	table := newTable(w)
	table.SetHeader([]string{"Algorithm", "Stable", "Randomized"})
	for _, alg := range sort.Algorithms[Item]() {
		table.Append([]string{alg.Name, yesNo(alg.Stable), yesNo(alg.Randomized)})
	}
	table.Render()
}

// CountFailures returns how many checks failed.
func CountFailures(checks []Check) int {
	n := 0
	for _, c := range checks {
		if c.Err != nil {
			n++
		}
	}
	return n
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	return table
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
