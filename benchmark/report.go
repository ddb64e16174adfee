// Copyright 2023 floatx Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package benchmark

import (
	"encoding/csv"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/juju/errors"
	"github.com/klauspost/cpuid/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Result is the outcome of one case.
type Result struct {
	Name     string
	Width    string
	Checked  int
	Failures int
	MaxError float64
	Duration time.Duration
}

// Report is the outcome of a whole suite run.
type Report struct {
	Results []Result
	Elapsed time.Duration
}

// Failed reports whether any case observed a violation.
func (r *Report) Failed() bool {
	return lo.SomeBy(r.Results, func(result Result) bool {
		return result.Failures > 0
	})
}

// TotalChecked returns the number of property checks across all cases.
func (r *Report) TotalChecked() int {
	return lo.SumBy(r.Results, func(result Result) int {
		return result.Checked
	})
}

// TotalFailures returns the number of violations across all cases.
func (r *Report) TotalFailures() int {
	return lo.SumBy(r.Results, func(result Result) int {
		return result.Failures
	})
}

// Sort orders results by the given key. Failures, max error and duration
// sort largest first, names alphabetically.
func (r *Report) Sort(by string) {
	sort.SliceStable(r.Results, func(i, j int) bool {
		a, b := r.Results[i], r.Results[j]
		switch by {
		case "duration":
			return a.Duration > b.Duration
		case "failures":
			return a.Failures > b.Failures
		case "max_error":
			return a.MaxError > b.MaxError
		default:
			if a.Name != b.Name {
				return a.Name < b.Name
			}
			return a.Width < b.Width
		}
	})
}

// Write renders the report in the given format, either "table" or "csv".
func (r *Report) Write(w io.Writer, format string) error {
	if format == "csv" {
		return r.writeCSV(w)
	}
	return r.writeTable(w)
}

func (r *Report) writeTable(w io.Writer) error {
	table := tablewriter.NewTable(w)
	table.Header([]string{"Name", "Width", "Checked", "Failures", "Max Error", "Time"})
	for _, result := range r.Results {
		if err := table.Append(result.row()); err != nil {
			return errors.Trace(err)
		}
	}
	return errors.Trace(table.Render())
}

func (r *Report) writeCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"name", "width", "checked", "failures", "max_error", "duration"}); err != nil {
		return errors.Trace(err)
	}
	for _, result := range r.Results {
		if err := writer.Write(result.row()); err != nil {
			return errors.Trace(err)
		}
	}
	writer.Flush()
	return errors.Trace(writer.Error())
}

func (result Result) row() []string {
	return []string{
		result.Name,
		result.Width,
		strconv.Itoa(result.Checked),
		strconv.Itoa(result.Failures),
		fmt.Sprintf("%.3g", result.MaxError),
		result.Duration.Round(time.Microsecond).String(),
	}
}

// Environment describes the host details that matter for reproducing float
// results. Fused multiply-add support changes rounding of contracted
// expressions, so it is worth recording next to any reported numbers.
func Environment() string {
	return fmt.Sprintf("%s %s/%s fma=%t", runtime.Version(), runtime.GOOS, runtime.GOARCH,
		cpuid.CPU.Supports(cpuid.FMA3))
}
