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
	"time"

	"github.com/juju/errors"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/floatx-io/floatx/base"
	"github.com/floatx-io/floatx/base/log"
	"github.com/floatx-io/floatx/config"
)

// Runner verifies the property suite described by a config.
type Runner struct {
	conf *config.Config
}

// NewRunner creates a Runner from a validated config.
func NewRunner(conf *config.Config) *Runner {
	return &Runner{conf: conf}
}

// Run executes every case of the suite and collects a report. Cases run in
// parallel across the configured number of jobs. Each case draws samples from
// its own generator seeded with the configured seed plus the case index, so
// results do not depend on the number of jobs.
func (r *Runner) Run() (*Report, error) {
	cases := Suite(r.conf.Benchmark.Widths)
	if len(cases) == 0 {
		return nil, errors.Errorf("no cases for widths %v", r.conf.Benchmark.Widths)
	}
	results := make([]Result, len(cases))
	bar := progressbar.Default(int64(len(cases)))
	var checked, failed atomic.Int64
	start := time.Now()
	if err := base.Parallel(len(cases), r.conf.Benchmark.Jobs, func(i int) error {
		c := cases[i]
		rng := base.NewRandomGenerator(r.conf.Benchmark.Seed + int64(i))
		caseStart := time.Now()
		outcome := c.Run(rng, r.conf.Benchmark.Samples)
		results[i] = Result{
			Name:     c.Name,
			Width:    c.Width,
			Checked:  outcome.Checked,
			Failures: outcome.Failures,
			MaxError: outcome.MaxError,
			Duration: time.Since(caseStart),
		}
		checked.Add(int64(outcome.Checked))
		failed.Add(int64(outcome.Failures))
		return bar.Add(1)
	}); err != nil {
		return nil, errors.Trace(err)
	}
	elapsed := time.Since(start)
	seconds := lo.Map(results, func(result Result, _ int) float64 {
		return result.Duration.Seconds()
	})
	log.Logger().Info("suite complete",
		zap.Int("cases", len(results)),
		zap.Int64("checked", checked.Load()),
		zap.Int64("failures", failed.Load()),
		zap.Duration("elapsed", elapsed),
		zap.Float64("mean_case_seconds", stat.Mean(seconds, nil)))
	return &Report{Results: results, Elapsed: elapsed}, nil
}
