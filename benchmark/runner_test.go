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
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/floatx-io/floatx/config"
)

func newTestConfig() *config.Config {
	conf := config.GetDefaultConfig()
	conf.Benchmark.Samples = 200
	conf.Benchmark.Jobs = 2
	return conf
}

func TestRunnerRun(t *testing.T) {
	conf := newTestConfig()
	report, err := NewRunner(conf).Run()
	assert.NoError(t, err)
	assert.Len(t, report.Results, len(Suite(conf.Benchmark.Widths)))
	assert.False(t, report.Failed())
	assert.Zero(t, report.TotalFailures())
	assert.Greater(t, report.TotalChecked(), 0)
	for _, result := range report.Results {
		assert.Greater(t, result.Checked, 0, result.Name)
	}
}

func TestRunnerDeterministic(t *testing.T) {
	conf := newTestConfig()
	first, err := NewRunner(conf).Run()
	assert.NoError(t, err)
	conf.Benchmark.Jobs = 1
	second, err := NewRunner(conf).Run()
	assert.NoError(t, err)
	strip := func(results []Result) []Result {
		return lo.Map(results, func(result Result, _ int) Result {
			result.Duration = 0
			return result
		})
	}
	assert.Equal(t, strip(first.Results), strip(second.Results))
}

func TestRunnerNoCases(t *testing.T) {
	conf := newTestConfig()
	conf.Benchmark.Widths = []string{"float16"}
	_, err := NewRunner(conf).Run()
	assert.Error(t, err)
}
