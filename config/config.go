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

package config

import (
	"github.com/juju/errors"
	"github.com/spf13/viper"
)

// Config is the configuration for the benchmark runner.
type Config struct {
	Benchmark BenchmarkConfig `mapstructure:"benchmark"`
	Report    ReportConfig    `mapstructure:"report"`
}

// BenchmarkConfig is the configuration for sampling and scheduling.
type BenchmarkConfig struct {
	Samples int      `mapstructure:"samples"` // number of samples per case
	Seed    int64    `mapstructure:"seed"`    // seed of the random generator
	Jobs    int      `mapstructure:"jobs"`    // number of concurrent jobs
	Widths  []string `mapstructure:"widths"`  // floating-point widths to verify
}

// ReportConfig is the configuration for rendering results.
type ReportConfig struct {
	Format string `mapstructure:"format"`  // output format
	SortBy string `mapstructure:"sort_by"` // row order
}

// GetDefaultConfig returns a default config.
func GetDefaultConfig() *Config {
	return &Config{
		Benchmark: BenchmarkConfig{
			Samples: 10000,
			Seed:    0,
			Jobs:    1,
			Widths:  []string{"float32", "float64"},
		},
		Report: ReportConfig{
			Format: "table",
			SortBy: "name",
		},
	}
}

// Validate checks the config and panics on invalid values.
func (config *Config) Validate() {
	validatePositive("benchmark.samples", config.Benchmark.Samples)
	validatePositive("benchmark.jobs", config.Benchmark.Jobs)
	validateNotEmpty("benchmark.widths", config.Benchmark.Widths)
	validateSubset("benchmark.widths", config.Benchmark.Widths, []string{"float32", "float64"})
	validateIn("report.format", config.Report.Format, []string{"table", "csv"})
	validateIn("report.sort_by", config.Report.SortBy, []string{"name", "duration", "failures", "max_error"})
}

func setDefault() {
	defaultConfig := GetDefaultConfig()
	// [benchmark]
	viper.SetDefault("benchmark.samples", defaultConfig.Benchmark.Samples)
	viper.SetDefault("benchmark.seed", defaultConfig.Benchmark.Seed)
	viper.SetDefault("benchmark.jobs", defaultConfig.Benchmark.Jobs)
	viper.SetDefault("benchmark.widths", defaultConfig.Benchmark.Widths)
	// [report]
	viper.SetDefault("report.format", defaultConfig.Report.Format)
	viper.SetDefault("report.sort_by", defaultConfig.Report.SortBy)
}

type configBinding struct {
	key string
	env string
}

// LoadConfig loads and validates the configuration from a toml file.
// Environment variables override values from the file.
func LoadConfig(path string) (*Config, error) {
	// set default values
	setDefault()

	// bind environment bindings
	bindings := []configBinding{
		{"benchmark.samples", "FLOATX_BENCHMARK_SAMPLES"},
		{"benchmark.seed", "FLOATX_BENCHMARK_SEED"},
		{"benchmark.jobs", "FLOATX_BENCHMARK_JOBS"},
		{"report.format", "FLOATX_REPORT_FORMAT"},
		{"report.sort_by", "FLOATX_REPORT_SORT_BY"},
	}
	for _, binding := range bindings {
		if err := viper.BindEnv(binding.key, binding.env); err != nil {
			return nil, errors.Trace(err)
		}
	}

	// load config file
	viper.SetConfigType("toml")
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return nil, errors.Trace(err)
	}
	var conf Config
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, errors.Trace(err)
	}
	conf.Validate()
	return &conf, nil
}
