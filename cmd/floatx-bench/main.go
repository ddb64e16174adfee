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
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/floatx-io/floatx/base/log"
	"github.com/floatx-io/floatx/benchmark"
	"github.com/floatx-io/floatx/cmd/version"
	"github.com/floatx-io/floatx/config"
)

var rootCmd = &cobra.Command{
	Use:   "floatx-bench",
	Short: "Verification and benchmarking tool for the floatx capability set.",
	Run: func(cmd *cobra.Command, args []string) {
		// Show version
		if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
			fmt.Println(version.BuildInfo())
			return
		}
		_ = cmd.Help()
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify capability properties over sampled inputs",
	Run: func(cmd *cobra.Command, args []string) {
		// setup logger
		debug, _ := cmd.Flags().GetBool("debug")
		log.SetLogger(cmd.Flags(), debug)

		conf := loadConfig(cmd)
		fmt.Println(benchmark.Environment())
		report, err := benchmark.NewRunner(conf).Run()
		if err != nil {
			log.Logger().Fatal("failed to run suite", zap.Error(err))
		}
		report.Sort(conf.Report.SortBy)
		if err = report.Write(os.Stdout, conf.Report.Format); err != nil {
			log.Logger().Fatal("failed to render report", zap.Error(err))
		}
		if report.Failed() {
			log.Logger().Error("property violations found",
				zap.Int("failures", report.TotalFailures()),
				zap.Int("checked", report.TotalChecked()))
			os.Exit(1)
		}
		log.Logger().Info("all properties hold",
			zap.Int("checked", report.TotalChecked()),
			zap.Duration("elapsed", report.Elapsed))
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the capability suite and render a report",
	Run: func(cmd *cobra.Command, args []string) {
		// setup logger
		debug, _ := cmd.Flags().GetBool("debug")
		log.SetLogger(cmd.Flags(), debug)

		conf := loadConfig(cmd)
		if !cmd.Flags().Changed("sort-by") {
			conf.Report.SortBy = "duration"
		}
		fmt.Println(benchmark.Environment())
		report, err := benchmark.NewRunner(conf).Run()
		if err != nil {
			log.Logger().Fatal("failed to run suite", zap.Error(err))
		}
		report.Sort(conf.Report.SortBy)
		if err = report.Write(os.Stdout, conf.Report.Format); err != nil {
			log.Logger().Fatal("failed to render report", zap.Error(err))
		}
		if report.Failed() {
			log.Logger().Warn("property violations found",
				zap.Int("failures", report.TotalFailures()))
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of floatx",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.BuildInfo())
	},
}

// loadConfig reads the configuration file when one is given and applies flag
// overrides on top.
func loadConfig(cmd *cobra.Command) *config.Config {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	var conf *config.Config
	if configPath != "" {
		log.Logger().Info("load config", zap.String("config", configPath))
		var err error
		conf, err = config.LoadConfig(configPath)
		if err != nil {
			log.Logger().Fatal("failed to load config", zap.Error(err))
		}
	} else {
		conf = config.GetDefaultConfig()
	}
	if flags.Changed("samples") {
		conf.Benchmark.Samples, _ = flags.GetInt("samples")
	}
	if flags.Changed("seed") {
		conf.Benchmark.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("jobs") {
		conf.Benchmark.Jobs, _ = flags.GetInt("jobs")
	}
	if flags.Changed("width") {
		conf.Benchmark.Widths, _ = flags.GetStringSlice("width")
	}
	if flags.Changed("format") {
		conf.Report.Format, _ = flags.GetString("format")
	}
	if flags.Changed("sort-by") {
		conf.Report.SortBy, _ = flags.GetString("sort-by")
	}
	conf.Validate()
	return conf
}

func init() {
	log.AddFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().Bool("debug", false, "use debug log mode")
	rootCmd.PersistentFlags().BoolP("version", "v", false, "floatx version")
	rootCmd.PersistentFlags().StringP("config", "c", "", "configuration file path")
	rootCmd.PersistentFlags().Int("samples", 10000, "number of samples per case")
	rootCmd.PersistentFlags().Int64("seed", 0, "seed of the random generator")
	rootCmd.PersistentFlags().Int("jobs", 1, "number of concurrent jobs")
	rootCmd.PersistentFlags().StringSlice("width", []string{"float32", "float64"}, "floating-point widths to verify")
	rootCmd.PersistentFlags().String("format", "table", "report format, one of: table, csv")
	rootCmd.PersistentFlags().String("sort-by", "name", "report order, one of: name, duration, failures, max_error")
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}
