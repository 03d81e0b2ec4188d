// Copyright 2026 The heredctl Authors
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

package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"heredctl/inference"
	"heredctl/pedigree"
	"heredctl/util"
	"os"
	"time"
)

var paramsFile string
var concurrency int
var noProgress bool

// rootCmd runs the inference itself; there are no subcommands.
var rootCmd = &cobra.Command{
	Use:   "heredctl [file]",
	Short: "Exact trait inheritance inference over a pedigree",
	Long: `heredctl computes, for every person in a pedigree, the exact posterior
distribution over variant gene copies and over trait expression,
conditioned on all observed traits.

The pedigree is a CSV file with columns name, mother, father and trait.
Parents are either both named or both empty, trait is 1, 0 or empty for
unobserved. The full gene/trait assignment space is enumerated, so the
run time grows with 6^n in the population size.

Example:

  heredctl data/family0.csv`,
	Version:   "0.1.0",
	ValidArgs: []string{"file"},
	Args:      cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		population, err := pedigree.Load(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		params := inference.DefaultParameters()
		if paramsFile != "" {
			params, err = inference.LoadParameters(paramsFile)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		}

		opts := inference.Options{Concurrency: concurrency}
		var progress *mpb.Progress
		if !noProgress {
			progress = mpb.New()
			bar := progress.AddBar(int64(inference.TraitSetCount(population)),
				mpb.BarRemoveOnComplete(),
				mpb.PrependDecorators(decor.Name("score")),
				mpb.AppendDecorators(decor.Percentage()),
			)
			opts.Progress = func(n int) { bar.IncrBy(n) }
		}

		start := time.Now()
		result, stats, err := inference.Run(population, params, opts)
		if progress != nil {
			progress.Wait()
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		fmt.Print(util.FmtMarginals(population.Names(), result))
		fmt.Printf("\nScored %d combinations across %d trait sets in %s\n",
			stats.Combinations, stats.TraitSets, util.FmtDurationHumanReadable(time.Since(start)))
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&paramsFile, "params", "", "path to a YAML file overriding the network parameters")
	rootCmd.Flags().IntVarP(&concurrency, "concurrency", "c", 1, "number of workers the assignment space is sharded over")
	rootCmd.Flags().BoolVar(&noProgress, "no-progress", false, "don't show progress bar")
}
