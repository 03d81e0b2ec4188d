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

package inference

import (
	"fmt"
	"heredctl/pedigree"
)

// Options control how Run walks the assignment space. The zero value is a
// sequential run without progress reporting.
type Options struct {
	// Concurrency is the number of workers the trait-set space is sharded
	// over. Values below 2 run sequentially. Each worker owns a local
	// accumulator; partial sums are merged before normalization, so the
	// scoring loop itself is lock-free.
	Concurrency int
	// Progress, when set, is called once per trait set consumed, including
	// evidence-rejected ones, with the number of sets consumed (always 1).
	// TraitSetCount gives the total. Must be safe for concurrent use when
	// Concurrency is above 1.
	Progress func(n int)
}

// Stats summarizes one engine run.
type Stats struct {
	// TraitSets is the number of evidence-consistent trait sets.
	TraitSets uint64
	// Combinations is the number of full assignments scored.
	Combinations uint64
}

// TraitSetCount returns the number of candidate trait sets Run will
// consume for the population, i.e. 2^n. Useful for sizing progress bars.
func TraitSetCount(pop *pedigree.Population) uint64 {
	return newEnumerator(pop).traitSetCount()
}

// Run computes the exact posterior marginals for every person in the
// population: it enumerates every gene/trait assignment consistent with
// the observed traits, scores each one's joint probability under params,
// sums the scores into per-person buckets and normalizes them. The work is
// recomputed from scratch on every call; two runs over the same inputs
// yield the same distributions.
func Run(pop *pedigree.Population, params Parameters, opts Options) (Distributions, Stats, error) {
	if pop.Len() > maxPopulation {
		return nil, Stats{}, fmt.Errorf("population has %d people, exact enumeration supports at most %d", pop.Len(), maxPopulation)
	}
	if err := params.Validate(); err != nil {
		return nil, Stats{}, err
	}

	enum := newEnumerator(pop)
	calc := newCalculator(pop, params)

	var acc *accumulator
	var stats Stats
	if opts.Concurrency > 1 {
		acc, stats = runSharded(enum, calc, pop.Len(), opts)
	} else {
		acc, stats = runSequential(enum, calc, pop.Len(), opts)
	}

	result := acc.distributions(pop.Names())
	if err := result.Normalize(); err != nil {
		return nil, stats, err
	}
	return result, stats, nil
}

func runSequential(enum *enumerator, calc *calculator, n int, opts Options) (*accumulator, Stats) {
	acc := newAccumulator(n)
	var stats Stats
	for haveTrait := set(0); ; haveTrait++ {
		stats.Combinations += score(enum, calc, acc, haveTrait, &stats.TraitSets)
		if opts.Progress != nil {
			opts.Progress(1)
		}
		if haveTrait == enum.full {
			break
		}
	}
	return acc, stats
}

// runSharded fans the trait sets out over workers. Every worker scores the
// complete gene-partition space for the trait sets it receives into its
// own accumulator; the partial accumulators are reduced afterwards.
func runSharded(enum *enumerator, calc *calculator, n int, opts Options) (*accumulator, Stats) {
	type partial struct {
		acc   *accumulator
		stats Stats
	}

	traitSets := make(chan set)
	partials := make(chan partial)
	for i := 0; i < opts.Concurrency; i++ {
		go func() {
			acc := newAccumulator(n)
			var stats Stats
			for haveTrait := range traitSets {
				stats.Combinations += score(enum, calc, acc, haveTrait, &stats.TraitSets)
				if opts.Progress != nil {
					opts.Progress(1)
				}
			}
			partials <- partial{acc: acc, stats: stats}
		}()
	}

	go func() {
		for haveTrait := set(0); ; haveTrait++ {
			traitSets <- haveTrait
			if haveTrait == enum.full {
				break
			}
		}
		close(traitSets)
	}()

	acc := newAccumulator(n)
	var stats Stats
	for i := 0; i < opts.Concurrency; i++ {
		p := <-partials
		acc.merge(p.acc)
		stats.TraitSets += p.stats.TraitSets
		stats.Combinations += p.stats.Combinations
	}
	return acc, stats
}

// score books every gene partition under haveTrait into acc and returns
// the number of assignments scored, zero if the trait set contradicts the
// evidence.
func score(enum *enumerator, calc *calculator, acc *accumulator, haveTrait set, traitSets *uint64) uint64 {
	if !enum.consistent(haveTrait) {
		return 0
	}
	*traitSets++
	var scored uint64
	enum.genePartitions(func(oneGene, twoGenes set) {
		acc.add(oneGene, twoGenes, haveTrait, calc.joint(oneGene, twoGenes, haveTrait))
		scored++
	})
	return scored
}
