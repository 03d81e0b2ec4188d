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

// Marginals holds one person's two posterior distributions: over gene
// count and over trait expression.
type Marginals struct {
	Gene  map[int]float64
	Trait map[bool]float64
}

// Distributions maps every person to their marginals. Produced normalized
// by Run; the nested maps are the structured result the reporter consumes.
type Distributions map[string]Marginals

// accumulator sums joint probabilities into dense per-person buckets.
// Workers each own one and the partial sums are merged before
// normalization, so the scoring loop never shares state.
type accumulator struct {
	gene  [][3]float64
	trait [][2]float64
}

func newAccumulator(n int) *accumulator {
	return &accumulator{
		gene:  make([][3]float64, n),
		trait: make([][2]float64, n),
	}
}

// add books the joint probability p of one scored assignment onto every
// person's bucket for the value that assignment gives them.
func (a *accumulator) add(oneGene, twoGenes, haveTrait set, p float64) {
	for i := range a.gene {
		a.gene[i][geneCount(i, oneGene, twoGenes)] += p
		if haveTrait.contains(i) {
			a.trait[i][1] += p
		} else {
			a.trait[i][0] += p
		}
	}
}

// merge folds another accumulator's partial sums into this one.
func (a *accumulator) merge(other *accumulator) {
	for i := range a.gene {
		for count := range a.gene[i] {
			a.gene[i][count] += other.gene[i][count]
		}
		a.trait[i][0] += other.trait[i][0]
		a.trait[i][1] += other.trait[i][1]
	}
}

// distributions converts the dense buckets into the keyed result form,
// with names in the same index order the buckets were accumulated under.
func (a *accumulator) distributions(names []string) Distributions {
	result := make(Distributions, len(names))
	for i, name := range names {
		result[name] = Marginals{
			Gene: map[int]float64{
				0: a.gene[i][0],
				1: a.gene[i][1],
				2: a.gene[i][2],
			},
			Trait: map[bool]float64{
				false: a.trait[i][0],
				true:  a.trait[i][1],
			},
		}
	}
	return result
}
