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
	"heredctl/pedigree"
)

// set is a subset of the population, one bit per person in sorted-name
// index order. A full assignment is a pair of disjoint sets (one gene, two
// genes) plus a trait set.
type set uint64

// maxPopulation bounds the population size. The bound is a formality: the
// assignment space grows with 6^n, so exhaustive scoring stops being
// computable long before an index stops fitting into a set.
const maxPopulation = 63

func (s set) contains(i int) bool {
	return s&(1<<i) != 0
}

// geneCount returns the gene count assigned to person i by the disjoint
// pair (oneGene, twoGenes); people in neither set carry zero copies.
func geneCount(i int, oneGene, twoGenes set) int {
	if oneGene.contains(i) {
		return 1
	}
	if twoGenes.contains(i) {
		return 2
	}
	return 0
}

// enumerator produces candidate assignments for one population: every
// subset of people as a trait set, filtered against observed evidence, and
// for each of those every disjoint 3-way gene partition. The whole space
// has 2^n trait sets and 3^n gene partitions per set.
type enumerator struct {
	n    int
	full set

	// observed marks people with a known trait, observedTrue the subset of
	// those whose trait is true. A trait set is evidence-consistent exactly
	// when its observed bits equal observedTrue.
	observed     set
	observedTrue set
}

func newEnumerator(pop *pedigree.Population) *enumerator {
	e := &enumerator{n: pop.Len()}
	e.full = set(1)<<e.n - 1
	for i, name := range pop.Names() {
		person, _ := pop.Get(name)
		if person.Trait != nil {
			e.observed |= 1 << i
			if *person.Trait {
				e.observedTrue |= 1 << i
			}
		}
	}
	return e
}

// traitSetCount returns the number of candidate trait sets before evidence
// filtering, i.e. 2^n.
func (e *enumerator) traitSetCount() uint64 {
	return uint64(e.full) + 1
}

// consistent reports whether the trait set agrees with every observed
// trait.
func (e *enumerator) consistent(haveTrait set) bool {
	return haveTrait&e.observed == e.observedTrue
}

// genePartitions calls fn once for every disjoint pair (oneGene, twoGenes)
// of subsets of the population, i.e. for every 3-way partition into one
// copy, two copies and zero copies. Partitions are generated directly by
// walking the subsets of the complement, not by intersecting two full
// powersets.
func (e *enumerator) genePartitions(fn func(oneGene, twoGenes set)) {
	for oneGene := e.full; ; oneGene = (oneGene - 1) & e.full {
		rest := e.full &^ oneGene
		for twoGenes := rest; ; twoGenes = (twoGenes - 1) & rest {
			fn(oneGene, twoGenes)
			if twoGenes == 0 {
				break
			}
		}
		if oneGene == 0 {
			break
		}
	}
}
