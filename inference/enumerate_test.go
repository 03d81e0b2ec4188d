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
	"github.com/stretchr/testify/assert"
	"heredctl/pedigree"
	"testing"
)

func testPopulation(t *testing.T, people ...pedigree.Person) *pedigree.Population {
	t.Helper()
	pop, err := pedigree.New(people)
	if err != nil {
		t.Fatal(err)
	}
	return pop
}

func TestGeneCount(t *testing.T) {
	oneGene, twoGenes := set(0b001), set(0b010)

	assert.Equal(t, 1, geneCount(0, oneGene, twoGenes))
	assert.Equal(t, 2, geneCount(1, oneGene, twoGenes))
	assert.Equal(t, 0, geneCount(2, oneGene, twoGenes))
}

func TestEnumerator_traitSetCount(t *testing.T) {
	pop := testPopulation(t, pedigree.Person{Name: "a"}, pedigree.Person{Name: "b"}, pedigree.Person{Name: "c"})
	assert.Equal(t, uint64(8), newEnumerator(pop).traitSetCount())
}

func TestEnumerator_consistent(t *testing.T) {
	hasTrait, noTrait := true, false
	// names sort to a, b, c: a is observed true, b observed false, c open.
	pop := testPopulation(t,
		pedigree.Person{Name: "a", Trait: &hasTrait},
		pedigree.Person{Name: "b", Trait: &noTrait},
		pedigree.Person{Name: "c"},
	)
	enum := newEnumerator(pop)

	var consistent []set
	for haveTrait := set(0); haveTrait < 8; haveTrait++ {
		if enum.consistent(haveTrait) {
			consistent = append(consistent, haveTrait)
		}
	}

	// a (bit 0) must be in, b (bit 1) must be out, c (bit 2) is free.
	assert.Equal(t, []set{0b001, 0b101}, consistent)
}

func TestEnumerator_genePartitions(t *testing.T) {
	pop := testPopulation(t, pedigree.Person{Name: "a"}, pedigree.Person{Name: "b"}, pedigree.Person{Name: "c"})
	enum := newEnumerator(pop)

	seen := map[[2]set]bool{}
	enum.genePartitions(func(oneGene, twoGenes set) {
		assert.Zero(t, oneGene&twoGenes, "gene sets must be disjoint")
		assert.Zero(t, oneGene&^enum.full)
		assert.Zero(t, twoGenes&^enum.full)
		seen[[2]set{oneGene, twoGenes}] = true
	})

	// every person falls into one of 3 buckets: 3^3 distinct partitions.
	assert.Len(t, seen, 27)
}

func TestEnumerator_genePartitions_emptyPopulation(t *testing.T) {
	pop := testPopulation(t)
	enum := newEnumerator(pop)

	var count int
	enum.genePartitions(func(oneGene, twoGenes set) { count++ })
	assert.Equal(t, 1, count)
}
