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

// calculator scores full assignments against one population and parameter
// set. People are referred to by their index in sorted-name order; parent
// links are resolved to indices once so the scoring loop is pure table
// walking.
type calculator struct {
	params Parameters
	mother []int // parent index per person, -1 for founders
	father []int
}

func newCalculator(pop *pedigree.Population, params Parameters) *calculator {
	names := pop.Names()
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}

	c := &calculator{
		params: params,
		mother: make([]int, len(names)),
		father: make([]int, len(names)),
	}
	for i, name := range names {
		person, _ := pop.Get(name)
		if person.Founder() {
			c.mother[i], c.father[i] = -1, -1
		} else {
			c.mother[i] = index[person.Parents.Mother]
			c.father[i] = index[person.Parents.Father]
		}
	}
	return c
}

// joint returns the probability that every person carries exactly the gene
// count assigned by (oneGene, twoGenes) and exactly the trait membership
// assigned by haveTrait. Conditioned on the assignment, each person's gene
// count depends only on their parents' assigned counts and each trait only
// on the person's own count, so the joint is a plain product of per-person
// factors.
func (c *calculator) joint(oneGene, twoGenes, haveTrait set) float64 {
	p := 1.0
	for i := range c.mother {
		count := geneCount(i, oneGene, twoGenes)

		var geneProb float64
		if c.mother[i] < 0 {
			geneProb = c.params.Prior(count)
		} else {
			passMother := c.params.PassProbability(geneCount(c.mother[i], oneGene, twoGenes))
			passFather := c.params.PassProbability(geneCount(c.father[i], oneGene, twoGenes))
			switch count {
			case 0:
				geneProb = (1 - passMother) * (1 - passFather)
			case 1:
				geneProb = (1-passMother)*passFather + (1-passFather)*passMother
			default:
				geneProb = passMother * passFather
			}
		}

		p *= geneProb * c.params.TraitProbability(count, haveTrait.contains(i))
	}
	return p
}

// JointProbability scores a single full assignment given by name: everyone
// in oneGene carries one copy, everyone in twoGenes two copies, everyone
// else none, and exactly the people in haveTrait express the trait. The
// two gene sets must be disjoint and all names must resolve.
func JointProbability(pop *pedigree.Population, params Parameters, oneGene, twoGenes, haveTrait []string) (float64, error) {
	index := make(map[string]int, pop.Len())
	for i, name := range pop.Names() {
		index[name] = i
	}

	toSet := func(names []string) (set, error) {
		var s set
		for _, name := range names {
			i, ok := index[name]
			if !ok {
				return 0, fmt.Errorf("unknown person `%s`", name)
			}
			s |= 1 << i
		}
		return s, nil
	}

	one, err := toSet(oneGene)
	if err != nil {
		return 0, err
	}
	two, err := toSet(twoGenes)
	if err != nil {
		return 0, err
	}
	if one&two != 0 {
		return 0, fmt.Errorf("one-gene and two-gene sets overlap")
	}
	trait, err := toSet(haveTrait)
	if err != nil {
		return 0, err
	}

	return newCalculator(pop, params).joint(one, two, trait), nil
}
