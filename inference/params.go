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
	"github.com/goccy/go-yaml"
	"math"
	"os"
)

// geneCounts are the possible numbers of variant allele copies per person.
var geneCounts = []int{0, 1, 2}

// Parameters is the fixed generative model of the network: the gene-count
// prior for founders, the probability of expressing the trait given each
// gene count, and the per-transmission mutation rate. It is passed
// explicitly into the engine rather than living in package state so tests
// and callers can swap it out.
type Parameters struct {
	// GenePrior is the unconditional gene-count distribution used for
	// people without recorded parents.
	GenePrior map[int]float64 `yaml:"gene_prior"`
	// TraitGivenGene holds P(trait = true | gene count). The false case is
	// always the complement.
	TraitGivenGene map[int]float64 `yaml:"trait_given_gene"`
	// Mutation is the probability that a transmitted allele flips.
	Mutation float64 `yaml:"mutation"`
}

// DefaultParameters returns the standard model.
func DefaultParameters() Parameters {
	return Parameters{
		GenePrior:      map[int]float64{0: 0.96, 1: 0.03, 2: 0.01},
		TraitGivenGene: map[int]float64{0: 0.01, 1: 0.56, 2: 0.65},
		Mutation:       0.01,
	}
}

// LoadParameters reads a YAML parameter file and validates it.
func LoadParameters(filename string) (Parameters, error) {
	file, err := os.ReadFile(filename)
	if err != nil {
		return Parameters{}, fmt.Errorf("could not read parameter file: %w", err)
	}
	var params Parameters
	if err := yaml.Unmarshal(file, &params); err != nil {
		return Parameters{}, fmt.Errorf("could not parse parameter file `%s`: %w", filename, err)
	}
	if err := params.Validate(); err != nil {
		return Parameters{}, fmt.Errorf("invalid parameter file `%s`: %w", filename, err)
	}
	return params, nil
}

// Validate checks that both tables cover every gene count, that all
// entries are probabilities and that the prior is a distribution.
func (p Parameters) Validate() error {
	for _, count := range geneCounts {
		prior, ok := p.GenePrior[count]
		if !ok {
			return fmt.Errorf("gene prior is missing gene count %d", count)
		}
		if prior < 0 || prior > 1 {
			return fmt.Errorf("gene prior for gene count %d is not a probability: %g", count, prior)
		}
		emission, ok := p.TraitGivenGene[count]
		if !ok {
			return fmt.Errorf("trait table is missing gene count %d", count)
		}
		if emission < 0 || emission > 1 {
			return fmt.Errorf("trait probability for gene count %d is not a probability: %g", count, emission)
		}
	}
	var priorTotal float64
	for _, prior := range p.GenePrior {
		priorTotal += prior
	}
	if math.Abs(priorTotal-1) > 1e-9 {
		return fmt.Errorf("gene prior sums to %g, expected 1", priorTotal)
	}
	if p.Mutation < 0 || p.Mutation > 1 {
		return fmt.Errorf("mutation rate is not a probability: %g", p.Mutation)
	}
	return nil
}

// Prior returns the founder probability of the given gene count.
func (p Parameters) Prior(geneCount int) float64 {
	return p.GenePrior[geneCount]
}

// TraitProbability returns P(trait = hasTrait | gene count).
func (p Parameters) TraitProbability(geneCount int, hasTrait bool) float64 {
	if hasTrait {
		return p.TraitGivenGene[geneCount]
	}
	return 1 - p.TraitGivenGene[geneCount]
}

// PassProbability returns the probability that a parent with the given
// gene count transmits the variant allele to a child. A parent without the
// variant can still pass it through mutation; a heterozygous parent passes
// it with probability exactly 0.5 because mutation cancels symmetrically.
func (p Parameters) PassProbability(geneCount int) float64 {
	switch geneCount {
	case 0:
		return p.Mutation
	case 1:
		return 0.5*(1-p.Mutation) + 0.5*p.Mutation
	default:
		return 1 - p.Mutation
	}
}
