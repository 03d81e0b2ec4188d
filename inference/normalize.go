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
	"gonum.org/v1/gonum/floats"
)

// DegenerateEvidenceError reports that one accumulated distribution summed
// to zero: either evidence filtering rejected every candidate combination
// or every surviving combination scored a zero joint probability. There is
// no valid posterior in that case, so normalization fails instead of
// dividing by zero.
type DegenerateEvidenceError struct {
	Person   string
	Variable string
}

func (e *DegenerateEvidenceError) Error() string {
	return fmt.Sprintf("degenerate evidence: %s distribution of `%s` has zero total weight", e.Variable, e.Person)
}

// Normalize rescales every accumulated distribution in place so each sums
// to 1, preserving the relative proportions between buckets.
func (d Distributions) Normalize() error {
	for person, marginals := range d {
		geneWeights := make([]float64, 0, len(marginals.Gene))
		for _, weight := range marginals.Gene {
			geneWeights = append(geneWeights, weight)
		}
		geneTotal := floats.Sum(geneWeights)
		if geneTotal == 0 {
			return &DegenerateEvidenceError{Person: person, Variable: "gene"}
		}
		for count := range marginals.Gene {
			marginals.Gene[count] /= geneTotal
		}

		traitWeights := []float64{marginals.Trait[false], marginals.Trait[true]}
		traitTotal := floats.Sum(traitWeights)
		if traitTotal == 0 {
			return &DegenerateEvidenceError{Person: person, Variable: "trait"}
		}
		marginals.Trait[false] /= traitTotal
		marginals.Trait[true] /= traitTotal
	}
	return nil
}
