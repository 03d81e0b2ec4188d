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
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNormalize(t *testing.T) {
	distributions := Distributions{
		"Harry": Marginals{
			Gene:  map[int]float64{0: 0.1, 1: 0.3, 2: 0.1},
			Trait: map[bool]float64{false: 0.3, true: 0.1},
		},
	}

	if err := distributions.Normalize(); err != nil {
		t.Fatal(err)
	}

	marginals := distributions["Harry"]
	assert.InDelta(t, 0.2, marginals.Gene[0], 1e-12)
	assert.InDelta(t, 0.6, marginals.Gene[1], 1e-12)
	assert.InDelta(t, 0.2, marginals.Gene[2], 1e-12)
	assert.InDelta(t, 0.75, marginals.Trait[false], 1e-12)
	assert.InDelta(t, 0.25, marginals.Trait[true], 1e-12)
}

func TestNormalize_zeroGeneTotal(t *testing.T) {
	distributions := Distributions{
		"Harry": Marginals{
			Gene:  map[int]float64{0: 0, 1: 0, 2: 0},
			Trait: map[bool]float64{false: 0.5, true: 0.5},
		},
	}

	err := distributions.Normalize()

	var degenerate *DegenerateEvidenceError
	if !errors.As(err, &degenerate) {
		t.Fatalf("expected a degenerate evidence error, got %v", err)
	}
	assert.Equal(t, "Harry", degenerate.Person)
	assert.Equal(t, "gene", degenerate.Variable)
}

func TestNormalize_zeroTraitTotal(t *testing.T) {
	distributions := Distributions{
		"Harry": Marginals{
			Gene:  map[int]float64{0: 0.5, 1: 0.25, 2: 0.25},
			Trait: map[bool]float64{false: 0, true: 0},
		},
	}

	err := distributions.Normalize()

	var degenerate *DegenerateEvidenceError
	if !errors.As(err, &degenerate) {
		t.Fatalf("expected a degenerate evidence error, got %v", err)
	}
	assert.Equal(t, "trait", degenerate.Variable)
	assert.ErrorContains(t, err, "zero total weight")
}
