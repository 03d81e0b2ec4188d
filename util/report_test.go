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

package util

import (
	"github.com/stretchr/testify/assert"
	"heredctl/inference"
	"testing"
	"time"
)

func TestFmtMarginals(t *testing.T) {
	distributions := inference.Distributions{
		"Harry": inference.Marginals{
			Gene:  map[int]float64{0: 0.5351, 1: 0.4557, 2: 0.0092},
			Trait: map[bool]float64{false: 0.7335, true: 0.2665},
		},
		"Lily": inference.Marginals{
			Gene:  map[int]float64{0: 0.9827, 1: 0.0136, 2: 0.0036},
			Trait: map[bool]float64{false: 1, true: 0},
		},
	}

	report := FmtMarginals([]string{"Harry", "Lily"}, distributions)

	assert.Equal(t, `Harry:
  Gene:
    2: 0.0092
    1: 0.4557
    0: 0.5351
  Trait:
    True: 0.2665
    False: 0.7335
Lily:
  Gene:
    2: 0.0036
    1: 0.0136
    0: 0.9827
  Trait:
    True: 0.0000
    False: 1.0000
`, report)
}

func TestFmtMarginals_roundsToFourPlaces(t *testing.T) {
	distributions := inference.Distributions{
		"a": inference.Marginals{
			Gene:  map[int]float64{0: 0.96, 1: 0.03, 2: 0.01},
			Trait: map[bool]float64{false: 0.96712, true: 0.03288},
		},
	}

	report := FmtMarginals([]string{"a"}, distributions)

	assert.Contains(t, report, "True: 0.0329")
	assert.Contains(t, report, "False: 0.9671")
	assert.Contains(t, report, "0: 0.9600")
}

func TestFmtDurationHumanReadable(t *testing.T) {
	assert.Equal(t, "1.235s", FmtDurationHumanReadable(1234567*time.Microsecond))
	assert.Equal(t, "2m0s", FmtDurationHumanReadable(2*time.Minute+300*time.Millisecond))
}
