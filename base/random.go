// Copyright 2023 floatx Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package base

import (
	"math/rand"

	"github.com/floatx-io/floatx/scalar"
)

// RandomGenerator is a deterministic source of sample values.
type RandomGenerator struct {
	*rand.Rand
}

// NewRandomGenerator creates a RandomGenerator. The same seed reproduces the
// same sequence.
func NewRandomGenerator(seed int64) RandomGenerator {
	return RandomGenerator{rand.New(rand.NewSource(seed))}
}

// Uniform returns a sample drawn uniformly between low and high at width T.
func Uniform[T scalar.Float](rng RandomGenerator, low, high T) T {
	return T(rng.Float64())*(high-low) + low
}

// UniformVector makes a vector filled with uniform random values between low
// and high.
func UniformVector[T scalar.Float](rng RandomGenerator, size int, low, high T) []T {
	ret := make([]T, size)
	scale := high - low
	for i := range ret {
		ret[i] = T(rng.Float64())*scale + low
	}
	return ret
}

// NormalVector makes a vector filled with normal random values.
func NormalVector[T scalar.Float](rng RandomGenerator, size int, mean, stdDev T) []T {
	ret := make([]T, size)
	for i := range ret {
		ret[i] = T(rng.NormFloat64())*stdDev + mean
	}
	return ret
}

// LogUniformVector makes a vector whose magnitudes are log-uniform between
// low and high, covering many binary exponents evenly. low and high must be
// positive.
func LogUniformVector[T scalar.Float](rng RandomGenerator, size int, low, high T) []T {
	ret := make([]T, size)
	span := scalar.Log(high / low)
	for i := range ret {
		ret[i] = low * scalar.Exp(T(rng.Float64())*span)
	}
	return ret
}
