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

package floats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/floatx-io/floatx/scalar"
)

type ReduceTestSuite[T scalar.Float] struct {
	suite.Suite
}

func (s *ReduceTestSuite[T]) TestDot() {
	a := []T{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	b := []T{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20}
	s.Equal(T(770), Dot(a, b))
	s.Panics(func() { Dot([]T{1}, nil) })
}

func (s *ReduceTestSuite[T]) TestEuclidean() {
	a := []T{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	b := []T{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20}
	s.InDelta(19.621416, float64(Euclidean(a, b)), 1e-5)
	s.Panics(func() { Euclidean([]T{1}, nil) })
}

func (s *ReduceTestSuite[T]) TestSquaredL2() {
	a := []T{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	b := []T{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20}
	s.Equal(T(385), SquaredL2(a, b))
	s.InDelta(float64(Euclidean(a, b)), float64(scalar.Sqrt(SquaredL2(a, b))), 1e-5)
	s.Panics(func() { SquaredL2([]T{1}, nil) })
}

func (s *ReduceTestSuite[T]) TestNorm() {
	s.Equal(T(5), Norm([]T{3, 4}))
	s.InDelta(19.621416, float64(Norm([]T{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10})), 1e-4)
}

func (s *ReduceTestSuite[T]) TestSum() {
	s.Equal(T(10), Sum([]T{1, 2, 3, 4}))
	s.Equal(T(0), Sum[T](nil))
}

func (s *ReduceTestSuite[T]) TestMean() {
	s.Equal(T(2.5), Mean([]T{1, 2, 3, 4}))
}

func (s *ReduceTestSuite[T]) TestStdDev() {
	s.InDelta(2.0, float64(StdDev([]T{2, 4, 4, 4, 5, 5, 7, 9})), 0.15)
	s.True(scalar.IsNaN(StdDev([]T{1})))
}

func (s *ReduceTestSuite[T]) TestMinMax() {
	v := []T{3, -2, 5, 0.5}
	s.Equal(T(-2), Min(v))
	s.Equal(T(5), Max(v))
	s.Panics(func() { Min[T](nil) })
	s.Panics(func() { Max[T](nil) })
}

func TestReduceFloat32(t *testing.T) {
	suite.Run(t, new(ReduceTestSuite[float32]))
}

func TestReduceFloat64(t *testing.T) {
	suite.Run(t, new(ReduceTestSuite[float64]))
}

func TestCrossWidthAgreement(t *testing.T) {
	// The narrow instantiation agrees with the gonum backed wide one to
	// narrow precision.
	narrow := []float32{0.5, 1.25, -2, 3.75, 10}
	wide := make([]float64, len(narrow))
	for i, v := range narrow {
		wide[i] = float64(v)
	}
	assert.InDelta(t, float64(Sum(narrow)), Sum(wide), 1e-5)
	assert.InDelta(t, float64(Norm(narrow)), Norm(wide), 1e-5)
	assert.InDelta(t, float64(Dot(narrow, narrow)), Dot(wide, wide), 1e-4)
	assert.InDelta(t, float64(Mean(narrow)), Mean(wide), 1e-5)
}
