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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/floatx-io/floatx/scalar"
)

// Dot returns the inner product of two vectors.
func Dot[T scalar.Float](a, b []T) T {
	if len(a) != len(b) {
		panic("floats: slice lengths do not match")
	}
	if x, ok := any(a).([]float64); ok {
		return T(floats.Dot(x, any(b).([]float64)))
	}
	var ret T
	for i := range a {
		ret += a[i] * b[i]
	}
	return ret
}

// Euclidean returns the Euclidean distance between two vectors.
func Euclidean[T scalar.Float](a, b []T) T {
	if len(a) != len(b) {
		panic("floats: slice lengths do not match")
	}
	if x, ok := any(a).([]float64); ok {
		return T(floats.Distance(x, any(b).([]float64), 2))
	}
	var ret T
	for i := range a {
		ret += (a[i] - b[i]) * (a[i] - b[i])
	}
	return scalar.Sqrt(ret)
}

// SquaredL2 returns the squared Euclidean distance between two vectors. It
// skips the square root, which is enough when only the ordering of distances
// matters.
func SquaredL2[T scalar.Float](a, b []T) T {
	if len(a) != len(b) {
		panic("floats: slice lengths do not match")
	}
	var ret T
	for i := range a {
		ret += (a[i] - b[i]) * (a[i] - b[i])
	}
	return ret
}

// Norm returns the Euclidean norm of a vector.
func Norm[T scalar.Float](a []T) T {
	if x, ok := any(a).([]float64); ok {
		return T(floats.Norm(x, 2))
	}
	return scalar.Sqrt(Dot(a, a))
}

// Sum returns the sum of the elements of a vector.
func Sum[T scalar.Float](a []T) T {
	if x, ok := any(a).([]float64); ok {
		return T(floats.Sum(x))
	}
	var sum T
	for _, v := range a {
		sum += v
	}
	return sum
}

// Mean returns the arithmetic mean of a vector.
func Mean[T scalar.Float](a []T) T {
	if x, ok := any(a).([]float64); ok {
		return T(stat.Mean(x, nil))
	}
	return Sum(a) / T(len(a))
}

// StdDev returns the sample standard deviation of a vector.
func StdDev[T scalar.Float](a []T) T {
	if x, ok := any(a).([]float64); ok {
		return T(stat.StdDev(x, nil))
	}
	if len(a) < 2 {
		return scalar.NaN[T]()
	}
	mean := Mean(a)
	var ss T
	for _, v := range a {
		ss += (v - mean) * (v - mean)
	}
	return scalar.Sqrt(ss / T(len(a)-1))
}

// Min returns the smallest element of a non-empty vector.
func Min[T scalar.Float](a []T) T {
	if len(a) == 0 {
		panic("floats: zero slice length")
	}
	if x, ok := any(a).([]float64); ok {
		return T(floats.Min(x))
	}
	ret := a[0]
	for _, v := range a[1:] {
		if v < ret {
			ret = v
		}
	}
	return ret
}

// Max returns the largest element of a non-empty vector.
func Max[T scalar.Float](a []T) T {
	if len(a) == 0 {
		panic("floats: zero slice length")
	}
	if x, ok := any(a).([]float64); ok {
		return T(floats.Max(x))
	}
	ret := a[0]
	for _, v := range a[1:] {
		if v > ret {
			ret = v
		}
	}
	return ret
}
