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

	"github.com/floatx-io/floatx/scalar"
)

// Zero fills a slice with zeros.
func Zero[T scalar.Float](a []T) {
	for i := range a {
		a[i] = 0
	}
}

// Add two vectors: dst = dst + s
func Add[T scalar.Float](dst, s []T) {
	if len(dst) != len(s) {
		panic("floats: slice lengths do not match")
	}
	if d, ok := any(dst).([]float64); ok {
		floats.Add(d, any(s).([]float64))
		return
	}
	for i := range dst {
		dst[i] += s[i]
	}
}

// Sub one vector by another: dst = dst - s
func Sub[T scalar.Float](dst, s []T) {
	if len(dst) != len(s) {
		panic("floats: slice lengths do not match")
	}
	if d, ok := any(dst).([]float64); ok {
		floats.Sub(d, any(s).([]float64))
		return
	}
	for i := range dst {
		dst[i] -= s[i]
	}
}

// Mul two vectors: dst = dst * s
func Mul[T scalar.Float](dst, s []T) {
	if len(dst) != len(s) {
		panic("floats: slice lengths do not match")
	}
	if d, ok := any(dst).([]float64); ok {
		floats.Mul(d, any(s).([]float64))
		return
	}
	for i := range dst {
		dst[i] *= s[i]
	}
}

// Div one vector by another: dst = dst / s
func Div[T scalar.Float](dst, s []T) {
	if len(dst) != len(s) {
		panic("floats: slice lengths do not match")
	}
	if d, ok := any(dst).([]float64); ok {
		floats.Div(d, any(s).([]float64))
		return
	}
	for i := range dst {
		dst[i] /= s[i]
	}
}

// AddTo adds two vectors and saves the result in dst: dst = a + b
func AddTo[T scalar.Float](a, b, dst []T) {
	if len(a) != len(b) || len(a) != len(dst) {
		panic("floats: slice lengths do not match")
	}
	if d, ok := any(dst).([]float64); ok {
		floats.AddTo(d, any(a).([]float64), any(b).([]float64))
		return
	}
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

// SubTo subtracts one vector by another and saves the result in dst: dst = a - b
func SubTo[T scalar.Float](a, b, dst []T) {
	if len(a) != len(b) || len(a) != len(dst) {
		panic("floats: slice lengths do not match")
	}
	if d, ok := any(dst).([]float64); ok {
		floats.SubTo(d, any(a).([]float64), any(b).([]float64))
		return
	}
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

// MulTo multiplies two vectors and saves the result in dst: dst = a * b
func MulTo[T scalar.Float](a, b, dst []T) {
	if len(a) != len(b) || len(a) != len(dst) {
		panic("floats: slice lengths do not match")
	}
	if d, ok := any(dst).([]float64); ok {
		floats.MulTo(d, any(a).([]float64), any(b).([]float64))
		return
	}
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

// DivTo divides one vector by another and saves the result in dst: dst = a / b
func DivTo[T scalar.Float](a, b, dst []T) {
	if len(a) != len(b) || len(a) != len(dst) {
		panic("floats: slice lengths do not match")
	}
	if d, ok := any(dst).([]float64); ok {
		floats.DivTo(d, any(a).([]float64), any(b).([]float64))
		return
	}
	for i := range a {
		dst[i] = a[i] / b[i]
	}
}

// AddConst adds a const to a vector in place: dst = dst + c
func AddConst[T scalar.Float](dst []T, c T) {
	if d, ok := any(dst).([]float64); ok {
		floats.AddConst(float64(c), d)
		return
	}
	for i := range dst {
		dst[i] += c
	}
}

// MulConst multiplies a vector with a const in place: dst = dst * c
func MulConst[T scalar.Float](dst []T, c T) {
	if d, ok := any(dst).([]float64); ok {
		floats.Scale(float64(c), d)
		return
	}
	for i := range dst {
		dst[i] *= c
	}
}

// MulConstTo multiplies a vector and a const, then saves the result in dst:
// dst = a * c
func MulConstTo[T scalar.Float](a []T, c T, dst []T) {
	if len(a) != len(dst) {
		panic("floats: slice lengths do not match")
	}
	if d, ok := any(dst).([]float64); ok {
		floats.ScaleTo(d, float64(c), any(a).([]float64))
		return
	}
	for i := range a {
		dst[i] = a[i] * c
	}
}

// MulConstAdd multiplies a vector and a const, then adds to dst: dst = dst + a * c
func MulConstAdd[T scalar.Float](a []T, c T, dst []T) {
	if len(a) != len(dst) {
		panic("floats: slice lengths do not match")
	}
	if d, ok := any(dst).([]float64); ok {
		floats.AddScaled(d, float64(c), any(a).([]float64))
		return
	}
	for i := range a {
		dst[i] += a[i] * c
	}
}

// MulConstAddTo multiplies a vector and a const, then adds a vector and saves
// the result in dst: dst = a * c + b
func MulConstAddTo[T scalar.Float](a []T, c T, b, dst []T) {
	if len(a) != len(b) || len(a) != len(dst) {
		panic("floats: slice lengths do not match")
	}
	if d, ok := any(dst).([]float64); ok {
		floats.AddScaledTo(d, any(b).([]float64), float64(c), any(a).([]float64))
		return
	}
	for i := range a {
		dst[i] = a[i]*c + b[i]
	}
}

// MulAddTo multiplies two vectors, then adds to a vector: c += a * b
func MulAddTo[T scalar.Float](a, b, c []T) {
	if len(a) != len(b) || len(a) != len(c) {
		panic("floats: slice lengths do not match")
	}
	for i := range a {
		c[i] += a[i] * b[i]
	}
}

// SqrtTo stores the element-wise square root of a in dst.
func SqrtTo[T scalar.Float](a, dst []T) {
	if len(a) != len(dst) {
		panic("floats: slice lengths do not match")
	}
	for i := range a {
		dst[i] = scalar.Sqrt(a[i])
	}
}

// DegToRad converts a slice of angles from degrees to radians in place.
func DegToRad[T scalar.Float](dst []T) {
	for i := range dst {
		dst[i] = scalar.DegToRad(dst[i])
	}
}

// RadToDeg converts a slice of angles from radians to degrees in place.
func RadToDeg[T scalar.Float](dst []T) {
	for i := range dst {
		dst[i] = scalar.RadToDeg(dst[i])
	}
}
