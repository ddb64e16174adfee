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

package scalar

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is satisfied by the native floating-point widths. The type set
// carries the arithmetic operators and ordering, so a function generic over
// Float needs no further bounds to compute with its values.
type Float interface {
	float32 | float64
}

// unary forwards x to the math function of its width.
func unary[T Float](x T, f32 func(float32) float32, f64 func(float64) float64) T {
	switch v := any(x).(type) {
	case float32:
		return T(f32(v))
	case float64:
		return T(f64(v))
	default:
		panic("scalar: unsupported float width")
	}
}

// binary forwards x and y to the math function of their width.
func binary[T Float](x, y T, f32 func(float32, float32) float32, f64 func(float64, float64) float64) T {
	switch v := any(x).(type) {
	case float32:
		return T(f32(v, float32(y)))
	case float64:
		return T(f64(v, float64(y)))
	default:
		panic("scalar: unsupported float width")
	}
}

// pick returns the constant of the requested width.
func pick[T Float](v32 float32, v64 float64) T {
	switch any(T(0)).(type) {
	case float32:
		return T(v32)
	case float64:
		return T(v64)
	default:
		panic("scalar: unsupported float width")
	}
}

// Zero returns the additive identity of T.
func Zero[T Float]() T {
	return 0
}

// One returns the multiplicative identity of T.
func One[T Float]() T {
	return 1
}

// Epsilon returns the machine epsilon of T, the gap between one and the next
// representable value of the width.
func Epsilon[T Float]() T {
	return pick[T](0x1p-23, 0x1p-52)
}

// MaxValue returns the largest finite value representable by T.
func MaxValue[T Float]() T {
	return pick[T](math.MaxFloat32, math.MaxFloat64)
}

// SmallestNonzero returns the smallest positive denormal value of T.
func SmallestNonzero[T Float]() T {
	return pick[T](math.SmallestNonzeroFloat32, math.SmallestNonzeroFloat64)
}

// NaN returns a quiet not-a-number value of width T.
func NaN[T Float]() T {
	return pick[T](math32.NaN(), math.NaN())
}

// Inf returns positive infinity of width T if sign >= 0, negative infinity
// otherwise.
func Inf[T Float](sign int) T {
	return pick[T](math32.Inf(sign), math.Inf(sign))
}

// IsNaN reports whether x is a not-a-number value.
func IsNaN[T Float](x T) bool {
	return x != x
}

// IsInf reports whether x is an infinity with the given sign. Zero sign
// matches either infinity.
func IsInf[T Float](x T, sign int) bool {
	switch v := any(x).(type) {
	case float32:
		return math32.IsInf(v, sign)
	case float64:
		return math.IsInf(v, sign)
	default:
		panic("scalar: unsupported float width")
	}
}
