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
	"strconv"

	"golang.org/x/exp/constraints"
)

// BitSize returns the width of T in bits, suitable for strconv.
func BitSize[T Float]() int {
	switch any(T(0)).(type) {
	case float32:
		return 32
	default:
		return 64
	}
}

// FromFloat64 constructs a T from a double-precision value. The value is
// rounded when T is the narrow width.
func FromFloat64[T Float](v float64) T {
	return T(v)
}

// FromFloat32 constructs a T from a single-precision value.
func FromFloat32[T Float](v float32) T {
	return T(v)
}

// FromInt constructs a T from a machine-word integer.
func FromInt[T Float](v int) T {
	return T(v)
}

// FromInt32 constructs a T from a 32-bit signed integer.
func FromInt32[T Float](v int32) T {
	return T(v)
}

// FromUint32 constructs a T from a 32-bit unsigned integer.
func FromUint32[T Float](v uint32) T {
	return T(v)
}

// FromInteger constructs a T from an integer of any width or signedness.
// Large magnitudes round per native integer to float conversion.
func FromInteger[T Float, I constraints.Integer](v I) T {
	return T(v)
}

// Cast converts a value of one float width to another with native
// widening or narrowing rules. Casting a width to itself is the identity.
func Cast[T, U Float](v T) U {
	return U(v)
}

// Parse converts the string s to a value of width T. The result is the
// nearest representable value of that width.
func Parse[T Float](s string) (T, error) {
	v, err := strconv.ParseFloat(s, BitSize[T]())
	return T(v), err
}

// Format converts v to a string with the given strconv format and
// precision, rounding at T's width.
func Format[T Float](v T, format byte, prec int) string {
	return strconv.FormatFloat(float64(v), format, prec, BitSize[T]())
}
