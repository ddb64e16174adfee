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
	gscalar "gonum.org/v1/gonum/floats/scalar"
)

// minNormal32 is the smallest normal value of the narrow width.
const minNormal32 = 0x1p-126

// Nextafter returns the next representable value of width T after x in the
// direction of y.
func Nextafter[T Float](x, y T) T {
	return binary(x, y, math32.Nextafter, math.Nextafter)
}

// EqualWithinAbs reports whether a and b differ by at most tol. Exact
// equality short-circuits, so two equal infinities compare true.
func EqualWithinAbs[T Float](a, b, tol T) bool {
	switch v := any(a).(type) {
	case float32:
		w := any(b).(float32)
		return v == w || math32.Abs(v-w) <= float32(tol)
	case float64:
		return gscalar.EqualWithinAbs(v, any(b).(float64), float64(tol))
	default:
		panic("scalar: unsupported float width")
	}
}

// EqualWithinRel reports whether the relative distance between a and b is at
// most tol. Values with magnitudes below the width's smallest normal value
// are compared against tol scaled to that boundary.
func EqualWithinRel[T Float](a, b, tol T) bool {
	switch v := any(a).(type) {
	case float32:
		w := any(b).(float32)
		if v == w {
			return true
		}
		delta := math32.Abs(v - w)
		if delta <= minNormal32 {
			return delta <= float32(tol)*minNormal32
		}
		return delta/math32.Max(math32.Abs(v), math32.Abs(w)) <= float32(tol)
	case float64:
		return gscalar.EqualWithinRel(v, any(b).(float64), float64(tol))
	default:
		panic("scalar: unsupported float width")
	}
}

// EqualWithinAbsOrRel reports whether a and b pass either of the absolute or
// relative comparisons.
func EqualWithinAbsOrRel[T Float](a, b, absTol, relTol T) bool {
	return EqualWithinAbs(a, b, absTol) || EqualWithinRel(a, b, relTol)
}

// EqualWithinULP reports whether a and b are within ulp representable values
// of each other at T's width. NaN compares false to everything. Operands of
// opposite sign are compared by their combined distance from zero.
func EqualWithinULP[T Float](a, b T, ulp uint) bool {
	switch v := any(a).(type) {
	case float32:
		return equalWithinULP32(v, any(b).(float32), ulp)
	case float64:
		return gscalar.EqualWithinULP(v, any(b).(float64), ulp)
	default:
		panic("scalar: unsupported float width")
	}
}

func equalWithinULP32(a, b float32, ulp uint) bool {
	if a == b {
		return true
	}
	if math32.IsNaN(a) || math32.IsNaN(b) {
		return false
	}
	if math32.Signbit(a) != math32.Signbit(b) {
		return math.Float32bits(math32.Abs(a))+math.Float32bits(math32.Abs(b)) <= uint32(ulp)
	}
	ua := math.Float32bits(a)
	ub := math.Float32bits(b)
	if ua > ub {
		ua, ub = ub, ua
	}
	return ub-ua <= uint32(ulp)
}
