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

// Signum returns a value representing the sign of x: 1 for positive values
// and positive zero, -1 for negative values and negative zero, NaN for NaN.
func Signum[T Float](x T) T {
	if IsNaN(x) {
		return x
	}
	return Copysign(One[T](), x)
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	return unary(x, math32.Abs, math.Abs)
}

// Copysign returns a value with the magnitude of x and the sign of y.
func Copysign[T Float](x, y T) T {
	return binary(x, y, math32.Copysign, math.Copysign)
}

// Signbit reports whether x is negative or negative zero.
func Signbit[T Float](x T) bool {
	switch v := any(x).(type) {
	case float32:
		return math32.Signbit(v)
	case float64:
		return math.Signbit(v)
	default:
		panic("scalar: unsupported float width")
	}
}
