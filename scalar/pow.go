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

// Pow returns x raised to the floating-point power y.
func Pow[T Float](x, y T) T {
	return binary(x, y, math32.Pow, math.Pow)
}

// Sqrt returns the non-negative square root of x. Negative input yields NaN.
func Sqrt[T Float](x T) T {
	return unary(x, math32.Sqrt, math.Sqrt)
}

// Cbrt returns the cube root of x.
func Cbrt[T Float](x T) T {
	return unary(x, math32.Cbrt, math.Cbrt)
}

// Hypot returns sqrt(p*p + q*q), avoiding unnecessary overflow and
// underflow.
func Hypot[T Float](p, q T) T {
	return binary(p, q, math32.Hypot, math.Hypot)
}
