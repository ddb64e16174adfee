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

// Trigonometric and hyperbolic functions, one forward per width. Inputs
// outside a function's domain produce NaN per IEEE 754, there is no
// validation here.

// Sin returns the sine of x in radians.
func Sin[T Float](x T) T {
	return unary(x, math32.Sin, math.Sin)
}

// Cos returns the cosine of x in radians.
func Cos[T Float](x T) T {
	return unary(x, math32.Cos, math.Cos)
}

// Tan returns the tangent of x in radians.
func Tan[T Float](x T) T {
	return unary(x, math32.Tan, math.Tan)
}

// Asin returns the arcsine of x in radians.
func Asin[T Float](x T) T {
	return unary(x, math32.Asin, math.Asin)
}

// Acos returns the arccosine of x in radians.
func Acos[T Float](x T) T {
	return unary(x, math32.Acos, math.Acos)
}

// Atan returns the arctangent of x in radians.
func Atan[T Float](x T) T {
	return unary(x, math32.Atan, math.Atan)
}

// Atan2 returns the arctangent of y/x, using the signs of both arguments to
// determine the quadrant.
func Atan2[T Float](y, x T) T {
	return binary(y, x, math32.Atan2, math.Atan2)
}

// Sinh returns the hyperbolic sine of x.
func Sinh[T Float](x T) T {
	return unary(x, math32.Sinh, math.Sinh)
}

// Cosh returns the hyperbolic cosine of x.
func Cosh[T Float](x T) T {
	return unary(x, math32.Cosh, math.Cosh)
}

// Tanh returns the hyperbolic tangent of x.
func Tanh[T Float](x T) T {
	return unary(x, math32.Tanh, math.Tanh)
}

// Asinh returns the inverse hyperbolic sine of x.
func Asinh[T Float](x T) T {
	return unary(x, math32.Asinh, math.Asinh)
}

// Acosh returns the inverse hyperbolic cosine of x.
func Acosh[T Float](x T) T {
	return unary(x, math32.Acosh, math.Acosh)
}

// Atanh returns the inverse hyperbolic tangent of x.
func Atanh[T Float](x T) T {
	return unary(x, math32.Atanh, math.Atanh)
}

// Sincos returns Sin(x) and Cos(x) in one call.
func Sincos[T Float](x T) (sin, cos T) {
	switch v := any(x).(type) {
	case float32:
		s, c := math32.Sincos(v)
		return T(s), T(c)
	case float64:
		s, c := math.Sincos(v)
		return T(s), T(c)
	default:
		panic("scalar: unsupported float width")
	}
}
