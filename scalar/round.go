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

// Floor returns the greatest integer value less than or equal to x.
func Floor[T Float](x T) T {
	return unary(x, math32.Floor, math.Floor)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil[T Float](x T) T {
	return unary(x, math32.Ceil, math.Ceil)
}

// Round returns the nearest integer value, rounding half away from zero.
func Round[T Float](x T) T {
	return unary(x, math32.Round, math.Round)
}

// Trunc returns the integer value of x.
func Trunc[T Float](x T) T {
	return unary(x, math32.Trunc, math.Trunc)
}

// Mod returns the floating-point remainder of x/y. The magnitude of the
// result is less than y and its sign agrees with that of x.
func Mod[T Float](x, y T) T {
	return binary(x, y, math32.Mod, math.Mod)
}
