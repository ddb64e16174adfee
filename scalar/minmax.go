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

// Min returns the lesser of a and b with the comparison semantics of the
// width's math library. A NaN operand makes the result NaN.
func Min[T Float](a, b T) T {
	return binary(a, b, math32.Min, math.Min)
}

// Max returns the greater of a and b, same semantics as Min.
func Max[T Float](a, b T) T {
	return binary(a, b, math32.Max, math.Max)
}

// Clamp limits x to the closed interval [lo, hi].
func Clamp[T Float](x, lo, hi T) T {
	return Min(Max(x, lo), hi)
}
