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

// Exp returns e**x.
func Exp[T Float](x T) T {
	return unary(x, math32.Exp, math.Exp)
}

// Log returns the natural logarithm of x.
func Log[T Float](x T) T {
	return unary(x, math32.Log, math.Log)
}

// Log2 returns the binary logarithm of x.
func Log2[T Float](x T) T {
	return unary(x, math32.Log2, math.Log2)
}

// Log10 returns the decimal logarithm of x.
func Log10[T Float](x T) T {
	return unary(x, math32.Log10, math.Log10)
}
