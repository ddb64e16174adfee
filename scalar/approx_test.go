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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualWithinAbs(t *testing.T) {
	t.Run("float32", testEqualWithinAbs[float32])
	t.Run("float64", testEqualWithinAbs[float64])
}

func testEqualWithinAbs[T Float](t *testing.T) {
	assert.True(t, EqualWithinAbs(T(1), T(1), Zero[T]()))
	assert.True(t, EqualWithinAbs(T(1), T(1.05), T(0.1)))
	assert.False(t, EqualWithinAbs(T(1), T(1.2), T(0.1)))
	assert.True(t, EqualWithinAbs(T(-3), T(-3.01), T(0.02)))
	// Exact equality short-circuits, so equal infinities compare true.
	assert.True(t, EqualWithinAbs(Inf[T](1), Inf[T](1), T(0.1)))
	assert.False(t, EqualWithinAbs(NaN[T](), NaN[T](), T(1)))
}

func TestEqualWithinRel(t *testing.T) {
	t.Run("float32", testEqualWithinRel[float32])
	t.Run("float64", testEqualWithinRel[float64])
}

func testEqualWithinRel[T Float](t *testing.T) {
	assert.True(t, EqualWithinRel(T(1e6), T(1e6)+T(1), T(1e-5)))
	assert.False(t, EqualWithinRel(T(1e6), T(1e6)+T(100), T(1e-5)))
	assert.True(t, EqualWithinRel(T(-1e6), T(-1e6)-T(1), T(1e-5)))
	assert.False(t, EqualWithinRel(T(1), T(2), T(0.1)))
	// Near zero the comparison degrades gracefully instead of dividing by a
	// vanishing magnitude.
	tiny := SmallestNonzero[T]()
	assert.True(t, EqualWithinRel(tiny, 2*tiny, T(0.5)))
	assert.False(t, EqualWithinRel(NaN[T](), NaN[T](), T(0.5)))
}

func TestEqualWithinULP(t *testing.T) {
	t.Run("float32", testEqualWithinULP[float32])
	t.Run("float64", testEqualWithinULP[float64])
}

func testEqualWithinULP[T Float](t *testing.T) {
	one := One[T]()
	next := Nextafter(one, T(2))
	after := Nextafter(next, T(2))
	assert.True(t, EqualWithinULP(one, one, 0))
	assert.True(t, EqualWithinULP(one, next, 1))
	assert.False(t, EqualWithinULP(one, after, 1))
	assert.True(t, EqualWithinULP(one, after, 2))
	// Zero signs do not matter.
	assert.True(t, EqualWithinULP(Zero[T](), -Zero[T](), 0))
	// Operands straddling zero measure their combined distance from it.
	tiny := SmallestNonzero[T]()
	assert.True(t, EqualWithinULP(tiny, -tiny, 2))
	assert.False(t, EqualWithinULP(tiny, -tiny, 1))
	assert.False(t, EqualWithinULP(NaN[T](), NaN[T](), 64))
}

func TestEqualWithinAbsOrRel(t *testing.T) {
	t.Run("float32", testEqualWithinAbsOrRel[float32])
	t.Run("float64", testEqualWithinAbsOrRel[float64])
}

func testEqualWithinAbsOrRel[T Float](t *testing.T) {
	// Absolute branch accepts, relative branch would not.
	assert.True(t, EqualWithinAbsOrRel(T(1e-8), T(2e-8), T(1e-6), T(1e-9)))
	// Relative branch accepts, absolute branch would not.
	assert.True(t, EqualWithinAbsOrRel(T(1e6), T(1e6)+T(1), T(0.1), T(1e-5)))
	assert.False(t, EqualWithinAbsOrRel(T(1), T(2), T(0.1), T(0.1)))
}
