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

func TestMin(t *testing.T) {
	t.Run("float32", testMin[float32])
	t.Run("float64", testMin[float64])
}

func testMin[T Float](t *testing.T) {
	assert.Equal(t, T(3), Min(T(3), T(5)))
	assert.Equal(t, T(3), Min(T(5), T(3)))
	assert.Equal(t, T(-5), Min(T(-5), T(3)))
	assert.Equal(t, Inf[T](-1), Min(Inf[T](-1), Zero[T]()))
	assert.True(t, IsNaN(Min(NaN[T](), T(1))))
	assert.True(t, IsNaN(Min(T(1), NaN[T]())))
}

func TestMax(t *testing.T) {
	t.Run("float32", testMax[float32])
	t.Run("float64", testMax[float64])
}

func testMax[T Float](t *testing.T) {
	assert.Equal(t, T(5), Max(T(3), T(5)))
	assert.Equal(t, T(5), Max(T(5), T(3)))
	assert.Equal(t, T(3), Max(T(-5), T(3)))
	assert.Equal(t, Inf[T](1), Max(Inf[T](1), Zero[T]()))
	assert.True(t, IsNaN(Max(NaN[T](), T(1))))
	assert.True(t, IsNaN(Max(T(1), NaN[T]())))
}

func TestMinMaxOrder(t *testing.T) {
	t.Run("float32", testMinMaxOrder[float32])
	t.Run("float64", testMinMaxOrder[float64])
}

func testMinMaxOrder[T Float](t *testing.T) {
	values := []T{-1e4, -2.5, -0.5, 0, 0.5, 2.5, 1e4}
	for _, a := range values {
		for _, b := range values {
			assert.Equal(t, Min(a, b), Min(b, a))
			assert.Equal(t, Max(a, b), Max(b, a))
			assert.LessOrEqual(t, Min(a, b), Max(a, b))
		}
	}
}

func TestClamp(t *testing.T) {
	t.Run("float32", testClamp[float32])
	t.Run("float64", testClamp[float64])
}

func testClamp[T Float](t *testing.T) {
	assert.Equal(t, T(1), Clamp(T(0.5), T(1), T(2)))
	assert.Equal(t, T(2), Clamp(T(3), T(1), T(2)))
	assert.Equal(t, T(1.5), Clamp(T(1.5), T(1), T(2)))
}
