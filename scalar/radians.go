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

// HalfTurn returns the radian measure of a half turn, the width's pi
// constant.
func HalfTurn[T Float]() T {
	return pick[T](math32.Pi, math.Pi)
}

// QuarterTurn returns the radian measure of a quarter turn, pi over two.
func QuarterTurn[T Float]() T {
	return HalfTurn[T]() / 2
}

// FullTurn returns the radian measure of a full turn, two pi exactly.
func FullTurn[T Float]() T {
	return 2 * HalfTurn[T]()
}

// DegToRad converts an angle in degrees to radians.
func DegToRad[T Float](x T) T {
	return x * (HalfTurn[T]() / 180)
}

// RadToDeg converts an angle in radians to degrees.
func RadToDeg[T Float](x T) T {
	return x * (180 / HalfTurn[T]())
}
