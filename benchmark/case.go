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

package benchmark

import (
	"math"

	"github.com/samber/lo"

	"github.com/floatx-io/floatx/base"
	"github.com/floatx-io/floatx/scalar"
)

// Outcome accumulates the result of checking one property over samples.
type Outcome struct {
	Checked  int
	Failures int
	MaxError float64
}

func (o *Outcome) observe(pass bool, err float64) {
	o.Checked++
	if !pass {
		o.Failures++
	}
	if err > o.MaxError {
		o.MaxError = err
	}
}

// Case is a single property verified over sampled inputs at one width.
type Case struct {
	Name  string
	Width string
	Run   func(rng base.RandomGenerator, samples int) Outcome
}

// Suite returns the property cases for the requested widths. Unknown widths
// yield no cases.
func Suite(widths []string) []Case {
	return lo.FlatMap(widths, func(width string, _ int) []Case {
		switch width {
		case "float32":
			return suite[float32](width)
		case "float64":
			return suite[float64](width)
		default:
			return nil
		}
	})
}

func suite[T scalar.Float](width string) []Case {
	return []Case{
		{Name: "sqrt_square_round_trip", Width: width, Run: checkSqrtRoundTrip[T]},
		{Name: "sqrt_perfect_squares", Width: width, Run: checkSqrtExact[T]},
		{Name: "angle_round_trip", Width: width, Run: checkAngleRoundTrip[T]},
		{Name: "turn_constants", Width: width, Run: checkTurnConstants[T]},
		{Name: "identity_elements", Width: width, Run: checkIdentities[T]},
		{Name: "cast_round_trip", Width: width, Run: checkCast[T]},
		{Name: "min_max_order", Width: width, Run: checkMinMaxOrder[T]},
		{Name: "signum_sign", Width: width, Run: checkSignum[T]},
		{Name: "pow_small_integers", Width: width, Run: checkPowIntegers[T]},
		{Name: "spot_values", Width: width, Run: checkSpotValues[T]},
		{Name: "sin_cos_pythagorean", Width: width, Run: checkPythagorean[T]},
		{Name: "exp_log_round_trip", Width: width, Run: checkExpLogRoundTrip[T]},
		{Name: "mod_sign_and_range", Width: width, Run: checkModRange[T]},
	}
}

// relError returns |want-got| / max(|want|, |got|), or 0 when both are zero.
func relError[T scalar.Float](want, got T) float64 {
	a, b := float64(want), float64(got)
	if a == b {
		return 0
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.Inf(1)
	}
	den := math.Max(math.Abs(a), math.Abs(b))
	if den == 0 {
		return 0
	}
	return math.Abs(a-b) / den
}

func checkSqrtRoundTrip[T scalar.Float](rng base.RandomGenerator, samples int) Outcome {
	var out Outcome
	for _, x := range base.LogUniformVector[T](rng, samples, 0x1p-60, 0x1p60) {
		square := scalar.Sqrt(x) * scalar.Sqrt(x)
		out.observe(scalar.EqualWithinULP(x, square, 1), relError(x, square))
	}
	return out
}

func checkSqrtExact[T scalar.Float](rng base.RandomGenerator, samples int) Outcome {
	var out Outcome
	for i := 0; i < samples; i++ {
		k := T(rng.Intn(1024))
		root := scalar.Sqrt(k * k)
		out.observe(root == k, relError(k, root))
	}
	return out
}

func checkAngleRoundTrip[T scalar.Float](rng base.RandomGenerator, samples int) Outcome {
	var out Outcome
	tol := scalar.Epsilon[T]() * 4
	for _, deg := range base.UniformVector[T](rng, samples, -720, 720) {
		back := scalar.RadToDeg(scalar.DegToRad(deg))
		out.observe(scalar.EqualWithinAbsOrRel(deg, back, tol, tol), relError(deg, back))
	}
	return out
}

func checkTurnConstants[T scalar.Float](base.RandomGenerator, int) Outcome {
	var out Outcome
	half := scalar.HalfTurn[T]()
	out.observe(half == T(math.Pi), relError(T(math.Pi), half))
	out.observe(scalar.FullTurn[T]() == 2*half, relError(2*half, scalar.FullTurn[T]()))
	out.observe(2*scalar.QuarterTurn[T]() == half, relError(half, 2*scalar.QuarterTurn[T]()))
	// DegToRad(180) is two rounded multiplications away from the constant.
	straight := scalar.DegToRad(T(180))
	out.observe(scalar.EqualWithinULP(half, straight, 2), relError(half, straight))
	return out
}

func checkIdentities[T scalar.Float](rng base.RandomGenerator, samples int) Outcome {
	var out Outcome
	for _, x := range base.UniformVector[T](rng, samples, -1e6, 1e6) {
		pass := x*scalar.One[T]() == x && x+scalar.Zero[T]() == x
		out.observe(pass, relError(x, x*scalar.One[T]()))
	}
	return out
}

func checkCast[T scalar.Float](rng base.RandomGenerator, samples int) Outcome {
	var out Outcome
	for _, x := range base.UniformVector[T](rng, samples, -1e6, 1e6) {
		pass := scalar.Cast[T, T](x) == x
		var err float64
		switch v := any(x).(type) {
		case float32:
			back := scalar.Cast[float64, float32](scalar.Cast[float32, float64](v))
			pass = pass && back == v
			err = relError(v, back)
		case float64:
			back := scalar.Cast[float32, float64](scalar.Cast[float64, float32](v))
			pass = pass && scalar.EqualWithinRel(v, back, float64(scalar.Epsilon[float32]())*2)
			err = relError(v, back)
		}
		out.observe(pass, err)
	}
	return out
}

func checkMinMaxOrder[T scalar.Float](rng base.RandomGenerator, samples int) Outcome {
	var out Outcome
	for i := 0; i < samples; i++ {
		x := base.Uniform(rng, T(-1000), 1000)
		y := base.Uniform(rng, T(-1000), 1000)
		lowest, highest := scalar.Min(x, y), scalar.Max(x, y)
		pass := lowest <= highest &&
			lowest == scalar.Min(y, x) && highest == scalar.Max(y, x) &&
			(lowest == x || lowest == y) && (highest == x || highest == y)
		out.observe(pass, 0)
	}
	return out
}

func checkSignum[T scalar.Float](rng base.RandomGenerator, samples int) Outcome {
	var out Outcome
	for _, x := range base.UniformVector[T](rng, samples, -1000, 1000) {
		s := scalar.Signum(x)
		pass := (x > 0 && s == 1) || (x < 0 && s == -1) || (x == 0 && scalar.Abs(s) == 1)
		pass = pass && s*scalar.Abs(x) == x
		out.observe(pass, 0)
	}
	return out
}

func checkPowIntegers[T scalar.Float](rng base.RandomGenerator, samples int) Outcome {
	var out Outcome
	for i := 0; i < samples; i++ {
		b := T(1 + rng.Intn(9))
		n := rng.Intn(6)
		want := scalar.One[T]()
		for j := 0; j < n; j++ {
			want *= b
		}
		got := scalar.Pow(b, T(n))
		out.observe(got == want, relError(want, got))
	}
	return out
}

func checkSpotValues[T scalar.Float](base.RandomGenerator, int) Outcome {
	var out Outcome
	out.observe(scalar.Min(T(3), T(5)) == 3, 0)
	out.observe(scalar.Max(T(3), T(5)) == 5, 0)
	out.observe(scalar.Signum(T(-7.5)) == -1, 0)
	out.observe(scalar.Pow(T(2), T(10)) == 1024, relError(T(1024), scalar.Pow(T(2), T(10))))
	out.observe(scalar.Sqrt(T(4)) == 2, relError(T(2), scalar.Sqrt(T(4))))
	return out
}

func checkPythagorean[T scalar.Float](rng base.RandomGenerator, samples int) Outcome {
	var out Outcome
	tol := scalar.Epsilon[T]() * 8
	for _, theta := range base.UniformVector[T](rng, samples, -10, 10) {
		sin, cos := scalar.Sincos(theta)
		sum := sin*sin + cos*cos
		out.observe(scalar.EqualWithinAbs(scalar.One[T](), sum, tol), relError(scalar.One[T](), sum))
	}
	return out
}

func checkExpLogRoundTrip[T scalar.Float](rng base.RandomGenerator, samples int) Outcome {
	var out Outcome
	tol := scalar.Epsilon[T]() * 8
	for _, x := range base.UniformVector[T](rng, samples, -20, 20) {
		back := scalar.Log(scalar.Exp(x))
		out.observe(scalar.EqualWithinAbsOrRel(x, back, tol, tol), relError(x, back))
	}
	return out
}

func checkModRange[T scalar.Float](rng base.RandomGenerator, samples int) Outcome {
	var out Outcome
	for i := 0; i < samples; i++ {
		x := base.Uniform(rng, T(-1000), 1000)
		y := base.Uniform(rng, T(0.5), 100)
		if rng.Intn(2) == 1 {
			y = -y
		}
		r := scalar.Mod(x, y)
		pass := scalar.Abs(r) < scalar.Abs(y) &&
			(r == 0 || scalar.Signbit(r) == scalar.Signbit(x))
		out.observe(pass, 0)
	}
	return out
}
