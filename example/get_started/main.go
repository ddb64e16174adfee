package main

import (
	"fmt"

	"github.com/floatx-io/floatx/floats"
	"github.com/floatx-io/floatx/scalar"
)

func describe[T scalar.Float]() {
	// Capabilities dispatch on the type argument.
	fmt.Printf("%d-bit:\n", scalar.BitSize[T]())
	fmt.Printf("  Sqrt(2) = %v\n", scalar.Sqrt(T(2)))
	fmt.Printf("  Pow(2, 10) = %v\n", scalar.Pow(T(2), T(10)))
	fmt.Printf("  Atan2(1, 1) = %v\n", scalar.Atan2(T(1), T(1)))
	fmt.Printf("  DegToRad(180) = %v\n", scalar.DegToRad(T(180)))
	fmt.Printf("  Epsilon = %v\n", scalar.Epsilon[T]())
}

func main() {
	describe[float32]()
	describe[float64]()
	// Slice helpers accept either width.
	angles := []float32{0, 90, 180, 270}
	floats.DegToRad(angles)
	fmt.Println("radians =", angles)
	fmt.Println("norm([3 4]) =", floats.Norm([]float64{3, 4}))
}
