/*

Package scalar provides a uniform capability set over the native
floating-point widths.

Every operation is a generic function over the Float type set and forwards
to the native math library of the width: float32 values are computed by
github.com/chewxy/math32, float64 values by the standard math package.
Operations are pure, total and allocation free. Domain errors follow IEEE
754 semantics and surface as NaN or infinity, never as Go errors.

*/
package scalar
