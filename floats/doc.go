/*

Package floats provides slice arithmetic over both floating-point widths.

Functions are generic over scalar.Float. The float64 instantiations forward
reductions and vector arithmetic to gonum, the float32 instantiations run
plain loops at the narrow width. Destination arguments follow the gonum
convention and slice length mismatches panic.

*/
package floats
