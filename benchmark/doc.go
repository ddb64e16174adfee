/*

Package benchmark verifies the floating-point capability surface against its
algebraic laws over sampled inputs.

A Case checks one property at one width. Suite builds the cases for the
configured widths, Runner executes them in parallel over seeded generators,
and Report renders the outcome as a table or CSV.

*/
package benchmark
