// Package drag forms the DRAG output pair from envelope samples.
//
// Derivative D[n] (SQ2.15) uses three envelope values with boundary cases:
//
//	n = 0          D = E[n+1] − E[n]          forward difference
//	n = length−1   D = E[n]   − E[n−1]        backward difference
//	otherwise      D = (E[n+1] − E[n−1]) >> 1 arithmetic shift, floors negatives
//
// Outputs (SQ1.15, saturating):
//
//	I = sat(round(A·E))
//	Q = sat(round(β·A·D))
//
// β·A is formed first as a Q30 product; the final product with D is Q45 and
// rounded once.
package drag
