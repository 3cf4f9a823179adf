package curve

import "github.com/crate-crypto/go-pippenger/curve/fp"

// BatchAffineAdd overwrites each lhs[i] with the affine result of
// lhs[i] + rhs[i], using a single field inversion and O(len(lhs))
// multiplications (Montgomery's trick) instead of one inversion per pair.
//
// Precondition: len(lhs) == len(rhs) <= len(scratch); no lhs[i] or rhs[i]
// is the point at infinity; lhs[i].X != rhs[i].X for every i (no
// exceptional pair — doublings and P = -Q must be routed around this
// routine by the caller). batchAffineAdder upholds this precondition;
// this function does not re-check it.
//
// Accumulates a running product of the x-coordinate differences into
// scratch, inverts once, then unwinds right to left multiplying by the
// running inverse to recover each pair's individual inverse.
func BatchAffineAdd(lhs, rhs []G1Affine, scratch []fp.Element) {
	n := len(lhs)
	if n == 0 {
		return
	}
	if len(rhs) != n || len(scratch) < n {
		panic("curve: BatchAffineAdd length mismatch")
	}

	acc := fp.One()
	for i := 0; i < n; i++ {
		scratch[i] = acc
		var diff fp.Element
		diff.Sub(&rhs[i].X, &lhs[i].X)
		acc.Mul(&acc, &diff)
	}

	var accInv fp.Element
	accInv.Inverse(&acc)

	for i := n - 1; i >= 0; i-- {
		var invDiff fp.Element
		invDiff.Mul(&scratch[i], &accInv)

		var diff fp.Element
		diff.Sub(&rhs[i].X, &lhs[i].X)
		accInv.Mul(&accInv, &diff)

		x1, y1 := lhs[i].X, lhs[i].Y
		x2, y2 := rhs[i].X, rhs[i].Y

		var lambda fp.Element
		var dy fp.Element
		dy.Sub(&y2, &y1)
		lambda.Mul(&dy, &invDiff)

		var lambdaSq, x3, y3 fp.Element
		lambdaSq.Square(&lambda)
		x3.Sub(&lambdaSq, &x1)
		x3.Sub(&x3, &x2)

		var x1MinusX3 fp.Element
		x1MinusX3.Sub(&x1, &x3)
		y3.Mul(&lambda, &x1MinusX3)
		y3.Sub(&y3, &y1)

		lhs[i].X, lhs[i].Y = x3, y3
	}
}
