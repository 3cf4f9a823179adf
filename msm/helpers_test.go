package msm

import (
	"testing"

	"github.com/crate-crypto/go-pippenger/curve"
	"github.com/crate-crypto/go-pippenger/curve/fr"
)

// naiveMultiExp is the schoolbook O(n) reference oracle that every
// windowed-bucket result is checked against.
func naiveMultiExp(points []curve.G1Affine, scalars []fr.Element) curve.G1Jac {
	var acc curve.G1Jac
	acc.Identity()
	for i := range points {
		var term curve.G1Jac
		term.ScalarMultiplication(&points[i], &scalars[i])
		acc.AddAssign(&term)
	}
	return acc
}

func randomPoints(t *testing.T, n int) []curve.G1Affine {
	t.Helper()
	g := curve.Generator()
	pts := make([]curve.G1Affine, n)
	for i := 0; i < n; i++ {
		var s fr.Element
		s.SetRandom()
		var jac curve.G1Jac
		jac.ScalarMultiplication(&g, &s)
		pts[i].FromJacobian(&jac)
	}
	return pts
}

func randomScalars(t *testing.T, n int) []fr.Element {
	t.Helper()
	scalars := make([]fr.Element, n)
	for i := range scalars {
		scalars[i].SetRandom()
	}
	return scalars
}

func jacEqual(a, b *curve.G1Jac) bool {
	var aAff, bAff curve.G1Affine
	aAff.FromJacobian(a)
	bAff.FromJacobian(b)
	return aAff.Equal(&bAff)
}
