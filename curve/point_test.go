package curve

import (
	"testing"

	"github.com/crate-crypto/go-pippenger/curve/fp"
	"github.com/crate-crypto/go-pippenger/curve/fr"
	"github.com/stretchr/testify/require"
)

func randomAffine(t *testing.T) G1Affine {
	t.Helper()
	var s fr.Element
	s.SetRandom()
	g := Generator()
	var p G1Jac
	p.ScalarMultiplication(&g, &s)
	var aff G1Affine
	aff.FromJacobian(&p)
	return aff
}

func TestGeneratorIsOnCurve(t *testing.T) {
	g := Generator()
	require.True(t, g.IsOnCurve())
}

func TestIdentityRoundTrip(t *testing.T) {
	var jac G1Jac
	jac.Identity()
	require.True(t, jac.IsIdentity())

	var aff G1Affine
	aff.FromJacobian(&jac)
	require.True(t, aff.IsInfinity())

	var back G1Jac
	back.FromAffine(&aff)
	require.True(t, back.IsIdentity())
}

func TestAddIdentityIsNoOp(t *testing.T) {
	p := randomAffine(t)
	var pJac, idJac, sum G1Jac
	pJac.FromAffine(&p)
	idJac.Identity()

	sum.Set(&pJac)
	sum.AddAssign(&idJac)

	var sumAff G1Affine
	sumAff.FromJacobian(&sum)
	require.True(t, sumAff.Equal(&p))
}

func TestDoubleEqualsSelfAdd(t *testing.T) {
	p := randomAffine(t)
	var pJac, viaDouble, viaAdd G1Jac
	pJac.FromAffine(&p)

	viaDouble.Set(&pJac)
	viaDouble.DoubleAssign()

	viaAdd.Set(&pJac)
	viaAdd.AddAssign(&pJac)

	var dAff, aAff G1Affine
	dAff.FromJacobian(&viaDouble)
	aAff.FromJacobian(&viaAdd)
	require.True(t, dAff.Equal(&aAff))
}

func TestAddMixedMatchesAddAssign(t *testing.T) {
	p := randomAffine(t)
	q := randomAffine(t)

	var pJac, qJac, viaMixed, viaFull G1Jac
	pJac.FromAffine(&p)
	qJac.FromAffine(&q)

	viaMixed.Set(&pJac)
	viaMixed.AddMixed(&q)

	viaFull.Set(&pJac)
	viaFull.AddAssign(&qJac)

	var mAff, fAff G1Affine
	mAff.FromJacobian(&viaMixed)
	fAff.FromJacobian(&viaFull)
	require.True(t, mAff.Equal(&fAff))
}

func TestNegCancelsAdd(t *testing.T) {
	p := randomAffine(t)
	var neg G1Affine
	neg.Neg(&p)

	var pJac G1Jac
	pJac.FromAffine(&p)
	pJac.AddMixed(&neg)

	require.True(t, pJac.IsIdentity())
}

func TestAdditionCommutes(t *testing.T) {
	p := randomAffine(t)
	q := randomAffine(t)

	var pJac, qJac, pq, qp G1Jac
	pJac.FromAffine(&p)
	qJac.FromAffine(&q)

	pq.Set(&pJac)
	pq.AddAssign(&qJac)

	qp.Set(&qJac)
	qp.AddAssign(&pJac)

	var pqAff, qpAff G1Affine
	pqAff.FromJacobian(&pq)
	qpAff.FromJacobian(&qp)
	require.True(t, pqAff.Equal(&qpAff))
}

func TestBatchAffineAddMatchesSequential(t *testing.T) {
	const n = 50
	lhs := make([]G1Affine, n)
	rhs := make([]G1Affine, n)
	want := make([]G1Affine, n)

	for i := 0; i < n; i++ {
		a := randomAffine(t)
		b := randomAffine(t)
		lhs[i], rhs[i] = a, b

		var aJac G1Jac
		aJac.FromAffine(&a)
		aJac.AddMixed(&b)
		want[i].FromJacobian(&aJac)
	}

	gotLHS := make([]G1Affine, n)
	copy(gotLHS, lhs)
	scratch := make([]fp.Element, n)

	BatchAffineAdd(gotLHS, rhs, scratch)

	for i := 0; i < n; i++ {
		require.True(t, gotLHS[i].Equal(&want[i]), "mismatch at index %d", i)
	}
}
