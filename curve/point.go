// Package curve implements short-Weierstrass curve arithmetic (y² = x³ + b)
// for the concrete curve exercised by the MSM engine, in the shape of
// gnark-crypto's ecc/<curve>/G1Affine + G1Jac pair (mixed addition,
// Jacobian accumulation, batch-inverted affine conversion) and go-ipa's
// bandersnatch PointAffine/PointProj naming (Identity, MixedAdd, Neg).
//
// This is deliberately the narrow slice of a pairing curve library an MSM
// engine needs: it is not a general-purpose pairing implementation.
package curve

import (
	"github.com/crate-crypto/go-pippenger/curve/fp"
	"github.com/crate-crypto/go-pippenger/curve/fr"
)

// bCoeff is the curve equation's constant term (b in y² = x³ + b); 3 for
// the BN254-shaped curve used here.
var bCoeff = fp.Element{3}

// G1Affine is a curve point in affine coordinates. The distinguished
// point at infinity is represented as X == Y == 0, the convention
// gnark-crypto's ecc/bn254 package uses for G1Affine.
type G1Affine struct {
	X, Y fp.Element
}

// Generator returns the standard base point (1, 2) for the curve.
func Generator() G1Affine {
	var g G1Affine
	g.X.SetUint64(1)
	g.Y.SetUint64(2)
	return g
}

// Identity returns the point at infinity.
func Identity() G1Affine {
	return G1Affine{}
}

// IsInfinity reports whether p is the point at infinity.
func (p *G1Affine) IsInfinity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// IsOnCurve reports whether p satisfies y² = x³ + b, the infinity point
// included.
func (p *G1Affine) IsOnCurve() bool {
	if p.IsInfinity() {
		return true
	}
	var lhs, rhs, x2, x3 fp.Element
	lhs.Square(&p.Y)
	x2.Square(&p.X)
	x3.Mul(&x2, &p.X)
	rhs.Add(&x3, &bCoeff)
	return lhs.Equal(&rhs)
}

// Equal reports whether p and q represent the same affine point.
func (p *G1Affine) Equal(q *G1Affine) bool {
	return p.X.Equal(&q.X) && p.Y.Equal(&q.Y)
}

// Neg sets p = -q and returns p.
func (p *G1Affine) Neg(q *G1Affine) *G1Affine {
	if q.IsInfinity() {
		*p = *q
		return p
	}
	p.X = q.X
	p.Y.Neg(&q.Y)
	return p
}

// FromJacobian sets p to the affine representative of q, performing the
// one field inversion that a single (non-batched) projective→affine
// conversion requires.
func (p *G1Affine) FromJacobian(q *G1Jac) *G1Affine {
	if q.Z.IsZero() {
		*p = G1Affine{}
		return p
	}
	var zInv, zInv2, zInv3 fp.Element
	zInv.Inverse(&q.Z)
	zInv2.Square(&zInv)
	zInv3.Mul(&zInv2, &zInv)
	p.X.Mul(&q.X, &zInv2)
	p.Y.Mul(&q.Y, &zInv3)
	return p
}

// G1Jac is a curve point in Jacobian coordinates (X, Y, Z) representing
// the affine point (X/Z², Y/Z³). This is the "ProjectivePoint" of the
// spec: addition is unconditional here (no exceptional pairs), unlike
// affine addition. Z == 0 represents the point at infinity.
type G1Jac struct {
	X, Y, Z fp.Element
}

// Identity returns the point at infinity in Jacobian coordinates.
func (p *G1Jac) Identity() *G1Jac {
	*p = G1Jac{}
	return p
}

// IsIdentity reports whether p is the point at infinity.
func (p *G1Jac) IsIdentity() bool {
	return p.Z.IsZero()
}

// FromAffine sets p to the Jacobian lift of q. O(1): no inversion.
func (p *G1Jac) FromAffine(q *G1Affine) *G1Jac {
	if q.IsInfinity() {
		p.Identity()
		return p
	}
	p.X = q.X
	p.Y = q.Y
	p.Z = fp.One()
	return p
}

// Set sets p = q and returns p.
func (p *G1Jac) Set(q *G1Jac) *G1Jac {
	*p = *q
	return p
}

// DoubleAssign sets p = 2p and returns p.
func (p *G1Jac) DoubleAssign() *G1Jac {
	if p.IsIdentity() || p.Y.IsZero() {
		p.Identity()
		return p
	}
	var a, b, c, d, e, f fp.Element
	a.Square(&p.X)
	b.Square(&p.Y)
	c.Square(&b)
	var xPlusB, xPlusBSq fp.Element
	xPlusB.Add(&p.X, &b)
	xPlusBSq.Square(&xPlusB)
	d.Sub(&xPlusBSq, &a)
	d.Sub(&d, &c)
	d.Double(&d)
	e.Double(&a)
	e.Add(&e, &a)
	f.Square(&e)

	var newX, newY, newZ, tmp fp.Element
	newX.Double(&d)
	newX.Sub(&f, &newX)

	tmp.Sub(&d, &newX)
	newY.Double(&c)
	newY.Double(&newY)
	newY.Double(&newY)
	var eTimesTmp fp.Element
	eTimesTmp.Mul(&e, &tmp)
	newY.Sub(&eTimesTmp, &newY)

	newZ.Mul(&p.Y, &p.Z)
	newZ.Double(&newZ)

	p.X, p.Y, p.Z = newX, newY, newZ
	return p
}

// AddAssign sets p = p + q (both Jacobian) and returns p. Total: handles
// p or q at infinity, returns the identity when p == -q, and falls back
// to DoubleAssign when p == q.
func (p *G1Jac) AddAssign(q *G1Jac) *G1Jac {
	if p.IsIdentity() {
		p.Set(q)
		return p
	}
	if q.IsIdentity() {
		return p
	}

	var z1z1, z2z2 fp.Element
	z1z1.Square(&p.Z)
	z2z2.Square(&q.Z)

	var u1, u2 fp.Element
	u1.Mul(&p.X, &z2z2)
	u2.Mul(&q.X, &z1z1)

	var s1, s2 fp.Element
	s1.Mul(&p.Y, &q.Z)
	s1.Mul(&s1, &z2z2)
	s2.Mul(&q.Y, &p.Z)
	s2.Mul(&s2, &z1z1)

	if u1.Equal(&u2) {
		if !s1.Equal(&s2) {
			p.Identity()
			return p
		}
		return p.DoubleAssign()
	}

	var h, i, j, r, v fp.Element
	h.Sub(&u2, &u1)
	var twoH fp.Element
	twoH.Double(&h)
	i.Square(&twoH)
	j.Mul(&h, &i)
	r.Sub(&s2, &s1)
	r.Double(&r)
	v.Mul(&u1, &i)

	var newX, newY, newZ, tmp fp.Element
	newX.Square(&r)
	newX.Sub(&newX, &j)
	tmp.Double(&v)
	newX.Sub(&newX, &tmp)

	tmp.Sub(&v, &newX)
	tmp.Mul(&tmp, &r)
	var sj fp.Element
	sj.Mul(&s1, &j)
	sj.Double(&sj)
	newY.Sub(&tmp, &sj)

	tmp.Add(&p.Z, &q.Z)
	var tmpSq, zz fp.Element
	tmpSq.Square(&tmp)
	zz.Add(&z1z1, &z2z2)
	newZ.Sub(&tmpSq, &zz)
	newZ.Mul(&newZ, &h)

	p.X, p.Y, p.Z = newX, newY, newZ
	return p
}

// AddMixed sets p = p + q, where q is affine. Cheaper than AddAssign
// because z2 == 1, matching the spec's "mixed addition" collaborator
// contract.
func (p *G1Jac) AddMixed(q *G1Affine) *G1Jac {
	if q.IsInfinity() {
		return p
	}
	if p.IsIdentity() {
		p.FromAffine(q)
		return p
	}

	var z1z1 fp.Element
	z1z1.Square(&p.Z)

	var u2 fp.Element
	u2.Mul(&q.X, &z1z1)

	var s2 fp.Element
	s2.Mul(&q.Y, &p.Z)
	s2.Mul(&s2, &z1z1)

	if p.X.Equal(&u2) {
		if !p.Y.Equal(&s2) {
			p.Identity()
			return p
		}
		return p.DoubleAssign()
	}

	var h, hh, i, j, r, v fp.Element
	h.Sub(&u2, &p.X)
	hh.Square(&h)
	i.Double(&hh)
	i.Double(&i)
	j.Mul(&h, &i)
	r.Sub(&s2, &p.Y)
	r.Double(&r)
	v.Mul(&p.X, &i)

	var newX, newY, newZ, tmp fp.Element
	newX.Square(&r)
	newX.Sub(&newX, &j)
	tmp.Double(&v)
	newX.Sub(&newX, &tmp)

	tmp.Sub(&v, &newX)
	tmp.Mul(&tmp, &r)
	var sj fp.Element
	sj.Mul(&p.Y, &j)
	sj.Double(&sj)
	newY.Sub(&tmp, &sj)

	newZ.Add(&p.Z, &h)
	var newZSq, z1z1Plush fp.Element
	newZSq.Square(&newZ)
	z1z1Plush.Add(&z1z1, &hh)
	newZ.Sub(&newZSq, &z1z1Plush)

	p.X, p.Y, p.Z = newX, newY, newZ
	return p
}

// ScalarMultiplication sets p = s·q using double-and-add (not
// constant-time; this is a schoolbook reference used by the test suite,
// not by the MSM engine itself).
func (p *G1Jac) ScalarMultiplication(q *G1Affine, s *fr.Element) *G1Jac {
	p.Identity()
	if q.IsInfinity() {
		return p
	}
	var base G1Jac
	base.FromAffine(q)
	for i := fr.NumBits - 1; i >= 0; i-- {
		p.DoubleAssign()
		if s.Bit(uint(i)) == 1 {
			p.AddAssign(&base)
		}
	}
	return p
}
