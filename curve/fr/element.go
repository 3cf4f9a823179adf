// Package fr implements arithmetic in the scalar field — the field that
// scalars live in — mirroring the shape of go-ipa's bandersnatch/fr package
// (fixed-width limbs, FromMont/limb-indexed window extraction) adapted to
// this curve's scalar modulus.
package fr

import (
	"crypto/rand"
	"math/big"
)

// Limbs is the number of 64-bit words used to hold a scalar.
const Limbs = 4

// NumBits is the bit length of the scalar field modulus (B in the spec).
const NumBits = 254

// modulus is the scalar field order (the BN254 Fr prime, shared with
// gnark-crypto's ecc/bn254/fr).
var modulus, _ = new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

// Element is a scalar stored as four 64-bit little-endian limbs in
// canonical form.
//
// Real bavard-generated field packages store elements in Montgomery form
// and require an explicit FromMont conversion before limb-level bit
// manipulation (window extraction, shifts). This package never leaves
// canonical form, so FromMont/ToMont are identities — kept so callers
// written against the Montgomery-form convention need no special-casing.
type Element [Limbs]uint64

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	var z Element
	z.SetUint64(1)
	return z
}

// SetUint64 sets z to v and returns z.
func (z *Element) SetUint64(v uint64) *Element {
	z[0], z[1], z[2], z[3] = v, 0, 0, 0
	return z
}

// SetRandom sets z to a uniformly random scalar using a CSPRNG.
func (z *Element) SetRandom() *Element {
	v, err := rand.Int(rand.Reader, modulus)
	if err != nil {
		panic(err)
	}
	return z.setBigInt(v)
}

// IsZero reports whether z is the additive identity.
func (z *Element) IsZero() bool {
	return z[0] == 0 && z[1] == 0 && z[2] == 0 && z[3] == 0
}

// IsOne reports whether z is the multiplicative identity.
func (z *Element) IsOne() bool {
	return z[0] == 1 && z[1] == 0 && z[2] == 0 && z[3] == 0
}

// Equal reports whether z and x represent the same scalar.
func (z *Element) Equal(x *Element) bool {
	return *z == *x
}

// FromMont is a no-op retained for parity with generated field packages
// whose limbs are stored in Montgomery form; see the Element doc comment.
func (z *Element) FromMont() *Element { return z }

// ToMont is a no-op retained for the same reason as FromMont.
func (z *Element) ToMont() *Element { return z }

// Add sets z = x + y mod modulus and returns z.
func (z *Element) Add(x, y *Element) *Element {
	return z.setBigInt(new(big.Int).Add(x.toBigInt(), y.toBigInt()))
}

// Sub sets z = x - y mod modulus and returns z.
func (z *Element) Sub(x, y *Element) *Element {
	return z.setBigInt(new(big.Int).Sub(x.toBigInt(), y.toBigInt()))
}

// Mul sets z = x * y mod modulus and returns z.
func (z *Element) Mul(x, y *Element) *Element {
	return z.setBigInt(new(big.Int).Mul(x.toBigInt(), y.toBigInt()))
}

// SetBytes interprets b as a big-endian integer, reduces it mod the
// field order, and sets z to the result.
func (z *Element) SetBytes(b []byte) *Element {
	return z.setBigInt(new(big.Int).SetBytes(b))
}

// Bytes returns the big-endian 32-byte encoding of z.
func (z *Element) Bytes() [32]byte {
	var out [32]byte
	z.toBigInt().FillBytes(out[:])
	return out
}

// String returns the base-10 string representation of z.
func (z *Element) String() string {
	return z.toBigInt().String()
}

// Bit returns the value (0 or 1) of the i-th least-significant bit of z,
// in canonical form. Used by the window-decomposition logic instead of a
// full big.Int shift, since a scalar's bits are addressed one c-bit
// window at a time during bucket sorting.
func (z *Element) Bit(i uint) uint64 {
	limb := i / 64
	if limb >= Limbs {
		return 0
	}
	return (z[limb] >> (i % 64)) & 1
}

// Window extracts the c-bit window starting at bit offset `offset`
// (least-significant first): w = (scalar >> offset) mod 2^c. c must be
// in [1, 64].
func (z *Element) Window(offset, c uint) uint64 {
	var w uint64
	for i := uint(0); i < c; i++ {
		w |= z.Bit(offset+i) << i
	}
	return w
}

func (z *Element) toBigInt() *big.Int {
	v := new(big.Int)
	for i := Limbs - 1; i >= 0; i-- {
		v.Lsh(v, 64)
		v.Or(v, new(big.Int).SetUint64(z[i]))
	}
	return v
}

func (z *Element) setBigInt(v *big.Int) *Element {
	v = new(big.Int).Mod(v, modulus)
	var limbs [Limbs]uint64
	mask := new(big.Int).SetUint64(^uint64(0))
	tmp := new(big.Int).Set(v)
	for i := 0; i < Limbs; i++ {
		word := new(big.Int).And(tmp, mask)
		limbs[i] = word.Uint64()
		tmp.Rsh(tmp, 64)
	}
	*z = Element(limbs)
	return z
}
