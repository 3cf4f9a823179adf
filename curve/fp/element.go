// Package fp implements arithmetic in the base field of the curve, the
// field over which point coordinates live. It mirrors the shape of a
// bavard-generated gnark-crypto field package (fixed-width limbs) without
// Montgomery form or the assembly-optimized reduction: elements stay in
// canonical form, and correctness matters here, not clock cycles.
package fp

import (
	"crypto/rand"
	"math/big"
)

// Limbs is the number of 64-bit words used to hold an element.
const Limbs = 4

// modulus is the base field prime for the curve used by this module (the
// BN254 base field prime, shared with gnark-crypto's ecc/bn254).
var modulus, _ = new(big.Int).SetString("21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)

// Element is a field element stored as four 64-bit little-endian limbs in
// canonical (reduced, non-Montgomery) form.
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

// SetRandom sets z to a uniformly random element using a CSPRNG.
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

// Equal reports whether z and x represent the same element.
func (z *Element) Equal(x *Element) bool {
	return *z == *x
}

// Add sets z = x + y and returns z.
func (z *Element) Add(x, y *Element) *Element {
	return z.setBigInt(new(big.Int).Add(x.toBigInt(), y.toBigInt()))
}

// Sub sets z = x - y and returns z.
func (z *Element) Sub(x, y *Element) *Element {
	return z.setBigInt(new(big.Int).Sub(x.toBigInt(), y.toBigInt()))
}

// Neg sets z = -x and returns z.
func (z *Element) Neg(x *Element) *Element {
	return z.setBigInt(new(big.Int).Neg(x.toBigInt()))
}

// Mul sets z = x * y and returns z.
func (z *Element) Mul(x, y *Element) *Element {
	return z.setBigInt(new(big.Int).Mul(x.toBigInt(), y.toBigInt()))
}

// Square sets z = x * x and returns z.
func (z *Element) Square(x *Element) *Element {
	return z.Mul(x, x)
}

// Double sets z = x + x and returns z.
func (z *Element) Double(x *Element) *Element {
	return z.Add(x, x)
}

// Inverse sets z = 1/x and returns z. x must be nonzero.
func (z *Element) Inverse(x *Element) *Element {
	if x.IsZero() {
		panic("fp: inverse of zero")
	}
	return z.setBigInt(new(big.Int).ModInverse(x.toBigInt(), modulus))
}

// SetBytes interprets b as a big-endian integer, reduces it mod the field
// modulus, and sets z to the result.
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
