package fp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddSubRoundTrip(t *testing.T) {
	var a, b, sum, back Element
	a.SetRandom()
	b.SetRandom()

	sum.Add(&a, &b)
	back.Sub(&sum, &b)

	require.True(t, back.Equal(&a))
}

func TestInverse(t *testing.T) {
	var a, inv, product, one Element
	a.SetRandom()
	inv.Inverse(&a)
	product.Mul(&a, &inv)
	one.SetUint64(1)

	require.True(t, product.Equal(&one))
}

func TestZeroIsAdditiveIdentity(t *testing.T) {
	var a, sum, zero Element
	a.SetRandom()
	sum.Add(&a, &zero)

	require.True(t, sum.Equal(&a))
	require.True(t, zero.IsZero())
}

func TestBytesRoundTrip(t *testing.T) {
	var a, back Element
	a.SetRandom()
	b := a.Bytes()
	back.SetBytes(b[:])

	require.True(t, back.Equal(&a))
}
