package density

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNilBitmapIsFullyDense(t *testing.T) {
	var b *Bitmap
	for i := 0; i < 10; i++ {
		require.True(t, b.Get(i))
	}
	_, ok := b.Len()
	require.False(t, ok)
}

func TestNewFullyDense(t *testing.T) {
	b := NewFullyDense(5)
	for i := 0; i < 5; i++ {
		require.True(t, b.Get(i))
	}
	n, ok := b.Len()
	require.True(t, ok)
	require.Equal(t, 5, n)
	require.Equal(t, 5, b.Count())
}

func TestSparseBitmap(t *testing.T) {
	b := New(8)
	b.Set(1)
	b.Set(3)
	b.Set(5)

	for i := 0; i < 8; i++ {
		want := i == 1 || i == 3 || i == 5
		require.Equal(t, want, b.Get(i), "index %d", i)
	}
	require.Equal(t, 3, b.Count())
}
