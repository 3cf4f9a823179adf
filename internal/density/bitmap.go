// Package density adapts a sparse-vector presence bitmap for PointSource,
// grounded on go-ipa's pipfixedbasis use of bits-and-blooms/bitset
// (bitset.New, .Set, .Test, .Count) to mark which scalar-vector entries
// are nonzero/dense.
package density

import "github.com/bits-and-blooms/bitset"

// Bitmap marks which positions of a (points, scalars) pair participate in
// an MSM. A nil *Bitmap means "fully dense": every position participates.
type Bitmap struct {
	set *bitset.BitSet
	n   uint
}

// NewFullyDense returns a Bitmap for n positions with every bit set.
func NewFullyDense(n int) *Bitmap {
	b := bitset.New(uint(n))
	for i := uint(0); i < uint(n); i++ {
		b.Set(i)
	}
	return &Bitmap{set: b, n: uint(n)}
}

// New returns an empty (all-skip) Bitmap for n positions.
func New(n int) *Bitmap {
	return &Bitmap{set: bitset.New(uint(n)), n: uint(n)}
}

// Set marks position i as present.
func (b *Bitmap) Set(i int) {
	b.set.Set(uint(i))
}

// Get reports whether b is nil (fully dense) or has position i set.
func (b *Bitmap) Get(i int) bool {
	if b == nil {
		return true
	}
	return b.set.Test(uint(i))
}

// Len returns the bitmap's declared length and whether it is known. A nil
// receiver has no fixed length (it is dense over whatever length the
// caller supplies), matching PointSource's `query_size() -> Option<n>`.
func (b *Bitmap) Len() (n int, ok bool) {
	if b == nil {
		return 0, false
	}
	return int(b.n), true
}

// Count returns the number of set positions. A nil receiver (fully dense,
// no fixed length) returns -1.
func (b *Bitmap) Count() int {
	if b == nil {
		return -1
	}
	return int(b.set.Count())
}
