package msm

import (
	"github.com/crate-crypto/go-pippenger/curve"
	"github.com/crate-crypto/go-pippenger/internal/density"
	"github.com/crate-crypto/go-pippenger/msmerr"
)

// pointSource is a lazy cursor over a shared points slice, kept as a
// plain slice index rather than a streaming reader since points already
// live in memory.
//
// Every window worker opens its own pointSource over the same underlying
// points slice — the slice is read-only and shared, so no synchronization
// is needed.
type pointSource struct {
	points []curve.G1Affine
	pos    int
}

func newPointSource(points []curve.G1Affine) *pointSource {
	return &pointSource{points: points}
}

// querySize returns the source's known length. Points are always an
// in-memory slice here, so the size is always known.
func (s *pointSource) querySize() (int, bool) {
	return len(s.points), true
}

// skip advances the cursor by one position without consuming its point.
func (s *pointSource) skip() error {
	if s.pos >= len(s.points) {
		return msmerr.ErrUnexpectedEndOfInput
	}
	s.pos++
	return nil
}

// addMixed advances the cursor by one position, adding the current point
// to the projective accumulator acc.
func (s *pointSource) addMixed(acc *curve.G1Jac) error {
	if s.pos >= len(s.points) {
		return msmerr.ErrUnexpectedEndOfInput
	}
	acc.AddMixed(&s.points[s.pos])
	s.pos++
	return nil
}

// next advances the cursor by one position and returns the point it held,
// for callers (WindowWorker) that need the point itself rather than an
// in-place accumulation — e.g. to route it into a bucket.
func (s *pointSource) next() (curve.G1Affine, error) {
	if s.pos >= len(s.points) {
		return curve.G1Affine{}, msmerr.ErrUnexpectedEndOfInput
	}
	p := s.points[s.pos]
	s.pos++
	return p, nil
}

// densityAt reports whether position i participates, per the optional
// density bitmap handed to the coordinator. A nil bitmap is fully dense.
func densityAt(d *density.Bitmap, i int) bool {
	return d.Get(i)
}
