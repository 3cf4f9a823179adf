package msm

import (
	"github.com/crate-crypto/go-pippenger/curve"
	"github.com/crate-crypto/go-pippenger/curve/fp"
	"github.com/crate-crypto/go-pippenger/msmerr"
)

// batchCap and collisionHighWater bound the pending batch: at most
// 1024 entries accumulate before a flush, and a flush is forced early
// once 128 collisions have piled up so the collision queue never grows
// unbounded. Both remain safe to retune so long as collisionHighWater <
// batchCap.
const (
	batchCap           = 1024
	collisionHighWater = 128
)

// pendingAdd is a deferred (point, bucket) pair that could not be
// enqueued without a bucket index appearing twice in the same pending
// batch.
type pendingAdd struct {
	point  curve.G1Affine
	bucket int
}

// batchAffineAdder is the core optimization of the engine: it defers
// individual mixed additions into 2^c-1 buckets and flushes them in
// amortized batches through a single shared Montgomery-trick inversion,
// translating the classic bucket-adder shape into Go slices and a
// bool-indexed busy set (a bucket count is bounded and known up front,
// so a slice beats a map here).
//
// A batchAffineAdder has a single owner across addToBucket calls and is
// consumed by finalize.
type batchAffineAdder struct {
	buckets []curve.G1Affine

	lhs, rhs []curve.G1Affine
	idx      []int
	count    int
	busy     []bool

	collisions []pendingAdd
	scratch    []fp.Element
}

// newBatchAffineAdder allocates 2^c-1 identity buckets and empty pending
// state. c must be > 0.
func newBatchAffineAdder(c uint) *batchAffineAdder {
	if c == 0 {
		panic(msmerr.InvalidArgument("c must be > 0"))
	}
	numBuckets := (1 << c) - 1
	return &batchAffineAdder{
		buckets: make([]curve.G1Affine, numBuckets),
		lhs:     make([]curve.G1Affine, batchCap),
		rhs:     make([]curve.G1Affine, batchCap),
		idx:     make([]int, batchCap),
		busy:    make([]bool, numBuckets),
		scratch: make([]fp.Element, batchCap),
	}
}

// addToBucket enqueues "bucket[b] <- bucket[b] + p" with no result. b
// must be in [0, 2^c-1).
func (a *batchAffineAdder) addToBucket(p curve.G1Affine, b int) {
	if b < 0 || b >= len(a.buckets) {
		panic(msmerr.InvalidArgument("bucket index out of range"))
	}
	a.enqueue(p, b)
	if a.count == batchCap || len(a.collisions) >= collisionHighWater {
		a.processBatch()
	}
}

// enqueue applies a four-step policy: identity shortcut, pending-bucket
// collision, exceptional-pair fallback, normal enqueue.
func (a *batchAffineAdder) enqueue(p curve.G1Affine, b int) {
	if a.buckets[b].IsInfinity() {
		a.buckets[b] = p
		return
	}
	if p.IsInfinity() {
		return
	}

	if a.busy[b] {
		a.collisions = append(a.collisions, pendingAdd{point: p, bucket: b})
		return
	}

	// Exceptional pair: p = ±buckets[b]. Montgomery-trick batch addition
	// requires distinct x-coordinates, so this pair is diverted to a
	// direct projective addition instead of entering the batch.
	if a.buckets[b].X.Equal(&p.X) {
		var acc curve.G1Jac
		acc.FromAffine(&a.buckets[b])
		acc.AddMixed(&p)
		var result curve.G1Affine
		result.FromJacobian(&acc)
		a.buckets[b] = result
		return
	}

	a.lhs[a.count] = a.buckets[b]
	a.rhs[a.count] = p
	a.idx[a.count] = b
	a.busy[b] = true
	a.count++
}

// processBatch runs the pending batch through the Montgomery-trick batch
// addition, writes results back into their buckets, then drains the
// collision queue by re-feeding each entry through enqueue — which may
// itself re-queue some entries. Re-queued entries wait for the next
// processBatch; the drain itself never starts another batch.
func (a *batchAffineAdder) processBatch() {
	curve.BatchAffineAdd(a.lhs[:a.count], a.rhs[:a.count], a.scratch[:a.count])

	for i := 0; i < a.count; i++ {
		a.buckets[a.idx[i]] = a.lhs[i]
		a.busy[a.idx[i]] = false
	}
	a.count = 0

	collisions := a.collisions
	a.collisions = nil
	for _, pa := range collisions {
		a.enqueue(pa.point, pa.bucket)
	}
}

// finalize drains all pending state and returns ownership of the bucket
// array. The adder must not be used afterward.
func (a *batchAffineAdder) finalize() []curve.G1Affine {
	for len(a.collisions) > 0 {
		a.processBatch()
	}
	a.processBatch()
	return a.buckets
}
