// SPDX-License-Identifier: MIT
package point

import (
	"math/rand"

	"github.com/dmaksimov/hilbertcluster/xerrors"
)

// dimStat captures one dimension's observed range and estimated median,
// scanned once over the reference point set.
type dimStat struct {
	min, max uint32
	median   uint32
}

// Balancer records, for each dimension, the minimum, maximum, and estimated
// median coordinate across a reference point set, plus a chosen bit width.
// From these it derives a per-dimension (translate, shiftRight) pair that,
// applied to a coordinate, moves the median near the midpoint of the
// representable range and quantizes when fewer bits are requested than are
// needed for full precision. Translation is clamped so no transformed
// coordinate falls outside [0, 2^EffectiveBits()-1].
type Balancer struct {
	dims          []dimStat
	naturalBits   uint // B = ceil(log2(maxCoord+1)) across all dimensions
	effectiveBits uint // requested bits, clamped to [1, naturalBits]
	translate     []int64
	shift         []uint
}

// NewBalancer scans pts (the reference point set) once per dimension,
// estimating each dimension's median via EstimateMedian, and derives the
// global bit width and per-dimension transform. requestedBits <= 0 means
// "infer": use the natural bit width with no quantization. All points must
// share the same dimensionality.
func NewBalancer(pts []PointLike, requestedBits int, rng *rand.Rand) (*Balancer, error) {
	if len(pts) == 0 {
		return nil, xerrors.New(xerrors.KindEmptyInput, "point.NewBalancer", "no points supplied", nil)
	}
	d := pts[0].Dim()
	for _, p := range pts {
		if p.Dim() != d {
			return nil, xerrors.New(xerrors.KindDimensionMismatch, "point.NewBalancer",
				"points have different dimensionality", nil)
		}
	}

	dims := make([]dimStat, d)
	var globalMax uint32
	for dim := 0; dim < d; dim++ {
		values := make([]uint32, len(pts))
		minV := pts[0].At(dim)
		maxV := pts[0].At(dim)
		for i, p := range pts {
			v := p.At(dim)
			values[i] = v
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
		median, err := EstimateMedian(values, rngutilDerive(rng, uint64(dim)))
		if err != nil {
			return nil, err
		}
		dims[dim] = dimStat{min: minV, max: maxV, median: median}
		if maxV > globalMax {
			globalMax = maxV
		}
	}

	naturalBits := bitsFor(globalMax)

	effective := naturalBits
	if requestedBits > 0 && uint(requestedBits) < naturalBits {
		effective = uint(requestedBits)
	}
	if effective == 0 {
		effective = 1
	}

	b := &Balancer{
		dims:          dims,
		naturalBits:   naturalBits,
		effectiveBits: effective,
		translate:     make([]int64, d),
		shift:         make([]uint, d),
	}

	midpoint := int64(1) << (naturalBits - 1)
	shiftAmount := naturalBits - effective
	maxOut := int64(1)<<effective - 1
	for dim := 0; dim < d; dim++ {
		b.translate[dim] = midpoint - int64(dims[dim].median)
		b.shift[dim] = shiftAmount
		_ = maxOut // clamped per-call in Transform
	}
	return b, nil
}

// bitsFor returns ceil(log2(v+1)), the number of bits needed to represent v.
// bitsFor(0) == 0.
func bitsFor(v uint32) uint {
	if v == 0 {
		return 0
	}
	return uint(bitsLen(v))
}

func bitsLen(v uint32) int {
	n := 0
	for v > 0 {
		n++
		v >>= 1
	}
	return n
}

// rngutilDerive is a tiny local shim so Balancer construction can derive a
// distinct, deterministic RNG stream per dimension without importing
// rngutil's exported API into the seeding path (kept internal: EstimateMedian
// already owns the shuffle step; we only need distinct seeds per dimension
// so two dimensions with identical value distributions don't shuffle
// identically).
func rngutilDerive(base *rand.Rand, dim uint64) *rand.Rand {
	if base == nil {
		return nil
	}
	seed := base.Int63() ^ int64(dim*0x9e3779b97f4a7c15)
	return rand.New(rand.NewSource(seed))
}

// NaturalBits returns B = ceil(log2(maxCoord+1)) across all reference
// dimensions.
func (b *Balancer) NaturalBits() uint { return b.naturalBits }

// EffectiveBits returns the bit width actually used for transformed output
// (<= NaturalBits, per any quantization requested at construction).
func (b *Balancer) EffectiveBits() uint { return b.effectiveBits }

// Dimensions returns the number of dimensions the balancer was built for.
func (b *Balancer) Dimensions() int { return len(b.dims) }

// Transform applies dimension dim's (translate, shiftRight) pair to coord,
// clamping the result to [0, 2^EffectiveBits()-1].
func (b *Balancer) Transform(dim int, coord uint32) uint32 {
	v := int64(coord) + b.translate[dim]
	if v < 0 {
		v = 0
	}
	v >>= b.shift[dim]
	maxOut := int64(1)<<b.effectiveBits - 1
	if v > maxOut {
		v = maxOut
	}
	return uint32(v)
}

// ApplyTo returns a new Point with every coordinate of pt balanced via
// Transform. pt's dimensionality must equal b.Dimensions().
func (b *Balancer) ApplyTo(pt *Point) (*Point, error) {
	if pt.Dim() != len(b.dims) {
		return nil, xerrors.New(xerrors.KindDimensionMismatch, "Balancer.ApplyTo",
			"point dimensionality does not match balancer", nil)
	}
	out := make([]uint32, pt.Dim())
	for i := 0; i < pt.Dim(); i++ {
		out[i] = b.Transform(i, pt.At(i))
	}
	maxOut := uint32(int64(1)<<b.effectiveBits - 1)
	return New(pt.id, out, maxOut)
}

// PointLike is the minimal read-only surface NewBalancer needs from a point
// implementation: dimensionality plus per-dimension access. *Point
// satisfies it; tests may supply lighter fakes.
type PointLike interface {
	Dim() int
	At(i int) uint32
}

var _ PointLike = (*Point)(nil)

// LossLess reports whether balancing with the current EffectiveBits keeps
// full precision, losing none relative to NaturalBits, per spec.md P3: "balancing preserves
// the set of unique points iff no precision is lost (chosen B >= required
// B)".
func (b *Balancer) LossLess() bool { return b.effectiveBits >= b.naturalBits }
