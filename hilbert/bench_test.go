package hilbert_test

import (
	"math/rand"
	"testing"

	"github.com/dmaksimov/hilbertcluster/hilbert"
	"github.com/dmaksimov/hilbertcluster/point"
)

// BenchmarkIndex_8Dim10Bits measures Index's per-call cost at a moderately
// high dimensionality and bit width: D=8, B=10 (80-bit working width).
func BenchmarkIndex_8Dim10Bits(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	coords := make([]uint32, 8)
	for i := range coords {
		coords[i] = uint32(rng.Intn(1 << 10))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = hilbert.Index(coords, 10)
	}
}

// BenchmarkSort_10000Points4Dim measures the recursive bucket sort's
// throughput on a population large enough to exercise the recursive
// (non-"small dataset") path repeatedly.
func BenchmarkSort_10000Points4Dim(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	pts := make([]*point.Point, 10000)
	for i := range pts {
		coords := []uint32{
			uint32(rng.Intn(1 << 12)),
			uint32(rng.Intn(1 << 12)),
			uint32(rng.Intn(1 << 12)),
			uint32(rng.Intn(1 << 12)),
		}
		p, _ := point.New(point.ID(i), coords, 0)
		pts[i] = p
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = hilbert.Sort(pts, 12, nil, nil, rand.New(rand.NewSource(int64(i))))
	}
}
