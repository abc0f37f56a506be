// SPDX-License-Identifier: MIT
package point

import (
	"math/rand"

	"github.com/dmaksimov/hilbertcluster/rngutil"
	"github.com/dmaksimov/hilbertcluster/xerrors"
)

// Permutation is a bijection on {0,...,D-1}, stored as an array P where
// target[i] = source[P[i]]. The identity permutation (P[i] = i for all i)
// is valid.
type Permutation []int

// Identity returns the identity permutation of dimensionality d.
func Identity(d int) Permutation {
	p := make(Permutation, d)
	for i := range p {
		p[i] = i
	}
	return p
}

// Validate reports whether p is a valid permutation of {0,...,len(p)-1}:
// every index appears exactly once.
func (p Permutation) Validate() error {
	n := len(p)
	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n {
			return xerrors.New(xerrors.KindInvalidArgument, "Permutation.Validate",
				"index out of range", v)
		}
		if seen[v] {
			return xerrors.New(xerrors.KindInvalidArgument, "Permutation.Validate",
				"duplicate index", v)
		}
		seen[v] = true
	}
	return nil
}

// Apply returns a new coordinate slice with target[i] = source[p[i]].
// len(source) must equal len(p).
func (p Permutation) Apply(source []uint32) ([]uint32, error) {
	if len(source) != len(p) {
		return nil, xerrors.New(xerrors.KindDimensionMismatch, "Permutation.Apply",
			"source length does not match permutation length", [2]int{len(source), len(p)})
	}
	target := make([]uint32, len(p))
	for i, src := range p {
		target[i] = source[src]
	}
	return target, nil
}

// ApplyTo returns a new Point with pt's coordinates reordered through p,
// preserving pt's ID.
func (p Permutation) ApplyTo(pt *Point) (*Point, error) {
	coords, err := p.Apply(pt.coords)
	if err != nil {
		return nil, err
	}
	return New(pt.id, coords, 0)
}

// Compose returns the permutation equivalent to applying p first, then q:
// composed[i] = p[q[i]]. Both permutations must have equal length.
func (p Permutation) Compose(q Permutation) (Permutation, error) {
	if len(p) != len(q) {
		return nil, xerrors.New(xerrors.KindDimensionMismatch, "Permutation.Compose",
			"permutations have different length", [2]int{len(p), len(q)})
	}
	out := make(Permutation, len(p))
	for i, qi := range q {
		out[i] = p[qi]
	}
	return out, nil
}

// Inverse returns the permutation p^-1 such that p.Compose(p.Inverse())
// (and p.Inverse().Compose(p)) both equal the identity.
func (p Permutation) Inverse() Permutation {
	inv := make(Permutation, len(p))
	for i, v := range p {
		inv[v] = i
	}
	return inv
}

// Scramble returns a new permutation derived from p by performing
// ceil(k/2) random transpositions, per spec.md §3: "scramble K dimensions
// produces a new permutation by performing ceil(K/2) random transpositions."
// k is clamped to len(p). p itself is not mutated.
func (p Permutation) Scramble(k int, rng *rand.Rand) Permutation {
	n := len(p)
	out := make(Permutation, n)
	copy(out, p)
	if n < 2 {
		return out
	}
	if k > n {
		k = n
	}
	if k < 0 {
		k = 0
	}
	transpositions := (k + 1) / 2
	for t := 0; t < transpositions; t++ {
		i := rng.Intn(n)
		j := rng.Intn(n)
		rngutil.Transpose(out, i, j)
	}
	return out
}
