// SPDX-License-Identifier: MIT
package classify

// Comparison is the outcome of comparing two classifications of the same
// point set: B-Cubed precision, recall, and their alpha-weighted harmonic
// combination (spec.md's compare_classifications operation).
type Comparison struct {
	Precision float64
	Recall    float64
	BCubed    float64
}

// Compare computes B-Cubed precision, recall, and F-measure between a and
// b, both classifications of the same set of points. alpha, in [0,1],
// weights precision against recall in the combined score:
//
//	BCubed = 1 / (alpha/Precision + (1-alpha)/Recall)
//
// For each point p, its precision contribution is the fraction of points
// sharing p's label in a that also share p's label in b; its recall
// contribution is the same fraction computed the other way around.
// Precision and Recall are the averages of these per-point contributions
// over every point known to a.
func Compare(a, b *Classification, alpha float64) (Comparison, error) {
	if alpha < 0 || alpha > 1 {
		return Comparison{}, ErrBadAlpha
	}
	if a.Size() != b.Size() {
		return Comparison{}, ErrDimensionMismatch
	}

	var precisionSum, recallSum float64
	n := 0
	for id, labelA := range a.pointToLabel {
		labelB, ok := b.pointToLabel[id]
		if !ok {
			return Comparison{}, ErrDimensionMismatch
		}
		membersA := a.labelToPoint[labelA]
		membersB := b.labelToPoint[labelB]

		overlap := 0
		for other := range membersA {
			if _, inB := membersB[other]; inB {
				overlap++
			}
		}
		precisionSum += float64(overlap) / float64(len(membersA))
		recallSum += float64(overlap) / float64(len(membersB))
		n++
	}
	if n == 0 {
		return Comparison{Precision: 1, Recall: 1, BCubed: 1}, nil
	}

	precision := precisionSum / float64(n)
	recall := recallSum / float64(n)

	var bcubed float64
	switch {
	case alpha == 0:
		bcubed = recall
	case alpha == 1:
		bcubed = precision
	case precision == 0 || recall == 0:
		bcubed = 0
	default:
		bcubed = 1 / (alpha/precision + (1-alpha)/recall)
	}

	return Comparison{Precision: precision, Recall: recall, BCubed: bcubed}, nil
}
