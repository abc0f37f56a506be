// SPDX-License-Identifier: MIT
package optimize

import "github.com/dmaksimov/hilbertcluster/point"

// enumeratePermutations lazily generates every permutation of {0,...,d-1}
// via Heap's algorithm, starting from the identity, and sends each one
// (as an independently owned slice) on the returned channel. The channel
// is closed once all d! permutations have been produced. Intended for
// d <= exhaustiveDimLimit, where d! is small enough to enumerate fully.
func enumeratePermutations(d int) <-chan point.Permutation {
	out := make(chan point.Permutation)
	go func() {
		defer close(out)
		a := make([]int, d)
		for i := range a {
			a[i] = i
		}
		emit := func() {
			cp := make(point.Permutation, d)
			copy(cp, a)
			out <- cp
		}

		if d == 0 {
			emit()
			return
		}
		emit()

		c := make([]int, d)
		i := 0
		for i < d {
			if c[i] < i {
				if i%2 == 0 {
					a[0], a[i] = a[i], a[0]
				} else {
					a[c[i]], a[i] = a[i], a[c[i]]
				}
				emit()
				c[i]++
				i = 0
			} else {
				c[i] = 0
				i++
			}
		}
	}()
	return out
}
