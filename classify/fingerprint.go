// SPDX-License-Identifier: MIT
package classify

import (
	"encoding/binary"
	"sort"

	"github.com/gtank/blake2/blake2b"
)

// fingerprintSize is the BLAKE2b digest width used for partition
// fingerprints: large enough that accidental collisions between distinct
// partitions are not a practical concern for this library's scale.
const fingerprintSize = 32

// signatureOf computes the order-independent per-cluster signature for a
// label's member set: the sum of member ids plus the member count.
func signatureOf(members map[uint64]struct{}) uint64 {
	var sum uint64
	for id := range members {
		sum += id
	}
	return sum + uint64(len(members))
}

// Fingerprint returns a digest of c's partition structure: for every
// label, the order-independent cluster signature (sum of member ids plus
// count); the per-cluster signatures are then sorted (so the result does
// not depend on label naming or map iteration order) and hashed with
// BLAKE2b. Two Classifications inducing the same partition, regardless of
// how labels are numbered, always produce the same Fingerprint.
func (c *Classification) Fingerprint() ([fingerprintSize]byte, error) {
	sigs := make([]uint64, 0, len(c.labelToPoint))
	for _, members := range c.labelToPoint {
		idSet := make(map[uint64]struct{}, len(members))
		for id := range members {
			idSet[uint64(id)] = struct{}{}
		}
		sigs = append(sigs, signatureOf(idSet))
	}
	sort.Slice(sigs, func(i, j int) bool { return sigs[i] < sigs[j] })

	digest, err := blake2b.NewDigest(nil, nil, nil, fingerprintSize)
	if err != nil {
		return [fingerprintSize]byte{}, err
	}
	buf := make([]byte, 8)
	for _, s := range sigs {
		binary.BigEndian.PutUint64(buf, s)
		if _, err := digest.Write(buf); err != nil {
			return [fingerprintSize]byte{}, err
		}
	}

	var out [fingerprintSize]byte
	copy(out[:], digest.Sum(nil))
	return out, nil
}

// Equal is a fast partition check independent of label naming (spec.md's
// P5 property): it compares Fingerprints. A mismatch proves the partitions
// differ. A match means the multisets of per-cluster signatures (sum of
// member ids plus count) agree, which distinct partitions can also share:
// {1,2,6},{3,4,5} and {1,3,5},{2,4,6} both have signatures 12 and 15, and
// Equal reports true for them. Compare gives a quantitative measure of how
// far two partitions agree.
func (c *Classification) Equal(other *Classification) (bool, error) {
	a, err := c.Fingerprint()
	if err != nil {
		return false, err
	}
	b, err := other.Fingerprint()
	if err != nil {
		return false, err
	}
	return a == b, nil
}
