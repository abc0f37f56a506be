package point

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityValidates(t *testing.T) {
	require.NoError(t, Identity(5).Validate())
}

func TestValidateRejectsDuplicatesAndOutOfRange(t *testing.T) {
	require.Error(t, Permutation{0, 0, 2}.Validate())
	require.Error(t, Permutation{0, 1, 9}.Validate())
	require.NoError(t, Permutation{2, 0, 1}.Validate())
}

// TestComposeAndInverse exercises P4: composition and inverse.
func TestComposeAndInverse(t *testing.T) {
	p1 := Permutation{1, 0, 2}
	p2 := Permutation{2, 1, 0}

	composed, err := p1.Compose(p2)
	require.NoError(t, err)

	source := []uint32{10, 20, 30}
	viaCompose, err := composed.Apply(source)
	require.NoError(t, err)

	viaP1, err := p1.Apply(source)
	require.NoError(t, err)
	viaSequential, err := p2.Apply(viaP1)
	require.NoError(t, err)

	assert.Equal(t, viaSequential, viaCompose)

	inv := p1.Inverse()
	roundTrip, err := inv.Compose(p1)
	require.NoError(t, err)
	assert.Equal(t, Permutation(Identity(3)), roundTrip)

	roundTrip2, err := p1.Compose(inv)
	require.NoError(t, err)
	assert.Equal(t, Permutation(Identity(3)), roundTrip2)
}

func TestApplyToPreservesID(t *testing.T) {
	p, _ := New(7, []uint32{1, 2, 3}, 0)
	perm := Permutation{2, 0, 1}
	out, err := perm.ApplyTo(p)
	require.NoError(t, err)
	assert.Equal(t, ID(7), out.ID())
	assert.Equal(t, []uint32{3, 1, 2}, out.Coords())
}

func TestScrambleProducesValidPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := Identity(8)
	for k := 1; k <= 8; k++ {
		scrambled := Permutation(base).Scramble(k, rng)
		require.NoError(t, scrambled.Validate())
	}
}

func TestScrambleIsDeterministicGivenSeed(t *testing.T) {
	base := Identity(6)
	a := Permutation(base).Scramble(4, rand.New(rand.NewSource(123)))
	b := Permutation(base).Scramble(4, rand.New(rand.NewSource(123)))
	assert.Equal(t, a, b)
}
