package arena

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func TestNewSeasonKey(t *testing.T) {
	key, err := NewSeasonKey()
	require.NoError(t, err)
	require.Len(t, key.Public, SeasonPublicKeyLen)
	require.Len(t, key.Private, SeasonPrivateKeyLen)

	derived, err := DerivePublicKey(key.Private)
	require.NoError(t, err)
	require.Equal(t, key.Public, derived)
	require.True(t, Matches(key.Public, key.Private))

	other, err := NewSeasonKey()
	require.NoError(t, err)
	require.NotEqual(t, key.Private, other.Private)
	require.False(t, Matches(key.Public, other.Private))
}

func TestNewSeasonKeyFromSeed(t *testing.T) {
	seed := []byte("randao accumulator value")

	key1, err := NewSeasonKeyFromSeed(seed)
	require.NoError(t, err)
	key2, err := NewSeasonKeyFromSeed(seed)
	require.NoError(t, err)
	require.Equal(t, key1, key2, "seed derivation must be deterministic")

	key3, err := NewSeasonKeyFromSeed([]byte("another value"))
	require.NoError(t, err)
	require.NotEqual(t, key1.Private, key3.Private)

	_, err = NewSeasonKeyFromSeed(nil)
	require.Error(t, err)
}

func TestDerivePublicKeyRejectsBadScalars(t *testing.T) {
	_, err := DerivePublicKey(make([]byte, SeasonPrivateKeyLen))
	require.Error(t, err, "zero scalar")

	_, err = DerivePublicKey(make([]byte, SeasonPrivateKeyLen-1))
	require.Error(t, err, "short scalar")

	// The group order itself, little-endian: canonical scalars must be
	// strictly below it.
	mod := fr.Modulus().Bytes()
	le := make([]byte, len(mod))
	for i := range mod {
		le[i] = mod[len(mod)-1-i]
	}
	_, err = DerivePublicKey(le)
	require.Error(t, err, "non-canonical scalar")
}
