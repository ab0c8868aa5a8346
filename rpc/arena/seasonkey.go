package arena

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// SeasonKey is a BLS12-381 G1 keypair in the exact encoding the contract
// works with: the public key is a 48-byte compressed G1 point, the private
// key is a 32-byte little-endian canonical scalar. The host commits the
// public key on newSeason and reveals the private key on endSeason; the
// contract recomputes g1*Private and compares it with Public, so any pair
// produced here passes the on-chain key-match check.
type SeasonKey struct {
	Public  []byte
	Private []byte
}

// NewSeasonKey generates a season keypair from a cryptographically random
// scalar.
func NewSeasonKey() (*SeasonKey, error) {
	var s fr.Element
	if _, err := s.SetRandom(); err != nil {
		return nil, fmt.Errorf("generate scalar: %w", err)
	}
	return keyFromScalar(s.BigInt(new(big.Int))), nil
}

// NewSeasonKeyFromSeed derives a season keypair deterministically from the
// seed, normally the contract's getRandao value fetched right before
// newSeason. The seed is hashed and reduced into the scalar field.
func NewSeasonKeyFromSeed(seed []byte) (*SeasonKey, error) {
	if len(seed) == 0 {
		return nil, errors.New("empty seed")
	}
	digest := sha256.Sum256(seed)
	s := new(big.Int).SetBytes(digest[:])
	s.Mod(s, fr.Modulus())
	if s.Sign() == 0 {
		return nil, errors.New("degenerate seed")
	}
	return keyFromScalar(s), nil
}

// DerivePublicKey recomputes the 48-byte compressed public key from a
// 32-byte little-endian private key. It returns an error for scalars that
// are zero or not canonical (>= the group order), mirroring what the
// contract rejects.
func DerivePublicKey(private []byte) ([]byte, error) {
	s, err := scalarFromPrivate(private)
	if err != nil {
		return nil, err
	}
	return keyFromScalar(s).Public, nil
}

// Matches reports whether the private key corresponds to the public key,
// i.e. whether endSeason with this pair would pass the on-chain key-match
// check.
func Matches(public, private []byte) bool {
	derived, err := DerivePublicKey(private)
	if err != nil {
		return false
	}
	return bytes.Equal(derived, public)
}

func keyFromScalar(s *big.Int) *SeasonKey {
	_, _, g1, _ := bls12381.Generators()

	var pub bls12381.G1Affine
	pub.ScalarMultiplication(&g1, s)
	compressed := pub.Bytes()

	private := make([]byte, SeasonPrivateKeyLen)
	be := s.Bytes()
	for i := range be { // big-endian -> little-endian
		private[i] = be[len(be)-1-i]
	}

	return &SeasonKey{
		Public:  compressed[:],
		Private: private,
	}
}

func scalarFromPrivate(private []byte) (*big.Int, error) {
	if len(private) != SeasonPrivateKeyLen {
		return nil, fmt.Errorf("invalid private key length %d", len(private))
	}
	be := make([]byte, len(private))
	for i := range private {
		be[i] = private[len(private)-1-i]
	}
	s := new(big.Int).SetBytes(be)
	if s.Sign() == 0 {
		return nil, errors.New("zero scalar")
	}
	if s.Cmp(fr.Modulus()) >= 0 {
		return nil, errors.New("scalar is not canonical")
	}
	return s, nil
}
