package arena

import "crypto/sha256"

// CodeDigest computes the digest of a committed ciphertext as reported by
// the contract's getPlayerCodeHash method.
func CodeDigest(code []byte) []byte {
	digest := sha256.Sum256(code)
	return digest[:]
}
