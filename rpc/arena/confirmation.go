package arena

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// confirmationTag is the domain separation label of confirmation messages. It
// must stay byte-for-byte equal to the label used by the contract.
const confirmationTag = "arena.confirm.v1"

// Confirmation is a notary-signed authorization allowing a player to pass
// the contract's register method once. It is produced off-chain by the
// notary and handed to the player through any channel.
type Confirmation struct {
	// Expiry is the latest blockchain timestamp (milliseconds) at which
	// the confirmation is still accepted.
	Expiry int64
	// Nonce makes the confirmation single-use. The contract never accepts
	// the same nonce twice, no matter the player or season.
	Nonce []byte
	// Signature is a 64-byte r||s secp256r1 signature of the confirmation
	// message made with the notary key.
	Signature []byte
}

// NewNonce returns a fresh 16-byte confirmation nonce derived from a random
// UUID.
func NewNonce() []byte {
	id := uuid.New()
	return id[:]
}

// ConfirmationMessage composes the canonical byte string signed by the
// notary: the domain tag followed by the contract hash, the player script
// hash, the VM encoding of the expiry integer and the nonce. The contract
// rebuilds exactly this message before verifying the signature, so any
// deviation makes registration fail.
func ConfirmationMessage(contract util.Uint160, player util.Uint160, expiry int64, nonce []byte) []byte {
	msg := append([]byte(confirmationTag), contract.BytesBE()...)
	msg = append(msg, player.BytesBE()...)
	msg = append(msg, bigint.ToBytes(big.NewInt(expiry))...)
	return append(msg, nonce...)
}

// SignConfirmation issues a Confirmation for the player admitted to the
// contract. The key must be the notary key bound at contract deployment.
func SignConfirmation(notary *keys.PrivateKey, contract util.Uint160, player util.Uint160, expiry int64, nonce []byte) (*Confirmation, error) {
	if notary == nil {
		return nil, errors.New("nil notary key")
	}
	if len(nonce) < MinNonceLen || len(nonce) > MaxNonceLen {
		return nil, fmt.Errorf("invalid nonce length %d", len(nonce))
	}

	msg := ConfirmationMessage(contract, player, expiry, nonce)
	return &Confirmation{
		Expiry:    expiry,
		Nonce:     nonce,
		Signature: notary.Sign(msg),
	}, nil
}

// Verify checks that the confirmation was signed by the given notary key for
// the specified contract and player. It performs the same check the contract
// does on register, minus expiry and nonce bookkeeping.
func (c *Confirmation) Verify(notary *keys.PublicKey, contract util.Uint160, player util.Uint160) bool {
	if notary == nil || len(c.Signature) != ConfirmationSigLen {
		return false
	}
	msg := ConfirmationMessage(contract, player, c.Expiry, c.Nonce)
	return notary.Verify(c.Signature, hash.Sha256(msg).BytesBE())
}

// RegisterConfirmation creates a transaction invoking `register` method of
// the contract with the ready-made confirmation. This transaction is signed
// and immediately sent to the network. The values returned are its hash,
// ValidUntilBlock value and error if any.
func (c *Contract) RegisterConfirmation(player util.Uint160, conf *Confirmation) (util.Uint256, uint32, error) {
	if conf == nil {
		return util.Uint256{}, 0, errors.New("nil confirmation")
	}
	return c.Register(player, big.NewInt(conf.Expiry), conf.Nonce, conf.Signature)
}
