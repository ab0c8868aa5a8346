package arena

import "github.com/dragonfly-xyz/nottingham-contracts-sub001/contracts/arena/arenaconst"

// Input size limits of the contract, re-exported for client-side validation.
const (
	MaxSeasonIndex      = arenaconst.MaxSeasonIndex
	MaxCodeSize         = arenaconst.MaxCodeSize
	MinNonceLen         = arenaconst.MinNonceLen
	MaxNonceLen         = arenaconst.MaxNonceLen
	SeasonPublicKeyLen  = arenaconst.SeasonPublicKeyLen
	SeasonPrivateKeyLen = arenaconst.SeasonPrivateKeyLen
	ConfirmationSigLen  = arenaconst.ConfirmationSigLen
	EntropyLen          = arenaconst.EntropyLen
)

// Exception messages of the contract, re-exported so clients can match the
// failure kind from a FAULTed invocation.
const (
	ErrInvalidSignature    = arenaconst.ErrInvalidSignature
	ErrExpired             = arenaconst.ErrExpired
	ErrNonceReused         = arenaconst.ErrNonceReused
	ErrAlreadyOpened       = arenaconst.ErrAlreadyOpened
	ErrSeasonStillOpen     = arenaconst.ErrSeasonStillOpen
	ErrNotOpen             = arenaconst.ErrNotOpen
	ErrAlreadyClosed       = arenaconst.ErrAlreadyClosed
	ErrKeyMismatch         = arenaconst.ErrKeyMismatch
	ErrSeasonClosed        = arenaconst.ErrSeasonClosed
	ErrLengthMismatch      = arenaconst.ErrLengthMismatch
	ErrInsufficientBalance = arenaconst.ErrInsufficientBalance
	ErrNotRegistered       = arenaconst.ErrNotRegistered
	ErrRetired             = arenaconst.ErrRetired
)
