package arenaconst

const (
	// MaxSeasonIndex is the largest season index the contract accepts.
	// Indexes are packed into two-byte storage key parts.
	MaxSeasonIndex = 65535

	// MaxCodeSize is the largest ciphertext accepted by setPlayerCode.
	MaxCodeSize = 16384

	// MinNonceLen and MaxNonceLen bound confirmation nonce sizes. The
	// nonce helper in rpc/arena produces 16-byte (UUID-derived) nonces.
	MinNonceLen = 8
	MaxNonceLen = 32

	// SeasonPublicKeyLen is the size of a compressed BLS12-381 G1 point.
	SeasonPublicKeyLen = 48
	// SeasonPrivateKeyLen is the size of a little-endian canonical
	// BLS12-381 scalar.
	SeasonPrivateKeyLen = 32

	// ConfirmationSigLen is the size of an r||s secp256r1 signature.
	ConfirmationSigLen = 64

	// EntropyLen is the size of a jiggle contribution and of the
	// randomness accumulator itself.
	EntropyLen = 32

	// ErrInvalidSignature is returned when a registration confirmation
	// was not signed by the notary bound at deploy time.
	ErrInvalidSignature = "invalid notary signature"
	// ErrExpired is returned when a confirmation is presented after its
	// expiry timestamp.
	ErrExpired = "confirmation expired"
	// ErrNonceReused is returned when a confirmation nonce has already
	// been consumed, by anyone, ever.
	ErrNonceReused = "nonce already consumed"

	// ErrAlreadyOpened is returned on newSeason for an index that has
	// a season record, Open or Closed.
	ErrAlreadyOpened = "season already opened"
	// ErrSeasonStillOpen is returned on newSeason while a different
	// season index is still Open.
	ErrSeasonStillOpen = "another season is still open"
	// ErrNotOpen is returned when an operation needs an Open season and
	// the index has never been opened.
	ErrNotOpen = "season not open"
	// ErrAlreadyClosed is returned on endSeason for a Closed season.
	ErrAlreadyClosed = "season already closed"
	// ErrKeyMismatch is returned on endSeason when the revealed private
	// key does not correspond to the committed public key.
	ErrKeyMismatch = "private key does not match season public key"
	// ErrSeasonClosed is returned on setPlayerCode for a Closed season.
	ErrSeasonClosed = "season is closed"

	// ErrLengthMismatch is returned by rate when argument arrays differ
	// in length.
	ErrLengthMismatch = "argument arrays length mismatch"

	// ErrInsufficientBalance is returned on claim of a zero balance.
	ErrInsufficientBalance = "insufficient balance"

	// ErrNotRegistered is returned on setPlayerCode for a player that
	// never passed registration.
	ErrNotRegistered = "player is not registered"
	// ErrRetired is returned on register for a retired player.
	ErrRetired = "player is retired"
)
