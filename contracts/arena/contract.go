package arena

import (
	"github.com/dragonfly-xyz/nottingham-contracts-sub001/common"
	"github.com/dragonfly-xyz/nottingham-contracts-sub001/contracts/arena/arenaconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Season stores the keypair committed for a single competition run. A season
// is Open while PrivateKey is empty and Closed once it is revealed.
type Season struct {
	PublicKey  []byte
	PrivateKey []byte
}

// RatingRecord groups host-asserted skill values of a player within one
// season. The contract stores these verbatim, it never computes them.
type RatingRecord struct {
	Mu         int
	Sigma      int
	WinCount   int
	MatchCount int
}

const (
	hostKey          = "h"
	retirerKey       = "e"
	notaryKey        = "n"
	currentSeasonKey = "c"
	mixStateKey      = "m"

	seasonPrefix     = 's'
	noncePrefix      = 'x'
	registeredPrefix = 'p'
	retiredPrefix    = 'd'
	balancePrefix    = 'b'
	codePrefix       = 'k'
	ratingPrefix     = 'r'

	// Domain separation labels of the confirmation message and the
	// randomness accumulator folds.
	confirmTag = "arena.confirm.v1"
	seedTag    = "arena.seed.v1"
	mixTag     = "arena.mix.v1"
	beaconTag  = "arena.beacon.v1"
)

// g1Generator is the standard BLS12-381 G1 generator in compressed form.
var g1Generator = []byte{
	0x97, 0xf1, 0xd3, 0xa7, 0x31, 0x97, 0xd7, 0x94, 0x26, 0x95, 0x63, 0x8c,
	0x4f, 0xa9, 0xac, 0x0f, 0xc3, 0x68, 0x8c, 0x4f, 0x97, 0x74, 0xb9, 0x05,
	0xa1, 0x4e, 0x3a, 0x3f, 0x17, 0x1b, 0xac, 0x58, 0x6c, 0x55, 0xe8, 0x3f,
	0xf9, 0x7a, 0x1a, 0xef, 0xfb, 0x3a, 0xf0, 0x0a, 0xdb, 0x22, 0xc6, 0xbb,
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)
		common.CheckVersion(version)
		return
	}

	args := data.(struct {
		host    interop.Hash160
		notary  interop.PublicKey
		retirer interop.Hash160
	})

	if len(args.host) != interop.Hash160Len {
		panic("invalid host")
	}
	if len(args.notary) != interop.PublicKeyCompressedLen {
		panic("invalid notary public key")
	}
	if len(args.retirer) != interop.Hash160Len {
		panic("invalid retirer")
	}

	storage.Put(ctx, hostKey, args.host)
	storage.Put(ctx, notaryKey, args.notary)
	storage.Put(ctx, retirerKey, args.retirer)

	seed := append([]byte(seedTag), convert.ToBytes(runtime.GetRandom())...)
	storage.Put(ctx, mixStateKey, crypto.Sha256(seed))

	runtime.Log("arena contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the host.
func Update(script []byte, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	common.CheckHostWitness(storage.Get(ctx, hostKey).(interop.Hash160))

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("arena contract updated")
}

// Register admits a player using a notary-issued confirmation. The
// confirmation signature must cover this contract's hash, the player's
// script hash, the expiry timestamp (milliseconds) and the nonce; any nonce
// is consumable exactly once over the whole contract lifetime, no matter by
// whom. The player itself must witness the call.
//
// Register panics with arenaconst.ErrInvalidSignature, ErrExpired,
// ErrNonceReused or ErrRetired when the corresponding check fails. A
// registered player may re-register with a fresh confirmation, which is a
// no-op apart from the consumed nonce.
func Register(player interop.Hash160, expiry int, nonce []byte, signature interop.Signature) {
	if len(player) != interop.Hash160Len {
		panic("invalid player")
	}
	if len(nonce) < arenaconst.MinNonceLen || len(nonce) > arenaconst.MaxNonceLen {
		panic("invalid nonce")
	}
	if len(signature) != arenaconst.ConfirmationSigLen {
		panic(arenaconst.ErrInvalidSignature)
	}

	common.CheckWitness(player)

	ctx := storage.GetContext()
	if storage.Get(ctx, playerKey(retiredPrefix, player)) != nil {
		panic(arenaconst.ErrRetired)
	}

	notary := storage.Get(ctx, notaryKey).(interop.PublicKey)
	msg := confirmationMessage(player, expiry, nonce)
	if !crypto.VerifyWithECDsa(msg, notary, signature, crypto.Secp256r1Sha256) {
		panic(arenaconst.ErrInvalidSignature)
	}
	if runtime.GetTime() > expiry {
		panic(arenaconst.ErrExpired)
	}
	if storage.Get(ctx, nonceKey(nonce)) != nil {
		panic(arenaconst.ErrNonceReused)
	}

	storage.Put(ctx, nonceKey(nonce), []byte{1})
	storage.Put(ctx, playerKey(registeredPrefix, player), []byte{1})

	runtime.Notify("PlayerRegistered", player, nonce)
}

// IsRegistered returns true if the player has passed registration.
func IsRegistered(player interop.Hash160) bool {
	requirePlayer(player)
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, playerKey(registeredPrefix, player)) != nil
}

// Retire permanently excludes a player from future registration. Existing
// season data of the player is kept. Repeated calls are no-ops.
func Retire(player interop.Hash160) {
	requirePlayer(player)

	ctx := storage.GetContext()
	common.CheckRetirerWitness(storage.Get(ctx, retirerKey).(interop.Hash160))

	key := playerKey(retiredPrefix, player)
	if storage.Get(ctx, key) != nil {
		return
	}
	storage.Put(ctx, key, []byte{1})

	runtime.Notify("PlayerRetired", player)
}

// IsRetired returns true if the player has been retired.
func IsRetired(player interop.Hash160) bool {
	requirePlayer(player)
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, playerKey(retiredPrefix, player)) != nil
}

// NewSeason opens the season with the committed public key: a compressed
// BLS12-381 G1 point derived off-chain, expected to be seeded from the
// GetRandao value. Only the host can open seasons, at most one season is
// Open at a time and an index never goes through the lifecycle twice.
func NewSeason(seasonIndex int, publicKey []byte) {
	checkSeasonIndex(seasonIndex)
	// The second-most-significant flag bit marks the point at infinity.
	if len(publicKey) != arenaconst.SeasonPublicKeyLen || publicKey[0]&0x40 != 0 {
		panic("invalid public key")
	}
	// Native deserialization panics on malformed points.
	crypto.Bls12381Deserialize(publicKey)

	ctx := storage.GetContext()
	common.CheckHostWitness(storage.Get(ctx, hostKey).(interop.Hash160))

	if storage.Get(ctx, seasonKey(seasonIndex)) != nil {
		panic(arenaconst.ErrAlreadyOpened)
	}
	if storage.Get(ctx, currentSeasonKey) != nil {
		panic(arenaconst.ErrSeasonStillOpen)
	}

	common.SetSerialized(ctx, seasonKey(seasonIndex), Season{PublicKey: publicKey})
	storage.Put(ctx, currentSeasonKey, seasonIndex)

	runtime.Notify("SeasonOpened", seasonIndex, publicKey)
}

// EndSeason closes an Open season by revealing its private key, a 32-byte
// little-endian canonical BLS12-381 scalar. The contract recomputes
// g1*privateKey on the native curve and requires the result to equal the
// committed public key, otherwise it panics with arenaconst.ErrKeyMismatch
// leaving the season Open. After the reveal all commitments of the season
// become decryptable and the season is immutable.
func EndSeason(seasonIndex int, privateKey []byte) {
	checkSeasonIndex(seasonIndex)
	if len(privateKey) != arenaconst.SeasonPrivateKeyLen {
		panic("invalid private key")
	}

	ctx := storage.GetContext()
	common.CheckHostWitness(storage.Get(ctx, hostKey).(interop.Hash160))

	season, ok := getSeasonRecord(ctx, seasonIndex)
	if !ok {
		panic(arenaconst.ErrNotOpen)
	}
	if len(season.PrivateKey) != 0 {
		panic(arenaconst.ErrAlreadyClosed)
	}

	derived := crypto.Bls12381Mul(crypto.Bls12381Deserialize(g1Generator), privateKey, false)
	committed := crypto.Bls12381Deserialize(season.PublicKey)
	if !crypto.Bls12381Equal(derived, committed) {
		panic(arenaconst.ErrKeyMismatch)
	}

	season.PrivateKey = privateKey
	common.SetSerialized(ctx, seasonKey(seasonIndex), season)
	storage.Delete(ctx, currentSeasonKey)

	runtime.Notify("SeasonClosed", seasonIndex, privateKey)
}

// GetSeason returns the index of the currently Open season, or -1 when no
// season is Open.
func GetSeason() int {
	ctx := storage.GetReadOnlyContext()
	idx := storage.Get(ctx, currentSeasonKey)
	if idx == nil {
		return -1
	}
	return idx.(int)
}

// GetSeasonPublicKey returns the public key committed for the season, or an
// empty byte string if the season was never opened.
func GetSeasonPublicKey(seasonIndex int) []byte {
	checkSeasonIndex(seasonIndex)
	season, ok := getSeasonRecord(storage.GetReadOnlyContext(), seasonIndex)
	if !ok {
		return []byte{}
	}
	return season.PublicKey
}

// GetSeasonPrivateKey returns the revealed private key of a Closed season,
// or an empty byte string before the reveal.
func GetSeasonPrivateKey(seasonIndex int) []byte {
	checkSeasonIndex(seasonIndex)
	season, ok := getSeasonRecord(storage.GetReadOnlyContext(), seasonIndex)
	if !ok || len(season.PrivateKey) == 0 {
		return []byte{}
	}
	return season.PrivateKey
}

// IterateSeasons returns an iterator over all season records. Keys are
// two-byte big-endian season indexes, values are Season structures.
func IterateSeasons() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{seasonPrefix}, storage.RemovePrefix|storage.DeserializeValues)
}

// SetPlayerCode commits the player's encrypted strategy for an Open season.
// The player must witness the call (or be the directly calling contract) and
// must have passed registration. A commitment may be overwritten any number
// of times until the season closes; once the season is Closed the call
// panics with arenaconst.ErrSeasonClosed. The full ciphertext is emitted
// with the CodeCommitted notification for off-chain archival.
func SetPlayerCode(seasonIndex int, player interop.Hash160, code []byte) {
	checkSeasonIndex(seasonIndex)
	if len(code) == 0 || len(code) > arenaconst.MaxCodeSize {
		panic("invalid code")
	}

	if !isUsableAddress(player) {
		panic(common.ErrWitnessFailed)
	}

	ctx := storage.GetContext()
	if storage.Get(ctx, playerKey(registeredPrefix, player)) == nil {
		panic(arenaconst.ErrNotRegistered)
	}

	season, ok := getSeasonRecord(ctx, seasonIndex)
	if !ok {
		panic(arenaconst.ErrNotOpen)
	}
	if len(season.PrivateKey) != 0 {
		panic(arenaconst.ErrSeasonClosed)
	}

	storage.Put(ctx, codeKey(seasonIndex, player), code)

	runtime.Notify("CodeCommitted", seasonIndex, player, code)
}

// GetPlayerCode returns the stored ciphertext, or an empty byte string when
// the player has not committed code for the season.
func GetPlayerCode(seasonIndex int, player interop.Hash160) []byte {
	checkSeasonIndex(seasonIndex)
	requirePlayer(player)

	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, codeKey(seasonIndex, player))
	if data == nil {
		return []byte{}
	}
	return data.([]byte)
}

// GetPlayerCodeHash returns the SHA-256 hash of the stored ciphertext,
// letting third parties pin a commitment without fetching the raw bytes.
// The zero hash is returned when no code was committed.
func GetPlayerCodeHash(seasonIndex int, player interop.Hash160) interop.Hash256 {
	code := GetPlayerCode(seasonIndex, player)
	if len(code) == 0 {
		return make([]byte, interop.Hash256Len)
	}
	return crypto.Sha256(code)
}

// IterateCommitments returns an iterator over the season's ciphertexts
// keyed by player script hash.
func IterateCommitments(seasonIndex int) iterator.Iterator {
	checkSeasonIndex(seasonIndex)
	ctx := storage.GetReadOnlyContext()
	prefix := append([]byte{codePrefix}, seasonIndexPart(seasonIndex)...)
	return storage.Find(ctx, prefix, storage.RemovePrefix)
}

// Rate records host-asserted rating values for a batch of players within
// the season. All five argument arrays must have one length, otherwise Rate
// panics with arenaconst.ErrLengthMismatch. Existing records are
// overwritten. Registration and season state are deliberately not checked:
// rating correctness is the host's responsibility.
func Rate(seasonIndex int, players []interop.Hash160, mus []int, sigmas []int, winCounts []int, matchCounts []int) {
	checkSeasonIndex(seasonIndex)

	ctx := storage.GetContext()
	common.CheckHostWitness(storage.Get(ctx, hostKey).(interop.Hash160))

	n := len(players)
	if len(mus) != n || len(sigmas) != n || len(winCounts) != n || len(matchCounts) != n {
		panic(arenaconst.ErrLengthMismatch)
	}

	for i := 0; i < n; i++ {
		player := players[i]
		requirePlayer(player)

		record := RatingRecord{
			Mu:         mus[i],
			Sigma:      sigmas[i],
			WinCount:   winCounts[i],
			MatchCount: matchCounts[i],
		}
		common.SetSerialized(ctx, ratingKey(seasonIndex, player), record)
	}

	runtime.Notify("RatingsUpdated", seasonIndex, players)
}

// GetPlayerRating returns the recorded rating of the player within the
// season, or a zero record when the host never rated the pair.
func GetPlayerRating(seasonIndex int, player interop.Hash160) RatingRecord {
	checkSeasonIndex(seasonIndex)
	requirePlayer(player)

	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, ratingKey(seasonIndex, player))
	if data == nil {
		return RatingRecord{}
	}
	return std.Deserialize(data.([]byte)).(RatingRecord)
}

// IterateRatings returns an iterator over the season's rating records keyed
// by player script hash.
func IterateRatings(seasonIndex int) iterator.Iterator {
	checkSeasonIndex(seasonIndex)
	ctx := storage.GetReadOnlyContext()
	prefix := append([]byte{ratingPrefix}, seasonIndexPart(seasonIndex)...)
	return storage.Find(ctx, prefix, storage.RemovePrefix|storage.DeserializeValues)
}

// Jiggle folds caller-provided entropy into the randomness accumulator. The
// accumulator evolves as sha256(tag || state || vmRandom || entropy), so the
// chain is strictly order-dependent: the same contributions submitted in a
// different order produce a different accumulator. Anyone may call it, any
// number of times; a single contributor can perturb the value but cannot
// choose it, since the VM contributes its own randomness to every fold.
func Jiggle(entropy []byte) {
	if len(entropy) != arenaconst.EntropyLen {
		panic("invalid entropy")
	}

	ctx := storage.GetContext()
	state := storage.Get(ctx, mixStateKey).([]byte)

	next := append([]byte(mixTag), state...)
	next = append(next, convert.ToBytes(runtime.GetRandom())...)
	next = append(next, entropy...)
	storage.Put(ctx, mixStateKey, crypto.Sha256(next))
}

// GetRandao returns the current 32-byte randomness accumulator. Season keys
// are expected to be derived from it off-chain right before newSeason.
func GetRandao() []byte {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, mixStateKey).([]byte)
}

// GetEntropyBeacon returns a fresh 32-byte value derived from the
// network-seeded VM randomness. It is only weakly unpredictable: block
// producers can bias it. Use GetRandao for the hardened value.
func GetEntropyBeacon() []byte {
	return crypto.Sha256(append([]byte(beaconTag), convert.ToBytes(runtime.GetRandom())...))
}

// OnNEP17Payment is a callback for the NEP-17 compatible native GAS
// contract: incoming transfers credit the escrow. The data argument may
// carry the script hash of the account to credit, otherwise the sending
// account is credited.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		common.AbortWithMessage("only GAS can be accepted for deposit")
	}
	if amount <= 0 {
		common.AbortWithMessage("amount must be positive")
	}

	player := from
	if data != nil {
		rcv := data.(interop.Hash160)
		switch len(rcv) {
		case interop.Hash160Len:
			player = rcv
		case 0:
		default:
			common.AbortWithMessage("invalid data argument, expected Hash160")
		}
	}

	ctx := storage.GetContext()
	key := playerKey(balancePrefix, player)
	storage.Put(ctx, key, common.GetIntOrZero(ctx, key)+amount)

	runtime.Notify("Deposit", from, player, amount)
}

// BalanceOf returns the player's claimable escrow balance in GAS fractions.
func BalanceOf(player interop.Hash160) int {
	requirePlayer(player)
	ctx := storage.GetReadOnlyContext()
	return common.GetIntOrZero(ctx, playerKey(balancePrefix, player))
}

// Claim transfers the player's full escrow balance to the recipient. The
// player must witness the call or be the directly calling contract. The
// balance record is removed before the GAS transfer is initiated, so a
// reentrant claim from the recipient's payment callback finds nothing to
// spend.
func Claim(player interop.Hash160, recipient interop.Hash160) {
	if len(recipient) != interop.Hash160Len {
		panic("invalid recipient")
	}
	if !isUsableAddress(player) {
		panic(common.ErrWitnessFailed)
	}

	ctx := storage.GetContext()
	key := playerKey(balancePrefix, player)
	amount := common.GetIntOrZero(ctx, key)
	if amount <= 0 {
		panic(arenaconst.ErrInsufficientBalance)
	}

	storage.Delete(ctx, key)

	if !gas.Transfer(runtime.GetExecutingScriptHash(), recipient, amount, nil) {
		panic("gas transfer failed")
	}

	runtime.Notify("Claim", player, recipient, amount)
}

// Host returns the script hash of the account managing seasons and ratings.
func Host() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, hostKey).(interop.Hash160)
}

// Retirer returns the script hash of the account allowed to retire players.
func Retirer() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, retirerKey).(interop.Hash160)
}

// Notary returns the public key whose confirmations admit players.
func Notary() interop.PublicKey {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, notaryKey).(interop.PublicKey)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func confirmationMessage(player interop.Hash160, expiry int, nonce []byte) []byte {
	msg := append([]byte(confirmTag), runtime.GetExecutingScriptHash()...)
	msg = append(msg, player...)
	msg = append(msg, convert.ToBytes(expiry)...)
	return append(msg, nonce...)
}

// isUsableAddress checks if the address witnessed the transaction or is the
// directly calling contract.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if callingScriptHash.Equals(addr) {
			return true
		}
	}

	return false
}

func getSeasonRecord(ctx storage.Context, seasonIndex int) (Season, bool) {
	data := storage.Get(ctx, seasonKey(seasonIndex))
	if data == nil {
		return Season{}, false
	}
	return std.Deserialize(data.([]byte)).(Season), true
}

func checkSeasonIndex(seasonIndex int) {
	if seasonIndex < 0 || seasonIndex > arenaconst.MaxSeasonIndex {
		panic("invalid season index")
	}
}

func requirePlayer(player interop.Hash160) {
	if len(player) != interop.Hash160Len {
		panic("invalid player")
	}
}

// seasonIndexPart packs the season index into the fixed-width form used in
// composite storage keys, keeping per-season prefix scans unambiguous.
func seasonIndexPart(seasonIndex int) []byte {
	return []byte{byte(seasonIndex >> 8), byte(seasonIndex)}
}

func seasonKey(seasonIndex int) []byte {
	return append([]byte{seasonPrefix}, seasonIndexPart(seasonIndex)...)
}

func codeKey(seasonIndex int, player interop.Hash160) []byte {
	key := append([]byte{codePrefix}, seasonIndexPart(seasonIndex)...)
	return append(key, player...)
}

func ratingKey(seasonIndex int, player interop.Hash160) []byte {
	key := append([]byte{ratingPrefix}, seasonIndexPart(seasonIndex)...)
	return append(key, player...)
}

func nonceKey(nonce []byte) []byte {
	return append([]byte{noncePrefix}, nonce...)
}

func playerKey(prefix byte, player interop.Hash160) []byte {
	return append([]byte{prefix}, player...)
}
