// Package arena contains RPC wrappers for Nottingham Arena contract.
package arena

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// ArenaRatingRecord is a contract-specific arena.RatingRecord type used by its methods.
type ArenaRatingRecord struct {
	Mu *big.Int
	Sigma *big.Int
	WinCount *big.Int
	MatchCount *big.Int
}

// ArenaSeason is a contract-specific arena.Season type used by its methods.
type ArenaSeason struct {
	PublicKey []byte
	PrivateKey []byte
}

// PlayerRegisteredEvent represents "PlayerRegistered" event emitted by the contract.
type PlayerRegisteredEvent struct {
	Player util.Uint160
	Nonce []byte
}

// CodeCommittedEvent represents "CodeCommitted" event emitted by the contract.
type CodeCommittedEvent struct {
	SeasonIndex *big.Int
	Player util.Uint160
	Code []byte
}

// SeasonOpenedEvent represents "SeasonOpened" event emitted by the contract.
type SeasonOpenedEvent struct {
	SeasonIndex *big.Int
	PublicKey []byte
}

// SeasonClosedEvent represents "SeasonClosed" event emitted by the contract.
type SeasonClosedEvent struct {
	SeasonIndex *big.Int
	PrivateKey []byte
}

// RatingsUpdatedEvent represents "RatingsUpdated" event emitted by the contract.
type RatingsUpdatedEvent struct {
	SeasonIndex *big.Int
	Players []util.Uint160
}

// PlayerRetiredEvent represents "PlayerRetired" event emitted by the contract.
type PlayerRetiredEvent struct {
	Player util.Uint160
}

// DepositEvent represents "Deposit" event emitted by the contract.
type DepositEvent struct {
	From util.Uint160
	Player util.Uint160
	Amount *big.Int
}

// ClaimEvent represents "Claim" event emitted by the contract.
type ClaimEvent struct {
	Player util.Uint160
	Recipient util.Uint160
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// BalanceOf invokes `balanceOf` method of contract.
func (c *ContractReader) BalanceOf(player util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "balanceOf", player))
}

// GetEntropyBeacon invokes `getEntropyBeacon` method of contract.
func (c *ContractReader) GetEntropyBeacon() ([]byte, error) {
	return unwrap.Bytes(c.invoker.Call(c.hash, "getEntropyBeacon"))
}

// GetPlayerCode invokes `getPlayerCode` method of contract.
func (c *ContractReader) GetPlayerCode(seasonIndex *big.Int, player util.Uint160) ([]byte, error) {
	return unwrap.Bytes(c.invoker.Call(c.hash, "getPlayerCode", seasonIndex, player))
}

// GetPlayerCodeHash invokes `getPlayerCodeHash` method of contract.
func (c *ContractReader) GetPlayerCodeHash(seasonIndex *big.Int, player util.Uint160) (util.Uint256, error) {
	return unwrap.Uint256(c.invoker.Call(c.hash, "getPlayerCodeHash", seasonIndex, player))
}

// GetPlayerRating invokes `getPlayerRating` method of contract.
func (c *ContractReader) GetPlayerRating(seasonIndex *big.Int, player util.Uint160) (*ArenaRatingRecord, error) {
	return itemToArenaRatingRecord(unwrap.Item(c.invoker.Call(c.hash, "getPlayerRating", seasonIndex, player)))
}

// GetRandao invokes `getRandao` method of contract.
func (c *ContractReader) GetRandao() ([]byte, error) {
	return unwrap.Bytes(c.invoker.Call(c.hash, "getRandao"))
}

// GetSeason invokes `getSeason` method of contract.
func (c *ContractReader) GetSeason() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getSeason"))
}

// GetSeasonPrivateKey invokes `getSeasonPrivateKey` method of contract.
func (c *ContractReader) GetSeasonPrivateKey(seasonIndex *big.Int) ([]byte, error) {
	return unwrap.Bytes(c.invoker.Call(c.hash, "getSeasonPrivateKey", seasonIndex))
}

// GetSeasonPublicKey invokes `getSeasonPublicKey` method of contract.
func (c *ContractReader) GetSeasonPublicKey(seasonIndex *big.Int) ([]byte, error) {
	return unwrap.Bytes(c.invoker.Call(c.hash, "getSeasonPublicKey", seasonIndex))
}

// Host invokes `host` method of contract.
func (c *ContractReader) Host() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "host"))
}

// IsRegistered invokes `isRegistered` method of contract.
func (c *ContractReader) IsRegistered(player util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isRegistered", player))
}

// IsRetired invokes `isRetired` method of contract.
func (c *ContractReader) IsRetired(player util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isRetired", player))
}

// IterateCommitments invokes `iterateCommitments` method of contract.
func (c *ContractReader) IterateCommitments(seasonIndex *big.Int) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateCommitments", seasonIndex))
}

// IterateCommitmentsExpanded is similar to IterateCommitments (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateCommitmentsExpanded(seasonIndex *big.Int, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateCommitments", _numOfIteratorItems, seasonIndex))
}

// IterateRatings invokes `iterateRatings` method of contract.
func (c *ContractReader) IterateRatings(seasonIndex *big.Int) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateRatings", seasonIndex))
}

// IterateRatingsExpanded is similar to IterateRatings (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateRatingsExpanded(seasonIndex *big.Int, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateRatings", _numOfIteratorItems, seasonIndex))
}

// IterateSeasons invokes `iterateSeasons` method of contract.
func (c *ContractReader) IterateSeasons() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateSeasons"))
}

// IterateSeasonsExpanded is similar to IterateSeasons (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateSeasonsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateSeasons", _numOfIteratorItems))
}

// Notary invokes `notary` method of contract.
func (c *ContractReader) Notary() (*keys.PublicKey, error) {
	return unwrap.PublicKey(c.invoker.Call(c.hash, "notary"))
}

// Retirer invokes `retirer` method of contract.
func (c *ContractReader) Retirer() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "retirer"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Claim creates a transaction invoking `claim` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Claim(player util.Uint160, recipient util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claim", player, recipient)
}

// ClaimTransaction creates a transaction invoking `claim` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimTransaction(player util.Uint160, recipient util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claim", player, recipient)
}

// ClaimUnsigned creates a transaction invoking `claim` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimUnsigned(player util.Uint160, recipient util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claim", nil, player, recipient)
}

// EndSeason creates a transaction invoking `endSeason` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) EndSeason(seasonIndex *big.Int, privateKey []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "endSeason", seasonIndex, privateKey)
}

// EndSeasonTransaction creates a transaction invoking `endSeason` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) EndSeasonTransaction(seasonIndex *big.Int, privateKey []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "endSeason", seasonIndex, privateKey)
}

// EndSeasonUnsigned creates a transaction invoking `endSeason` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) EndSeasonUnsigned(seasonIndex *big.Int, privateKey []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "endSeason", nil, seasonIndex, privateKey)
}

// Jiggle creates a transaction invoking `jiggle` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Jiggle(entropy []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "jiggle", entropy)
}

// JiggleTransaction creates a transaction invoking `jiggle` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) JiggleTransaction(entropy []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "jiggle", entropy)
}

// JiggleUnsigned creates a transaction invoking `jiggle` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) JiggleUnsigned(entropy []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "jiggle", nil, entropy)
}

// NewSeason creates a transaction invoking `newSeason` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) NewSeason(seasonIndex *big.Int, publicKey []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "newSeason", seasonIndex, publicKey)
}

// NewSeasonTransaction creates a transaction invoking `newSeason` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) NewSeasonTransaction(seasonIndex *big.Int, publicKey []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "newSeason", seasonIndex, publicKey)
}

// NewSeasonUnsigned creates a transaction invoking `newSeason` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) NewSeasonUnsigned(seasonIndex *big.Int, publicKey []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "newSeason", nil, seasonIndex, publicKey)
}

// Rate creates a transaction invoking `rate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Rate(seasonIndex *big.Int, players []util.Uint160, mus []*big.Int, sigmas []*big.Int, winCounts []*big.Int, matchCounts []*big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "rate", seasonIndex, players, mus, sigmas, winCounts, matchCounts)
}

// RateTransaction creates a transaction invoking `rate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RateTransaction(seasonIndex *big.Int, players []util.Uint160, mus []*big.Int, sigmas []*big.Int, winCounts []*big.Int, matchCounts []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "rate", seasonIndex, players, mus, sigmas, winCounts, matchCounts)
}

// RateUnsigned creates a transaction invoking `rate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RateUnsigned(seasonIndex *big.Int, players []util.Uint160, mus []*big.Int, sigmas []*big.Int, winCounts []*big.Int, matchCounts []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "rate", nil, seasonIndex, players, mus, sigmas, winCounts, matchCounts)
}

// Register creates a transaction invoking `register` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Register(player util.Uint160, expiry *big.Int, nonce []byte, signature []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "register", player, expiry, nonce, signature)
}

// RegisterTransaction creates a transaction invoking `register` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterTransaction(player util.Uint160, expiry *big.Int, nonce []byte, signature []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "register", player, expiry, nonce, signature)
}

// RegisterUnsigned creates a transaction invoking `register` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterUnsigned(player util.Uint160, expiry *big.Int, nonce []byte, signature []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "register", nil, player, expiry, nonce, signature)
}

// Retire creates a transaction invoking `retire` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Retire(player util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "retire", player)
}

// RetireTransaction creates a transaction invoking `retire` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RetireTransaction(player util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "retire", player)
}

// RetireUnsigned creates a transaction invoking `retire` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RetireUnsigned(player util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "retire", nil, player)
}

// SetPlayerCode creates a transaction invoking `setPlayerCode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetPlayerCode(seasonIndex *big.Int, player util.Uint160, code []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setPlayerCode", seasonIndex, player, code)
}

// SetPlayerCodeTransaction creates a transaction invoking `setPlayerCode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetPlayerCodeTransaction(seasonIndex *big.Int, player util.Uint160, code []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setPlayerCode", seasonIndex, player, code)
}

// SetPlayerCodeUnsigned creates a transaction invoking `setPlayerCode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetPlayerCodeUnsigned(seasonIndex *big.Int, player util.Uint160, code []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setPlayerCode", nil, seasonIndex, player, code)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// itemToArenaRatingRecord converts stack item into *ArenaRatingRecord.
func itemToArenaRatingRecord(item stackitem.Item, err error) (*ArenaRatingRecord, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ArenaRatingRecord)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ArenaRatingRecord from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ArenaRatingRecord) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Mu, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Mu: %w", err)
	}

	index++
	res.Sigma, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Sigma: %w", err)
	}

	index++
	res.WinCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field WinCount: %w", err)
	}

	index++
	res.MatchCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MatchCount: %w", err)
	}

	return nil
}

// itemToArenaSeason converts stack item into *ArenaSeason.
func itemToArenaSeason(item stackitem.Item, err error) (*ArenaSeason, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ArenaSeason)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ArenaSeason from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ArenaSeason) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.PublicKey, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field PublicKey: %w", err)
	}

	index++
	res.PrivateKey, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field PrivateKey: %w", err)
	}

	return nil
}

// PlayerRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "PlayerRegistered" name from the provided [result.ApplicationLog].
func PlayerRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*PlayerRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PlayerRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PlayerRegistered" {
				continue
			}
			event := new(PlayerRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PlayerRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PlayerRegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *PlayerRegisteredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Player, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Player: %w", err)
	}

	index++
	e.Nonce, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Nonce: %w", err)
	}

	return nil
}

// CodeCommittedEventsFromApplicationLog retrieves a set of all emitted events
// with "CodeCommitted" name from the provided [result.ApplicationLog].
func CodeCommittedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CodeCommittedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CodeCommittedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CodeCommitted" {
				continue
			}
			event := new(CodeCommittedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CodeCommittedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CodeCommittedEvent or
// returns an error if it's not possible to do to so.
func (e *CodeCommittedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.SeasonIndex, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SeasonIndex: %w", err)
	}

	index++
	e.Player, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Player: %w", err)
	}

	index++
	e.Code, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Code: %w", err)
	}

	return nil
}

// SeasonOpenedEventsFromApplicationLog retrieves a set of all emitted events
// with "SeasonOpened" name from the provided [result.ApplicationLog].
func SeasonOpenedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SeasonOpenedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SeasonOpenedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SeasonOpened" {
				continue
			}
			event := new(SeasonOpenedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SeasonOpenedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SeasonOpenedEvent or
// returns an error if it's not possible to do to so.
func (e *SeasonOpenedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.SeasonIndex, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SeasonIndex: %w", err)
	}

	index++
	e.PublicKey, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field PublicKey: %w", err)
	}

	return nil
}

// SeasonClosedEventsFromApplicationLog retrieves a set of all emitted events
// with "SeasonClosed" name from the provided [result.ApplicationLog].
func SeasonClosedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SeasonClosedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SeasonClosedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SeasonClosed" {
				continue
			}
			event := new(SeasonClosedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SeasonClosedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SeasonClosedEvent or
// returns an error if it's not possible to do to so.
func (e *SeasonClosedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.SeasonIndex, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SeasonIndex: %w", err)
	}

	index++
	e.PrivateKey, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field PrivateKey: %w", err)
	}

	return nil
}

// RatingsUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "RatingsUpdated" name from the provided [result.ApplicationLog].
func RatingsUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RatingsUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RatingsUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RatingsUpdated" {
				continue
			}
			event := new(RatingsUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RatingsUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RatingsUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *RatingsUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.SeasonIndex, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SeasonIndex: %w", err)
	}

	index++
	e.Players, err = func (item stackitem.Item) ([]util.Uint160, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]util.Uint160, len(arr))
		for i := range res {
			res[i], err = func (item stackitem.Item) (util.Uint160, error) {
				b, err := item.TryBytes()
				if err != nil {
					return util.Uint160{}, err
				}
				u, err := util.Uint160DecodeBytesBE(b)
				if err != nil {
					return util.Uint160{}, err
				}
				return u, nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Players: %w", err)
	}

	return nil
}

// PlayerRetiredEventsFromApplicationLog retrieves a set of all emitted events
// with "PlayerRetired" name from the provided [result.ApplicationLog].
func PlayerRetiredEventsFromApplicationLog(log *result.ApplicationLog) ([]*PlayerRetiredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PlayerRetiredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PlayerRetired" {
				continue
			}
			event := new(PlayerRetiredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PlayerRetiredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PlayerRetiredEvent or
// returns an error if it's not possible to do to so.
func (e *PlayerRetiredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Player, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Player: %w", err)
	}

	return nil
}

// DepositEventsFromApplicationLog retrieves a set of all emitted events
// with "Deposit" name from the provided [result.ApplicationLog].
func DepositEventsFromApplicationLog(log *result.ApplicationLog) ([]*DepositEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DepositEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Deposit" {
				continue
			}
			event := new(DepositEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DepositEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DepositEvent or
// returns an error if it's not possible to do to so.
func (e *DepositEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.Player, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Player: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ClaimEventsFromApplicationLog retrieves a set of all emitted events
// with "Claim" name from the provided [result.ApplicationLog].
func ClaimEventsFromApplicationLog(log *result.ApplicationLog) ([]*ClaimEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ClaimEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Claim" {
				continue
			}
			event := new(ClaimEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ClaimEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ClaimEvent or
// returns an error if it's not possible to do to so.
func (e *ClaimEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Player, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Player: %w", err)
	}

	index++
	e.Recipient, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Recipient: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
