package arena

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Items produced by the contract's iterate* methods are two-element
// structures of a storage key remainder and a value. Parse helpers below
// decode them into binding types for iterator consumers (the dump CLI, the
// indexer).

// ParseSeasonItem decodes an iterateSeasons item into the season index and
// the season record.
func ParseSeasonItem(item stackitem.Item) (int, *ArenaSeason, error) {
	key, value, err := splitIteratorItem(item)
	if err != nil {
		return 0, nil, err
	}
	if len(key) != 2 {
		return 0, nil, fmt.Errorf("unexpected season key length %d", len(key))
	}

	season, err := itemToArenaSeason(value, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("season record: %w", err)
	}
	return int(key[0])<<8 | int(key[1]), season, nil
}

// ParseCommitmentItem decodes an iterateCommitments item into the player
// script hash and the committed ciphertext.
func ParseCommitmentItem(item stackitem.Item) (util.Uint160, []byte, error) {
	key, value, err := splitIteratorItem(item)
	if err != nil {
		return util.Uint160{}, nil, err
	}

	player, err := util.Uint160DecodeBytesBE(key)
	if err != nil {
		return util.Uint160{}, nil, fmt.Errorf("player key: %w", err)
	}

	code, err := value.TryBytes()
	if err != nil {
		return util.Uint160{}, nil, fmt.Errorf("ciphertext: %w", err)
	}
	return player, code, nil
}

// ParseRatingItem decodes an iterateRatings item into the player script hash
// and the rating record.
func ParseRatingItem(item stackitem.Item) (util.Uint160, *ArenaRatingRecord, error) {
	key, value, err := splitIteratorItem(item)
	if err != nil {
		return util.Uint160{}, nil, err
	}

	player, err := util.Uint160DecodeBytesBE(key)
	if err != nil {
		return util.Uint160{}, nil, fmt.Errorf("player key: %w", err)
	}

	record, err := itemToArenaRatingRecord(value, nil)
	if err != nil {
		return util.Uint160{}, nil, fmt.Errorf("rating record: %w", err)
	}
	return player, record, nil
}

func splitIteratorItem(item stackitem.Item) ([]byte, stackitem.Item, error) {
	pair, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, nil, errors.New("not a key-value structure")
	}
	if len(pair) != 2 {
		return nil, nil, errors.New("wrong number of structure elements")
	}

	key, err := pair[0].TryBytes()
	if err != nil {
		return nil, nil, fmt.Errorf("key: %w", err)
	}
	return key, pair[1], nil
}
