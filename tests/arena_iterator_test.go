package tests

import (
	"testing"

	arenarpc "github.com/dragonfly-xyz/nottingham-contracts-sub001/rpc/arena"
	istorage "github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func testIterate(t *testing.T, a *arenaEnv, method string, args ...any) []stackitem.Item {
	stack, err := a.host().TestInvoke(t, method, args...)
	require.NoError(t, err)

	iter, ok := stack.Pop().Item().(*stackitem.Interop).Value().(*istorage.Iterator)
	require.True(t, ok)

	var items []stackitem.Item
	for iter.Next() {
		items = append(items, iter.Value())
	}
	return items
}

func TestArenaIterateSeasons(t *testing.T) {
	a := newArenaEnv(t)

	require.Empty(t, testIterate(t, a, "iterateSeasons"))

	key3 := a.openSeason(t, 3)
	a.host().Invoke(t, stackitem.Null{}, "endSeason", 3, key3.Private)
	key7 := a.openSeason(t, 7)

	items := testIterate(t, a, "iterateSeasons")
	require.Len(t, items, 2)

	idx, season, err := arenarpc.ParseSeasonItem(items[0])
	require.NoError(t, err)
	require.Equal(t, 3, idx)
	require.Equal(t, key3.Public, season.PublicKey)
	require.Equal(t, key3.Private, season.PrivateKey)

	idx, season, err = arenarpc.ParseSeasonItem(items[1])
	require.NoError(t, err)
	require.Equal(t, 7, idx)
	require.Equal(t, key7.Public, season.PublicKey)
	require.Empty(t, season.PrivateKey)
}

func TestArenaIterateCommitmentsAndRatings(t *testing.T) {
	a := newArenaEnv(t)
	player := a.e.NewAccount(t)
	a.register(t, player)
	a.openSeason(t, 1)

	code := randomBytes(96)
	a.as(player).Invoke(t, stackitem.Null{}, "setPlayerCode", 1, player.ScriptHash(), code)
	a.host().Invoke(t, stackitem.Null{}, "rate",
		1, []any{player.ScriptHash()}, []any{1500}, []any{200}, []any{3}, []any{5})

	items := testIterate(t, a, "iterateCommitments", 1)
	require.Len(t, items, 1)
	who, stored, err := arenarpc.ParseCommitmentItem(items[0])
	require.NoError(t, err)
	require.Equal(t, player.ScriptHash(), who)
	require.Equal(t, code, stored)

	items = testIterate(t, a, "iterateRatings", 1)
	require.Len(t, items, 1)
	who, record, err := arenarpc.ParseRatingItem(items[0])
	require.NoError(t, err)
	require.Equal(t, player.ScriptHash(), who)
	require.EqualValues(t, 1500, record.Mu.Int64())
	require.EqualValues(t, 200, record.Sigma.Int64())

	t.Run("other season is empty", func(t *testing.T) {
		require.Empty(t, testIterate(t, a, "iterateCommitments", 2))
		require.Empty(t, testIterate(t, a, "iterateRatings", 2))
	})
}
