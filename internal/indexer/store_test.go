package indexer

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type StoreSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.store = NewStoreWithClient(client)
	s.ctx = context.Background()
}

func (s *StoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Season tests

func (s *StoreSuite) TestOpenAndGetSeason() {
	pub := []byte{0xaa, 0xbb, 0xcc}

	err := s.store.OpenSeason(s.ctx, 3, pub)
	s.Require().NoError(err)

	season, err := s.store.Season(s.ctx, 3)
	s.Require().NoError(err)
	s.Equal(3, season.Index)
	s.Equal(hex.EncodeToString(pub), season.PublicKey)
	s.Empty(season.PrivateKey)
	s.False(season.Closed)
}

func (s *StoreSuite) TestSeasonNotFound() {
	_, err := s.store.Season(s.ctx, 9)
	s.ErrorIs(err, ErrNotFound)
}

func (s *StoreSuite) TestCurrentSeason() {
	_, err := s.store.CurrentSeason(s.ctx)
	s.ErrorIs(err, ErrNotFound)

	s.Require().NoError(s.store.OpenSeason(s.ctx, 7, []byte{1}))

	index, err := s.store.CurrentSeason(s.ctx)
	s.Require().NoError(err)
	s.Equal(7, index)
}

func (s *StoreSuite) TestCloseSeason() {
	priv := []byte{0x01, 0x02}
	s.Require().NoError(s.store.OpenSeason(s.ctx, 1, []byte{0xaa}))

	err := s.store.CloseSeason(s.ctx, 1, priv)
	s.Require().NoError(err)

	season, err := s.store.Season(s.ctx, 1)
	s.Require().NoError(err)
	s.True(season.Closed)
	s.Equal(hex.EncodeToString(priv), season.PrivateKey)

	_, err = s.store.CurrentSeason(s.ctx)
	s.ErrorIs(err, ErrNotFound)
}

// Player tests

func (s *StoreSuite) TestPlayerSummaryDefaults() {
	summary, err := s.store.PlayerSummary(s.ctx, "NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP")
	s.Require().NoError(err)
	s.False(summary.Registered)
	s.False(summary.Retired)
	s.Zero(summary.Balance)
}

func (s *StoreSuite) TestMarkRegisteredAndRetired() {
	const addr = "NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP"

	s.Require().NoError(s.store.MarkRegistered(s.ctx, addr))

	summary, err := s.store.PlayerSummary(s.ctx, addr)
	s.Require().NoError(err)
	s.True(summary.Registered)
	s.False(summary.Retired)

	s.Require().NoError(s.store.MarkRetired(s.ctx, addr))

	summary, err = s.store.PlayerSummary(s.ctx, addr)
	s.Require().NoError(err)
	s.True(summary.Registered)
	s.True(summary.Retired)
}

func (s *StoreSuite) TestBalance() {
	const addr = "NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP"

	s.Require().NoError(s.store.AddBalance(s.ctx, addr, 100))
	s.Require().NoError(s.store.AddBalance(s.ctx, addr, 50))

	summary, err := s.store.PlayerSummary(s.ctx, addr)
	s.Require().NoError(err)
	s.EqualValues(150, summary.Balance)

	s.Require().NoError(s.store.ZeroBalance(s.ctx, addr))

	summary, err = s.store.PlayerSummary(s.ctx, addr)
	s.Require().NoError(err)
	s.Zero(summary.Balance)
}

// Commitment tests

func (s *StoreSuite) TestCommitment() {
	const addr = "NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP"
	digest := []byte{0xde, 0xad, 0xbe, 0xef}

	_, err := s.store.Commitment(s.ctx, 1, addr)
	s.ErrorIs(err, ErrNotFound)

	s.Require().NoError(s.store.PutCommitment(s.ctx, 1, addr, digest))

	stored, err := s.store.Commitment(s.ctx, 1, addr)
	s.Require().NoError(err)
	s.Equal(hex.EncodeToString(digest), stored)
}

// Rating and leaderboard tests

func (s *StoreSuite) TestLeaderboardOrdering() {
	s.Require().NoError(s.store.PutRating(s.ctx, 1, "addr-low", 1200, 300, 1, 4))
	s.Require().NoError(s.store.PutRating(s.ctx, 1, "addr-high", 1800, 150, 5, 6))
	s.Require().NoError(s.store.PutRating(s.ctx, 1, "addr-mid", 1500, 200, 3, 5))

	entries, err := s.store.Leaderboard(s.ctx, 1, 10)
	s.Require().NoError(err)
	s.Require().Len(entries, 3)

	s.Equal("addr-high", entries[0].Address)
	s.Equal("addr-mid", entries[1].Address)
	s.Equal("addr-low", entries[2].Address)

	s.EqualValues(1800, entries[0].Mu)
	s.EqualValues(150, entries[0].Sigma)
	s.EqualValues(5, entries[0].WinCount)
	s.EqualValues(6, entries[0].MatchCount)
}

func (s *StoreSuite) TestLeaderboardLimit() {
	for i, addr := range []string{"a", "b", "c"} {
		s.Require().NoError(s.store.PutRating(s.ctx, 1, addr, int64(1000+i), 100, 0, 0))
	}

	entries, err := s.store.Leaderboard(s.ctx, 1, 2)
	s.Require().NoError(err)
	s.Len(entries, 2)
}

func (s *StoreSuite) TestRatingOverwriteReordersLeaderboard() {
	s.Require().NoError(s.store.PutRating(s.ctx, 1, "a", 1000, 100, 0, 1))
	s.Require().NoError(s.store.PutRating(s.ctx, 1, "b", 1100, 100, 1, 1))
	s.Require().NoError(s.store.PutRating(s.ctx, 1, "a", 1200, 90, 1, 2))

	entries, err := s.store.Leaderboard(s.ctx, 1, 10)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("a", entries[0].Address)
	s.EqualValues(1200, entries[0].Mu)
}

func (s *StoreSuite) TestLeaderboardSeasonsIsolated() {
	s.Require().NoError(s.store.PutRating(s.ctx, 1, "a", 1000, 100, 0, 1))

	entries, err := s.store.Leaderboard(s.ctx, 2, 10)
	s.Require().NoError(err)
	s.Empty(entries)
}
