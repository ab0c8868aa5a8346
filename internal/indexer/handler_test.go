package indexer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
)

type APISuite struct {
	suite.Suite
	mini   *miniredis.Miniredis
	store  *Store
	server *httptest.Server
	ctx    context.Context
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())
	s.store = NewStoreWithClient(redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	}))
	s.ctx = context.Background()

	api := NewAPI(zaptest.NewLogger(s.T()), s.store, NewMetrics())
	s.server = httptest.NewServer(api.Router())
}

func (s *APISuite) TearDownTest() {
	s.server.Close()
	_ = s.store.Close()
	s.mini.Close()
}

func (s *APISuite) get(path string, out any) int {
	resp, err := http.Get(s.server.URL + path)
	s.Require().NoError(err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == http.StatusOK {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func testAddress(b byte) string {
	return address.Uint160ToString(util.Uint160{b})
}

func (s *APISuite) TestCurrentSeason() {
	s.Equal(http.StatusNotFound, s.get("/v1/season", nil))

	s.Require().NoError(s.store.OpenSeason(s.ctx, 4, []byte{0xaa, 0xbb}))

	var season SeasonState
	s.Equal(http.StatusOK, s.get("/v1/season", &season))
	s.Equal(4, season.Index)
	s.Equal("aabb", season.PublicKey)
	s.False(season.Closed)
}

func (s *APISuite) TestSeasonByIndex() {
	s.Require().NoError(s.store.OpenSeason(s.ctx, 2, []byte{0x01}))
	s.Require().NoError(s.store.CloseSeason(s.ctx, 2, []byte{0x02}))

	var season SeasonState
	s.Equal(http.StatusOK, s.get("/v1/seasons/2", &season))
	s.True(season.Closed)
	s.Equal("02", season.PrivateKey)

	s.Equal(http.StatusNotFound, s.get("/v1/seasons/3", nil))
}

func (s *APISuite) TestPlayer() {
	addr := testAddress(1)
	s.Require().NoError(s.store.MarkRegistered(s.ctx, addr))
	s.Require().NoError(s.store.AddBalance(s.ctx, addr, 500))

	var summary PlayerSummary
	s.Equal(http.StatusOK, s.get("/v1/players/"+addr, &summary))
	s.True(summary.Registered)
	s.False(summary.Retired)
	s.EqualValues(500, summary.Balance)

	s.Equal(http.StatusBadRequest, s.get("/v1/players/not-an-address", nil))
}

func (s *APISuite) TestLeaderboard() {
	first, second := testAddress(1), testAddress(2)
	s.Require().NoError(s.store.PutRating(s.ctx, 1, second, 1400, 200, 2, 3))
	s.Require().NoError(s.store.PutRating(s.ctx, 1, first, 1700, 150, 3, 3))

	var body struct {
		Season  int                `json:"season"`
		Entries []LeaderboardEntry `json:"entries"`
	}
	s.Equal(http.StatusOK, s.get("/v1/seasons/1/leaderboard", &body))
	s.Equal(1, body.Season)
	s.Require().Len(body.Entries, 2)
	s.Equal(first, body.Entries[0].Address)
	s.Equal(second, body.Entries[1].Address)

	s.Equal(http.StatusOK, s.get("/v1/seasons/9/leaderboard", &body))
	s.Empty(body.Entries)
}

func (s *APISuite) TestCommitment() {
	addr := testAddress(3)
	s.Require().NoError(s.store.PutCommitment(s.ctx, 1, addr, []byte{0xde, 0xad}))

	var body struct {
		Digest string `json:"digest"`
	}
	s.Equal(http.StatusOK, s.get("/v1/seasons/1/commitments/"+addr, &body))
	s.Equal("dead", body.Digest)

	s.Equal(http.StatusNotFound, s.get("/v1/seasons/2/commitments/"+addr, nil))
}

func (s *APISuite) TestHealth() {
	s.Equal(http.StatusOK, s.get("/healthz", nil))

	s.mini.Close()
	s.Equal(http.StatusServiceUnavailable, s.get("/healthz", nil))
}

func (s *APISuite) TestMetricsEndpoint() {
	s.Equal(http.StatusOK, s.get("/metrics", nil))
}
