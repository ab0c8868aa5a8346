package indexer

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Store is the Redis-backed state of the indexer: a queryable mirror of the
// contract built from its notifications.
type Store struct {
	client *redis.Client
}

// SeasonState is the indexed state of one season.
type SeasonState struct {
	Index      int    `json:"index"`
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey,omitempty"`
	Closed     bool   `json:"closed"`
}

// PlayerSummary aggregates everything indexed about one player.
type PlayerSummary struct {
	Address    string `json:"address"`
	Registered bool   `json:"registered"`
	Retired    bool   `json:"retired"`
	Balance    int64  `json:"balance"`
}

// LeaderboardEntry is one row of a season leaderboard, ordered by mu.
type LeaderboardEntry struct {
	Address    string `json:"address"`
	Mu         int64  `json:"mu"`
	Sigma      int64  `json:"sigma"`
	WinCount   int64  `json:"winCount"`
	MatchCount int64  `json:"matchCount"`
}

// ErrNotFound is returned on reads of entities the indexer has not seen.
var ErrNotFound = errors.New("not found")

// NewStore connects to Redis at the given URL and verifies the connection.
func NewStore(ctx context.Context, redisURL string, poolSize int) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.PoolSize = poolSize

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Store{client: client}, nil
}

// NewStoreWithClient wraps an existing Redis client (used by tests).
func NewStoreWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Ping verifies the Redis connection, for health checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func seasonKey(index int) string           { return fmt.Sprintf("arena:season:%d", index) }
func playerKey(address string) string      { return "arena:player:" + address }
func balanceKey(address string) string     { return "arena:balance:" + address }
func leaderboardKey(index int) string      { return fmt.Sprintf("arena:leaderboard:%d", index) }
func ratingKey(index int, addr string) string {
	return fmt.Sprintf("arena:rating:%d:%s", index, addr)
}
func commitmentKey(index int, addr string) string {
	return fmt.Sprintf("arena:commitment:%d:%s", index, addr)
}

const currentSeasonKey = "arena:season:current"

// OpenSeason records a newly opened season and makes it current.
func (s *Store) OpenSeason(ctx context.Context, index int, publicKey []byte) error {
	pipe := s.client.Pipeline()
	pipe.HSet(ctx, seasonKey(index), "public_key", hex.EncodeToString(publicKey))
	pipe.Set(ctx, currentSeasonKey, index, 0)
	_, err := pipe.Exec(ctx)
	return err
}

// CloseSeason records the revealed private key and clears the current season
// marker.
func (s *Store) CloseSeason(ctx context.Context, index int, privateKey []byte) error {
	pipe := s.client.Pipeline()
	pipe.HSet(ctx, seasonKey(index), "private_key", hex.EncodeToString(privateKey))
	pipe.Del(ctx, currentSeasonKey)
	_, err := pipe.Exec(ctx)
	return err
}

// CurrentSeason returns the currently open season index, or ErrNotFound when
// no season is open.
func (s *Store) CurrentSeason(ctx context.Context) (int, error) {
	v, err := s.client.Get(ctx, currentSeasonKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return strconv.Atoi(v)
}

// Season returns the indexed state of the season.
func (s *Store) Season(ctx context.Context, index int) (*SeasonState, error) {
	fields, err := s.client.HGetAll(ctx, seasonKey(index)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrNotFound
	}
	return &SeasonState{
		Index:      index,
		PublicKey:  fields["public_key"],
		PrivateKey: fields["private_key"],
		Closed:     fields["private_key"] != "",
	}, nil
}

// MarkRegistered records a successful registration of the player.
func (s *Store) MarkRegistered(ctx context.Context, address string) error {
	return s.client.HSet(ctx, playerKey(address), "registered", "1").Err()
}

// MarkRetired records the player's retirement.
func (s *Store) MarkRetired(ctx context.Context, address string) error {
	return s.client.HSet(ctx, playerKey(address), "retired", "1").Err()
}

// AddBalance credits the player's indexed escrow balance.
func (s *Store) AddBalance(ctx context.Context, address string, amount int64) error {
	return s.client.IncrBy(ctx, balanceKey(address), amount).Err()
}

// ZeroBalance resets the player's indexed escrow balance after a claim.
func (s *Store) ZeroBalance(ctx context.Context, address string) error {
	return s.client.Del(ctx, balanceKey(address)).Err()
}

// PlayerSummary returns everything indexed about the player.
func (s *Store) PlayerSummary(ctx context.Context, address string) (*PlayerSummary, error) {
	fields, err := s.client.HGetAll(ctx, playerKey(address)).Result()
	if err != nil {
		return nil, err
	}

	balance, err := s.client.Get(ctx, balanceKey(address)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	return &PlayerSummary{
		Address:    address,
		Registered: fields["registered"] == "1",
		Retired:    fields["retired"] == "1",
		Balance:    balance,
	}, nil
}

// PutCommitment records the digest of the player's committed ciphertext.
func (s *Store) PutCommitment(ctx context.Context, index int, address string, digest []byte) error {
	return s.client.Set(ctx, commitmentKey(index, address), hex.EncodeToString(digest), 0).Err()
}

// Commitment returns the recorded ciphertext digest in hex, or ErrNotFound.
func (s *Store) Commitment(ctx context.Context, index int, address string) (string, error) {
	v, err := s.client.Get(ctx, commitmentKey(index, address)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return v, nil
}

// PutRating records the player's rating within the season and reorders the
// season leaderboard by mu.
func (s *Store) PutRating(ctx context.Context, index int, address string, mu, sigma, wins, matches int64) error {
	pipe := s.client.Pipeline()
	pipe.HSet(ctx, ratingKey(index, address), map[string]any{
		"mu":      mu,
		"sigma":   sigma,
		"wins":    wins,
		"matches": matches,
	})
	pipe.ZAdd(ctx, leaderboardKey(index), redis.Z{Score: float64(mu), Member: address})
	_, err := pipe.Exec(ctx)
	return err
}

// Leaderboard returns up to limit season entries ordered by descending mu.
func (s *Store) Leaderboard(ctx context.Context, index, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	members, err := s.client.ZRevRange(ctx, leaderboardKey(index), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(members))
	for _, address := range members {
		fields, err := s.client.HGetAll(ctx, ratingKey(index, address)).Result()
		if err != nil {
			return nil, err
		}
		entries = append(entries, LeaderboardEntry{
			Address:    address,
			Mu:         parseIntField(fields, "mu"),
			Sigma:      parseIntField(fields, "sigma"),
			WinCount:   parseIntField(fields, "wins"),
			MatchCount: parseIntField(fields, "matches"),
		})
	}
	return entries, nil
}

func parseIntField(fields map[string]string, name string) int64 {
	v, _ := strconv.ParseInt(fields[name], 10, 64)
	return v
}
