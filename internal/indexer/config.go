package indexer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Config contains the arena indexer process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// ListenAddr is the HTTP API and metrics listen address.
	ListenAddr string `koanf:"listen_addr"`

	// RPCEndpoint is the WebSocket endpoint of a Neo RPC node, e.g.
	// "ws://localhost:30333/ws".
	RPCEndpoint string `koanf:"rpc_endpoint"`

	// ContractHash is the arena contract address in little-endian hex
	// form (as printed by neo-go).
	ContractHash string `koanf:"contract_hash"`

	// RedisURL configures the backing store, e.g. "redis://localhost:6379/0".
	RedisURL string `koanf:"redis_url"`

	// RedisPoolSize bounds the Redis connection pool.
	RedisPoolSize int `koanf:"redis_pool_size"`
}

// DefaultConfig returns a Config with development defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:      "info",
		ListenAddr:    ":9090",
		RPCEndpoint:   "ws://localhost:30333/ws",
		RedisURL:      "redis://localhost:6379/0",
		RedisPoolSize: 10,
	}
}

// LoadConfig builds a Config by layering defaults, an optional YAML file and
// environment variables. Order of precedence (low -> high):
//  1. defaults (DefaultConfig)
//  2. file (YAML) if ARENA_CONFIG is set
//  3. env (prefix ARENA_), e.g. ARENA_RPC_ENDPOINT
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("ARENA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	envProvider := env.Provider("ARENA_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "arena_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := *DefaultConfig()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.ListenAddr == "" {
		return nil, errors.New("listen_addr must not be empty")
	}
	if cfg.ContractHash == "" {
		return nil, errors.New("contract_hash must not be empty")
	}
	if _, err := cfg.Contract(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Contract parses the configured contract address.
func (c *Config) Contract() (util.Uint160, error) {
	h, err := util.Uint160DecodeStringLE(strings.TrimPrefix(c.ContractHash, "0x"))
	if err != nil {
		return util.Uint160{}, fmt.Errorf("invalid contract_hash: %w", err)
	}
	return h, nil
}
