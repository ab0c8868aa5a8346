package indexer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testContractHash = "0x1b4357bff5a01bdf2a6581247cf9e1258b002428"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ARENA_CONFIG", "")
	t.Setenv("ARENA_CONTRACT_HASH", testContractHash)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	def := DefaultConfig()
	require.Equal(t, def.LogLevel, cfg.LogLevel)
	require.Equal(t, def.ListenAddr, cfg.ListenAddr)
	require.Equal(t, def.RPCEndpoint, cfg.RPCEndpoint)
	require.Equal(t, def.RedisURL, cfg.RedisURL)
	require.Equal(t, def.RedisPoolSize, cfg.RedisPoolSize)
}

func TestLoadConfigRequiresContract(t *testing.T) {
	t.Setenv("ARENA_CONFIG", "")
	t.Setenv("ARENA_CONTRACT_HASH", "")

	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("ARENA_CONTRACT_HASH", "nonsense")
	_, err = LoadConfig()
	require.ErrorContains(t, err, "invalid contract_hash")
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(
		"log_level: debug\nlisten_addr: ':8000'\ncontract_hash: "+testContractHash+"\n"), 0o600))

	t.Setenv("ARENA_CONFIG", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, ":8000", cfg.ListenAddr)
	require.Equal(t, testContractHash, cfg.ContractHash)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(
		"log_level: debug\ncontract_hash: "+testContractHash+"\n"), 0o600))

	t.Setenv("ARENA_CONFIG", path)
	t.Setenv("ARENA_LOG_LEVEL", "error")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "error", cfg.LogLevel)
}

func TestConfigContract(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ContractHash = testContractHash

	h, err := cfg.Contract()
	require.NoError(t, err)
	require.Equal(t, testContractHash, "0x"+h.StringLE())
}
